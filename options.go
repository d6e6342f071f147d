package uciperf

import (
	"log/slog"
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithEnginePath sets the engine executable.
// If not set, well-known engine names are searched in PATH.
func WithEnginePath(path string) Option {
	return func(o *Options) {
		o.EnginePath = path
	}
}

// WithEngineArgs sets the arguments passed to the engine executable.
func WithEngineArgs(args ...string) Option {
	return func(o *Options) {
		o.EngineArgs = args
	}
}

// WithEnv adds environment variables for the engine process.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithStderr sets a callback receiving every line the engine writes to stderr.
func WithStderr(handler func(string)) Option {
	return func(o *Options) {
		o.Stderr = handler
	}
}

// ===== Search Configuration =====

// WithPositions sets the number of positions to analyze.
func WithPositions(n int) Option {
	return func(o *Options) {
		o.Positions = n
	}
}

// WithNodes bounds every search by a node budget ("go nodes N").
// A node budget takes precedence over WithDepth.
func WithNodes(nodes int) Option {
	return func(o *Options) {
		o.Nodes = &nodes
	}
}

// WithDepth bounds every search by depth ("go depth N").
// It has no effect when a node budget is set.
func WithDepth(depth int) Option {
	return func(o *Options) {
		o.Depth = &depth
	}
}

// WithThreads sets the value of the engine's Threads option.
func WithThreads(threads int) Option {
	return func(o *Options) {
		o.Threads = threads
	}
}

// WithThreadsPolicy controls when the Threads option is sent.
func WithThreadsPolicy(policy ThreadsPolicy) Option {
	return func(o *Options) {
		o.ThreadsPolicy = policy
	}
}

// WithSupplier sets the source of positions.
// If not set, the built-in positions are cycled.
func WithSupplier(supplier Supplier) Option {
	return func(o *Options) {
		o.Supplier = supplier
	}
}

// WithCommandLine sets the configuration text recorded with the result.
func WithCommandLine(cmdline string) Option {
	return func(o *Options) {
		o.CommandLine = cmdline
	}
}

// ===== Advanced =====

// WithChannel injects a custom engine channel.
// This is primarily useful for testing.
func WithChannel(channel Channel) Option {
	return func(o *Options) {
		o.Channel = channel
	}
}
