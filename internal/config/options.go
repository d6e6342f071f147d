package config

import (
	"log/slog"

	"github.com/wagiedev/uciperf/internal/positions"
)

const (
	// DefaultPositions is the number of exchanges run when none is configured.
	DefaultPositions = 10

	// DefaultDepth bounds the search when neither a node nor a depth budget
	// is configured.
	DefaultDepth = 10

	// DefaultThreads is the engine thread count sent when none is configured.
	DefaultThreads = 1
)

// ThreadsPolicy controls when the Threads option is sent to the engine.
type ThreadsPolicy string

const (
	// ThreadsOnce sends the Threads option once, right after the handshake.
	ThreadsOnce ThreadsPolicy = "once"
	// ThreadsPerExchange re-sends the Threads option before every position.
	ThreadsPerExchange ThreadsPolicy = "per-exchange"
)

// Options configures a benchmark run.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// EnginePath is the explicit path to the engine executable.
	// If empty, well-known engine names are searched in PATH.
	EnginePath string

	// EngineArgs are passed to the engine executable.
	EngineArgs []string

	// Env provides additional environment variables for the engine process.
	Env map[string]string

	// Stderr is a callback function for handling engine stderr output.
	Stderr func(string)

	// Positions is the number of exchanges to run.
	// If zero, DefaultPositions is used.
	Positions int

	// Nodes is the node budget per search ("go nodes N").
	// If nil, the search is bounded by depth instead.
	Nodes *int

	// Depth is the depth budget per search ("go depth N"), used only when
	// Nodes is nil. If nil, DefaultDepth is used.
	Depth *int

	// Threads is the value of the engine's Threads option.
	// If zero, DefaultThreads is used.
	Threads int

	// ThreadsPolicy controls when the Threads option is sent.
	// If empty, ThreadsOnce is used.
	ThreadsPolicy ThreadsPolicy

	// Supplier provides the positions to analyze.
	// If nil, the built-in list is cycled.
	Supplier positions.Supplier

	// CommandLine is the configuration text recorded with the results,
	// typically the invoking command line. If empty, it is derived from
	// the search limit and thread count.
	CommandLine string

	// Channel allows injecting a custom engine channel.
	// If nil, a subprocess channel is created automatically.
	Channel Channel `json:"-"`
}

// PositionCount returns the configured number of exchanges.
func (o *Options) PositionCount() int {
	if o.Positions > 0 {
		return o.Positions
	}

	return DefaultPositions
}

// ThreadCount returns the configured engine thread count.
func (o *Options) ThreadCount() int {
	if o.Threads > 0 {
		return o.Threads
	}

	return DefaultThreads
}

// Policy returns the configured threads policy.
func (o *Options) Policy() ThreadsPolicy {
	if o.ThreadsPolicy == "" {
		return ThreadsOnce
	}

	return o.ThreadsPolicy
}

// SearchLimit returns the bound placed on every search.
// A node budget takes precedence over a depth budget.
func (o *Options) SearchLimit() Limit {
	if o.Nodes != nil {
		return Limit{Kind: LimitNodes, Value: *o.Nodes}
	}

	if o.Depth != nil {
		return Limit{Kind: LimitDepth, Value: *o.Depth}
	}

	return Limit{Kind: LimitDepth, Value: DefaultDepth}
}

// BuildEnvironment returns the engine's environment: the current process
// environment followed by the configured overrides.
func (o *Options) BuildEnvironment(base []string) []string {
	env := make([]string, 0, len(base)+len(o.Env))
	env = append(env, base...)

	for k, v := range o.Env {
		env = append(env, k+"="+v)
	}

	return env
}
