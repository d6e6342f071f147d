// Package config provides configuration types for uciperf.
package config

import "context"

// Channel defines the line-oriented connection to a UCI engine.
// Implement this to drive an engine that is not a local subprocess, or to
// script engine output in tests.
//
// The default implementation is subprocess.Channel which spawns the engine
// executable. Custom channels can be injected via Options.Channel.
type Channel interface {
	// Start spawns or connects to the engine. It is called exactly once,
	// before any line is sent or received.
	Start(ctx context.Context) error

	// Send writes text followed by a newline and flushes it immediately.
	Send(text string) error

	// ReceiveLine blocks until the engine emits a full line and returns it
	// without its line terminator. It returns an error matching
	// ErrStreamClosed once the engine has closed its output.
	ReceiveLine() (string, error)

	// Close terminates the engine on a best-effort basis.
	// It's safe to call Close multiple times.
	Close() error
}
