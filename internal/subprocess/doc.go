// Package subprocess provides the subprocess-based channel to a UCI engine.
//
// This package implements the config.Channel interface by spawning the engine
// executable as a child process and exchanging newline-terminated lines over
// its stdin and stdout. It owns the process for its whole lifetime: Close
// kills and reaps it, and is safe to defer on every exit path.
package subprocess
