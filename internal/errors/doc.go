// Package errors defines error types for uciperf.
//
// This package provides structured error types for the failure scenarios of
// driving a UCI engine process: spawning it, writing commands to it and
// reading its output. All error types support error unwrapping and can be
// checked using errors.Is, errors.As, and errors.AsType.
package errors
