package errors

import (
	"errors"
	"fmt"
)

// UCIPerfError is the base interface for all uciperf errors.
type UCIPerfError interface {
	error
	IsUCIPerfError() bool
}

// Compile-time verification that all error types implement UCIPerfError.
var (
	_ UCIPerfError = (*EngineNotFoundError)(nil)
	_ UCIPerfError = (*StartError)(nil)
	_ UCIPerfError = (*IOError)(nil)
	_ UCIPerfError = (*StreamClosedError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrStreamClosed indicates the engine closed its output stream.
	// Every StreamClosedError matches it with errors.Is.
	ErrStreamClosed = errors.New("engine closed its output stream")

	// ErrChannelNotStarted indicates a channel was used before Start succeeded.
	ErrChannelNotStarted = errors.New("channel not started")

	// ErrNoPositions indicates the position supplier had nothing to offer.
	ErrNoPositions = errors.New("no positions to analyze")

	// ErrClientNotConnected indicates the client has not been started.
	ErrClientNotConnected = errors.New("client not connected")

	// ErrClientAlreadyConnected indicates the client is already connected.
	ErrClientAlreadyConnected = errors.New("client already connected")

	// ErrClientClosed indicates the client has been closed and cannot be reused.
	ErrClientClosed = errors.New("client closed: clients are single-use, create a new one with New()")
)

// Stage names the protocol phase in which a stream closed.
type Stage string

const (
	// StageHandshake is the uci ... uciok negotiation.
	StageHandshake Stage = "handshake"
	// StageExchange is a position + go + info/bestmove cycle.
	StageExchange Stage = "exchange"
)

// EngineNotFoundError indicates the engine executable could not be located.
type EngineNotFoundError struct {
	SearchedPaths []string
}

func (e *EngineNotFoundError) Error() string {
	return fmt.Sprintf("engine executable not found in: %v", e.SearchedPaths)
}

// IsUCIPerfError implements UCIPerfError.
func (e *EngineNotFoundError) IsUCIPerfError() bool { return true }

// StartError indicates the engine process could not be spawned or its pipes
// could not be obtained.
type StartError struct {
	Path string
	Err  error
}

func (e *StartError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to start engine: %v", e.Err)
	}

	return fmt.Sprintf("failed to start engine %s: %v", e.Path, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// IsUCIPerfError implements UCIPerfError.
func (e *StartError) IsUCIPerfError() bool { return true }

// IOError indicates a command could not be written to the engine.
type IOError struct {
	Command string
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to send %q to engine: %v", e.Command, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsUCIPerfError implements UCIPerfError.
func (e *IOError) IsUCIPerfError() bool { return true }

// StreamClosedError indicates the engine closed its output before the line
// the driver was waiting for arrived.
type StreamClosedError struct {
	Stage Stage
	// Input is the position of the in-flight exchange, empty during the handshake.
	Input string
	// Stderr holds the last lines the engine wrote to stderr, if any.
	Stderr string
}

func (e *StreamClosedError) Error() string {
	msg := "engine closed its output stream"
	if e.Stage != "" {
		msg += " during " + string(e.Stage)
	}

	if e.Input != "" {
		msg += " (position " + e.Input + ")"
	}

	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

// Is reports whether target is ErrStreamClosed.
func (e *StreamClosedError) Is(target error) bool {
	return target == ErrStreamClosed
}

// IsUCIPerfError implements UCIPerfError.
func (e *StreamClosedError) IsUCIPerfError() bool { return true }
