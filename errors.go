package uciperf

import "github.com/wagiedev/uciperf/internal/errors"

// Re-export error types from internal package

// UCIPerfError is the base interface for all uciperf errors.
type UCIPerfError = errors.UCIPerfError

// EngineNotFoundError indicates the engine executable was not found.
type EngineNotFoundError = errors.EngineNotFoundError

// StartError indicates the engine process could not be spawned.
type StartError = errors.StartError

// IOError indicates a command could not be written to the engine.
type IOError = errors.IOError

// StreamClosedError indicates the engine closed its output before the
// protocol step in progress completed.
type StreamClosedError = errors.StreamClosedError

// Stage names the protocol phase of a StreamClosedError.
type Stage = errors.Stage

const (
	// StageHandshake is the uci ... uciok negotiation.
	StageHandshake = errors.StageHandshake
	// StageExchange is the analysis of one position.
	StageExchange = errors.StageExchange
)

// Re-export sentinel errors from internal package.
var (
	// ErrStreamClosed indicates the engine closed its output stream.
	ErrStreamClosed = errors.ErrStreamClosed

	// ErrChannelNotStarted indicates a channel was used before it was started.
	ErrChannelNotStarted = errors.ErrChannelNotStarted

	// ErrNoPositions indicates there was no position to analyze.
	ErrNoPositions = errors.ErrNoPositions

	// ErrClientNotConnected indicates the client has not been started.
	ErrClientNotConnected = errors.ErrClientNotConnected

	// ErrClientAlreadyConnected indicates the client is already connected.
	ErrClientAlreadyConnected = errors.ErrClientAlreadyConnected

	// ErrClientClosed indicates the client has been closed and cannot be reused.
	ErrClientClosed = errors.ErrClientClosed
)
