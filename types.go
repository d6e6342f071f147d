package uciperf

import (
	"github.com/wagiedev/uciperf/internal/config"
	"github.com/wagiedev/uciperf/internal/positions"
	"github.com/wagiedev/uciperf/internal/record"
	"github.com/wagiedev/uciperf/internal/stats"
)

// Re-export types from internal packages

// ===== Options and Configuration =====

// Options configures a benchmark run.
type Options = config.Options

// Channel defines the line-oriented connection to a UCI engine.
// Inject a custom implementation with WithChannel.
type Channel = config.Channel

// ThreadsPolicy controls when the Threads option is sent to the engine.
type ThreadsPolicy = config.ThreadsPolicy

const (
	// ThreadsOnce sends the Threads option once, after the handshake.
	ThreadsOnce = config.ThreadsOnce
	// ThreadsPerExchange sends the Threads option before every position.
	ThreadsPerExchange = config.ThreadsPerExchange
)

// Limit is the search bound sent with every "go" command.
type Limit = config.Limit

// ===== Positions =====

// Supplier provides the positions to analyze.
type Supplier = positions.Supplier

// ===== Results =====

// Record is the outcome of one completed exchange.
type Record = record.Record

// Summary holds the statistics derived from a run's records.
type Summary = stats.Summary

// MateBucket counts the records that announced mate at one distance.
type MateBucket = stats.MateBucket

// Result is the outcome of a benchmark run.
type Result struct {
	// RunID uniquely identifies the run. IDs sort by start time.
	RunID string `json:"run_id"`
	// EngineName is the identity the engine reported in its handshake.
	EngineName string `json:"engine_name"`
	// Command is the configuration text of the run.
	Command string `json:"cmdline"`
	// Records holds one entry per completed exchange, in submission order.
	Records []Record `json:"records"`
	// Summary is derived from Records.
	Summary Summary `json:"summary"`
}
