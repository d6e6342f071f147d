package uciperf

import (
	"context"

	"github.com/wagiedev/uciperf/internal/client"
)

// Client provides an interactive, stateful connection to one UCI engine.
//
// Unlike the one-shot Run function, Client lets the caller decide which
// positions to analyze and when, while still collecting every record for
// the summary.
//
// Lifecycle: Clients are single-use. After Close(), create a new client with NewClient().
//
// Example usage:
//
//	client := NewClient()
//	defer client.Close()
//
//	err := client.Start(ctx,
//	    WithEnginePath("/usr/games/stockfish"),
//	    WithDepth(12),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	record, err := client.Analyze("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(record.BestMove, record.Score)
type Client interface {
	// Start spawns the engine and performs the UCI handshake.
	// Must be called before any other methods.
	// Returns StartError if the engine cannot be spawned.
	Start(ctx context.Context, opts ...Option) error

	// EngineName returns the identity the engine reported in its handshake.
	EngineName() string

	// Analyze searches one position and returns its record.
	Analyze(fen string) (Record, error)

	// AnalyzeBatch searches up to n positions from supplier, one at a time.
	// On failure it returns the records completed before it with the error.
	AnalyzeBatch(supplier Supplier, n int) ([]Record, error)

	// Records returns every record collected so far, in submission order.
	Records() []Record

	// Summary derives statistics from every record collected so far.
	Summary() Summary

	// Close terminates the engine. Records remain available.
	Close() error
}

// clientWrapper wraps the internal client to adapt it to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// NewClient creates a new interactive client.
func NewClient() Client {
	return &clientWrapper{impl: client.New()}
}

func (c *clientWrapper) Start(ctx context.Context, opts ...Option) error {
	return c.impl.Start(ctx, applyOptions(opts))
}

func (c *clientWrapper) EngineName() string {
	return c.impl.EngineName()
}

func (c *clientWrapper) Analyze(fen string) (Record, error) {
	return c.impl.Analyze(fen)
}

func (c *clientWrapper) AnalyzeBatch(supplier Supplier, n int) ([]Record, error) {
	return c.impl.AnalyzeBatch(supplier, n)
}

func (c *clientWrapper) Records() []Record {
	return c.impl.Records()
}

func (c *clientWrapper) Summary() Summary {
	return c.impl.Summary()
}

func (c *clientWrapper) Close() error {
	return c.impl.Close()
}
