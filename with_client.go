package uciperf

import (
	"context"
	"fmt"
)

// WithClient manages client lifecycle with automatic cleanup.
//
// This helper creates a client, starts it with the provided options, executes the
// callback function, and ensures the engine is terminated via Close() when done.
//
// If the callback returns an error, it is returned to the caller.
// If Close() fails, a warning is logged but does not override the callback's error.
//
// Example usage:
//
//	err := uciperf.WithClient(ctx, func(c uciperf.Client) error {
//	    for _, fen := range fens {
//	        if _, err := c.Analyze(fen); err != nil {
//	            return err
//	        }
//	    }
//	    fmt.Printf("EBF %.2f\n", c.Summary().AvgEBF)
//	    return nil
//	},
//	    uciperf.WithEnginePath("/usr/games/stockfish"),
//	)
func WithClient(ctx context.Context, fn func(Client) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	client := NewClient()
	if err := client.Start(ctx, opts...); err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}

	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Warn("failed to close client", "error", closeErr)
		}
	}()

	return fn(client)
}
