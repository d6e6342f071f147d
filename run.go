package uciperf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/uciperf/internal/client"
	"github.com/wagiedev/uciperf/internal/errors"
	"github.com/wagiedev/uciperf/internal/positions"
)

// getLoggerWithComponent returns a logger with the component field set.
func getLoggerWithComponent(options *Options, component string) *slog.Logger {
	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	return log.With("component", component)
}

// commandLine returns the configuration text recorded with a result.
func commandLine(options *Options) string {
	if options.CommandLine != "" {
		return options.CommandLine
	}

	cmdline := fmt.Sprintf("%s threads=%d positions=%d",
		options.SearchLimit(), options.ThreadCount(), options.PositionCount())

	if options.Policy() == ThreadsPerExchange {
		cmdline += " threads-per-exchange"
	}

	return cmdline
}

// defaultSupplier cycles the built-in positions that decode as valid FENs.
func defaultSupplier(log *slog.Logger) (Supplier, error) {
	fens := positions.Validate(log, positions.Default())
	if len(fens) == 0 {
		return nil, errors.ErrNoPositions
	}

	return positions.NewCycle(fens), nil
}

// Run benchmarks a UCI engine.
//
// It starts the engine, performs the handshake, analyzes the configured
// number of positions one at a time and summarizes the resulting records.
// The engine process is terminated before Run returns, on every path.
//
// If an exchange fails, Run returns the error together with a Result
// holding the records of the exchanges completed before it. Failures before
// the handshake completed return a nil Result.
//
// Example:
//
//	result, err := uciperf.Run(ctx,
//	    uciperf.WithEnginePath("/usr/games/stockfish"),
//	    uciperf.WithNodes(10000),
//	    uciperf.WithThreads(8),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.EngineName, result.Summary.AvgEBF)
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	options := applyOptions(opts)
	log := getLoggerWithComponent(options, "run")

	if options.Supplier == nil {
		supplier, err := defaultSupplier(log)
		if err != nil {
			return nil, err
		}

		options.Supplier = supplier
	}

	result := &Result{
		RunID:   ulid.Make().String(),
		Command: commandLine(options),
	}

	log = log.With("run_id", result.RunID)
	log.Info("Starting benchmark run", "cmdline", result.Command)

	c := client.New()
	if err := c.Start(ctx, options); err != nil {
		return nil, err
	}

	defer func() {
		if err := c.Close(); err != nil {
			log.Debug("Close client", "error", err)
		}
	}()

	result.EngineName = c.EngineName()

	_, runErr := c.AnalyzeBatch(options.Supplier, options.PositionCount())

	result.Records = c.Records()
	result.Summary = c.Summary()

	if runErr != nil {
		return result, runErr
	}

	if len(result.Records) == 0 {
		return result, errors.ErrNoPositions
	}

	log.Info("Benchmark run complete",
		"engine_name", result.EngineName, "positions_analyzed", result.Summary.Count)

	return result, nil
}
