// Command uciperf benchmarks a UCI chess engine.
//
// Usage:
//
//	uciperf -e /usr/games/stockfish -p 20 -n 50000 -t 4
//
// It prints a report to stdout and appends one row per run to a CSV file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/wagiedev/uciperf"
	"github.com/wagiedev/uciperf/internal/report"
)

const (
	defaultNodes   = 10000
	defaultThreads = 8
	defaultCSVPath = "engine_stats.csv"
)

// cliConfig holds the parsed command line.
type cliConfig struct {
	enginePath         string
	engineArgs         []string
	positions          int
	nodes              int
	depth              int
	threads            int
	threadsPerExchange bool
	fensPath           string
	exhaust            bool
	csvPath            string
	verbose            bool
}

func parseFlags(args []string, output io.Writer) (*cliConfig, error) {
	cfg := &cliConfig{}

	fs := flag.NewFlagSet("uciperf", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.enginePath, "engine-path", "", "path to the UCI engine executable (required)")
	fs.StringVar(&cfg.enginePath, "e", "", "shorthand for -engine-path")
	fs.Func("engine-arg", "argument passed to the engine, repeatable", func(arg string) error {
		cfg.engineArgs = append(cfg.engineArgs, arg)

		return nil
	})
	fs.IntVar(&cfg.positions, "positions", 10, "number of positions to analyze")
	fs.IntVar(&cfg.positions, "p", 10, "shorthand for -positions")
	fs.IntVar(&cfg.nodes, "nodes", defaultNodes, "node budget per search, 0 to search by depth")
	fs.IntVar(&cfg.nodes, "n", defaultNodes, "shorthand for -nodes")
	fs.IntVar(&cfg.depth, "depth", 0, "depth budget per search when no node budget is set (0 = 10)")
	fs.IntVar(&cfg.depth, "d", 0, "shorthand for -depth")
	fs.IntVar(&cfg.threads, "threads", defaultThreads, "engine Threads option")
	fs.IntVar(&cfg.threads, "t", defaultThreads, "shorthand for -threads")
	fs.BoolVar(&cfg.threadsPerExchange, "threads-per-exchange", false, "send the Threads option before every position")
	fs.StringVar(&cfg.fensPath, "fens", "", "file of positions (JSON {\"fens\": [...]} or one FEN per line)")
	fs.BoolVar(&cfg.exhaust, "exhaust", false, "stop after the last position instead of cycling")
	fs.StringVar(&cfg.csvPath, "csv", defaultCSVPath, "CSV file to append results to, empty to disable")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.enginePath == "" {
		return nil, errors.New("-engine-path is required")
	}

	if cfg.positions < 1 {
		return nil, fmt.Errorf("-positions must be at least 1, got %d", cfg.positions)
	}

	if cfg.nodes < 0 || cfg.depth < 0 || cfg.threads < 1 {
		return nil, errors.New("-nodes and -depth must not be negative, -threads must be at least 1")
	}

	return cfg, nil
}

// options converts the command line into run options.
func (c *cliConfig) options(log *slog.Logger, cmdline string) ([]uciperf.Option, error) {
	opts := []uciperf.Option{
		uciperf.WithLogger(log),
		uciperf.WithEnginePath(c.enginePath),
		uciperf.WithEngineArgs(c.engineArgs...),
		uciperf.WithPositions(c.positions),
		uciperf.WithThreads(c.threads),
		uciperf.WithCommandLine(cmdline),
	}

	if c.nodes > 0 {
		opts = append(opts, uciperf.WithNodes(c.nodes))
	}

	if c.depth > 0 {
		opts = append(opts, uciperf.WithDepth(c.depth))
	}

	if c.threadsPerExchange {
		opts = append(opts, uciperf.WithThreadsPolicy(uciperf.ThreadsPerExchange))
	}

	if c.fensPath != "" || c.exhaust {
		fens := uciperf.DefaultPositions()

		if c.fensPath != "" {
			loaded, err := uciperf.LoadPositions(c.fensPath)
			if err != nil {
				return nil, err
			}

			if len(loaded) == 0 {
				return nil, fmt.Errorf("%s: %w", c.fensPath, uciperf.ErrNoPositions)
			}

			fens = loaded
		}

		if c.exhaust {
			opts = append(opts, uciperf.WithSupplier(uciperf.ExhaustPositions(fens)))
		} else {
			opts = append(opts, uciperf.WithSupplier(uciperf.CyclePositions(fens)))
		}
	}

	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(stderr, "Error:", err)

		return 2
	}

	log := newLogger(stderr, cfg.verbose)
	cmdline := strings.Join(append([]string{"uciperf"}, args...), " ")

	opts, err := cfg.options(log, cmdline)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)

		return 1
	}

	result, runErr := uciperf.Run(ctx, opts...)
	if result != nil && len(result.Records) > 0 {
		h := report.Header{RunID: result.RunID, EngineName: result.EngineName, CommandLine: result.Command}

		if err := report.WriteText(stdout, h, result.Summary); err != nil {
			log.Error("Failed to write report", "error", err)
		}

		if cfg.csvPath != "" {
			if err := report.AppendCSV(cfg.csvPath, h, result.Summary); err != nil {
				log.Error("Failed to append CSV row", "path", cfg.csvPath, "error", err)
			}
		}
	}

	if runErr != nil {
		fmt.Fprintln(stderr, "Error:", runErr)

		return 1
	}

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
