package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/uciperf"
)

// BenchmarkToolName is the name of the benchmark tool.
const BenchmarkToolName = "run_benchmark"

// RunFunc runs a benchmark. uciperf.Run is the production implementation.
type RunFunc func(ctx context.Context, opts ...uciperf.Option) (*uciperf.Result, error)

// BenchmarkArgs are the inputs of the benchmark tool.
type BenchmarkArgs struct {
	EnginePath string `json:"engine_path"`
	Positions  *int   `json:"positions,omitempty"`
	Nodes      *int   `json:"nodes,omitempty"`
	Depth      *int   `json:"depth,omitempty"`
	Threads    *int   `json:"threads,omitempty"`
}

// Options converts the arguments into run options.
func (a *BenchmarkArgs) Options() []uciperf.Option {
	opts := []uciperf.Option{uciperf.WithEnginePath(a.EnginePath)}

	if a.Positions != nil {
		opts = append(opts, uciperf.WithPositions(*a.Positions))
	}

	if a.Nodes != nil && *a.Nodes > 0 {
		opts = append(opts, uciperf.WithNodes(*a.Nodes))
	}

	if a.Depth != nil && *a.Depth > 0 {
		opts = append(opts, uciperf.WithDepth(*a.Depth))
	}

	if a.Threads != nil {
		opts = append(opts, uciperf.WithThreads(*a.Threads))
	}

	return opts
}

func benchmarkTool() *mcp.Tool {
	return &mcp.Tool{
		Name: BenchmarkToolName,
		Description: "Benchmark a UCI chess engine: run fixed-budget searches over " +
			"benchmark positions and report node counts, speed, depth, effective " +
			"branching factor and mates found.",
		InputSchema: ObjectSchema(map[string]Property{
			"engine_path": {Type: "string", Description: "Path to the engine executable", Required: true},
			"positions":   {Type: "int", Description: "Number of positions to analyze (default 10)"},
			"nodes":       {Type: "int", Description: "Node budget per search"},
			"depth":       {Type: "int", Description: "Depth budget per search, used without a node budget (default 10)"},
			"threads":     {Type: "int", Description: "Engine Threads option (default 1)"},
		}),
	}
}

// AddBenchmarkTool registers the benchmark tool backed by run.
//
// The tool result is the run's Result as JSON. A failed run is an error
// result whose text carries the error and, when exchanges completed before
// the failure, the partial Result.
func (s *Server) AddBenchmarkTool(run RunFunc) {
	s.AddTool(benchmarkTool(), func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args BenchmarkArgs
		if err := ParseArguments(req, &args); err != nil {
			return ErrorResult(err.Error()), nil
		}

		if args.EnginePath == "" {
			return ErrorResult("engine_path is required"), nil
		}

		opts := append(args.Options(), uciperf.WithLogger(s.log))

		s.log.Info("Running benchmark", "engine_path", args.EnginePath)

		result, runErr := run(ctx, opts...)

		var body []byte
		if result != nil {
			var err error

			body, err = json.MarshalIndent(result, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshal result: %w", err)
			}
		}

		if runErr != nil {
			s.log.Error("Benchmark failed", "engine_path", args.EnginePath, "error", runErr)

			msg := "benchmark failed: " + runErr.Error()
			if body != nil {
				msg += "\n" + string(body)
			}

			return ErrorResult(msg), nil
		}

		return TextResult(string(body)), nil
	})
}
