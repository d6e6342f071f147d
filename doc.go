// Package uciperf benchmarks chess engines that speak the UCI protocol.
//
// It drives an engine executable through the UCI handshake and a batch of
// fixed-budget searches, collects the telemetry each search reports and
// derives summary statistics: mean nodes, time, depth and speed, the node
// count spread, the effective branching factor and a histogram of announced
// mate distances.
//
// # Basic Usage
//
//	ctx := context.Background()
//	result, err := uciperf.Run(ctx,
//	    uciperf.WithEnginePath("/usr/games/stockfish"),
//	    uciperf.WithNodes(10000),
//	    uciperf.WithPositions(10),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s: EBF %.2f over %d positions\n",
//	    result.EngineName, result.Summary.AvgEBF, result.Summary.Count)
//
// # Positions
//
// By default the built-in benchmark positions are cycled. Supply your own
// with WithSupplier, either cycling or exhausting:
//
//	fens, err := uciperf.LoadPositions("suite.txt")
//	// ...
//	result, err := uciperf.Run(ctx,
//	    uciperf.WithSupplier(uciperf.ExhaustPositions(fens)),
//	    uciperf.WithPositions(len(fens)),
//	)
//
// # Error Handling
//
// Engine failures are reported as typed errors:
//
//	result, err := uciperf.Run(ctx, opts...)
//	if closed, ok := errors.AsType[*uciperf.StreamClosedError](err); ok {
//	    fmt.Printf("engine died while analyzing %s\n", closed.Input)
//	    // result still holds the records completed before the failure
//	}
//
// # Engine Protocol
//
// Exchanges run strictly one at a time. Each sends "position fen" followed
// by "go nodes N" or "go depth N" and reads "info" lines until "bestmove".
// The last value reported for each telemetry key wins.
package uciperf
