// Package mcpserver exposes engine benchmarking as an MCP tool.
//
// The server wraps the official MCP SDK server. Tools are registered with
// the SDK server, which serves them over a transport such as stdio, and
// with a local registry so they can also be invoked directly:
//
//	server := mcpserver.New(log, "uciperf", version)
//	server.AddBenchmarkTool(uciperf.Run)
//
//	// Serve over stdio
//	err := server.Run(ctx, &mcp.StdioTransport{})
//
//	// Or call a tool in-process
//	result, err := server.CallTool(ctx, "run_benchmark", map[string]any{
//	    "engine_path": "/usr/games/stockfish",
//	})
package mcpserver
