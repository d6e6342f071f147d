// Command uciperf-mcp serves UCI engine benchmarking as an MCP tool over stdio.
//
// Register it with an MCP client, for example:
//
//	{"mcpServers": {"uciperf": {"command": "uciperf-mcp"}}}
//
// Logs go to stderr; stdout carries the MCP protocol.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/uciperf"
	"github.com/wagiedev/uciperf/internal/mcpserver"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := mcpserver.New(log, "uciperf", version)
	server.AddBenchmarkTool(uciperf.Run)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error("MCP server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
