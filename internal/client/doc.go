// Package client implements the interactive Client for benchmarking one engine.
//
// A Client owns one engine process for its whole lifetime. Start spawns the
// engine and performs the UCI handshake; Analyze and AnalyzeBatch run
// exchanges strictly one at a time and collect their records, from which
// Summary derives statistics on demand. Close terminates the engine.
//
// Clients are single-use. After Close, create a new one with New.
package client
