// Package record defines the outcome of one engine exchange.
package record

// Record is the immutable outcome of one completed exchange.
//
// Exactly one Record exists per request whose terminal bestmove line was
// read; requests that fail before it produce none.
type Record struct {
	// Input is the position submitted with "position fen".
	Input string `json:"fen"`
	// Nodes is the last reported node count.
	Nodes uint64 `json:"nodes"`
	// TimeMS is the last reported search time in milliseconds.
	TimeMS uint64 `json:"time_ms"`
	// NPS is the last reported nodes per second, as reported by the engine.
	NPS uint64 `json:"nps"`
	// Depth is the last reported depth.
	Depth uint32 `json:"depth"`
	// Score is the two tokens following the last "score" key, e.g. "cp 34"
	// or "mate -3". Empty when the engine never reported a score.
	Score string `json:"score"`
	// BestMove is the second token of the bestmove line, empty if absent.
	BestMove string `json:"bestmove"`
}
