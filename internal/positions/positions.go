// Package positions supplies the FEN positions submitted to the engine.
//
// A Supplier hands out one position per call to Next. Two contracts exist:
// a cycling supplier wraps around to the first position, an exhausting
// supplier reports false once every position has been handed out. Callers
// must handle both and stop as soon as Next reports false.
package positions

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/notnil/chess"
)

//go:embed fens.json
var defaultFENs []byte

// Supplier provides an ordered sequence of positions.
type Supplier interface {
	// Next returns the next position, or false when none is left.
	Next() (string, bool)
}

// fileFormat is the JSON document layout for position lists.
type fileFormat struct {
	FENs []string `json:"fens"`
}

// Cycle hands out positions in order and wraps to the start after the last.
type Cycle struct {
	fens  []string
	index int
}

// Compile-time verification that both suppliers implement Supplier.
var (
	_ Supplier = (*Cycle)(nil)
	_ Supplier = (*Exhausting)(nil)
)

// NewCycle returns a cycling supplier over fens.
func NewCycle(fens []string) *Cycle {
	return &Cycle{fens: fens}
}

// Next implements Supplier.
func (c *Cycle) Next() (string, bool) {
	if len(c.fens) == 0 {
		return "", false
	}

	fen := c.fens[c.index]
	c.index = (c.index + 1) % len(c.fens)

	return fen, true
}

// Exhausting hands out every position once.
type Exhausting struct {
	fens  []string
	index int
}

// NewExhausting returns a supplier that stops after the last position.
func NewExhausting(fens []string) *Exhausting {
	return &Exhausting{fens: fens}
}

// Next implements Supplier.
func (e *Exhausting) Next() (string, bool) {
	if e.index >= len(e.fens) {
		return "", false
	}

	fen := e.fens[e.index]
	e.index++

	return fen, true
}

// Default returns the built-in benchmark positions.
func Default() []string {
	fens, err := Parse(defaultFENs)
	if err != nil {
		panic(fmt.Sprintf("positions: embedded list is invalid: %v", err))
	}

	return fens
}

// LoadFile reads a position list from path. See Parse for the accepted formats.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	fens, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return fens, nil
}

// Parse decodes a position list. A document starting with '{' is read as
// {"fens": [...]}; anything else is read as one FEN per line, skipping blank
// lines and lines starting with '#'.
func Parse(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc fileFormat
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}

		return doc.FENs, nil
	}

	var fens []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fens = append(fens, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}

	return fens, nil
}

// Validate returns the positions that decode as legal FEN, in order.
// Every rejected position is logged at warn level.
func Validate(log *slog.Logger, fens []string) []string {
	valid := make([]string, 0, len(fens))

	for i, fen := range fens {
		if _, err := chess.FEN(fen); err != nil {
			log.Warn("Skipping invalid FEN", "index", i, "fen", fen, "error", err)

			continue
		}

		valid = append(valid, fen)
	}

	return valid
}
