package uciperf

import "github.com/wagiedev/uciperf/internal/positions"

// DefaultPositions returns the built-in benchmark positions.
func DefaultPositions() []string {
	return positions.Default()
}

// LoadPositions reads positions from a file holding either a JSON document
// {"fens": [...]} or one FEN per line.
func LoadPositions(path string) ([]string, error) {
	return positions.LoadFile(path)
}

// CyclePositions returns a Supplier that wraps around after the last position.
func CyclePositions(fens []string) Supplier {
	return positions.NewCycle(fens)
}

// ExhaustPositions returns a Supplier that stops after the last position.
func ExhaustPositions(fens []string) Supplier {
	return positions.NewExhausting(fens)
}
