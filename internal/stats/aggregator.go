package stats

import (
	"sync"

	"github.com/wagiedev/uciperf/internal/record"
)

// Aggregator accumulates the records of a run in arrival order.
//
// Aggregator is safe for concurrent use.
type Aggregator struct {
	mu      sync.Mutex
	records []record.Record
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends r.
func (a *Aggregator) Add(r record.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = append(a.records, r)
}

// Len returns the number of records added so far.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.records)
}

// Records returns a copy of the records in insertion order.
func (a *Aggregator) Records() []record.Record {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]record.Record, len(a.records))
	copy(out, a.records)

	return out
}

// Summary computes statistics over every record added so far.
func (a *Aggregator) Summary() Summary {
	return Summarize(a.Records())
}
