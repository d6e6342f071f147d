package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/uciperf/internal/record"
)

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)

	require.Equal(t, Summary{}, s)
	require.Zero(t, s.MaxMateDistance())
	require.Zero(t, s.MatesIn(1))
}

func TestSummarize_SingleMate(t *testing.T) {
	t.Parallel()

	s := Summarize([]record.Record{{
		Input:    "startpos",
		Nodes:    1000,
		TimeMS:   2,
		NPS:      500000,
		Depth:    5,
		Score:    "mate 2",
		BestMove: "e2e4",
	}})

	require.Equal(t, 1, s.Count)
	require.InDelta(t, 3.98, s.AvgEBF, 0.01)
	require.InDelta(t, math.Pow(1000, 0.2), s.AvgEBF, 1e-12)
	require.Zero(t, s.NodeStdDev)
	require.Equal(t, []MateBucket{{Distance: 2, Count: 1}}, s.Mates)
	require.Equal(t, uint64(1), s.TotalMates)
	require.Equal(t, uint64(1000), s.MinNodes)
	require.Equal(t, uint64(1000), s.MaxNodes)
	require.Equal(t, uint64(500000), s.PeakNPS)
	require.InDelta(t, 0.5, s.AvgNPSM, 1e-12)
}

func TestSummarize_SampleStdDev(t *testing.T) {
	t.Parallel()

	s := Summarize([]record.Record{
		{Nodes: 100, Depth: 4, NPS: 10, TimeMS: 10},
		{Nodes: 300, Depth: 4, NPS: 30, TimeMS: 30},
	})

	require.InDelta(t, 200.0, s.AvgNodes, 1e-12)
	require.InDelta(t, math.Sqrt(20000), s.NodeStdDev, 1e-9)
	require.InDelta(t, 141.42, s.NodeStdDev, 0.01)
	require.InDelta(t, 4.0, s.AvgDepth, 1e-12)
	require.InDelta(t, 20.0, s.AvgNPS, 1e-12)
	require.InDelta(t, 20.0, s.AvgTimeMS, 1e-12)
	require.Equal(t, uint64(100), s.MinNodes)
	require.Equal(t, uint64(300), s.MaxNodes)
	require.Equal(t, uint64(30), s.PeakNPS)
}

func TestSummarize_EBFExcludesZeroes(t *testing.T) {
	t.Parallel()

	s := Summarize([]record.Record{
		{Nodes: 16, Depth: 2},
		{Nodes: 0, Depth: 7},
		{Nodes: 500, Depth: 0},
	})

	require.InDelta(t, 4.0, s.AvgEBF, 1e-12, "only the first record contributes")

	s = Summarize([]record.Record{{Nodes: 0, Depth: 3}, {Nodes: 9, Depth: 0}})
	require.Zero(t, s.AvgEBF)
}

func TestSummarize_MateHistogram(t *testing.T) {
	t.Parallel()

	s := Summarize([]record.Record{
		{Score: "mate -3"},
		{Score: "mate 3"},
		{Score: "cp 34"},
		{Score: "mate 1"},
		{Score: "mate x"},
		{Score: ""},
	})

	require.Equal(t, []MateBucket{{Distance: 1, Count: 1}, {Distance: 3, Count: 2}}, s.Mates)
	require.Equal(t, uint64(3), s.TotalMates)
	require.Equal(t, uint64(2), s.MatesIn(3))
	require.Zero(t, s.MatesIn(2))
	require.Equal(t, 3, s.MaxMateDistance())
}

func TestSummarize_CentipawnScoreLeavesHistogramAlone(t *testing.T) {
	t.Parallel()

	s := Summarize([]record.Record{{Score: "cp 34", Nodes: 10, Depth: 1}})

	require.Empty(t, s.Mates)
	require.Zero(t, s.TotalMates)
}

func TestMateDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score string
		want  int
		ok    bool
	}{
		{score: "mate 2", want: 2, ok: true},
		{score: "mate -7", want: 7, ok: true},
		{score: "lowerbound mate 4", want: 4, ok: true},
		{score: "mate 5 extra", want: 5, ok: true},
		{score: "cp -120", ok: false},
		{score: "mate", ok: false},
		{score: "mate ", ok: false},
		{score: "mate abc", ok: false},
		{score: "mate 0", ok: false},
		{score: "mate 99999999999", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.score, func(t *testing.T) {
			t.Parallel()

			got, ok := MateDistance(tc.score)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAggregator(t *testing.T) {
	t.Parallel()

	agg := NewAggregator()
	require.Equal(t, Summary{}, agg.Summary())

	agg.Add(record.Record{Input: "a", Nodes: 100, Depth: 4})
	agg.Add(record.Record{Input: "b", Nodes: 300, Depth: 4, Score: "mate 3"})

	require.Equal(t, 2, agg.Len())

	records := agg.Records()
	require.Equal(t, []string{"a", "b"}, []string{records[0].Input, records[1].Input})

	// The returned slice is a copy.
	records[0].Nodes = 1
	require.Equal(t, uint64(100), agg.Records()[0].Nodes)

	first := agg.Summary()
	require.Equal(t, first, agg.Summary(), "summary must be recomputable")
	require.Equal(t, Summarize(agg.Records()), first)

	agg.Add(record.Record{Input: "c", Nodes: 200, Depth: 4})
	require.Equal(t, 3, agg.Summary().Count)
	require.Equal(t, 2, first.Count)
}
