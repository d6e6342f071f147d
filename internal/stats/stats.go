// Package stats folds exchange records into summary statistics.
//
// A Summary is always recomputed from the full record sequence and never
// updated incrementally, so computing it twice from the same records yields
// identical values.
package stats

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/wagiedev/uciperf/internal/record"
)

// mateToken introduces a forced-mate score in score text.
const mateToken = "mate "

// MateBucket counts the records whose score announced mate at one distance.
type MateBucket struct {
	Distance int    `json:"distance"`
	Count    uint64 `json:"count"`
}

// Summary holds the statistics derived from a record sequence.
//
// Means, deviation and EBF are zero for an empty sequence; so are MinNodes
// and MaxNodes, which are only meaningful when Count > 0.
type Summary struct {
	Count      int          `json:"positions_analyzed"`
	AvgNodes   float64      `json:"avg_nodes"`
	AvgTimeMS  float64      `json:"avg_time_ms"`
	AvgDepth   float64      `json:"avg_depth"`
	AvgNPS     float64      `json:"avg_nps"`
	AvgNPSM    float64      `json:"avg_nps_m"`
	NodeStdDev float64      `json:"node_stddev"`
	MinNodes   uint64       `json:"min_nodes"`
	MaxNodes   uint64       `json:"max_nodes"`
	PeakNPS    uint64       `json:"peak_nps"`
	AvgEBF     float64      `json:"avg_ebf"`
	TotalMates uint64       `json:"total_mates"`
	Mates      []MateBucket `json:"mates"`
}

// MatesIn returns the number of records that announced mate in n.
func (s Summary) MatesIn(n int) uint64 {
	for _, b := range s.Mates {
		if b.Distance == n {
			return b.Count
		}
	}

	return 0
}

// MaxMateDistance returns the largest observed mate distance, or 0.
func (s Summary) MaxMateDistance() int {
	if len(s.Mates) == 0 {
		return 0
	}

	return s.Mates[len(s.Mates)-1].Distance
}

// Summarize derives a Summary from records.
func Summarize(records []record.Record) Summary {
	s := Summary{Count: len(records)}
	if s.Count == 0 {
		return s
	}

	var (
		totalNodes, totalTime, totalNPS, totalDepth float64
		ebfSum                                      float64
		ebfCount                                    int
	)

	mates := make(map[int]uint64)
	s.MinNodes = math.MaxUint64

	for _, r := range records {
		totalNodes += float64(r.Nodes)
		totalTime += float64(r.TimeMS)
		totalNPS += float64(r.NPS)
		totalDepth += float64(r.Depth)

		s.MinNodes = min(s.MinNodes, r.Nodes)
		s.MaxNodes = max(s.MaxNodes, r.Nodes)
		s.PeakNPS = max(s.PeakNPS, r.NPS)

		if ebf, ok := EBF(r); ok {
			ebfSum += ebf
			ebfCount++
		}

		if d, ok := MateDistance(r.Score); ok {
			mates[d]++
		}
	}

	count := float64(s.Count)
	s.AvgNodes = totalNodes / count
	s.AvgTimeMS = totalTime / count
	s.AvgNPS = totalNPS / count
	s.AvgDepth = totalDepth / count
	s.AvgNPSM = s.AvgNPS / 1_000_000
	s.NodeStdDev = nodeStdDev(records, s.AvgNodes)

	if ebfCount > 0 {
		s.AvgEBF = ebfSum / float64(ebfCount)
	}

	s.Mates = make([]MateBucket, 0, len(mates))
	for _, d := range slices.Sorted(maps.Keys(mates)) {
		s.Mates = append(s.Mates, MateBucket{Distance: d, Count: mates[d]})
		s.TotalMates += mates[d]
	}

	return s
}

// nodeStdDev is the Bessel-corrected sample standard deviation of node
// counts. It is zero for fewer than two records.
func nodeStdDev(records []record.Record, mean float64) float64 {
	if len(records) < 2 {
		return 0
	}

	var sq float64

	for _, r := range records {
		d := float64(r.Nodes) - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(records)-1))
}

// EBF returns the effective branching factor nodes^(1/depth) of r.
// Records with zero nodes or zero depth do not contribute.
func EBF(r record.Record) (float64, bool) {
	if r.Nodes == 0 || r.Depth == 0 {
		return 0, false
	}

	return math.Pow(float64(r.Nodes), 1/float64(r.Depth)), true
}

// MateDistance extracts the mate distance from score text.
//
// It looks for the first "mate " token and parses the whitespace-delimited
// token after it as a signed integer; the sign is discarded. Score text
// without a parsable distance, or announcing mate in 0, reports false.
func MateDistance(score string) (int, bool) {
	idx := strings.Index(score, mateToken)
	if idx < 0 {
		return 0, false
	}

	fields := strings.Fields(score[idx+len(mateToken):])
	if len(fields) == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}

	if n < 0 {
		n = -n
	}

	return int(n), true
}
