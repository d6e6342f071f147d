// Package report renders benchmark summaries for people and spreadsheets.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wagiedev/uciperf/internal/stats"
)

const rule = "------------------------------------"

// Header identifies the run a Summary belongs to.
type Header struct {
	RunID       string
	EngineName  string
	CommandLine string
}

// WriteText writes the console report for s to w.
//
// Mate-in-N lines are listed from 1 through the largest observed distance,
// with at least one line.
func WriteText(w io.Writer, h Header, s stats.Summary) error {
	var b strings.Builder

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Command line: %s\n", h.CommandLine)
	fmt.Fprintf(&b, "Analysis for engine: %s\n", h.EngineName)

	if h.RunID != "" {
		fmt.Fprintf(&b, "Run: %s\n", h.RunID)
	}

	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, "General Efficiency:")
	fmt.Fprintf(&b, "  Avg EBF:         %-6.2f (Target: < 2.2)\n", s.AvgEBF)
	fmt.Fprintf(&b, "  Avg NPS:         %.2fM   (Machine Dependent)\n", s.AvgNPSM)
	fmt.Fprintf(&b, "  Avg Time:        %.1fms  (Machine Dependent)\n", s.AvgTimeMS)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Search Robustness:")
	fmt.Fprintf(&b, "  Node StdDev:     %-7.0f (Lower = more stable search)\n", s.NodeStdDev)
	fmt.Fprintf(&b, "  Max Node Outlier: %-7d (The \"hardest\" position found)\n", s.MaxNodes)
	fmt.Fprintf(&b, "  Min Node Speed:  %-7d (The \"easiest\" position found)\n", s.MinNodes)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Tactical Accuracy:")
	fmt.Fprintf(&b, "  Mates Found:     %d       (Across %d positions)\n", s.TotalMates, s.Count)

	fmt.Fprintln(&b, "\nEngine Search Statistics Summary:")
	fmt.Fprintf(&b, "  Positions analyzed: %d\n", s.Count)
	fmt.Fprintf(&b, "  Average nodes per search: %.2f\n", s.AvgNodes)
	fmt.Fprintf(&b, "  Average depth per search: %.2f\n", s.AvgDepth)
	fmt.Fprintf(&b, "  Average effective branching factor: %.4f\n", s.AvgEBF)
	fmt.Fprintf(&b, "  Average NPS: %.2f\n", s.AvgNPS)
	fmt.Fprintf(&b, "  Average time per search (ms): %.2f\n", s.AvgTimeMS)
	fmt.Fprintf(&b, "  Peak NPS: %d\n", s.PeakNPS)
	fmt.Fprintln(&b, "  Mate-in-Ns found:")

	for n := 1; n <= max(s.MaxMateDistance(), 1); n++ {
		fmt.Fprintf(&b, "    Mate in %-2d: %d\n", n, s.MatesIn(n))
	}

	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())

	return err
}
