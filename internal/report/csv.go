package report

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/wagiedev/uciperf/internal/stats"
)

// CSVMateBuckets is the number of mate-in-N columns in every CSV row.
const CSVMateBuckets = 20

// CSVHeader returns the column names of the accumulation file.
func CSVHeader() []string {
	header := []string{
		"run_id",
		"engine_name",
		"cmdline",
		"positions_analyzed",
		"avg_ebf",
		"avg_nps",
		"avg_nps_m",
		"avg_time_ms",
		"avg_nodes",
		"avg_depth",
		"node_stddev",
		"max_nodes",
		"min_nodes",
		"total_mates",
		"peak_nps",
	}

	for n := 1; n <= CSVMateBuckets; n++ {
		header = append(header, fmt.Sprintf("mates in %d", n))
	}

	return header
}

// CSVRow returns the accumulation file row for one run.
func CSVRow(h Header, s stats.Summary) []string {
	row := []string{
		h.RunID,
		h.EngineName,
		h.CommandLine,
		strconv.Itoa(s.Count),
		strconv.FormatFloat(s.AvgEBF, 'f', 4, 64),
		strconv.FormatFloat(s.AvgNPS, 'f', 2, 64),
		strconv.FormatFloat(s.AvgNPSM, 'f', 2, 64),
		strconv.FormatFloat(s.AvgTimeMS, 'f', 2, 64),
		strconv.FormatFloat(s.AvgNodes, 'f', 2, 64),
		strconv.FormatFloat(s.AvgDepth, 'f', 2, 64),
		strconv.FormatFloat(s.NodeStdDev, 'f', 0, 64),
		strconv.FormatUint(s.MaxNodes, 10),
		strconv.FormatUint(s.MinNodes, 10),
		strconv.FormatUint(s.TotalMates, 10),
		strconv.FormatUint(s.PeakNPS, 10),
	}

	for n := 1; n <= CSVMateBuckets; n++ {
		row = append(row, strconv.FormatUint(s.MatesIn(n), 10))
	}

	return row
}

// AppendCSV appends the row for s to the file at path.
//
// The header row is written only when the file does not exist yet. A
// Summary without records writes nothing.
func AppendCSV(path string, h Header, s stats.Summary) error {
	if s.Count == 0 {
		return nil
	}

	_, err := os.Stat(path)

	exists := err == nil
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	if !exists {
		if err := w.Write(CSVHeader()); err != nil {
			_ = f.Close()

			return fmt.Errorf("write header: %w", err)
		}
	}

	if err := w.Write(CSVRow(h, s)); err != nil {
		_ = f.Close()

		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()

	if err := w.Error(); err != nil {
		_ = f.Close()

		return fmt.Errorf("flush %s: %w", path, err)
	}

	return f.Close()
}
