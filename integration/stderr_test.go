//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/uciperf"
)

// TestStderrCallback_DoesNotBlockRun tests that a run completes with a
// stderr callback installed, whether or not the engine writes to stderr.
func TestStderrCallback_DoesNotBlockRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var (
		mu    sync.Mutex
		lines []string
	)

	result, err := uciperf.Run(ctx, append(engineOptions(),
		uciperf.WithPositions(1),
		uciperf.WithDepth(4),
		uciperf.WithStderr(func(line string) {
			mu.Lock()
			defer mu.Unlock()

			lines = append(lines, line)
		}),
	)...)
	if err != nil {
		skipIfEngineNotInstalled(t, err)
		t.Fatalf("Run failed: %v", err)
	}

	require.Len(t, result.Records, 1)

	mu.Lock()
	defer mu.Unlock()

	t.Logf("Received %d stderr lines", len(lines))
}
