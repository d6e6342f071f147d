//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/uciperf"
)

// TestClient_CloseAfterAnalyze tests that a client can analyze, close and
// still report its records.
func TestClient_CloseAfterAnalyze(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := uciperf.NewClient()

	err := client.Start(ctx, append(engineOptions(), uciperf.WithDepth(5))...)
	if err != nil {
		skipIfEngineNotInstalled(t, err)
		t.Fatalf("Start failed: %v", err)
	}

	_, err = client.Analyze(uciperf.DefaultPositions()[0])
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.Len(t, client.Records(), 1)

	_, err = client.Analyze(uciperf.DefaultPositions()[1])
	require.ErrorIs(t, err, uciperf.ErrClientClosed)
}

// TestClient_ContextCancelKillsEngine tests that canceling the start context
// terminates the engine, so a later exchange fails instead of hanging.
func TestClient_ContextCancelKillsEngine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	client := uciperf.NewClient()

	err := client.Start(ctx, append(engineOptions(), uciperf.WithDepth(5))...)
	if err != nil {
		cancel()
		skipIfEngineNotInstalled(t, err)
		t.Fatalf("Start failed: %v", err)
	}

	defer client.Close()

	cancel()

	done := make(chan error, 1)

	// The kill is asynchronous; an exchange already in flight may still finish.
	go func() {
		for {
			if _, err := client.Analyze(uciperf.DefaultPositions()[0]); err != nil {
				done <- err

				return
			}
		}
	}()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("exchange did not fail after the engine was killed")
	}
}
