package uciperf

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_AnalyzeAgainstProcess(t *testing.T) {
	client := NewClient()

	require.NoError(t, client.Start(t.Context(), append(fakeEngine("ok"), WithDepth(4))...))

	defer client.Close()

	require.Equal(t, "FakeEngine 1.0", client.EngineName())

	fens := DefaultPositions()

	first, err := client.Analyze(fens[0])
	require.NoError(t, err)
	require.Equal(t, fens[0], first.Input)
	require.Equal(t, "mate 1", first.Score)

	records, err := client.AnalyzeBatch(CyclePositions(fens[1:3]), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Len(t, client.Records(), 3)
	require.Equal(t, uint64(3), client.Summary().TotalMates)
}

func TestWithClient(t *testing.T) {
	var name string

	err := WithClient(t.Context(), func(c Client) error {
		name = c.EngineName()

		_, err := c.Analyze(DefaultPositions()[0])

		return err
	}, fakeEngine("ok")...)
	require.NoError(t, err)
	require.Equal(t, "FakeEngine 1.0", name)
}

func TestWithClient_CallbackError(t *testing.T) {
	boom := errors.New("boom")

	err := WithClient(t.Context(), func(Client) error { return boom }, fakeEngine("ok")...)
	require.ErrorIs(t, err, boom)
}

func TestWithClient_StartFailure(t *testing.T) {
	called := false

	err := WithClient(t.Context(), func(Client) error {
		called = true

		return nil
	}, WithEnginePath("/nonexistent/engine"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to start client")
	require.False(t, called)
}

func TestWithClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := WithClient(ctx, func(Client) error { return nil }, fakeEngine("ok")...)
	require.ErrorIs(t, err, context.Canceled)
}
