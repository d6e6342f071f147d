package subprocess

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/uciperf/internal/config"
	"github.com/wagiedev/uciperf/internal/errors"
)

const helperEnv = "UCIPERF_HELPER_ENGINE"

// TestHelperEngine is not a real test. It is re-executed as the engine
// process by the tests below, behaving according to the mode in helperEnv.
func TestHelperEngine(t *testing.T) {
	mode := os.Getenv(helperEnv)
	if mode == "" {
		t.Skip("helper process only")
	}

	switch mode {
	case "echo":
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			switch line := scanner.Text(); line {
			case "quit":
				os.Exit(0)
			case "crlf":
				fmt.Print("crlf line\r\n")
			case "stderr":
				fmt.Fprintln(os.Stderr, "engine warning")
				fmt.Println("echo: stderr")
			default:
				fmt.Println("echo: " + line)
			}
		}
	case "partial":
		fmt.Print("bestmove e2e4")
	case "exit":
	}

	os.Exit(0)
}

func newHelperChannel(t *testing.T, mode string) *Channel {
	t.Helper()

	ch := NewChannel(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Options{
		EnginePath: os.Args[0],
		EngineArgs: []string{"-test.run=^TestHelperEngine$"},
		Env:        map[string]string{helperEnv: mode},
	})

	require.NoError(t, ch.Start(t.Context()))
	t.Cleanup(func() { _ = ch.Close() })

	return ch
}

// mockChunkReader delivers data in controlled chunks to simulate pipe reads.
type mockChunkReader struct {
	chunks [][]byte
	index  int
}

func newMockChunkReader(chunks ...string) *mockChunkReader {
	byteChunks := make([][]byte, len(chunks))
	for i, chunk := range chunks {
		byteChunks[i] = []byte(chunk)
	}

	return &mockChunkReader{chunks: byteChunks}
}

func (r *mockChunkReader) Read(p []byte) (int, error) {
	if r.index >= len(r.chunks) {
		return 0, io.EOF
	}

	chunk := r.chunks[r.index]
	r.index++

	return copy(p, chunk), nil
}

func TestChannel_SendReceive(t *testing.T) {
	ch := newHelperChannel(t, "echo")

	require.Equal(t, os.Args[0], ch.EnginePath())

	require.NoError(t, ch.Send("uci"))

	line, err := ch.ReceiveLine()
	require.NoError(t, err)
	require.Equal(t, "echo: uci", line)

	require.NoError(t, ch.Send("crlf"))

	line, err = ch.ReceiveLine()
	require.NoError(t, err)
	require.Equal(t, "crlf line", line)
}

func TestChannel_StreamClosed(t *testing.T) {
	ch := newHelperChannel(t, "exit")

	_, err := ch.ReceiveLine()
	require.ErrorIs(t, err, errors.ErrStreamClosed)

	// Reading past the end keeps failing the same way.
	_, err = ch.ReceiveLine()
	require.ErrorIs(t, err, errors.ErrStreamClosed)
}

func TestChannel_PartialFinalLine(t *testing.T) {
	ch := newHelperChannel(t, "partial")

	line, err := ch.ReceiveLine()
	require.NoError(t, err)
	require.Equal(t, "bestmove e2e4", line)

	_, err = ch.ReceiveLine()
	require.ErrorIs(t, err, errors.ErrStreamClosed)
}

func TestChannel_SendAfterEngineExit(t *testing.T) {
	ch := newHelperChannel(t, "exit")

	_, err := ch.ReceiveLine()
	require.ErrorIs(t, err, errors.ErrStreamClosed)

	err = ch.Send("isready")

	ioErr, ok := stderrors.AsType[*errors.IOError](err)
	require.True(t, ok, "expected IOError, got %v", err)
	require.Equal(t, "isready", ioErr.Command)
}

func TestChannel_StderrIsDrained(t *testing.T) {
	var (
		mu       sync.Mutex
		captured []string
	)

	ch := NewChannel(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Options{
		EnginePath: os.Args[0],
		EngineArgs: []string{"-test.run=^TestHelperEngine$"},
		Env:        map[string]string{helperEnv: "echo"},
		Stderr: func(line string) {
			mu.Lock()
			defer mu.Unlock()

			captured = append(captured, line)
		},
	})
	require.NoError(t, ch.Start(t.Context()))

	require.NoError(t, ch.Send("stderr"))

	line, err := ch.ReceiveLine()
	require.NoError(t, err)
	require.Equal(t, "echo: stderr", line)

	// Close waits for the drain goroutine, so every stderr line has been seen.
	require.NoError(t, ch.Close())

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, []string{"engine warning"}, captured)
	require.Equal(t, "engine warning", ch.Stderr())
}

func TestChannel_CloseReapsProcess(t *testing.T) {
	ch := newHelperChannel(t, "echo")

	require.NoError(t, ch.Close())
	require.NotNil(t, ch.cmd.ProcessState, "process must be reaped by Close")

	// Close is idempotent.
	require.NoError(t, ch.Close())

	err := ch.Send("uci")
	require.ErrorIs(t, err, errors.ErrChannelNotStarted)
}

func TestChannel_StartEngineNotFound(t *testing.T) {
	ch := NewChannel(slog.Default(), &config.Options{
		EnginePath: "/nonexistent/path/to/engine",
	})

	err := ch.Start(t.Context())

	startErr, ok := stderrors.AsType[*errors.StartError](err)
	require.True(t, ok, "expected StartError, got %v", err)
	require.Equal(t, "/nonexistent/path/to/engine", startErr.Path)

	_, ok = stderrors.AsType[*errors.EngineNotFoundError](err)
	require.True(t, ok)
}

func TestChannel_BeforeStart(t *testing.T) {
	ch := NewChannel(slog.Default(), &config.Options{})

	require.NoError(t, ch.Close(), "close on unstarted channel should not fail")

	ch = NewChannel(slog.Default(), &config.Options{})

	err := ch.Send("uci")
	require.ErrorIs(t, err, errors.ErrChannelNotStarted)

	_, err = ch.ReceiveLine()
	require.ErrorIs(t, err, errors.ErrStreamClosed)
}

// TestReceiveLine_SplitAcrossReads tests line framing when lines are split
// across pipe reads and several lines arrive in one read.
func TestReceiveLine_SplitAcrossReads(t *testing.T) {
	ch := &Channel{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdout: bufio.NewReader(newMockChunkReader(
			"info dep",
			"th 1 nodes 20\ninfo depth 2\r\nbest",
			"move e2e4 ponder e7e5\n",
		)),
	}

	want := []string{"info depth 1 nodes 20", "info depth 2", "bestmove e2e4 ponder e7e5"}

	for _, w := range want {
		line, err := ch.ReceiveLine()
		require.NoError(t, err)
		require.Equal(t, w, line)
	}

	_, err := ch.ReceiveLine()
	require.ErrorIs(t, err, errors.ErrStreamClosed)
}

// TestReceiveLine_EmptyLines tests that blank lines are delivered as empty strings.
func TestReceiveLine_EmptyLines(t *testing.T) {
	ch := &Channel{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdout: bufio.NewReader(newMockChunkReader("\n\nuciok\n")),
	}

	for _, w := range []string{"", "", "uciok"} {
		line, err := ch.ReceiveLine()
		require.NoError(t, err)
		require.Equal(t, w, line)
	}
}
