package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestSearchLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "default depth", opts: Options{}, want: "go depth 10"},
		{name: "explicit depth", opts: Options{Depth: intPtr(14)}, want: "go depth 14"},
		{name: "nodes", opts: Options{Nodes: intPtr(10000)}, want: "go nodes 10000"},
		{
			name: "nodes take precedence over depth",
			opts: Options{Nodes: intPtr(5000), Depth: intPtr(7)},
			want: "go nodes 5000",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, tc.opts.SearchLimit().GoCommand())
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	opts := &Options{}

	require.Equal(t, DefaultPositions, opts.PositionCount())
	require.Equal(t, DefaultThreads, opts.ThreadCount())
	require.Equal(t, ThreadsOnce, opts.Policy())

	opts = &Options{Positions: 3, Threads: 8, ThreadsPolicy: ThreadsPerExchange}

	require.Equal(t, 3, opts.PositionCount())
	require.Equal(t, 8, opts.ThreadCount())
	require.Equal(t, ThreadsPerExchange, opts.Policy())
}

func TestLimitString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "nodes=100", Limit{Kind: LimitNodes, Value: 100}.String())
}

func TestBuildEnvironment(t *testing.T) {
	t.Parallel()

	opts := &Options{Env: map[string]string{"EVALFILE": "nn.bin"}}

	env := opts.BuildEnvironment([]string{"PATH=/usr/bin"})
	require.Equal(t, []string{"PATH=/usr/bin", "EVALFILE=nn.bin"}, env)
}
