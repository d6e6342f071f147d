//go:build integration

// Package integration runs uciperf against a real UCI engine found on the
// machine. Tests skip when no engine is installed.
//
//	go test -tags integration ./integration/...
package integration

import (
	"errors"
	"os"
	"testing"

	"github.com/wagiedev/uciperf"
)

// enginePathEnv overrides engine discovery.
const enginePathEnv = "UCIPERF_ENGINE"

// engineOptions returns the options selecting the engine under test.
func engineOptions() []uciperf.Option {
	if path := os.Getenv(enginePathEnv); path != "" {
		return []uciperf.Option{uciperf.WithEnginePath(path)}
	}

	return nil
}

// skipIfEngineNotInstalled skips the test if the error indicates no engine was found.
func skipIfEngineNotInstalled(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*uciperf.EngineNotFoundError](err); ok {
		t.Skip("no UCI engine installed")
	}
}
