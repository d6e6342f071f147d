package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/uciperf/internal/config"
	"github.com/wagiedev/uciperf/internal/discovery"
	"github.com/wagiedev/uciperf/internal/errors"
)

const (
	// maxStderrLines is the number of trailing stderr lines kept for error reporting.
	// Stderr reading continues indefinitely (callback receives all lines).
	maxStderrLines = 20
)

// Channel implements config.Channel by spawning a UCI engine subprocess.
type Channel struct {
	log            *slog.Logger
	options        *config.Options
	enginePath     string
	cmd            *exec.Cmd
	stdin          io.WriteCloser
	stdout         *bufio.Reader
	stderr         io.ReadCloser
	stderrCallback func(string)
	drain          *errgroup.Group
	stderrMu       sync.Mutex
	stderrTail     []string
	mu             sync.Mutex // Protects lifecycle fields
	closed         bool
}

// Compile-time verification that Channel implements the Channel interface.
var _ config.Channel = (*Channel)(nil)

// NewChannel creates a channel for the engine described by options.
//
// Engine discovery is deferred to Start(). Start() returns a StartError
// wrapping EngineNotFoundError if the engine executable cannot be located.
func NewChannel(log *slog.Logger, options *config.Options) *Channel {
	return &Channel{
		log:            log.With("component", "engine_channel"),
		options:        options,
		stderrCallback: options.Stderr,
	}
}

// Start spawns the engine process.
//
// The process is bound to ctx: it is killed if ctx is done before Close is
// called. Returns a StartError if the engine cannot be located, a pipe cannot
// be created or the process fails to spawn.
func (c *Channel) Start(ctx context.Context) error {
	c.log.Info("Starting engine subprocess")

	enginePath, err := discovery.NewDiscoverer(&discovery.Config{
		EnginePath: c.options.EnginePath,
		Logger:     c.log,
	}).Discover()
	if err != nil {
		return &errors.StartError{Path: c.options.EnginePath, Err: err}
	}

	c.enginePath = enginePath

	//nolint:gosec // G204: launching the configured engine is the point of this package
	cmd := exec.CommandContext(ctx, enginePath, c.options.EngineArgs...)
	cmd.Env = c.options.BuildEnvironment(os.Environ())

	stdin, err := cmd.StdinPipe()
	if err != nil {
		c.log.Error("Failed to create stdin pipe", "error", err)

		return &errors.StartError{Path: enginePath, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		c.log.Error("Failed to create stdout pipe", "error", err)

		return &errors.StartError{Path: enginePath, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		c.log.Error("Failed to create stderr pipe", "error", err)

		return &errors.StartError{Path: enginePath, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		c.log.Error("Failed to start engine process", "error", err)

		return &errors.StartError{Path: enginePath, Err: fmt.Errorf("start process: %w", err)}
	}

	c.mu.Lock()
	c.cmd = cmd
	c.stdin = stdin
	c.stdout = bufio.NewReader(stdout)
	c.stderr = stderr
	c.drain = new(errgroup.Group)
	c.drain.Go(c.drainStderr)
	c.mu.Unlock()

	c.log.Info("Engine subprocess started", "engine_path", enginePath, "pid", cmd.Process.Pid)

	return nil
}

// drainStderr forwards engine stderr to the log and the callback, keeping
// the last maxStderrLines lines for error reporting. It returns once the
// engine closes stderr.
func (c *Channel) drainStderr() error {
	scanner := bufio.NewScanner(c.stderr)
	for scanner.Scan() {
		line := scanner.Text()

		c.log.Debug("Engine stderr", "line", line)

		c.stderrMu.Lock()
		c.stderrTail = append(c.stderrTail, line)

		if len(c.stderrTail) > maxStderrLines {
			c.stderrTail = c.stderrTail[len(c.stderrTail)-maxStderrLines:]
		}
		c.stderrMu.Unlock()

		if c.stderrCallback != nil {
			c.stderrCallback(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read engine stderr: %w", err)
	}

	return nil
}

// Stderr returns the last lines the engine wrote to stderr.
func (c *Channel) Stderr() string {
	c.stderrMu.Lock()
	defer c.stderrMu.Unlock()

	return strings.Join(c.stderrTail, "\n")
}

// EnginePath returns the resolved engine executable, empty before Start.
func (c *Channel) EnginePath() string {
	return c.enginePath
}

// Send writes text and a newline to the engine's stdin.
//
// The write goes straight to the pipe, so nothing is buffered across calls.
// Returns an IOError if the channel is not started, already closed, or the
// pipe is broken.
func (c *Channel) Send(text string) error {
	c.mu.Lock()
	stdin, closed := c.stdin, c.closed
	c.mu.Unlock()

	if stdin == nil || closed {
		return &errors.IOError{Command: text, Err: errors.ErrChannelNotStarted}
	}

	c.log.Debug("Sending command to engine", "command", text)

	if _, err := io.WriteString(stdin, text+"\n"); err != nil {
		c.log.Error("Failed to write command to engine", "command", text, "error", err)

		return &errors.IOError{Command: text, Err: err}
	}

	return nil
}

// ReceiveLine reads the next line from the engine's stdout.
//
// It blocks until a newline arrives and strips the line terminator. A final
// line without a terminator is returned as is; the read after it fails.
// Returns a StreamClosedError once the engine has closed its output.
func (c *Channel) ReceiveLine() (string, error) {
	if c.stdout == nil {
		return "", &errors.StreamClosedError{}
	}

	line, err := c.stdout.ReadString('\n')
	if err != nil {
		if line != "" && stderrors.Is(err, io.EOF) {
			return strings.TrimSuffix(line, "\r"), nil
		}

		if !stderrors.Is(err, io.EOF) {
			c.log.Debug("Engine output read failed", "error", err)
		}

		return "", &errors.StreamClosedError{Stderr: c.Stderr()}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	c.log.Debug("Received line from engine", "line", line)

	return line, nil
}

// Close terminates the engine process.
//
// This kills the process, waits for the stderr drain and reaps the child.
// Errors are logged and swallowed: an engine that already exited is not a
// failure. It's safe to call Close multiple times or before Start.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	if c.cmd == nil || c.cmd.Process == nil {
		return nil
	}

	pid := c.cmd.Process.Pid
	c.log.Debug("Killing engine process", "pid", pid)

	if err := c.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		c.log.Debug("Kill engine process failed", "pid", pid, "error", err)
	}

	if err := c.drain.Wait(); err != nil {
		c.log.Debug("Stderr drain stopped with error", "error", err)
	}

	if err := c.cmd.Wait(); err != nil {
		c.log.Debug("Engine process exited", "pid", pid, "error", err)
	}

	_ = c.stdin.Close()

	return nil
}
