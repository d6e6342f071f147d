package uci

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/wagiedev/uciperf/internal/config"
	"github.com/wagiedev/uciperf/internal/errors"
	"github.com/wagiedev/uciperf/internal/positions"
	"github.com/wagiedev/uciperf/internal/record"
)

// Driver runs the UCI handshake and exchanges over a Channel.
//
// A Driver owns its Channel's protocol state for the Channel's whole
// lifetime and must not be shared between goroutines.
type Driver struct {
	log      *slog.Logger
	channel  config.Channel
	limit    config.Limit
	threads  int
	policy   config.ThreadsPolicy
	fallback Fallback

	engineName string
	handshaken bool
}

// NewDriver creates a driver for an already started channel.
func NewDriver(log *slog.Logger, channel config.Channel, options *config.Options) *Driver {
	return &Driver{
		log:      log.With("component", "uci_driver"),
		channel:  channel,
		limit:    options.SearchLimit(),
		threads:  options.ThreadCount(),
		policy:   options.Policy(),
		fallback: KeepPrevious,
	}
}

// EngineName returns the identity reported during the handshake.
func (d *Driver) EngineName() string {
	return d.engineName
}

// Handshake sends "uci" and reads until "uciok".
//
// The first "id name" line becomes the engine name; later ones and every
// other line are ignored. Under ThreadsOnce the Threads option is sent
// right after "uciok". Returns a StreamClosedError if the engine closes its
// output before "uciok".
func (d *Driver) Handshake() (string, error) {
	d.log.Debug("Starting handshake")

	if err := d.channel.Send("uci"); err != nil {
		return "", err
	}

	var (
		name    string
		hasName bool
	)

	for {
		line, err := d.channel.ReceiveLine()
		if err != nil {
			return "", withStage(err, errors.StageHandshake, "")
		}

		if strings.TrimSpace(line) == "uciok" {
			break
		}

		if n, ok := ParseIDName(line); ok && !hasName {
			name, hasName = n, true
		}
	}

	d.engineName = name
	d.handshaken = true

	d.log.Info("Handshake complete", "engine_name", name)

	if d.policy == config.ThreadsOnce {
		if err := d.SetThreads(); err != nil {
			return name, err
		}
	}

	return name, nil
}

// SetThreads sends the Threads option with the configured thread count.
func (d *Driver) SetThreads() error {
	return d.channel.Send(fmt.Sprintf("setoption name Threads value %d", d.threads))
}

// Exchange analyzes one position and returns its record.
//
// It sends "position fen" with input verbatim and a "go" command carrying
// the configured limit, then folds info lines until "bestmove". Returns a
// StreamClosedError naming input if the engine closes its output first.
func (d *Driver) Exchange(input string) (record.Record, error) {
	if d.policy == config.ThreadsPerExchange {
		if err := d.SetThreads(); err != nil {
			return record.Record{}, err
		}
	}

	if err := d.channel.Send("position fen " + input); err != nil {
		return record.Record{}, err
	}

	if err := d.channel.Send(d.limit.GoCommand()); err != nil {
		return record.Record{}, err
	}

	var t Telemetry

	for {
		line, err := d.channel.ReceiveLine()
		if err != nil {
			return record.Record{}, withStage(err, errors.StageExchange, input)
		}

		if IsInfo(line) {
			t.ApplyInfo(line, d.fallback)

			continue
		}

		move, ok := ParseBestMove(line)
		if !ok {
			continue
		}

		if t.Fallbacks > 0 {
			d.log.Warn("Kept previous values for malformed info tokens",
				"fen", input, "fallbacks", t.Fallbacks)
		}

		r := record.Record{
			Input:    input,
			Nodes:    t.Nodes,
			TimeMS:   t.TimeMS,
			NPS:      t.NPS,
			Depth:    uint32(min(t.Depth, math.MaxUint32)),
			Score:    t.Score,
			BestMove: move,
		}

		d.log.Debug("Exchange complete",
			"fen", input, "nodes", r.Nodes, "depth", r.Depth, "bestmove", r.BestMove)

		return r, nil
	}
}

// RunBatch runs up to n exchanges over positions from supplier, in order.
//
// It stops early when the supplier is exhausted. On failure it returns the
// records of the exchanges that completed before it together with the
// error; the remaining positions are not analyzed.
func (d *Driver) RunBatch(supplier positions.Supplier, n int) ([]record.Record, error) {
	if !d.handshaken {
		if _, err := d.Handshake(); err != nil {
			return nil, err
		}
	}

	records := make([]record.Record, 0, max(min(n, 256), 0))

	for i := range n {
		fen, ok := supplier.Next()
		if !ok {
			d.log.Debug("Position supplier exhausted", "analyzed", i)

			break
		}

		r, err := d.Exchange(fen)
		if err != nil {
			d.log.Error("Exchange failed", "index", i, "fen", fen, "error", err)

			return records, err
		}

		records = append(records, r)
	}

	return records, nil
}

// withStage annotates a StreamClosedError with where it happened.
func withStage(err error, stage errors.Stage, input string) error {
	if closed, ok := stderrors.AsType[*errors.StreamClosedError](err); ok {
		annotated := *closed
		annotated.Stage = stage
		annotated.Input = input

		return &annotated
	}

	return err
}
