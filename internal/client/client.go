package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wagiedev/uciperf/internal/config"
	"github.com/wagiedev/uciperf/internal/errors"
	"github.com/wagiedev/uciperf/internal/positions"
	"github.com/wagiedev/uciperf/internal/record"
	"github.com/wagiedev/uciperf/internal/stats"
	"github.com/wagiedev/uciperf/internal/subprocess"
	"github.com/wagiedev/uciperf/internal/uci"
)

// Client implements the interactive client interface.
type Client struct {
	log        *slog.Logger
	channel    config.Channel
	driver     *uci.Driver
	options    *config.Options
	aggregator *stats.Aggregator

	// Lifecycle management
	mu        sync.Mutex
	connected bool
	closed    bool      // Tracks if Close() has been called
	closeOnce sync.Once // Ensures Close() only runs once
}

// New creates a new interactive client.
//
// The client is not connected after creation. Call Start() with options to connect.
func New() *Client {
	return &Client{
		aggregator: stats.NewAggregator(),
	}
}

// Start spawns the engine and performs the UCI handshake.
//
// Returns a StartError if the engine cannot be spawned, or the handshake
// failure. The engine is terminated again if the handshake fails.
func (c *Client) Start(ctx context.Context, options *config.Options) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrClientClosed
	}

	if c.connected {
		return errors.ErrClientAlreadyConnected
	}

	// Default to empty options if nil
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	c.log = log.With("component", "client")
	c.options = options

	var channel config.Channel

	if options.Channel != nil {
		channel = options.Channel

		c.log.Debug("Using injected custom channel")
	} else {
		channel = subprocess.NewChannel(c.log, options)
	}

	if err := channel.Start(ctx); err != nil {
		return err
	}

	driver := uci.NewDriver(c.log, channel, options)
	if _, err := driver.Handshake(); err != nil {
		if closeErr := channel.Close(); closeErr != nil {
			c.log.Debug("Close engine channel", "error", closeErr)
		}

		return fmt.Errorf("handshake: %w", err)
	}

	c.channel = channel
	c.driver = driver
	c.connected = true

	c.log.Info("Client started successfully", "engine_name", driver.EngineName())

	return nil
}

// connectedDriver returns the driver, or an error if the client is not usable.
// Caller must hold c.mu.
func (c *Client) connectedDriver() (*uci.Driver, error) {
	if c.closed {
		return nil, errors.ErrClientClosed
	}

	if !c.connected {
		return nil, errors.ErrClientNotConnected
	}

	return c.driver, nil
}

// EngineName returns the identity the engine reported in its handshake.
func (c *Client) EngineName() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver == nil {
		return ""
	}

	return c.driver.EngineName()
}

// Analyze runs one exchange for fen and records its outcome.
func (c *Client) Analyze(fen string) (record.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	driver, err := c.connectedDriver()
	if err != nil {
		return record.Record{}, err
	}

	r, err := driver.Exchange(fen)
	if err != nil {
		return record.Record{}, err
	}

	c.aggregator.Add(r)

	return r, nil
}

// AnalyzeBatch runs up to n exchanges over positions from supplier.
//
// It stops early when the supplier is exhausted. Records of the exchanges
// completed before a failure are kept and returned with the error.
func (c *Client) AnalyzeBatch(supplier positions.Supplier, n int) ([]record.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	driver, err := c.connectedDriver()
	if err != nil {
		return nil, err
	}

	records, err := driver.RunBatch(supplier, n)
	for _, r := range records {
		c.aggregator.Add(r)
	}

	return records, err
}

// Records returns every record collected so far, in submission order.
func (c *Client) Records() []record.Record {
	return c.aggregator.Records()
}

// Summary derives statistics from every record collected so far.
func (c *Client) Summary() stats.Summary {
	return c.aggregator.Summary()
}

// Close terminates the engine. Records stay available afterwards.
func (c *Client) Close() error {
	var closeErr error

	c.closeOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.closed = true
		wasConnected := c.connected
		c.connected = false

		if !wasConnected {
			return
		}

		c.log.Info("Closing client")

		closeErr = c.channel.Close()

		c.log.Info("Client closed")
	})

	return closeErr
}
