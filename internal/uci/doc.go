// Package uci drives a chess engine through the UCI protocol.
//
// A Driver sits on top of a config.Channel and enforces the protocol's
// grammar: a one-time handshake, the Threads configuration command and a
// strictly sequential position/go/bestmove exchange per input. Each exchange
// that reaches its bestmove line yields exactly one record.Record.
//
// Example usage:
//
//	ch := subprocess.NewChannel(log, options)
//	if err := ch.Start(ctx); err != nil {
//		return err
//	}
//	defer ch.Close()
//
//	driver := uci.NewDriver(log, ch, options)
//	name, err := driver.Handshake()
//	// ...
//	records, err := driver.RunBatch(supplier, options.PositionCount())
package uci
