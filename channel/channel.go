// Package channel implements the labeled, ordered, reliable bidirectional
// message pipe the proof and nym packages run their protocols over.
//
// Grounded on original_source/src/transport.rs's LocalTransport trait
// (async send/receive keyed by a label), translated from Rust's
// async/await + a futures mpsc test transport to Go goroutines talking
// over a pair of buffered Go channels.
package channel

import (
	"context"
	"fmt"
	"math/big"

	"github.com/anupsv/nym/group"
)

// TransportError wraps any channel-level failure: I/O error, EOF,
// deserialization failure, or label mismatch. It is always returned
// opaquely with the underlying cause preserved, per spec §7.
type TransportError struct {
	Op    string
	Label string
	Err   error
}

func (e *TransportError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("channel: %s %q: %v", e.Op, e.Label, e.Err)
	}
	return fmt.Sprintf("channel: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func newTransportError(op, label string, err error) error {
	return &TransportError{Op: op, Label: label, Err: err}
}

// frame is the unit of transport: a labeled, already-serialized value.
type frame struct {
	label string
	data  []byte
}

// Channel is the contract the core protocol packages consume: enqueue a
// labeled value in FIFO order, or block for the next one and assert its
// label matches what was expected.
type Channel interface {
	// SendPoint enqueues a group.Point under label.
	SendPoint(ctx context.Context, label string, p group.Point) error
	// ReceivePoint blocks for the next frame, failing with a
	// TransportError if its label does not match or it does not decode
	// as a point.
	ReceivePoint(ctx context.Context, label string) (group.Point, error)
	// SendScalar enqueues a scalar under label.
	SendScalar(ctx context.Context, label string, s *big.Int) error
	// ReceiveScalar blocks for the next frame under label, decoding it
	// as a scalar.
	ReceiveScalar(ctx context.Context, label string) (*big.Int, error)
	// Close releases the channel's resources. Safe to call more than
	// once.
	Close()
}
