package channel

import (
	"context"
	"fmt"
	"math/big"

	"github.com/anupsv/nym/group"
)

// localChannel is one endpoint of an in-memory FIFO pair. Sends on one
// endpoint arrive, in order, on Receive calls at the other endpoint.
//
// Grounded on original_source/src/nym.rs's TestTransport, which pairs two
// futures::channel::mpsc::unbounded endpoints; here two buffered Go
// channels play the same role and two goroutines stand in for the
// original's two concurrently-polled async tasks.
type localChannel struct {
	out chan frame
	in  <-chan frame
}

// Pair constructs two endpoints of an in-memory channel, wired so that
// everything sent on one arrives, in order, on the other. Each endpoint
// is safe for use by exactly one goroutine at a time (the role it
// represents), matching how the protocol state machines in package nym
// use them.
func Pair() (a, b Channel) {
	ab := make(chan frame, 16)
	ba := make(chan frame, 16)
	return &localChannel{out: ab, in: ba}, &localChannel{out: ba, in: ab}
}

func (c *localChannel) send(ctx context.Context, label string, data []byte) error {
	select {
	case c.out <- frame{label: label, data: data}:
		return nil
	case <-ctx.Done():
		return newTransportError("send", label, ctx.Err())
	}
}

func (c *localChannel) receive(ctx context.Context, label string) ([]byte, error) {
	select {
	case f, ok := <-c.in:
		if !ok {
			return nil, newTransportError("receive", label, fmt.Errorf("channel closed"))
		}
		if f.label != label {
			return nil, newTransportError("receive", label, fmt.Errorf("expected label %q, got %q", label, f.label))
		}
		return f.data, nil
	case <-ctx.Done():
		return nil, newTransportError("receive", label, ctx.Err())
	}
}

func (c *localChannel) SendPoint(ctx context.Context, label string, p group.Point) error {
	return c.send(ctx, label, p.Marshal())
}

func (c *localChannel) ReceivePoint(ctx context.Context, label string) (group.Point, error) {
	data, err := c.receive(ctx, label)
	if err != nil {
		return group.Point{}, err
	}
	p, err := group.UnmarshalPoint(data)
	if err != nil {
		return group.Point{}, newTransportError("receive", label, err)
	}
	return p, nil
}

func (c *localChannel) SendScalar(ctx context.Context, label string, s *big.Int) error {
	return c.send(ctx, label, group.ScalarBytes(s))
}

func (c *localChannel) ReceiveScalar(ctx context.Context, label string) (*big.Int, error) {
	data, err := c.receive(ctx, label)
	if err != nil {
		return nil, err
	}
	s, err := group.UnmarshalScalar(data)
	if err != nil {
		return nil, newTransportError("receive", label, err)
	}
	return s, nil
}

// Close is a no-op for localChannel: the underlying Go channels are
// garbage collected once both endpoints are unreachable, and closing
// c.out here would race with the peer still draining it.
func (c *localChannel) Close() {}
