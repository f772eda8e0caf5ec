package channel

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/anupsv/nym/group"
)

func TestPairRoundTripsPoint(t *testing.T) {
	a, b := Pair()
	defer a.Close()
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s, _ := group.RandomScalar(rand.Reader)
	want := group.Base().Mul(s)

	errc := make(chan error, 1)
	go func() { errc <- a.SendPoint(ctx, "a", want) }()

	got, err := b.ReceivePoint(ctx, "a")
	if err != nil {
		t.Fatalf("ReceivePoint: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("SendPoint: %v", err)
	}
	if !got.Equal(want) {
		t.Fatal("received point does not match sent point")
	}
}

func TestPairPreservesFIFOOrder(t *testing.T) {
	a, b := Pair()
	defer a.Close()
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s1, _ := group.RandomScalar(rand.Reader)
	s2, _ := group.RandomScalar(rand.Reader)

	if err := a.SendScalar(ctx, "a", s1); err != nil {
		t.Fatalf("SendScalar 1: %v", err)
	}
	if err := a.SendScalar(ctx, "b", s2); err != nil {
		t.Fatalf("SendScalar 2: %v", err)
	}

	got1, err := b.ReceiveScalar(ctx, "a")
	if err != nil {
		t.Fatalf("ReceiveScalar 1: %v", err)
	}
	got2, err := b.ReceiveScalar(ctx, "b")
	if err != nil {
		t.Fatalf("ReceiveScalar 2: %v", err)
	}
	if got1.Cmp(s1) != 0 || got2.Cmp(s2) != 0 {
		t.Fatal("scalars arrived out of FIFO order")
	}
}

func TestReceiveLabelMismatchIsTransportError(t *testing.T) {
	a, b := Pair()
	defer a.Close()
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s, _ := group.RandomScalar(rand.Reader)
	go func() { _ = a.SendScalar(ctx, "a", s) }()

	_, err := b.ReceiveScalar(ctx, "b")
	if err == nil {
		t.Fatal("expected a label-mismatch error")
	}
	var te *TransportError
	if !asTransportError(err, &te) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
}

func asTransportError(err error, target **TransportError) bool {
	te, ok := err.(*TransportError)
	if !ok {
		return false
	}
	*target = te
	return true
}
