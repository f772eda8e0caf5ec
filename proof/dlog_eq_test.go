package proof

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"
	"time"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/group"
)

func randomPublics(t *testing.T) (Publics, Secrets) {
	t.Helper()
	g1 := group.Base().Mul(mustScalar(t))
	g2 := group.Base().Mul(mustScalar(t))
	x := mustScalar(t)
	h1 := g1.Mul(x)
	h2 := g2.Mul(x)
	return Publics{G1: g1, H1: h1, G2: g2, H2: h2}, Secrets{X: x}
}

func mustScalar(t *testing.T) *big.Int {
	t.Helper()
	s, err := group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

func runProveVerify(t *testing.T, publics Publics, secrets Secrets) error {
	t.Helper()
	a, b := channel.Pair()
	defer a.Close()
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- Prove(ctx, a, publics, secrets) }()

	verifyErr := Verify(ctx, b, publics)
	proveErr := <-errc
	if proveErr != nil {
		t.Fatalf("Prove: %v", proveErr)
	}
	return verifyErr
}

func TestCompleteness(t *testing.T) {
	publics, secrets := randomPublics(t)
	if err := runProveVerify(t, publics, secrets); err != nil {
		t.Fatalf("expected honest proof to verify, got: %v", err)
	}
}

func TestSoundnessWrongWitness(t *testing.T) {
	publics, _ := randomPublics(t)
	wrongX := mustScalar(t)
	if err := runProveVerify(t, publics, Secrets{X: wrongX}); err == nil {
		t.Fatal("expected proof with wrong witness to fail verification")
	}
}

func TestNonInteractiveChallengeDeterministic(t *testing.T) {
	publics, _ := randomPublics(t)
	r := mustScalar(t)
	a := publics.G1.Mul(r)
	b := publics.G2.Mul(r)

	c1 := NonInteractiveChallengeFor(publics, a, b)
	c2 := NonInteractiveChallengeFor(publics, a, b)
	if c1.Cmp(c2) != 0 {
		t.Fatal("non-interactive challenge is not a deterministic function of (publics, a, b)")
	}
}

func TestTranscriptVerify(t *testing.T) {
	publics, secrets := randomPublics(t)
	r := mustScalar(t)
	a := publics.G1.Mul(r)
	b := publics.G2.Mul(r)
	c := NonInteractiveChallengeFor(publics, a, b)
	y := group.AddScalars(r, group.MulScalars(c, secrets.X))

	tr := Transcript{A: a, B: b, C: c, Y: y}
	if err := tr.Verify(publics); err != nil {
		t.Fatalf("expected honest transcript to verify, got: %v", err)
	}

	mutated := tr
	mutated.Y = group.AddScalars(tr.Y, group.ReduceScalar(big.NewInt(1)))
	if err := mutated.Verify(publics); err == nil {
		t.Fatal("expected transcript with mutated y to fail verification")
	}
}
