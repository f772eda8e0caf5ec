package blind

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/group"
	"github.com/anupsv/nym/proof"
)

func TestVerifyProducesValidTranscriptOnRerandomizedStatement(t *testing.T) {
	g1 := group.Base()
	x, err := group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	g2Exp, err := group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	g2 := group.Base().Mul(g2Exp)
	h1 := g1.Mul(x)
	h2 := g2.Mul(x)

	gamma, err := group.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	publics := Publics{G1: g1, H1: h1, G2: g2, H2: h2}

	a, b := channel.Pair()
	defer a.Close()
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- Prove(ctx, a, publics, ProverSecrets{X: x}) }()

	transcript, err := Verify(ctx, b, publics, VerifierSecrets{Gamma: gamma})
	if proveErr := <-errc; proveErr != nil {
		t.Fatalf("Prove: %v", proveErr)
	}
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	rerandomized := proof.Publics{
		G1: publics.G1,
		H1: publics.H1,
		G2: publics.G2.Mul(gamma),
		H2: publics.H2.Mul(gamma),
	}
	if err := transcript.Verify(rerandomized); err != nil {
		t.Fatalf("expected transcript to verify under rerandomized statement, got: %v", err)
	}
}

func TestVerifyRejectsWrongWitness(t *testing.T) {
	g1 := group.Base()
	x, _ := group.RandomScalar(rand.Reader)
	wrongX, _ := group.RandomScalar(rand.Reader)
	g2Exp, _ := group.RandomScalar(rand.Reader)
	g2 := group.Base().Mul(g2Exp)
	h1 := g1.Mul(x)
	h2 := g2.Mul(x)
	gamma, _ := group.RandomScalar(rand.Reader)

	publics := Publics{G1: g1, H1: h1, G2: g2, H2: h2}

	a, b := channel.Pair()
	defer a.Close()
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- Prove(ctx, a, publics, ProverSecrets{X: wrongX}) }()

	_, verifyErr := Verify(ctx, b, publics, VerifierSecrets{Gamma: gamma})
	<-errc
	if verifyErr == nil {
		t.Fatal("expected verification with wrong witness to fail")
	}
}
