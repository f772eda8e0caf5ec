// Package blind implements protocol Γ, the verifier-blinded execution of
// Π that yields a reusable Π_NI transcript on a rerandomized statement
// without ever letting the prover observe that transcript.
//
// Grounded on original_source/src/proof/blind_dlog_eq.rs: the prover side
// is identical to proof.Prove, and the verifier blinds the statement with
// two fresh scalars (α, β) and rerandomizes g2/h2 by γ before deriving the
// Fiat-Shamir challenge, then reports a transcript valid on that
// rerandomized statement.
package blind

import (
	"context"
	"math/big"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/group"
	"github.com/anupsv/nym/internal/common"
	"github.com/anupsv/nym/proof"
)

// Publics is the same public statement shape as proof.Publics.
type Publics = proof.Publics

// ProverSecrets is the same witness shape as proof.Secrets.
type ProverSecrets = proof.Secrets

// VerifierSecrets holds the verifier's blinding factor γ, which
// rerandomizes the statement the resulting transcript is valid under.
type VerifierSecrets struct {
	Gamma *big.Int
}

// Prove runs the prover's side of Γ. It is bit-for-bit the same protocol
// as Π's prover: the prover cannot tell Γ and Π apart, which is exactly
// what keeps it from learning anything about the rerandomized transcript.
func Prove(ctx context.Context, ch channel.Channel, publics Publics, secrets ProverSecrets) error {
	return proof.Prove(ctx, ch, publics, secrets)
}

// Verify runs the verifier's side of Γ: receive (a, b), blind the
// statement with fresh (α, β), derive a Fiat-Shamir challenge over the
// γ-rerandomized statement, shift it by β before sending it to the
// prover, and on success emit a proof.Transcript valid under the
// rerandomized (g2, h2) = (γ*g2, γ*h2).
func Verify(ctx context.Context, ch channel.Channel, publics Publics, secrets VerifierSecrets) (proof.Transcript, error) {
	a, err := ch.ReceivePoint(ctx, common.LabelA)
	if err != nil {
		return proof.Transcript{}, err
	}
	b, err := ch.ReceivePoint(ctx, common.LabelB)
	if err != nil {
		return proof.Transcript{}, err
	}

	alpha, err := group.RandomScalar(randReader)
	if err != nil {
		return proof.Transcript{}, err
	}
	beta, err := group.RandomScalar(randReader)
	if err != nil {
		return proof.Transcript{}, err
	}

	// a1 = a + α*g1 + β*h1
	a1 := a.Add(publics.G1.Mul(alpha)).Add(publics.H1.Mul(beta))
	// b1 = γ*(b + α*g2 + β*h2)
	b1 := b.Add(publics.G2.Mul(alpha)).Add(publics.H2.Mul(beta)).Mul(secrets.Gamma)

	rerandomized := Publics{
		G1: publics.G1,
		H1: publics.H1,
		G2: publics.G2.Mul(secrets.Gamma),
		H2: publics.H2.Mul(secrets.Gamma),
	}
	cMinusBeta := proof.NonInteractiveChallengeFor(rerandomized, a1, b1)
	c := group.AddScalars(cMinusBeta, beta)

	if err := ch.SendScalar(ctx, common.LabelC, c); err != nil {
		return proof.Transcript{}, err
	}
	y, err := ch.ReceiveScalar(ctx, common.LabelY)
	if err != nil {
		return proof.Transcript{}, err
	}

	aOK := publics.G1.Mul(y).Equal(a.Add(publics.H1.Mul(c)))
	bOK := publics.G2.Mul(y).Equal(b.Add(publics.H2.Mul(c)))
	if !aOK || !bOK {
		return proof.Transcript{}, common.ErrBadProof
	}

	return proof.Transcript{
		A: a1,
		B: b1,
		C: cMinusBeta,
		Y: group.AddScalars(y, alpha),
	}, nil
}
