// Package proof implements protocol Π, the interactive zero-knowledge
// proof of equality of discrete logarithms, and its Fiat-Shamir
// non-interactive form Π_NI.
//
// Grounded on original_source/src/proof/dlog_eq.rs, translated from
// async fn + .await over a LocalTransport to Go functions taking a
// context.Context and a channel.Channel.
package proof

import (
	"context"
	"math/big"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/group"
	"github.com/anupsv/nym/internal/common"
)

// Publics is the public statement for Π: the prover claims to know x such
// that H1 = x*G1 and H2 = x*G2.
type Publics struct {
	G1 group.Point
	H1 group.Point
	G2 group.Point
	H2 group.Point
}

// Secrets holds the prover's witness.
type Secrets struct {
	X *big.Int
}

// Prove runs the prover's side of Π over ch: commit (a, b), receive a
// challenge c, respond with y.
func Prove(ctx context.Context, ch channel.Channel, publics Publics, secrets Secrets) error {
	r, err := group.RandomScalar(randReader)
	if err != nil {
		return err
	}
	a := publics.G1.Mul(r)
	b := publics.G2.Mul(r)

	if err := ch.SendPoint(ctx, common.LabelA, a); err != nil {
		return err
	}
	if err := ch.SendPoint(ctx, common.LabelB, b); err != nil {
		return err
	}
	c, err := ch.ReceiveScalar(ctx, common.LabelC)
	if err != nil {
		return err
	}
	y := group.AddScalars(r, group.MulScalars(c, secrets.X))
	return ch.SendScalar(ctx, common.LabelY, y)
}

// Verify runs the verifier's side of Π: receive (a, b), send a random
// challenge, receive y, and check both verification equations.
func Verify(ctx context.Context, ch channel.Channel, publics Publics) error {
	a, err := ch.ReceivePoint(ctx, common.LabelA)
	if err != nil {
		return err
	}
	b, err := ch.ReceivePoint(ctx, common.LabelB)
	if err != nil {
		return err
	}
	c, err := group.RandomScalar(randReader)
	if err != nil {
		return err
	}
	if err := ch.SendScalar(ctx, common.LabelC, c); err != nil {
		return err
	}
	y, err := ch.ReceiveScalar(ctx, common.LabelY)
	if err != nil {
		return err
	}
	if !checkEquations(publics, a, b, c, y) {
		return common.ErrBadProof
	}
	return nil
}

func checkEquations(publics Publics, a, b group.Point, c, y *big.Int) bool {
	aOK := publics.G1.Mul(y).Equal(a.Add(publics.H1.Mul(c)))
	bOK := publics.G2.Mul(y).Equal(b.Add(publics.H2.Mul(c)))
	return aOK && bOK
}

// Transcript is a Π_NI value object: a self-contained, verifier-reusable
// proof transcript.
type Transcript struct {
	A group.Point
	B group.Point
	C *big.Int
	Y *big.Int
}

// Verify checks this transcript's challenge recomputation and both
// verification equations under publics.
func (t Transcript) Verify(publics Publics) error {
	wantC := NonInteractiveChallengeFor(publics, t.A, t.B)
	if !group.ConstantTimeScalarEq(t.C, wantC) {
		return common.ErrBadProof
	}
	if !checkEquations(publics, t.A, t.B, t.C, t.Y) {
		return common.ErrBadProof
	}
	return nil
}

// Marshal encodes the transcript as the concatenation, in field order,
// of A, B, C, Y, per spec §6's persisted-format requirement.
func (t Transcript) Marshal() []byte {
	out := make([]byte, 0, 2*len(t.A.Marshal())+2*32)
	out = append(out, t.A.Marshal()...)
	out = append(out, t.B.Marshal()...)
	out = append(out, group.ScalarBytes(t.C)...)
	out = append(out, group.ScalarBytes(t.Y)...)
	return out
}

// NonInteractiveChallengeFor derives the Fiat-Shamir challenge for a Π_NI
// transcript over the given publics and first-move values (a, b).
//
// Domain separation and commit order are bit-exact: a changed label or
// commit order changes every challenge this function produces.
func NonInteractiveChallengeFor(publics Publics, a, b group.Point) *big.Int {
	t := group.NewTranscript(common.NonInteractiveChallengeLabel)
	t.CommitPoint(common.FieldLabelG1, publics.G1)
	t.CommitPoint(common.FieldLabelH1, publics.H1)
	t.CommitPoint(common.FieldLabelG2, publics.G2)
	t.CommitPoint(common.FieldLabelH2, publics.H2)
	t.CommitPoint(common.FieldLabelA, a)
	t.CommitPoint(common.FieldLabelB, b)
	return t.ChallengeScalar(common.ChallengeExtractionLabel)
}
