package nym

import (
	"fmt"
	"math/big"

	"github.com/anupsv/nym/group"
	"github.com/anupsv/nym/internal/common"
)

// Signature is a Schnorr-variable-base signature: the nym's first point a
// stands in for the usual fixed base, and the nym's second point b is the
// public key being signed under.
//
// Grounded on spec.md §4.9: "A nym (a, b) with a in place of the standard
// base functions as a Schnorr public key b over base a." The
// commit/challenge/response shape follows the Σ-protocol style used
// throughout this package's own proof primitives rather than
// carlhuth-emmy's protobuf-bound Schnorr server, combined with this
// module's own group/transcript primitives.
type Signature struct {
	R group.Point
	S *big.Int
}

// Sign produces a signature over message under nym, using x as the
// holder's master secret. The caller is responsible for having
// authenticated as nym's holder through the normal protocol before
// signing with it; Sign performs no such check itself.
func Sign(nym Nym, x *big.Int, message []byte) (Signature, error) {
	r, err := group.RandomScalar(randReader)
	if err != nil {
		return Signature{}, err
	}
	capR := nym.a.Mul(r)
	c := signatureChallenge(nym, capR, message)
	s := group.AddScalars(r, group.MulScalars(c, x))
	return Signature{R: capR, S: s}, nil
}

// Verify checks sig against message under nym, returning
// common.ErrBadSignature on any mismatch.
func Verify(nym Nym, message []byte, sig Signature) error {
	c := signatureChallenge(nym, sig.R, message)
	lhs := nym.a.Mul(sig.S)
	rhs := sig.R.Add(nym.b.Mul(c))
	if !lhs.Equal(rhs) {
		return common.ErrBadSignature
	}
	return nil
}

// BatchItem is one (nym, message, signature) triple for batch verification.
type BatchItem struct {
	Nym     Nym
	Message []byte
	Sig     Signature
}

// VerifyBatch verifies many nym signatures at once. Unlike BBS+'s pairing
// equations, this scheme has no cheaper combined check for a batch, so
// VerifyBatch still performs one full Schnorr check per item; what it
// saves is allocation pressure, by drawing its scratch scalars and point
// slices from group's object pool instead of the heap.
//
// Grounded on bbs/proof_manager.go's tempPool.GetBigInt/PutBigInt scratch
// pattern for batch proof verification.
func VerifyBatch(items []BatchItem) error {
	if len(items) == 0 {
		return nil
	}

	lhs := group.GetPointSlice(len(items))
	defer group.PutPointSlice(lhs)
	rhs := group.GetPointSlice(len(items))
	defer group.PutPointSlice(rhs)

	for _, it := range items {
		c := group.GetBigInt()
		c.Set(signatureChallenge(it.Nym, it.Sig.R, it.Message))
		lhs = append(lhs, it.Nym.a.Mul(it.Sig.S))
		rhs = append(rhs, it.Sig.R.Add(it.Nym.b.Mul(c)))
		group.PutBigInt(c)
	}

	for i := range lhs {
		if !lhs[i].Equal(rhs[i]) {
			return fmt.Errorf("batch verify item %d: %w", i, common.ErrBadSignature)
		}
	}
	return nil
}

func signatureChallenge(nym Nym, capR group.Point, message []byte) *big.Int {
	t := group.NewTranscript(common.NymSignatureChallengeLabel)
	t.CommitPoint("a", nym.a)
	t.CommitPoint("b", nym.b)
	t.CommitPoint("r", capR)
	t.CommitBytes("m", message)
	return t.ChallengeScalar("c")
}
