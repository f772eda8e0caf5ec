// Package group adapts a concrete prime-order group and its scalar field
// for use by the proof, keys, and nym packages above it.
//
// The teacher's own cryptographic dependency, github.com/consensys/gnark-crypto,
// supplies the curve; this package generalizes the teacher's two-generator,
// pairing-oriented key layout (BLS12-381 G1 + G2) down to the single
// prime-order group the LRSW construction actually needs: G1 alone, with
// scalars reduced modulo its subgroup order. No pairing is ever computed
// here.
package group

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Order is the order of the BLS12-381 G1 subgroup. Every scalar in this
// package is implicitly reduced modulo Order.
var Order, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// scalarByteLen is the fixed width used to encode scalars on the wire.
const scalarByteLen = 32

// Point is an element of the group, carried internally in Jacobian
// coordinates (cheap to add/scale) and converted to affine only at the
// boundary (equality, marshaling).
type Point struct {
	p bls12381.G1Jac
}

// Base returns the group's distinguished generator G.
func Base() Point {
	_, _, g1, _ := bls12381.Generators()
	var jac bls12381.G1Jac
	jac.FromAffine(&g1)
	return Point{p: jac}
}

// Identity returns the group's identity element.
func Identity() Point {
	var jac bls12381.G1Jac
	jac.X.SetOne()
	jac.Y.SetOne()
	jac.Z.SetZero()
	return Point{p: jac}
}

// Add returns a + b.
func (a Point) Add(b Point) Point {
	r := a.p
	r.AddAssign(&b.p)
	return Point{p: r}
}

// Neg returns -a.
func (a Point) Neg() Point {
	r := a.p
	r.Neg(&r)
	return Point{p: r}
}

// Mul returns s*a. s is reduced modulo Order by the underlying library's
// scalar multiplication; callers should still keep scalars reduced
// themselves to avoid leaking their bit length through allocation size.
func (a Point) Mul(s *big.Int) Point {
	r := a.p
	r.ScalarMultiplication(&r, s)
	return Point{p: r}
}

// Equal performs a (variable-time) equality check on two public points.
// Per spec §9, relational checks on public points may be variable-time;
// only secret-derived scalar comparisons need to be constant-time.
func (a Point) Equal(b Point) bool {
	af, bf := a.affine(), b.affine()
	return af.Equal(&bf)
}

// IsIdentity reports whether a is the group identity.
func (a Point) IsIdentity() bool {
	af := a.affine()
	return af.IsInfinity()
}

func (a Point) affine() bls12381.G1Affine {
	var af bls12381.G1Affine
	af.FromJacobian(&a.p)
	return af
}

// Marshal encodes a point in compressed form.
func (a Point) Marshal() []byte {
	af := a.affine()
	b := af.Marshal()
	return b
}

// UnmarshalPoint decodes a point previously produced by Marshal.
func UnmarshalPoint(data []byte) (Point, error) {
	var af bls12381.G1Affine
	if err := af.Unmarshal(data); err != nil {
		return Point{}, fmt.Errorf("group: unmarshal point: %w", err)
	}
	var jac bls12381.G1Jac
	jac.FromAffine(&af)
	return Point{p: jac}, nil
}

// RandomScalar samples a scalar uniformly from [1, Order).
//
// Zero is excluded: every scalar this system generates (master secrets,
// per-key exponents, proof nonces) must be nonzero to avoid degenerate
// discrete logs, and rejecting zero costs nothing since it occurs with
// probability 1/Order.
func RandomScalar(rng io.Reader) (*big.Int, error) {
	for {
		s, err := ConstantTimeRandom(rng, Order)
		if err != nil {
			return nil, err
		}
		if s.Sign() != 0 {
			return s, nil
		}
	}
}

// ConstantTimeRandom generates a uniform random value in [0, max) using
// rejection sampling, masking the top byte to avoid modulo bias. The
// candidate is drawn from exactly as many bytes as max needs, so each draw
// is accepted with probability roughly 1/2 or better. Grounded on the
// teacher's bbs/utils.go ConstantTimeRandom.
func ConstantTimeRandom(rng io.Reader, max *big.Int) (*big.Int, error) {
	byteLen := (max.BitLen() + 7) / 8

	bits := uint(max.BitLen() % 8)
	mask := byte(0xFF)
	if bits > 0 {
		mask = byte((1 << bits) - 1)
	}

	b := make([]byte, byteLen)
	result := new(big.Int)

	for {
		if _, err := io.ReadFull(rng, b); err != nil {
			return nil, fmt.Errorf("group: read random bytes: %w", err)
		}
		if len(b) > 0 {
			b[0] &= mask
		}
		result.SetBytes(b)
		if result.Cmp(max) < 0 {
			break
		}
	}

	return result, nil
}

// ReduceScalar reduces s modulo Order, returning a new value.
func ReduceScalar(s *big.Int) *big.Int {
	return new(big.Int).Mod(s, Order)
}

// AddScalars returns (a+b) mod Order.
func AddScalars(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, Order)
}

// MulScalars returns (a*b) mod Order.
func MulScalars(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, Order)
}

// ScalarBytes encodes a scalar as fixed-width (32-byte) big-endian bytes.
func ScalarBytes(s *big.Int) []byte {
	out := make([]byte, scalarByteLen)
	b := new(big.Int).Mod(s, Order).Bytes()
	copy(out[scalarByteLen-len(b):], b)
	return out
}

// UnmarshalScalar decodes a scalar from fixed-width big-endian bytes.
func UnmarshalScalar(data []byte) (*big.Int, error) {
	if len(data) != scalarByteLen {
		return nil, fmt.Errorf("group: scalar must be %d bytes, got %d", scalarByteLen, len(data))
	}
	return new(big.Int).SetBytes(data), nil
}

// ConstantTimeScalarEq compares two scalars by XOR-ing them and testing the
// result for zero, so there is no early exit at the first differing word.
// The math/big operations it uses are not themselves constant-time.
func ConstantTimeScalarEq(a, b *big.Int) bool {
	diff := new(big.Int).Xor(a, b)
	return diff.Sign() == 0
}
