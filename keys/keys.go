// Package keys implements the user and organization key material this
// system is built on, plus the ownership-proof sub-protocol organizations
// use to prove (and let users verify) that they actually hold the secret
// half of a published public key.
//
// Grounded on original_source/src/key.rs, generalized from the teacher's
// bbs/keygen.go shape of threading an io.Reader through key generation
// instead of reaching for a package-global RNG.
package keys

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/group"
	"github.com/anupsv/nym/proof"
)

// UserSecretKey is the secret half of a user's master key: a single
// nonzero scalar, the same across every organization the user registers
// a pseudonym with.
type UserSecretKey struct {
	x *big.Int
}

// UserPublicKey is the public half of a user's master key.
type UserPublicKey struct {
	point group.Point
}

// NewUserSecretKey generates a new random user secret key, reading
// randomness from rng.
func NewUserSecretKey(rng io.Reader) (UserSecretKey, error) {
	x, err := group.RandomScalar(rng)
	if err != nil {
		return UserSecretKey{}, fmt.Errorf("keys: generate user secret key: %w", err)
	}
	return UserSecretKey{x: x}, nil
}

// Exponent returns the raw scalar this key wraps. Exported for use by
// package nym, which needs the scalar to drive the pseudonym protocols.
func (k UserSecretKey) Exponent() *big.Int { return k.x }

// Public derives this key's public half.
func (k UserSecretKey) Public() UserPublicKey {
	return UserPublicKey{point: group.Base().Mul(k.x)}
}

// Point returns this public key's underlying group element.
func (k UserPublicKey) Point() group.Point { return k.point }

// Equal reports whether two user public keys are the same group element.
func (k UserPublicKey) Equal(other UserPublicKey) bool {
	return k.point.Equal(other.point)
}

// OrgSecretKey is the secret half of an organization's credential key: a
// pair of nonzero scalars (x1, x2) used respectively for the nym-level
// and attribute-level verification equations in credential issuance.
type OrgSecretKey struct {
	x1, x2 *big.Int
}

// OrgPublicKey is the public half of an organization's credential key.
type OrgPublicKey struct {
	y1, y2 group.Point
}

// NewOrgSecretKey generates a new random organization secret key, reading
// randomness from rng.
func NewOrgSecretKey(rng io.Reader) (OrgSecretKey, error) {
	x1, err := group.RandomScalar(rng)
	if err != nil {
		return OrgSecretKey{}, fmt.Errorf("keys: generate org secret key (x1): %w", err)
	}
	x2, err := group.RandomScalar(rng)
	if err != nil {
		return OrgSecretKey{}, fmt.Errorf("keys: generate org secret key (x2): %w", err)
	}
	return OrgSecretKey{x1: x1, x2: x2}, nil
}

// Exponents returns the raw (x1, x2) scalar pair.
func (k OrgSecretKey) Exponents() (*big.Int, *big.Int) { return k.x1, k.x2 }

// Public derives this key's public half.
func (k OrgSecretKey) Public() OrgPublicKey {
	return OrgPublicKey{y1: group.Base().Mul(k.x1), y2: group.Base().Mul(k.x2)}
}

// Points returns this public key's underlying (Y1, Y2) group elements.
func (k OrgPublicKey) Points() (group.Point, group.Point) { return k.y1, k.y2 }

// Equal reports whether two organization public keys are the same pair
// of group elements.
func (k OrgPublicKey) Equal(other OrgPublicKey) bool {
	return k.y1.Equal(other.y1) && k.y2.Equal(other.y2)
}

// ProveOwnership proves possession of this organization's secret key to
// the peer on the other end of ch, by running Π twice: once for x1,
// once for x2, each against the degenerate statement g1=g2=G, h1=h2=Y.
func (k OrgSecretKey) ProveOwnership(ctx context.Context, ch channel.Channel) error {
	pub := k.Public()
	if err := proveOwnership(ctx, ch, pub.y1, k.x1); err != nil {
		return err
	}
	return proveOwnership(ctx, ch, pub.y2, k.x2)
}

func proveOwnership(ctx context.Context, ch channel.Channel, public group.Point, secret *big.Int) error {
	g := group.Base()
	return proof.Prove(ctx, ch, proof.Publics{G1: g, H1: public, G2: g, H2: public}, proof.Secrets{X: secret})
}

// VerifyOwnership verifies an organization's ownership of this public
// key, as the peer on the other end of ch.
func (k OrgPublicKey) VerifyOwnership(ctx context.Context, ch channel.Channel) error {
	if err := verifyOwnership(ctx, ch, k.y1); err != nil {
		return err
	}
	return verifyOwnership(ctx, ch, k.y2)
}

func verifyOwnership(ctx context.Context, ch channel.Channel, public group.Point) error {
	g := group.Base()
	return proof.Verify(ctx, ch, proof.Publics{G1: g, H1: public, G2: g, H2: public})
}
