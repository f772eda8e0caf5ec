// Package nym implements the pseudonym and credential protocols: nym
// generation (standard and CA-gated), authentication, credential
// issuance, and credential transfer between organizations.
//
// Grounded on original_source/src/nym.rs's Nym/Cred/Org/User types and
// protocol bodies, translated one-for-one from async fn + .await over a
// LocalTransport to Go methods taking a context.Context and a
// channel.Channel, run as two goroutines joined by channel.Pair in tests.
package nym

import (
	"context"

	"github.com/anupsv/nym/channel"
	"github.com/anupsv/nym/group"
	"github.com/anupsv/nym/internal/common"
	"github.com/anupsv/nym/keys"
	"github.com/anupsv/nym/proof"
	"github.com/anupsv/nym/proof/blind"
)

// Nym is a pseudonym: a pair of points (a, b) with b = x*a for the
// holder's master secret x. Once generated it is immutable.
type Nym struct {
	a, b group.Point
}

// A returns the nym's first point.
func (n Nym) A() group.Point { return n.a }

// B returns the nym's second point.
func (n Nym) B() group.Point { return n.b }

// Equal reports whether two nyms are the same pair of group elements.
func (n Nym) Equal(other Nym) bool {
	return n.a.Equal(other.a) && n.b.Equal(other.b)
}

// Cred is a credential issued by an organization for a nym: a
// rerandomization (a, b) of the nym's own points, plus (A, B) binding the
// credential to the issuer's key, plus two Π_NI transcripts proving that
// binding to anyone holding the issuer's public key.
type Cred struct {
	a, b, capA, capB group.Point
	t1, t2           proof.Transcript
}

// A returns the credential's rerandomized nym point a.
func (c Cred) A() group.Point { return c.a }

// B returns the credential's rerandomized nym point b.
func (c Cred) B() group.Point { return c.b }

// CapA returns the credential's A point (bound to the issuer's x2).
func (c Cred) CapA() group.Point { return c.capA }

// CapB returns the credential's B point (bound to the issuer's x1).
func (c Cred) CapB() group.Point { return c.capB }

// T1 returns the transcript proving log_G(issuer.Y2) = log_b(A).
func (c Cred) T1() proof.Transcript { return c.t1 }

// T2 returns the transcript proving log_G(issuer.Y1) = log_(a+A)(B).
func (c Cred) T2() proof.Transcript { return c.t2 }

// Org is an organization: an issuer and verifier of pseudonyms and
// credentials, holding an OrgSecretKey.
type Org struct {
	sk keys.OrgSecretKey
	pk keys.OrgPublicKey
}

// NewOrg initializes a new organization with the given secret key.
func NewOrg(sk keys.OrgSecretKey) Org {
	return Org{sk: sk, pk: sk.Public()}
}

// PublicKey returns this organization's public key.
func (o Org) PublicKey() keys.OrgPublicKey { return o.pk }

// User is a user: a holder of pseudonyms and credentials across
// organizations, holding a UserSecretKey.
type User struct {
	sk keys.UserSecretKey
	pk keys.UserPublicKey
}

// NewUser initializes a new user with the given secret key.
func NewUser(sk keys.UserSecretKey) User {
	return User{sk: sk, pk: sk.Public()}
}

// PublicKey returns this user's public key.
func (u User) PublicKey() keys.UserPublicKey { return u.pk }

// GenerateNym runs the organization's side of pseudonym generation.
func (o Org) GenerateNym(ctx context.Context, ch channel.Channel) (Nym, error) {
	return o.generateNymImpl(ctx, ch, nil)
}

// GenerateNymAsCA runs the organization's side of pseudonym generation in
// CA mode: it additionally requires the user's first-move values to be
// exactly (G, userKey.Point()), binding the resulting nym to a publicly
// known identity instead of letting the user pick an arbitrary base.
func (o Org) GenerateNymAsCA(ctx context.Context, ch channel.Channel, userKey keys.UserPublicKey) (Nym, error) {
	return o.generateNymImpl(ctx, ch, &userKey)
}

func (o Org) generateNymImpl(ctx context.Context, ch channel.Channel, caUserKey *keys.UserPublicKey) (Nym, error) {
	aTilde, err := ch.ReceivePoint(ctx, common.LabelATilde)
	if err != nil {
		return Nym{}, err
	}
	bTilde, err := ch.ReceivePoint(ctx, common.LabelBTilde)
	if err != nil {
		return Nym{}, err
	}

	if caUserKey != nil {
		if !aTilde.Equal(group.Base()) {
			return Nym{}, common.ErrBadProof
		}
		if !bTilde.Equal(caUserKey.Point()) {
			return Nym{}, common.ErrBadProof
		}
	}

	r, err := group.RandomScalar(randReader)
	if err != nil {
		return Nym{}, err
	}
	a := aTilde.Mul(r)
	if err := ch.SendPoint(ctx, common.LabelA, a); err != nil {
		return Nym{}, err
	}
	b, err := ch.ReceivePoint(ctx, common.LabelB)
	if err != nil {
		return Nym{}, err
	}

	if err := proof.Verify(ctx, ch, proof.Publics{G1: a, H1: b, G2: aTilde, H2: bTilde}); err != nil {
		return Nym{}, err
	}
	return Nym{a: a, b: b}, nil
}

// GenerateNym runs the user's side of pseudonym generation, picking a
// fresh base a~ = γ*G for a random γ.
func (u User) GenerateNym(ctx context.Context, ch channel.Channel) (Nym, error) {
	gamma, err := group.RandomScalar(randReader)
	if err != nil {
		return Nym{}, err
	}
	aTilde := group.Base().Mul(gamma)
	bTilde := aTilde.Mul(u.sk.Exponent())
	return u.generateNymImpl(ctx, ch, aTilde, bTilde)
}

// GenerateNymWithCA runs the user's side of pseudonym generation in CA
// mode, sending the generator G as a~ instead of a fresh random base and
// the user's own public key as b~, so the organization can check them
// against a known identity.
func (u User) GenerateNymWithCA(ctx context.Context, ch channel.Channel) (Nym, error) {
	aTilde := group.Base()
	bTilde := u.pk.Point()
	return u.generateNymImpl(ctx, ch, aTilde, bTilde)
}

func (u User) generateNymImpl(ctx context.Context, ch channel.Channel, aTilde, bTilde group.Point) (Nym, error) {
	if err := ch.SendPoint(ctx, common.LabelATilde, aTilde); err != nil {
		return Nym{}, err
	}
	if err := ch.SendPoint(ctx, common.LabelBTilde, bTilde); err != nil {
		return Nym{}, err
	}
	a, err := ch.ReceivePoint(ctx, common.LabelA)
	if err != nil {
		return Nym{}, err
	}
	b := a.Mul(u.sk.Exponent())
	if err := ch.SendPoint(ctx, common.LabelB, b); err != nil {
		return Nym{}, err
	}

	err = proof.Prove(ctx, ch, proof.Publics{G1: a, H1: b, G2: aTilde, H2: bTilde}, proof.Secrets{X: u.sk.Exponent()})
	if err != nil {
		return Nym{}, err
	}
	return Nym{a: a, b: b}, nil
}

// AuthenticateNym runs the organization's side of authenticating a user
// as the holder of nym. Note the degenerate statement: g1=g2=nym.a,
// h1=h2=nym.b. This is deliberately not short-circuited to a bare Schnorr
// proof — both first-move values still cross the wire, exactly as Π
// specifies, so the wire behavior of authentication is identical in shape
// to every other use of Π in this package.
func (o Org) AuthenticateNym(ctx context.Context, ch channel.Channel, nym Nym) error {
	return proof.Verify(ctx, ch, proof.Publics{G1: nym.a, H1: nym.b, G2: nym.a, H2: nym.b})
}

// AuthenticateNym runs the user's side of authenticating as the holder of
// nym.
func (u User) AuthenticateNym(ctx context.Context, ch channel.Channel, nym Nym) error {
	return proof.Prove(ctx, ch, proof.Publics{G1: nym.a, H1: nym.b, G2: nym.a, H2: nym.b}, proof.Secrets{X: u.sk.Exponent()})
}

// IssueCredential runs the organization's side of issuing a credential
// for nym: it commits A = x2*b and B = x1*(a + A) under its own key, then
// proves both bindings via Γ so the user walks away with a reusable,
// rerandomizable transcript instead of a one-shot interactive proof.
func (o Org) IssueCredential(ctx context.Context, ch channel.Channel, nym Nym) error {
	x1, x2 := o.sk.Exponents()
	capA := nym.b.Mul(x2)
	capB := nym.a.Add(capA).Mul(x1)

	if err := ch.SendPoint(ctx, common.LabelCapA, capA); err != nil {
		return err
	}
	if err := ch.SendPoint(ctx, common.LabelCapB, capB); err != nil {
		return err
	}

	y1, y2 := o.pk.Points()
	err := blind.Prove(ctx, ch, proof.Publics{G1: group.Base(), H1: y2, G2: nym.b, H2: capA}, proof.Secrets{X: x2})
	if err != nil {
		return err
	}
	return blind.Prove(ctx, ch, proof.Publics{G1: group.Base(), H1: y1, G2: nym.a.Add(capA), H2: capB}, proof.Secrets{X: x1})
}

// IssueCredential runs the user's side of issuing a credential for nym
// from an organization known to hold sourceKey, verifying both Γ
// transcripts and rerandomizing the whole credential by a fresh γ so it
// shares no group element with any other credential issued for this nym.
func (u User) IssueCredential(ctx context.Context, ch channel.Channel, nym Nym, sourceKey keys.OrgPublicKey) (Cred, error) {
	capA, err := ch.ReceivePoint(ctx, common.LabelCapA)
	if err != nil {
		return Cred{}, err
	}
	capB, err := ch.ReceivePoint(ctx, common.LabelCapB)
	if err != nil {
		return Cred{}, err
	}

	gamma, err := group.RandomScalar(randReader)
	if err != nil {
		return Cred{}, err
	}

	y1, y2 := sourceKey.Points()
	t1, err := blind.Verify(ctx, ch, proof.Publics{G1: group.Base(), H1: y2, G2: nym.b, H2: capA}, blind.VerifierSecrets{Gamma: gamma})
	if err != nil {
		return Cred{}, err
	}
	t2, err := blind.Verify(ctx, ch, proof.Publics{G1: group.Base(), H1: y1, G2: nym.a.Add(capA), H2: capB}, blind.VerifierSecrets{Gamma: gamma})
	if err != nil {
		return Cred{}, err
	}

	return Cred{
		a:    nym.a.Mul(gamma),
		b:    nym.b.Mul(gamma),
		capA: capA.Mul(gamma),
		capB: capB.Mul(gamma),
		t1:   t1,
		t2:   t2,
	}, nil
}

// TransferCredential runs the organization's side of transferring a
// credential issued by a different organization (known to hold
// sourceKey): it checks the credential's two transcripts against that
// issuer's key, then runs Π to confirm the caller's nym at this
// organization corresponds to the same master secret as the credential.
func (o Org) TransferCredential(ctx context.Context, ch channel.Channel, nym Nym, cred Cred, sourceKey keys.OrgPublicKey) error {
	y1, y2 := sourceKey.Points()
	if err := cred.t1.Verify(proof.Publics{G1: group.Base(), H1: y2, G2: cred.b, H2: cred.capA}); err != nil {
		return err
	}
	if err := cred.t2.Verify(proof.Publics{G1: group.Base(), H1: y1, G2: cred.a.Add(cred.capA), H2: cred.capB}); err != nil {
		return err
	}
	return proof.Verify(ctx, ch, proof.Publics{G1: nym.a, H1: nym.b, G2: cred.a, H2: cred.b})
}

// TransferCredential runs the user's side of transferring cred, proving
// that the nym they hold at the destination organization shares the same
// master secret as the points in cred.
func (u User) TransferCredential(ctx context.Context, ch channel.Channel, nym Nym, cred Cred) error {
	return proof.Prove(ctx, ch, proof.Publics{G1: nym.a, H1: nym.b, G2: cred.a, H2: cred.b}, proof.Secrets{X: u.sk.Exponent()})
}

// MarshalCred encodes a credential as the concatenation, in field order,
// of its four points and two transcripts, per spec §6's persisted-format
// requirement.
func MarshalCred(c Cred) []byte {
	out := make([]byte, 0)
	out = append(out, c.a.Marshal()...)
	out = append(out, c.b.Marshal()...)
	out = append(out, c.capA.Marshal()...)
	out = append(out, c.capB.Marshal()...)
	out = append(out, c.t1.Marshal()...)
	out = append(out, c.t2.Marshal()...)
	return out
}
