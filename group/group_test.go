package group

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestBaseMulRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	p := Base().Mul(s)

	enc := p.Marshal()
	dec, err := UnmarshalPoint(enc)
	if err != nil {
		t.Fatalf("UnmarshalPoint: %v", err)
	}
	if !p.Equal(dec) {
		t.Fatal("point did not round-trip through Marshal/Unmarshal")
	}
}

func TestAddIsCommutative(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	b, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	pa := Base().Mul(a)
	pb := Base().Mul(b)

	if !pa.Add(pb).Equal(pb.Add(pa)) {
		t.Fatal("point addition not commutative")
	}
}

func TestMulDistributesOverScalarAdd(t *testing.T) {
	a, _ := RandomScalar(rand.Reader)
	b, _ := RandomScalar(rand.Reader)

	lhs := Base().Mul(AddScalars(a, b))
	rhs := Base().Mul(a).Add(Base().Mul(b))

	if !lhs.Equal(rhs) {
		t.Fatal("(a+b)*G != a*G + b*G")
	}
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	s, _ := RandomScalar(rand.Reader)
	p := Base().Mul(s)
	if !p.Add(Identity()).Equal(p) {
		t.Fatal("p + identity != p")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	s, _ := RandomScalar(rand.Reader)
	enc := ScalarBytes(s)
	dec, err := UnmarshalScalar(enc)
	if err != nil {
		t.Fatalf("UnmarshalScalar: %v", err)
	}
	if dec.Cmp(s) != 0 {
		t.Fatal("scalar did not round-trip through ScalarBytes/UnmarshalScalar")
	}
}

func TestRandomScalarNeverZero(t *testing.T) {
	for i := 0; i < 64; i++ {
		s, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar: %v", err)
		}
		if s.Sign() == 0 {
			t.Fatal("RandomScalar returned zero")
		}
		if s.Cmp(Order) >= 0 {
			t.Fatal("RandomScalar returned a value >= Order")
		}
	}
}

func TestConstantTimeScalarEq(t *testing.T) {
	a := big.NewInt(42)
	b := big.NewInt(42)
	c := big.NewInt(43)

	if !ConstantTimeScalarEq(a, b) {
		t.Fatal("equal scalars reported unequal")
	}
	if ConstantTimeScalarEq(a, c) {
		t.Fatal("unequal scalars reported equal")
	}
}
