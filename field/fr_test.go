package field

import (
	"math/big"
	"testing"
)

func TestFrAddSubRoundTrip(t *testing.T) {
	a := NewFrFromUint64(12345)
	b := NewFrFromUint64(6789)
	sum := a.Add(b)
	back := sum.Sub(b)
	if !back.Equal(a) {
		t.Errorf("(a+b)-b = %s, want %s", back.BigInt(), a.BigInt())
	}
}

func TestFrSubUnderflowWraps(t *testing.T) {
	a := NewFrFromUint64(1)
	b := NewFrFromUint64(2)
	got := a.Sub(b) // 1 - 2 mod r == r - 1
	want := new(big.Int).Sub(frModulusBig, big.NewInt(1))
	if got.BigInt().Cmp(want) != 0 {
		t.Errorf("1-2 mod r = %s, want %s", got.BigInt(), want)
	}
}

func TestFrMulInverseIsOne(t *testing.T) {
	a := NewFrFromUint64(42)
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !a.Mul(inv).Equal(FrOne()) {
		t.Errorf("42 * 42^-1 != 1")
	}
}

func TestFrInverseZeroIsDomainError(t *testing.T) {
	_, err := FrZero().Inverse()
	if err == nil {
		t.Fatal("expected DomainError for 0^-1")
	}
}

func TestFrPowZeroExponent(t *testing.T) {
	a := NewFrFromUint64(7)
	if !a.Pow(big.NewInt(0)).Equal(FrOne()) {
		t.Errorf("a^0 != 1")
	}
}

func TestFrFermatLittleTheorem(t *testing.T) {
	a := NewFrFromUint64(1234567)
	rMinus1 := new(big.Int).Sub(frModulusBig, big.NewInt(1))
	if !a.Pow(rMinus1).Equal(FrOne()) {
		t.Errorf("a^(r-1) != 1")
	}
}

func TestFrBytesRoundTrip(t *testing.T) {
	a := NewFrFromUint64(0xdeadbeef)
	b := a.Bytes()
	got := FrSetBytes(b[:])
	if !got.Equal(a) {
		t.Errorf("FrSetBytes(a.Bytes()) != a")
	}
}

func TestFrDistributivity(t *testing.T) {
	a := NewFrFromUint64(3)
	b := NewFrFromUint64(5)
	c := NewFrFromUint64(7)
	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	if !lhs.Equal(rhs) {
		t.Errorf("a*(b+c) != a*b + a*c")
	}
}
