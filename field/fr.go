// Package field implements the two BLS12-381 prime fields named by the
// specification: the scalar field F_r (component A) and the base field F_q
// (component B). Every stored element is the canonical residue in [0,
// modulus); arithmetic returns fresh values and never mutates its
// arguments, matching the value-object lifecycle the rest of the toolkit
// assumes.
package field

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/zkcore/zkcore/zkerrors"
)

// FrModulus is the order of the BLS12-381 prime-order subgroup, the scalar
// field modulus.
var FrModulus = mustUint256("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

// FrModulusBig mirrors FrModulus as a *big.Int, for callers (scalar
// multiplication bit schedules, the pairing's final exponentiation) that
// need ordinary big.Int arithmetic rather than uint256's fixed-width ops.
var FrModulusBig, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// frModulusBig is a package-local alias kept for brevity in this file.
var frModulusBig = FrModulusBig

func mustUint256(hex string) *uint256.Int {
	v, err := uint256.FromHex("0x" + hex)
	if err != nil {
		panic(err)
	}
	return v
}

// Fr is an element of the scalar field Z/rZ, stored as its canonical
// 256-bit residue.
type Fr struct {
	v uint256.Int
}

// FrZero returns the additive identity.
func FrZero() Fr { return Fr{} }

// FrOne returns the multiplicative identity.
func FrOne() Fr {
	var f Fr
	f.v.SetOne()
	return f
}

// NewFr reduces a big.Int into the canonical residue class.
func NewFr(x *big.Int) Fr {
	r := new(big.Int).Mod(x, frModulusBig)
	var f Fr
	f.v.SetFromBig(r)
	return f
}

// NewFrFromUint64 builds an Fr from a small non-negative literal.
func NewFrFromUint64(x uint64) Fr {
	var f Fr
	f.v.SetUint64(x)
	return f
}

// FrFromCanonical constructs an Fr from a value already known to be < r,
// returning a DomainError otherwise (spec: "invalid field element
// construction (value >= modulus)").
func FrFromCanonical(x *uint256.Int) (Fr, error) {
	if x.Cmp(FrModulus) >= 0 {
		return Fr{}, zkerrors.NewDomainError("field.FrFromCanonical")
	}
	var f Fr
	f.v.Set(x)
	return f, nil
}

// BigInt returns the canonical residue as a *big.Int.
func (a Fr) BigInt() *big.Int { return a.v.ToBig() }

// IsZero reports whether a is the additive identity.
func (a Fr) IsZero() bool { return a.v.IsZero() }

// Equal reports whether a and b denote the same residue.
func (a Fr) Equal(b Fr) bool { return a.v.Eq(&b.v) }

// Add returns a + b mod r.
func (a Fr) Add(b Fr) Fr {
	var f Fr
	f.v.AddMod(&a.v, &b.v, FrModulus)
	return f
}

// Sub returns a - b mod r.
func (a Fr) Sub(b Fr) Fr {
	var f Fr
	if a.v.Lt(&b.v) {
		var tmp uint256.Int
		tmp.Sub(FrModulus, &b.v)
		f.v.AddMod(&a.v, &tmp, FrModulus)
	} else {
		f.v.Sub(&a.v, &b.v)
	}
	return f
}

// Neg returns -a mod r.
func (a Fr) Neg() Fr {
	return FrZero().Sub(a)
}

// Mul returns a * b mod r.
func (a Fr) Mul(b Fr) Fr {
	var f Fr
	f.v.MulMod(&a.v, &b.v, FrModulus)
	return f
}

// Square returns a^2 mod r.
func (a Fr) Square() Fr { return a.Mul(a) }

// Pow returns a^e mod r via square-and-multiply over the big-endian bits of
// e, per spec.md 4.A/B.
func (a Fr) Pow(e *big.Int) Fr {
	result := FrOne()
	base := a
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result
}

// Inverse returns a^-1 mod r using Fermat's little theorem (a^(r-2)).
// Returns a DomainError for a == 0.
func (a Fr) Inverse() (Fr, error) {
	if a.IsZero() {
		return Fr{}, zkerrors.NewDomainError("field.Fr.Inverse")
	}
	rMinus2 := new(big.Int).Sub(frModulusBig, big.NewInt(2))
	return a.Pow(rMinus2), nil
}

// Div returns a / b mod r. Returns a DomainError when b == 0.
func (a Fr) Div(b Fr) (Fr, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Fr{}, err
	}
	return a.Mul(inv), nil
}

// Bytes encodes a as 32 big-endian bytes.
func (a Fr) Bytes() [32]byte { return a.v.Bytes32() }

// FrSetBytes decodes 32 big-endian bytes into an Fr, reducing mod r.
func FrSetBytes(data []byte) Fr {
	var u uint256.Int
	u.SetBytes(data)
	var f Fr
	f.v.Mod(&u, FrModulus)
	return f
}
