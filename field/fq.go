package field

import (
	"math/big"

	"github.com/zkcore/zkcore/zkerrors"
)

// FqModulus is the BLS12-381 base field prime.
var FqModulus, _ = new(big.Int).SetString(
	"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

// Fq is an element of the base field Z/qZ, stored as its canonical
// big-endian residue. q is 381 bits wide, too large for a fixed 256-bit
// word, so Fq is backed by math/big rather than uint256 (see DESIGN.md).
type Fq struct {
	v *big.Int
}

// FqZero returns the additive identity.
func FqZero() Fq { return Fq{v: new(big.Int)} }

// FqOne returns the multiplicative identity.
func FqOne() Fq { return Fq{v: big.NewInt(1)} }

// NewFq reduces x into the canonical residue class.
func NewFq(x *big.Int) Fq {
	return Fq{v: new(big.Int).Mod(x, FqModulus)}
}

// NewFqFromUint64 builds an Fq from a small non-negative literal.
func NewFqFromUint64(x uint64) Fq {
	return Fq{v: new(big.Int).Mod(new(big.Int).SetUint64(x), FqModulus)}
}

// FqFromCanonical constructs an Fq from a value already known to be < q,
// returning a DomainError otherwise.
func FqFromCanonical(x *big.Int) (Fq, error) {
	if x.Sign() < 0 || x.Cmp(FqModulus) >= 0 {
		return Fq{}, zkerrors.NewDomainError("field.FqFromCanonical")
	}
	return Fq{v: new(big.Int).Set(x)}, nil
}

// BigInt returns the canonical residue.
func (a Fq) BigInt() *big.Int { return new(big.Int).Set(a.v) }

// IsZero reports whether a is the additive identity.
func (a Fq) IsZero() bool { return a.v.Sign() == 0 }

// Equal reports whether a and b denote the same residue.
func (a Fq) Equal(b Fq) bool { return a.v.Cmp(b.v) == 0 }

// Add returns a + b mod q.
func (a Fq) Add(b Fq) Fq {
	r := new(big.Int).Add(a.v, b.v)
	return Fq{v: r.Mod(r, FqModulus)}
}

// Sub returns a - b mod q.
func (a Fq) Sub(b Fq) Fq {
	r := new(big.Int).Sub(a.v, b.v)
	return Fq{v: r.Mod(r, FqModulus)}
}

// Neg returns -a mod q.
func (a Fq) Neg() Fq {
	if a.IsZero() {
		return FqZero()
	}
	return Fq{v: new(big.Int).Sub(FqModulus, a.v)}
}

// Mul returns a * b mod q.
func (a Fq) Mul(b Fq) Fq {
	r := new(big.Int).Mul(a.v, b.v)
	return Fq{v: r.Mod(r, FqModulus)}
}

// Square returns a^2 mod q.
func (a Fq) Square() Fq { return a.Mul(a) }

// Pow returns a^e mod q via square-and-multiply, per spec.md 4.A/B.
func (a Fq) Pow(e *big.Int) Fq {
	result := FqOne()
	base := a
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result
}

// Inverse returns a^-1 mod q using Fermat's little theorem. Returns a
// DomainError for a == 0.
func (a Fq) Inverse() (Fq, error) {
	if a.IsZero() {
		return Fq{}, zkerrors.NewDomainError("field.Fq.Inverse")
	}
	qMinus2 := new(big.Int).Sub(FqModulus, big.NewInt(2))
	return a.Pow(qMinus2), nil
}

// Div returns a / b mod q. Returns a DomainError when b == 0.
func (a Fq) Div(b Fq) (Fq, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Fq{}, err
	}
	return a.Mul(inv), nil
}

// Sqrt returns a square root of a, or (Fq{}, false) if a is not a quadratic
// residue. BLS12-381's q is 3 mod 4, so sqrt(a) = a^((q+1)/4).
func (a Fq) Sqrt() (Fq, bool) {
	if a.IsZero() {
		return FqZero(), true
	}
	exp := new(big.Int).Add(FqModulus, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := a.Pow(exp)
	if !r.Square().Equal(a) {
		return Fq{}, false
	}
	return r, true
}

// IsSquare reports whether a is a quadratic residue, via Euler's criterion.
func (a Fq) IsSquare() bool {
	if a.IsZero() {
		return true
	}
	exp := new(big.Int).Sub(FqModulus, big.NewInt(1))
	exp.Rsh(exp, 1)
	return a.Pow(exp).Equal(FqOne())
}

// Sgn0 returns the "sign" of a per the hash-to-curve convention: the low
// bit of its canonical residue.
func (a Fq) Sgn0() int { return int(a.v.Bit(0)) }

// Bytes encodes a as 48 big-endian bytes.
func (a Fq) Bytes() [48]byte {
	var out [48]byte
	b := a.v.Bytes()
	copy(out[48-len(b):], b)
	return out
}

// FqSetBytes decodes a big-endian byte string into an Fq, reducing mod q.
func FqSetBytes(data []byte) Fq {
	return NewFq(new(big.Int).SetBytes(data))
}
