// Package tower implements the BLS12-381 extension tower of spec.md 4.C:
// F_q2 = F_q[u]/(u^2+1), F_q6 = F_q2[v]/(v^3-xi) with xi = u+1, and
// F_q12 = F_q6[w]/(w^2-v). Each level exposes the core arithmetic of
// field.Fq (Add, Sub, Neg, Mul, Square, Inverse, IsZero, Equal); Fq2 adds
// MulNonres (multiplication by xi) and Fq6 adds MulByV (multiplication by
// v), per spec.md 4.C.
package tower

import (
	"math/big"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/zkerrors"
)

// Fq2 represents c0 + c1*u, u^2 = -1.
type Fq2 struct {
	C0, C1 field.Fq
}

func NewFq2(c0, c1 field.Fq) Fq2 { return Fq2{C0: c0, C1: c1} }

func Fq2Zero() Fq2 { return Fq2{C0: field.FqZero(), C1: field.FqZero()} }
func Fq2One() Fq2  { return Fq2{C0: field.FqOne(), C1: field.FqZero()} }

func (a Fq2) IsZero() bool      { return a.C0.IsZero() && a.C1.IsZero() }
func (a Fq2) Equal(b Fq2) bool  { return a.C0.Equal(b.C0) && a.C1.Equal(b.C1) }
func (a Fq2) Add(b Fq2) Fq2     { return Fq2{a.C0.Add(b.C0), a.C1.Add(b.C1)} }
func (a Fq2) Sub(b Fq2) Fq2     { return Fq2{a.C0.Sub(b.C0), a.C1.Sub(b.C1)} }
func (a Fq2) Neg() Fq2          { return Fq2{a.C0.Neg(), a.C1.Neg()} }
func (a Fq2) Conjugate() Fq2    { return Fq2{a.C0, a.C1.Neg()} }

// Mul computes (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u.
func (a Fq2) Mul(b Fq2) Fq2 {
	v0 := a.C0.Mul(b.C0)
	v1 := a.C1.Mul(b.C1)
	c0 := v0.Sub(v1)
	c1 := a.C0.Add(a.C1).Mul(b.C0.Add(b.C1)).Sub(v0).Sub(v1)
	return Fq2{c0, c1}
}

func (a Fq2) Square() Fq2 {
	ab := a.C0.Mul(a.C1)
	c0 := a.C0.Add(a.C1).Mul(a.C0.Sub(a.C1))
	c1 := ab.Add(ab)
	return Fq2{c0, c1}
}

// MulScalar multiplies by a base-field scalar.
func (a Fq2) MulScalar(s field.Fq) Fq2 { return Fq2{a.C0.Mul(s), a.C1.Mul(s)} }

// MulNonres multiplies by the F_q6 non-residue xi = u+1:
// (1+u)(c0+c1 u) = (c0-c1) + (c0+c1) u, per spec.md 4.C.
func (a Fq2) MulNonres() Fq2 {
	return Fq2{a.C0.Sub(a.C1), a.C0.Add(a.C1)}
}

// Inverse returns (c0,c1)^-1 = (c0,-c1) * (c0^2+c1^2)^-1, per spec.md 4.C.
func (a Fq2) Inverse() (Fq2, error) {
	if a.IsZero() {
		return Fq2{}, zkerrors.NewDomainError("tower.Fq2.Inverse")
	}
	norm := a.C0.Square().Add(a.C1.Square())
	normInv, err := norm.Inverse()
	if err != nil {
		return Fq2{}, err
	}
	return Fq2{a.C0.Mul(normInv), a.C1.Neg().Mul(normInv)}, nil
}

// Frobenius computes a^q = conjugate(a), since u^q = -u when q = 3 mod 4.
func (a Fq2) Frobenius() Fq2 { return a.Conjugate() }

// Sgn0 returns the hash-to-curve "sign" of an Fq2 element.
func (a Fq2) Sgn0() int {
	sign0 := a.C0.Sgn0()
	zero0 := 0
	if a.C0.IsZero() {
		zero0 = 1
	}
	return sign0 | (zero0 & a.C1.Sgn0())
}

// IsSquare reports whether a is a quadratic residue: its norm c0^2+c1^2 is
// a QR in F_q (valid since q = 3 mod 4).
func (a Fq2) IsSquare() bool {
	if a.IsZero() {
		return true
	}
	return a.C0.Square().Add(a.C1.Square()).IsSquare()
}

// Sqrt returns a square root of a, or (Fq2{}, false) if none exists.
func (a Fq2) Sqrt() (Fq2, bool) {
	if a.IsZero() {
		return Fq2Zero(), true
	}
	if a.C1.IsZero() {
		// Every F_q element is a square in F_q2: either sqrt(c0) or
		// sqrt(-c0)*u.
		if r, ok := a.C0.Sqrt(); ok {
			return Fq2{r, field.FqZero()}, true
		}
		r, ok := a.C0.Neg().Sqrt()
		if !ok {
			return Fq2{}, false
		}
		return Fq2{field.FqZero(), r}, true
	}
	norm := a.C0.Square().Add(a.C1.Square())
	if !norm.IsSquare() {
		return Fq2{}, false
	}
	sqrtNorm, ok := norm.Sqrt()
	if !ok {
		return Fq2{}, false
	}
	two := field.NewFqFromUint64(2)
	twoInv, _ := two.Inverse()
	for _, sign := range []int{1, -1} {
		var cand field.Fq
		if sign == 1 {
			cand = a.C0.Add(sqrtNorm).Mul(twoInv)
		} else {
			cand = a.C0.Sub(sqrtNorm).Mul(twoInv)
		}
		if !cand.IsSquare() {
			continue
		}
		x0, ok := cand.Sqrt()
		if !ok {
			continue
		}
		doubleX0 := x0.Add(x0)
		if doubleX0.IsZero() {
			continue
		}
		doubleX0Inv, err := doubleX0.Inverse()
		if err != nil {
			continue
		}
		x1 := a.C1.Mul(doubleX0Inv)
		result := Fq2{x0, x1}
		if result.Square().Equal(a) {
			return result, true
		}
	}
	return Fq2{}, false
}

// Fq2FromHex builds an Fq2 constant from big-endian hex strings, used for the
// fixed BLS12-381 curve/tower parameters.
func Fq2FromHex(c0hex, c1hex string) Fq2 {
	c0, _ := new(big.Int).SetString(c0hex, 16)
	c1, _ := new(big.Int).SetString(c1hex, 16)
	return Fq2{field.NewFq(c0), field.NewFq(c1)}
}
