package tower

import (
	"math/big"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/zkerrors"
)

// Fq12 represents c0 + c1*w, w^2 = v.
type Fq12 struct {
	C0, C1 Fq6
}

func NewFq12(c0, c1 Fq6) Fq12 { return Fq12{c0, c1} }

func Fq12Zero() Fq12 { return Fq12{Fq6Zero(), Fq6Zero()} }
func Fq12One() Fq12  { return Fq12{Fq6One(), Fq6Zero()} }

func (a Fq12) IsZero() bool     { return a.C0.IsZero() && a.C1.IsZero() }
func (a Fq12) Equal(b Fq12) bool {
	return a.C0.Equal(b.C0) && a.C1.Equal(b.C1)
}

func (a Fq12) IsOne() bool {
	return a.C0.Equal(Fq6One()) && a.C1.IsZero()
}

func (a Fq12) Add(b Fq12) Fq12 { return Fq12{a.C0.Add(b.C0), a.C1.Add(b.C1)} }
func (a Fq12) Sub(b Fq12) Fq12 { return Fq12{a.C0.Sub(b.C0), a.C1.Sub(b.C1)} }
func (a Fq12) Neg() Fq12 { return Fq12{a.C0.Neg(), a.C1.Neg()} }

// Mul computes (a0+a1 w)(b0+b1 w) = (a0 b0 + a1 b1 v) + ((a0+a1)(b0+b1)-a0 b0-a1 b1) w.
func (a Fq12) Mul(b Fq12) Fq12 {
	t0 := a.C0.Mul(b.C0)
	t1 := a.C1.Mul(b.C1)
	c0 := t0.Add(t1.MulByV())
	c1 := a.C0.Add(a.C1).Mul(b.C0.Add(b.C1)).Sub(t0).Sub(t1)
	return Fq12{c0, c1}
}

func (a Fq12) Square() Fq12 {
	ab := a.C0.Mul(a.C1)
	c0 := a.C0.Add(a.C1).Mul(a.C0.Add(a.C1.MulByV())).Sub(ab).Sub(ab.MulByV())
	c1 := ab.Add(ab)
	return Fq12{c0, c1}
}

func (a Fq12) Inverse() (Fq12, error) {
	if a.IsZero() {
		return Fq12{}, zkerrors.NewDomainError("tower.Fq12.Inverse")
	}
	t := a.C0.Square().Sub(a.C1.Square().MulByV())
	tInv, err := t.Inverse()
	if err != nil {
		return Fq12{}, err
	}
	return Fq12{a.C0.Mul(tInv), a.C1.Neg().Mul(tInv)}, nil
}

// Conjugate negates the w-component, equivalent to the order-2 automorphism
// used in the final exponentiation's easy part (spec.md 4.F).
func (a Fq12) Conjugate() Fq12 { return Fq12{a.C0, a.C1.Neg()} }

// Pow computes a^e by square-and-multiply, per spec.md 4.A/B/C.
func (a Fq12) Pow(e *big.Int) Fq12 {
	if e.Sign() == 0 {
		return Fq12One()
	}
	result := Fq12One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(i) == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

// Frobenius computes a^q. Because F_q12 is an F_q-algebra and q is the
// field characteristic, x -> x^q is additive (the binomial coefficients
// C(q,i) for 0<i<q all vanish mod q), so exponentiation by the modulus is
// a mathematically exact Frobenius map; it is simply not the fastest one.
// spec.md 4.C allows this: precomputed coefficient tables for the tower
// Frobenius are an optional optimization, not a correctness requirement.
func (a Fq12) Frobenius() Fq12 { return a.Pow(field.FqModulus) }
