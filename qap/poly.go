// Package qap builds the quadratic arithmetic program for an R1CS
// system, per spec.md 4.G: per-variable A/B/C polynomials via Lagrange
// interpolation in the coefficient basis, the target polynomial t(x),
// and the witness polynomial h(x) obtained by exact division.
package qap

import (
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/zkerrors"
)

var errDivisionByZeroPoly = zkerrors.NewDomainError("qap.Poly.DivRem: division by zero polynomial")

// Poly is a polynomial over F_r stored in coefficient form, lowest
// degree first, per spec.md 9's "Polynomial representation" design note.
type Poly []field.Fr

func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// trim drops trailing zero coefficients.
func (p Poly) trim() Poly {
	d := p.Degree()
	if d < 0 {
		return Poly{}
	}
	return p[:d+1]
}

func (p Poly) Add(q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		var a, b field.Fr
		if i < len(p) {
			a = p[i]
		} else {
			a = field.FrZero()
		}
		if i < len(q) {
			b = q[i]
		} else {
			b = field.FrZero()
		}
		out[i] = a.Add(b)
	}
	return out.trim()
}

func (p Poly) Sub(q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		var a, b field.Fr
		if i < len(p) {
			a = p[i]
		} else {
			a = field.FrZero()
		}
		if i < len(q) {
			b = q[i]
		} else {
			b = field.FrZero()
		}
		out[i] = a.Sub(b)
	}
	return out.trim()
}

// Mul is schoolbook multiplication, acceptable per spec.md 9 since QAP
// polynomial degrees (the number of constraints) stay small.
func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i := range out {
		out[i] = field.FrZero()
	}
	for i, a := range p {
		if a.IsZero() {
			continue
		}
		for j, b := range q {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return out.trim()
}

func (p Poly) MulScalar(s field.Fr) Poly {
	out := make(Poly, len(p))
	for i, a := range p {
		out[i] = a.Mul(s)
	}
	return out.trim()
}

// Eval evaluates p at x via Horner's method.
func (p Poly) Eval(x field.Fr) field.Fr {
	acc := field.FrZero()
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p[i])
	}
	return acc
}

// DivRem divides p by q, returning quotient and remainder (schoolbook
// long division). q must not be the zero polynomial.
func (p Poly) DivRem(q Poly) (quotient, remainder Poly, err error) {
	qd := q.Degree()
	if qd < 0 {
		return nil, nil, errDivisionByZeroPoly
	}
	leadInv, invErr := q[qd].Inverse()
	if invErr != nil {
		return nil, nil, invErr
	}

	remainder = append(Poly{}, p...)
	remDeg := remainder.trim().Degree()
	remainder = remainder.trim()

	quotDeg := remDeg - qd
	if quotDeg < 0 {
		return Poly{}, remainder, nil
	}
	quotient = make(Poly, quotDeg+1)
	for i := range quotient {
		quotient[i] = field.FrZero()
	}

	for remDeg >= qd {
		coeff := remainder[remDeg].Mul(leadInv)
		shift := remDeg - qd
		quotient[shift] = coeff

		for i := 0; i <= qd; i++ {
			remainder[shift+i] = remainder[shift+i].Sub(coeff.Mul(q[i]))
		}
		remainder = remainder.trim()
		remDeg = remainder.Degree()
	}
	return quotient.trim(), remainder, nil
}
