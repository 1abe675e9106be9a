package qap

import (
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/r1cs"
	"github.com/zkcore/zkcore/zkerrors"
)

// QAP is the quadratic arithmetic program derived from an R1CS system:
// per-variable A/B/C polynomials of degree < m, and the degree-m target
// polynomial t(x) = prod(x - omega_j), per spec.md 4.G.
type QAP struct {
	A, B, C []Poly
	Target  Poly
	Points  []field.Fr
}

// interpolationPoints returns m distinct small-integer points 1..m,
// acceptable for legibility per spec.md 4.G.
func interpolationPoints(m int) []field.Fr {
	pts := make([]field.Fr, m)
	for i := 0; i < m; i++ {
		pts[i] = field.NewFrFromUint64(uint64(i + 1))
	}
	return pts
}

// lagrangeInterpolate returns the unique degree-<len(points) polynomial
// in coefficient form passing through (points[j], values[j]) for all j.
func lagrangeInterpolate(points, values []field.Fr) Poly {
	result := Poly{field.FrZero()}
	for j := range points {
		if values[j].IsZero() {
			continue
		}
		basis := Poly{field.FrOne()}
		denom := field.FrOne()
		for k := range points {
			if k == j {
				continue
			}
			// basis *= (x - points[k])
			basis = basis.Mul(Poly{points[k].Neg(), field.FrOne()})
			denom = denom.Mul(points[j].Sub(points[k]))
		}
		denomInv, _ := denom.Inverse()
		result = result.Add(basis.MulScalar(values[j].Mul(denomInv)))
	}
	return result
}

// Build constructs the QAP for sys: for each witness index i, A_i, B_i,
// C_i interpolate the i-th column of the constraint matrices at the
// chosen points, per spec.md 4.G.
func Build(sys *r1cs.System) *QAP {
	m := sys.ConstraintCount()
	points := interpolationPoints(m)

	colValues := func(terms func(row r1cs.Row) []r1cs.SparseTerm, varIdx int) []field.Fr {
		vals := make([]field.Fr, m)
		for j, row := range sys.Rows {
			vals[j] = field.FrZero()
			for _, t := range terms(row) {
				if t.Index == varIdx {
					vals[j] = vals[j].Add(t.Coefficient)
				}
			}
		}
		return vals
	}

	a := make([]Poly, sys.NumVariables)
	b := make([]Poly, sys.NumVariables)
	c := make([]Poly, sys.NumVariables)
	for i := 0; i < sys.NumVariables; i++ {
		a[i] = lagrangeInterpolate(points, colValues(func(r r1cs.Row) []r1cs.SparseTerm { return r.A }, i))
		b[i] = lagrangeInterpolate(points, colValues(func(r r1cs.Row) []r1cs.SparseTerm { return r.B }, i))
		c[i] = lagrangeInterpolate(points, colValues(func(r r1cs.Row) []r1cs.SparseTerm { return r.C }, i))
	}

	target := Poly{field.FrOne()}
	for _, pt := range points {
		target = target.Mul(Poly{pt.Neg(), field.FrOne()})
	}

	return &QAP{A: a, B: b, C: c, Target: target, Points: points}
}

// WitnessPolynomials combines the per-variable polynomials against a
// witness: (sum w_i A_i), (sum w_i B_i), (sum w_i C_i).
func (q *QAP) WitnessPolynomials(witness []field.Fr) (Poly, Poly, Poly) {
	sumA := Poly{}
	sumB := Poly{}
	sumC := Poly{}
	for i, w := range witness {
		if w.IsZero() {
			continue
		}
		sumA = sumA.Add(q.A[i].MulScalar(w))
		sumB = sumB.Add(q.B[i].MulScalar(w))
		sumC = sumC.Add(q.C[i].MulScalar(w))
	}
	return sumA, sumB, sumC
}

// H computes h(x) = ((sum w_i A_i)(sum w_i B_i) - sum w_i C_i) / t(x),
// returning an UnsatisfiedConstraintError when the remainder is nonzero,
// per spec.md 4.G.
func (q *QAP) H(witness []field.Fr) (Poly, error) {
	sumA, sumB, sumC := q.WitnessPolynomials(witness)
	p := sumA.Mul(sumB).Sub(sumC)
	quotient, remainder, err := p.DivRem(q.Target)
	if err != nil {
		return nil, err
	}
	if remainder.Degree() >= 0 {
		return nil, zkerrors.NewUnsatisfiedConstraintError(-1)
	}
	return quotient, nil
}
