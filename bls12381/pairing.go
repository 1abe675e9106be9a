package bls12381

import (
	"math/big"

	"github.com/zkcore/zkcore/curve"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/tower"
)

// GT is the pairing target group, the order-r subgroup of F_q12^*.
type GT struct {
	v tower.Fq12
}

func (a GT) Equal(b GT) bool { return a.v.Equal(b.v) }
func (a GT) Mul(b GT) GT     { return GT{a.v.Mul(b.v)} }
func (a GT) IsOne() bool     { return a.v.IsOne() }

// lineAdd evaluates the chord through R and Q at P = (px, py) and returns
// the sparse F_q12 line value together with R+Q, per spec.md 4.F.
func lineAdd(r curve.Point[tower.Fq2], qx, qy tower.Fq2, px, py field.Fq) (tower.Fq12, curve.Point[tower.Fq2]) {
	if r.IsInfinity() {
		return tower.Fq12One(), curve.FromAffine(g2Params, curve.Affine[tower.Fq2]{X: qx, Y: qy})
	}
	ra, err := r.ToAffine(g2Params)
	if err != nil {
		return tower.Fq12One(), curve.FromAffine(g2Params, curve.Affine[tower.Fq2]{X: qx, Y: qy})
	}
	rx, ry := ra.X, ra.Y

	if rx.Equal(qx) && ry.Equal(qy) {
		return lineDouble(r, px, py)
	}

	num := qy.Sub(ry)
	den := qx.Sub(rx)
	if den.IsZero() {
		return tower.Fq12One(), curve.Infinity(g2Params)
	}
	denInv, _ := den.Inverse()
	lambda := num.Mul(denInv)

	ell0 := lambda.Mul(rx).Sub(ry)
	ell1 := lambda.MulScalar(px).Neg()
	f := sparseLine(ell0, ell1, py)

	newR := curve.Add(g2Params, r, curve.FromAffine(g2Params, curve.Affine[tower.Fq2]{X: qx, Y: qy}))
	return f, newR
}

// lineDouble evaluates the tangent at R at P = (px, py) and returns the
// sparse F_q12 line value together with 2R, per spec.md 4.F.
func lineDouble(r curve.Point[tower.Fq2], px, py field.Fq) (tower.Fq12, curve.Point[tower.Fq2]) {
	if r.IsInfinity() {
		return tower.Fq12One(), curve.Infinity(g2Params)
	}
	ra, err := r.ToAffine(g2Params)
	if err != nil {
		return tower.Fq12One(), curve.Infinity(g2Params)
	}
	rx, ry := ra.X, ra.Y
	if ry.IsZero() {
		return tower.Fq12One(), curve.Infinity(g2Params)
	}

	three := tower.NewFq2(field.NewFqFromUint64(3), field.FqZero())
	two := tower.NewFq2(field.NewFqFromUint64(2), field.FqZero())
	num := three.Mul(rx.Square())
	den := two.Mul(ry)
	denInv, _ := den.Inverse()
	lambda := num.Mul(denInv)

	ell0 := lambda.Mul(rx).Sub(ry)
	ell1 := lambda.MulScalar(px).Neg()
	f := sparseLine(ell0, ell1, py)

	return f, curve.Double(g2Params, r)
}

// sparseLine embeds the line coefficients into F_q12: c0 = (ell0, ell1, 0),
// c1 = (0, py, 0), per spec.md 4.F's sparse multiplication layout.
func sparseLine(ell0, ell1 tower.Fq2, py field.Fq) tower.Fq12 {
	pyFq2 := tower.NewFq2(py, field.FqZero())
	return tower.Fq12{
		C0: tower.Fq6{C0: ell0, C1: ell1, C2: tower.Fq2Zero()},
		C1: tower.Fq6{C0: tower.Fq2Zero(), C1: pyFq2, C2: tower.Fq2Zero()},
	}
}

// MillerLoop computes Miller's algorithm on (P, Q), per spec.md 4.F.
func MillerLoop(p G1, q G2) tower.Fq12 {
	if p.IsInfinity() || q.IsInfinity() {
		return tower.Fq12One()
	}
	pa, err := p.pt.ToAffine(g1Params)
	if err != nil {
		return tower.Fq12One()
	}
	qa, err := q.pt.ToAffine(g2Params)
	if err != nil {
		return tower.Fq12One()
	}
	px, py := pa.X, pa.Y
	qx, qy := qa.X, qa.Y

	f := tower.Fq12One()
	r := curve.FromAffine(g2Params, curve.Affine[tower.Fq2]{X: qx, Y: qy})

	for i := X.BitLen() - 2; i >= 0; i-- {
		var lineF tower.Fq12
		lineF, r = lineDouble(r, px, py)
		f = f.Square().Mul(lineF)

		if X.Bit(i) == 1 {
			lineF, r = lineAdd(r, qx, qy, px, py)
			f = f.Mul(lineF)
		}
	}

	// x is negative; conjugate to account for the sign, per spec.md 4.F.
	return f.Conjugate()
}

// FinalExponentiation raises f to (q^12-1)/r, split into the easy part
// (Frobenius and inverse) and the hard part, per spec.md 4.F.
func FinalExponentiation(f tower.Fq12) GT {
	fInv, err := f.Inverse()
	if err != nil {
		return GT{tower.Fq12One()}
	}
	f1 := f.Conjugate().Mul(fInv)

	qSquared := new(big.Int).Mul(field.FqModulus, field.FqModulus)
	f1p2 := f1.Pow(qSquared)
	f2 := f1p2.Mul(f1)

	q2 := new(big.Int).Mul(field.FqModulus, field.FqModulus)
	q4 := new(big.Int).Mul(q2, q2)
	hardExp := new(big.Int).Sub(q4, q2)
	hardExp.Add(hardExp, big.NewInt(1))
	hardExp.Div(hardExp, field.FrModulusBig)

	return GT{f2.Pow(hardExp)}
}

// Pairing computes the optimal ate pairing e(P, Q), per spec.md 4.F.
func Pairing(p G1, q G2) GT {
	return FinalExponentiation(MillerLoop(p, q))
}

// MultiPairingIsOne checks product(e(P_i, Q_i)) == 1 in GT, the form
// Pinocchio's batched verification equations use.
func MultiPairingIsOne(ps []G1, qs []G2) bool {
	f := tower.Fq12One()
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		f = f.Mul(MillerLoop(ps[i], qs[i]))
	}
	return FinalExponentiation(f).IsOne()
}
