package bls12381

import (
	"math/big"

	"github.com/zkcore/zkcore/curve"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/zkerrors"
)

// G1 is a point on the BLS12-381 G1 curve, y^2 = x^3 + 4 over F_q.
type G1 struct {
	pt curve.Point[field.Fq]
}

// G1Infinity returns the identity of G1.
func G1Infinity() G1 { return G1{curve.Infinity(g1Params)} }

// NewG1Affine builds a G1 point from affine coordinates, rejecting points
// not on the curve (spec.md 4.D).
func NewG1Affine(x, y field.Fq) (G1, error) {
	a := curve.Affine[field.Fq]{X: x, Y: y}
	if !curve.IsOnCurve(g1Params, a) {
		return G1{}, zkerrors.NewNotOnCurveError("G1")
	}
	return G1{curve.FromAffine(g1Params, a)}, nil
}

func (p G1) IsInfinity() bool { return p.pt.IsInfinity() }

// Affine returns the affine coordinates of p.
func (p G1) Affine() (field.Fq, field.Fq, error) {
	a, err := p.pt.ToAffine(g1Params)
	if err != nil {
		return field.Fq{}, field.Fq{}, err
	}
	return a.X, a.Y, nil
}

func (p G1) Equal(q G1) bool {
	pa, err1 := p.pt.ToAffine(g1Params)
	qa, err2 := q.pt.ToAffine(g1Params)
	if err1 != nil || err2 != nil {
		return p.IsInfinity() && q.IsInfinity()
	}
	return pa.X.Equal(qa.X) && pa.Y.Equal(qa.Y)
}

func (p G1) Add(q G1) G1 { return G1{curve.Add(g1Params, p.pt, q.pt)} }
func (p G1) Double() G1  { return G1{curve.Double(g1Params, p.pt)} }
func (p G1) Neg() G1     { return G1{curve.Neg(p.pt)} }

// ScalarMul computes [k]P by double-and-add, per spec.md 4.D.
func (p G1) ScalarMul(k *big.Int) G1 {
	if k.Sign() == 0 {
		return G1Infinity()
	}
	kMod := new(big.Int).Mod(k, field.FrModulusBig)
	return G1{curve.ScalarMul(g1Params, scalarBits(kMod), p.pt)}
}

// InSubgroup checks [r]P == infinity, the naive fallback spec.md 4.E
// allows for G1. This computes [r]P directly against curve.ScalarMul
// rather than going through the G1.ScalarMul wrapper, which reduces its
// scalar mod r first (k=r would collapse to [0]P = infinity for any P,
// making the check vacuous).
func (p G1) InSubgroup() bool {
	if p.IsInfinity() {
		return true
	}
	rP := G1{curve.ScalarMul(g1Params, scalarBits(field.FrModulusBig), p.pt)}
	return rP.IsInfinity()
}
