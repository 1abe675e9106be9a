package bls12381

import (
	"math/big"

	"github.com/zkcore/zkcore/curve"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/tower"
	"github.com/zkcore/zkcore/zkerrors"
)

// G2 is a point on the BLS12-381 G2 twist curve, y^2 = x^3 + 4(1+u) over
// F_{q^2}.
type G2 struct {
	pt curve.Point[tower.Fq2]
}

// G2Infinity returns the identity of G2.
func G2Infinity() G2 { return G2{curve.Infinity(g2Params)} }

// NewG2Affine builds a G2 point from affine coordinates, rejecting points
// not on the twist curve (spec.md 4.D).
func NewG2Affine(x, y tower.Fq2) (G2, error) {
	a := curve.Affine[tower.Fq2]{X: x, Y: y}
	if !curve.IsOnCurve(g2Params, a) {
		return G2{}, zkerrors.NewNotOnCurveError("G2")
	}
	return G2{curve.FromAffine(g2Params, a)}, nil
}

func (p G2) IsInfinity() bool { return p.pt.IsInfinity() }

func (p G2) Affine() (tower.Fq2, tower.Fq2, error) {
	a, err := p.pt.ToAffine(g2Params)
	if err != nil {
		return tower.Fq2{}, tower.Fq2{}, err
	}
	return a.X, a.Y, nil
}

func (p G2) Equal(q G2) bool {
	pa, err1 := p.pt.ToAffine(g2Params)
	qa, err2 := q.pt.ToAffine(g2Params)
	if err1 != nil || err2 != nil {
		return p.IsInfinity() && q.IsInfinity()
	}
	return pa.X.Equal(qa.X) && pa.Y.Equal(qa.Y)
}

func (p G2) Add(q G2) G2 { return G2{curve.Add(g2Params, p.pt, q.pt)} }
func (p G2) Double() G2  { return G2{curve.Double(g2Params, p.pt)} }
func (p G2) Neg() G2     { return G2{curve.Neg(p.pt)} }

// ScalarMul computes [k]P by double-and-add, per spec.md 4.D.
func (p G2) ScalarMul(k *big.Int) G2 {
	if k.Sign() == 0 {
		return G2Infinity()
	}
	kMod := new(big.Int).Mod(k, field.FrModulusBig)
	return G2{curve.ScalarMul(g2Params, scalarBits(kMod), p.pt)}
}

// InSubgroup checks [r]P == infinity. spec.md 4.E names the endomorphism
// check psi(P) = [x]P as the efficient test and explicitly allows this
// naive check as a slow fallback; ScalarMul by the full group order r is
// always correct, so this fallback is what G2 uses here. This calls
// curve.ScalarMul directly rather than the G2.ScalarMul wrapper, which
// reduces its scalar mod r first (k=r would collapse to [0]P = infinity
// for any P, making the check vacuous).
func (p G2) InSubgroup() bool {
	if p.IsInfinity() {
		return true
	}
	rP := G2{curve.ScalarMul(g2Params, scalarBits(field.FrModulusBig), p.pt)}
	return rP.IsInfinity()
}
