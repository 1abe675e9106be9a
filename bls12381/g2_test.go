package bls12381

import (
	"math/big"
	"testing"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/tower"
)

func TestG2GeneratorIsOnCurveAndInSubgroup(t *testing.T) {
	g := G2Generator()
	if g.IsInfinity() {
		t.Fatal("generator must not be infinity")
	}
	if !g.InSubgroup() {
		t.Fatal("generator must be in the r-order subgroup")
	}
}

func TestG2DoublingMatchesAdd(t *testing.T) {
	g := G2Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Errorf("2*g2 via Double != g2+g2 via Add")
	}
}

func TestG2ScalarMulAdditiveHomomorphism(t *testing.T) {
	g := G2Generator()
	a := big.NewInt(1234567)
	b := big.NewInt(7654321)
	lhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	rhs := g.ScalarMul(new(big.Int).Add(a, b))
	if !lhs.Equal(rhs) {
		t.Errorf("[a]Q + [b]Q != [a+b]Q")
	}
}

func TestG2ScalarMulKnownExponent(t *testing.T) {
	g := G2Generator()
	p := g.ScalarMul(big.NewInt(1234567))
	if p.IsInfinity() || !p.InSubgroup() {
		t.Fatal("[1234567]g2 must be a valid non-identity subgroup element")
	}
}

func TestG2AddInverseIsInfinity(t *testing.T) {
	g := G2Generator()
	if !g.Add(g.Neg()).IsInfinity() {
		t.Errorf("Q + (-Q) != infinity")
	}
}

func TestG2ScalarMulByOrderIsInfinity(t *testing.T) {
	g := G2Generator()
	if !g.ScalarMul(field.FrModulusBig).IsInfinity() {
		t.Errorf("[r]g2 != infinity")
	}
}

// findOffSubgroupG2Point searches small x values (embedded in F_{q^2} with
// a zero C1 component) for an on-curve G2 point. G2's cofactor is
// astronomically larger than 1, so a point found this way lies in the
// r-order subgroup only on a negligible fraction of tries.
func findOffSubgroupG2Point(t *testing.T) G2 {
	t.Helper()
	b := tower.NewFq2(field.NewFqFromUint64(4), field.NewFqFromUint64(4))
	for x := int64(1); x < 1000; x++ {
		xq := tower.NewFq2(field.NewFqFromUint64(uint64(x)), field.FqZero())
		rhs := xq.Square().Mul(xq).Add(b)
		y, ok := rhs.Sqrt()
		if !ok {
			continue
		}
		p, err := NewG2Affine(xq, y)
		if err != nil {
			t.Fatalf("NewG2Affine: %v", err)
		}
		if !p.InSubgroup() {
			return p
		}
	}
	t.Fatal("no off-subgroup G2 point found in search range")
	return G2{}
}

func TestG2InSubgroupRejectsOffSubgroupPoint(t *testing.T) {
	p := findOffSubgroupG2Point(t)
	if p.InSubgroup() {
		t.Fatal("expected a point outside the r-order subgroup to fail InSubgroup")
	}
}
