package bls12381

import (
	"math/big"
	"testing"

	"github.com/zkcore/zkcore/field"
)

func TestG1GeneratorIsOnCurveAndInSubgroup(t *testing.T) {
	g := G1Generator()
	if g.IsInfinity() {
		t.Fatal("generator must not be infinity")
	}
	if !g.InSubgroup() {
		t.Fatal("generator must be in the r-order subgroup")
	}
}

func TestG1DoublingMatchesAdd(t *testing.T) {
	g := G1Generator()
	doubled := g.Double()
	added := g.Add(g)
	if !doubled.Equal(added) {
		t.Errorf("2*g1 via Double != g1+g1 via Add")
	}
}

// TestG1GeneratorMultiples exercises the spec's "g1, 2g1, ..., 10g1" chain
// by cross-checking repeated addition against ScalarMul at each step.
func TestG1GeneratorMultiples(t *testing.T) {
	g := G1Generator()
	acc := G1Infinity()
	for k := int64(1); k <= 10; k++ {
		acc = acc.Add(g)
		viaScalar := g.ScalarMul(big.NewInt(k))
		if !acc.Equal(viaScalar) {
			t.Fatalf("%d*g1 via repeated addition != via ScalarMul", k)
		}
	}
}

func TestG1ScalarMulAdditiveHomomorphism(t *testing.T) {
	g := G1Generator()
	a := big.NewInt(123456789012345)
	b := big.NewInt(987654321098765)
	lhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	rhs := g.ScalarMul(new(big.Int).Add(a, b))
	if !lhs.Equal(rhs) {
		t.Errorf("[a]P + [b]P != [a+b]P")
	}
}

func TestG1ScalarMulLargeScalar(t *testing.T) {
	g := G1Generator()
	k, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	p := g.ScalarMul(k)
	if p.IsInfinity() {
		t.Fatal("unexpected infinity")
	}
	if !p.InSubgroup() {
		t.Fatal("scalar multiple of generator must stay in subgroup")
	}
}

func TestG1AddInverseIsInfinity(t *testing.T) {
	g := G1Generator()
	if !g.Add(g.Neg()).IsInfinity() {
		t.Errorf("P + (-P) != infinity")
	}
}

func TestG1ScalarMulByOrderIsInfinity(t *testing.T) {
	g := G1Generator()
	if !g.ScalarMul(field.FrModulusBig).IsInfinity() {
		t.Errorf("[r]g1 != infinity")
	}
}

// findOffSubgroupG1Point searches small x values for an on-curve G1 point.
// G1's cofactor is astronomically larger than 1, so a point found this way
// lies in the r-order subgroup only on a negligible fraction of tries; in
// practice the first candidate already falls outside it.
func findOffSubgroupG1Point(t *testing.T) G1 {
	t.Helper()
	b := field.NewFqFromUint64(4)
	for x := int64(1); x < 1000; x++ {
		xq := field.NewFqFromUint64(uint64(x))
		rhs := xq.Square().Mul(xq).Add(b)
		y, ok := rhs.Sqrt()
		if !ok {
			continue
		}
		p, err := NewG1Affine(xq, y)
		if err != nil {
			t.Fatalf("NewG1Affine: %v", err)
		}
		if !p.InSubgroup() {
			return p
		}
	}
	t.Fatal("no off-subgroup G1 point found in search range")
	return G1{}
}

func TestG1InSubgroupRejectsOffSubgroupPoint(t *testing.T) {
	p := findOffSubgroupG1Point(t)
	if p.InSubgroup() {
		t.Fatal("expected a point outside the r-order subgroup to fail InSubgroup")
	}
}
