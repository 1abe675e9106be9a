package qap

import (
	"testing"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/r1cs"
)

func fr(x int64) field.Fr {
	if x < 0 {
		return field.NewFrFromUint64(uint64(-x)).Neg()
	}
	return field.NewFrFromUint64(uint64(x))
}

func TestPolyDivRemExact(t *testing.T) {
	// (x-1)(x-2) = x^2 - 3x + 2
	p := Poly{fr(2), fr(-3), fr(1)}
	divisor := Poly{fr(-1), fr(1)} // x - 1
	q, r, err := p.DivRem(divisor)
	if err != nil {
		t.Fatalf("DivRem: %v", err)
	}
	if r.Degree() >= 0 {
		t.Errorf("expected zero remainder, got degree %d", r.Degree())
	}
	// quotient should be x - 2
	want := Poly{fr(-2), fr(1)}
	if len(q) != len(want) || !q[0].Equal(want[0]) || !q[1].Equal(want[1]) {
		t.Errorf("unexpected quotient %v", q)
	}
}

func TestPolyEval(t *testing.T) {
	p := Poly{fr(2), fr(-3), fr(1)} // x^2 - 3x + 2
	if !p.Eval(fr(1)).IsZero() {
		t.Errorf("expected p(1) == 0")
	}
	if !p.Eval(fr(2)).IsZero() {
		t.Errorf("expected p(2) == 0")
	}
}

func TestLagrangeInterpolateRoundTrip(t *testing.T) {
	points := []field.Fr{fr(1), fr(2), fr(3)}
	values := []field.Fr{fr(5), fr(8), fr(13)}
	p := lagrangeInterpolate(points, values)
	for i, pt := range points {
		if !p.Eval(pt).Equal(values[i]) {
			t.Errorf("p(%s) = %s, want %s", pt.BigInt(), p.Eval(pt).BigInt(), values[i].BigInt())
		}
	}
}

// Circuit w[1]*w[2] = w[3]; QAP soundness must hold for a satisfying
// witness and fail (nonzero remainder) for an unsatisfying one.
func TestBuildHSatisfiedWitness(t *testing.T) {
	sys, _ := r1cs.NewSystem(4, 1)
	sys.AddMultiplicationGate(1, 2, 3)
	q := Build(sys)

	witness := []field.Fr{fr(1), fr(3), fr(7), fr(21)}
	if _, err := q.H(witness); err != nil {
		t.Fatalf("expected satisfied witness to divide exactly: %v", err)
	}
}

func TestBuildHUnsatisfiedWitness(t *testing.T) {
	sys, _ := r1cs.NewSystem(4, 1)
	sys.AddMultiplicationGate(1, 2, 3)
	q := Build(sys)

	witness := []field.Fr{fr(1), fr(3), fr(7), fr(20)}
	if _, err := q.H(witness); err == nil {
		t.Fatal("expected unsatisfied witness to yield a nonzero remainder")
	}
}
