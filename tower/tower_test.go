package tower

import (
	"testing"

	"github.com/zkcore/zkcore/field"
)

func fq2(a, b uint64) Fq2 {
	return Fq2{field.NewFqFromUint64(a), field.NewFqFromUint64(b)}
}

func TestFq2MulInverseIsOne(t *testing.T) {
	a := fq2(3, 5)
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !a.Mul(inv).Equal(Fq2One()) {
		t.Errorf("a * a^-1 != 1")
	}
}

func TestFq2SquareMatchesMul(t *testing.T) {
	a := fq2(7, 11)
	if !a.Square().Equal(a.Mul(a)) {
		t.Errorf("Square() != Mul(a,a)")
	}
}

func TestFq2FrobeniusIsConjugate(t *testing.T) {
	a := fq2(7, 11)
	if !a.Frobenius().Equal(a.Conjugate()) {
		t.Errorf("Frobenius should equal conjugate for F_q2/F_q")
	}
}

func TestFq2SqrtRoundTrip(t *testing.T) {
	a := fq2(3, 5)
	sq := a.Square()
	root, ok := sq.Sqrt()
	if !ok {
		t.Fatal("expected a square to have a square root")
	}
	if !root.Square().Equal(sq) {
		t.Errorf("sqrt(a^2)^2 != a^2")
	}
}

func fq6(c0, c1, c2 Fq2) Fq6 { return Fq6{c0, c1, c2} }

func TestFq6MulInverseIsOne(t *testing.T) {
	a := fq6(fq2(2, 1), fq2(0, 3), fq2(4, 0))
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !a.Mul(inv).Equal(Fq6One()) {
		t.Errorf("a * a^-1 != 1")
	}
}

func TestFq6SquareMatchesMul(t *testing.T) {
	a := fq6(fq2(2, 1), fq2(0, 3), fq2(4, 0))
	if !a.Square().Equal(a.Mul(a)) {
		t.Errorf("Square() != Mul(a,a)")
	}
}

func TestFq6MulByVMatchesMulByVElement(t *testing.T) {
	a := fq6(fq2(2, 1), fq2(0, 3), fq2(4, 0))
	v := Fq6{Fq2Zero(), Fq2One(), Fq2Zero()}
	if !a.MulByV().Equal(a.Mul(v)) {
		t.Errorf("MulByV() != Mul(v)")
	}
}

func fq12(c0, c1 Fq6) Fq12 { return Fq12{c0, c1} }

func TestFq12MulInverseIsOne(t *testing.T) {
	a := fq12(fq6(fq2(2, 1), fq2(0, 3), fq2(4, 0)), fq6(fq2(1, 1), fq2(1, 0), fq2(0, 2)))
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !a.Mul(inv).Equal(Fq12One()) {
		t.Errorf("a * a^-1 != 1")
	}
}

func TestFq12SquareMatchesMul(t *testing.T) {
	a := fq12(fq6(fq2(2, 1), fq2(0, 3), fq2(4, 0)), fq6(fq2(1, 1), fq2(1, 0), fq2(0, 2)))
	if !a.Square().Equal(a.Mul(a)) {
		t.Errorf("Square() != Mul(a,a)")
	}
}

func TestFq12ConjugateThenMulIsNorm(t *testing.T) {
	a := fq12(fq6(fq2(2, 1), fq2(0, 3), fq2(4, 0)), fq6(fq2(1, 1), fq2(1, 0), fq2(0, 2)))
	prod := a.Mul(a.Conjugate())
	if !prod.C1.IsZero() {
		t.Errorf("a * conjugate(a) should have zero w-component")
	}
}
