package tower

import "github.com/zkcore/zkcore/zkerrors"

// Fq6 represents c0 + c1*v + c2*v^2, v^3 = xi = u+1.
type Fq6 struct {
	C0, C1, C2 Fq2
}

func NewFq6(c0, c1, c2 Fq2) Fq6 { return Fq6{c0, c1, c2} }

func Fq6Zero() Fq6 { return Fq6{Fq2Zero(), Fq2Zero(), Fq2Zero()} }
func Fq6One() Fq6  { return Fq6{Fq2One(), Fq2Zero(), Fq2Zero()} }

func (a Fq6) IsZero() bool {
	return a.C0.IsZero() && a.C1.IsZero() && a.C2.IsZero()
}

func (a Fq6) Equal(b Fq6) bool {
	return a.C0.Equal(b.C0) && a.C1.Equal(b.C1) && a.C2.Equal(b.C2)
}

func (a Fq6) Add(b Fq6) Fq6 {
	return Fq6{a.C0.Add(b.C0), a.C1.Add(b.C1), a.C2.Add(b.C2)}
}

func (a Fq6) Sub(b Fq6) Fq6 {
	return Fq6{a.C0.Sub(b.C0), a.C1.Sub(b.C1), a.C2.Sub(b.C2)}
}

func (a Fq6) Neg() Fq6 {
	return Fq6{a.C0.Neg(), a.C1.Neg(), a.C2.Neg()}
}

// Mul is Karatsuba multiplication in F_q6, per spec.md 4.C.
func (a Fq6) Mul(b Fq6) Fq6 {
	t0 := a.C0.Mul(b.C0)
	t1 := a.C1.Mul(b.C1)
	t2 := a.C2.Mul(b.C2)

	c0 := t0.Add(a.C1.Add(a.C2).Mul(b.C1.Add(b.C2)).Sub(t1).Sub(t2).MulNonres())
	c1 := a.C0.Add(a.C1).Mul(b.C0.Add(b.C1)).Sub(t0).Sub(t1).Add(t2.MulNonres())
	c2 := a.C0.Add(a.C2).Mul(b.C0.Add(b.C2)).Sub(t0).Add(t1).Sub(t2)

	return Fq6{c0, c1, c2}
}

func (a Fq6) Square() Fq6 {
	s0 := a.C0.Square()
	ab := a.C0.Mul(a.C1)
	s1 := ab.Add(ab)
	s2 := a.C0.Add(a.C2).Sub(a.C1).Square()
	bc := a.C1.Mul(a.C2)
	s3 := bc.Add(bc)
	s4 := a.C2.Square()

	c0 := s0.Add(s3.MulNonres())
	c1 := s1.Add(s4.MulNonres())
	c2 := s1.Add(s2).Add(s3).Sub(s0).Sub(s4)

	return Fq6{c0, c1, c2}
}

// MulByV multiplies by the tower variable v: v*(c0+c1 v+c2 v^2) =
// xi*c2 + c0 v + c1 v^2, used by F_q12 multiplication.
func (a Fq6) MulByV() Fq6 {
	return Fq6{a.C2.MulNonres(), a.C0, a.C1}
}

func (a Fq6) Inverse() (Fq6, error) {
	if a.IsZero() {
		return Fq6{}, zkerrors.NewDomainError("tower.Fq6.Inverse")
	}
	t0 := a.C0.Square()
	t1 := a.C1.Square()
	t2 := a.C2.Square()
	t3 := a.C0.Mul(a.C1)
	t4 := a.C0.Mul(a.C2)
	t5 := a.C1.Mul(a.C2)

	c0 := t0.Sub(t5.MulNonres())
	c1 := t2.MulNonres().Sub(t3)
	c2 := t1.Sub(t4)

	t6 := a.C0.Mul(c0)
	t6 = t6.Add(a.C2.Mul(c1).Add(a.C1.Mul(c2)).MulNonres())
	t6Inv, err := t6.Inverse()
	if err != nil {
		return Fq6{}, err
	}

	return Fq6{c0.Mul(t6Inv), c1.Mul(t6Inv), c2.Mul(t6Inv)}, nil
}

// Frobenius computes a^q using the precomputed gamma coefficients for the
// p^1 power, grounded on the standard BLS12-381 Frobenius constants for
// F_q6: gamma1 = xi^((q-1)/3), gamma2 = xi^(2(q-1)/3).
func (a Fq6) Frobenius() Fq6 {
	return Fq6{
		C0: a.C0.Frobenius(),
		C1: a.C1.Frobenius().Mul(frobFq6Gamma1),
		C2: a.C2.Frobenius().Mul(frobFq6Gamma2),
	}
}

// frobFq6Gamma1, frobFq6Gamma2 are the BLS12-381 Frobenius coefficients for
// F_q6 under the p-power map, reproduced from the curve's published
// constants (xi^((q-1)/3) and xi^(2(q-1)/3)).
var (
	frobFq6Gamma1 = Fq2FromHex(
		"0",
		"1a0111ea397fe699ec02408663d4de85aa0d857d89759ad4897d29650fb85f9b409427eb4f49fffd8bfd00000000aaac",
	)
	frobFq6Gamma2 = Fq2FromHex(
		"1a0111ea397fe699ec02408663d4de85aa0d857d89759ad4897d29650fb85f9b409427eb4f49fffd8bfd00000000aaad",
		"0",
	)
)
