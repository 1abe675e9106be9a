// Package curve implements the generic Weierstrass curve y^2 = x^3 + b of
// spec.md 4.D, parameterized over any coordinate field satisfying
// FieldElement. G1 (field.Fq) and G2 (tower.Fq2) are both instantiations
// of Point[T]; the arithmetic is written once and shared, per spec.md's
// Design Notes on a generic curve parameterized by an abstract field
// capability.
package curve

// FieldElement is the capability a coordinate field must offer for the
// generic curve arithmetic below: a field with the usual ring operations
// plus inversion, a zero test, and equality. The zero/one elements are
// supplied through Params.
type FieldElement[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Square() T
	Inverse() (T, error)
	IsZero() bool
	Equal(T) bool
}

// Params pins a Weierstrass curve y^2 = x^3 + b over T, together with the
// zero/one elements of T (Go generics have no way to call T's own
// constructors, so the curve carries them).
type Params[T FieldElement[T]] struct {
	B    T
	Zero T
	One  T
}

// Point is a Jacobian-coordinate point (X, Y, Z); affine is (X/Z^2, Y/Z^3).
// Z == Zero represents the point at infinity, per spec.md 4.D.
type Point[T FieldElement[T]] struct {
	X, Y, Z T
}

// Affine is a point given by its affine coordinates; (Zero, Zero) is
// infinity, matching the all-zeros serialization convention spec.md 4.D
// and the teacher's compressed-point encoding both rely on.
type Affine[T FieldElement[T]] struct {
	X, Y T
}

// Infinity returns the Jacobian point at infinity for the given params.
func Infinity[T FieldElement[T]](p Params[T]) Point[T] {
	return Point[T]{X: p.One, Y: p.One, Z: p.Zero}
}

// FromAffine lifts an affine point into Jacobian coordinates. The
// (Zero, Zero) encoding denotes infinity.
func FromAffine[T FieldElement[T]](p Params[T], a Affine[T]) Point[T] {
	if a.X.IsZero() && a.Y.IsZero() {
		return Infinity(p)
	}
	return Point[T]{X: a.X, Y: a.Y, Z: p.One}
}

func (pt Point[T]) IsInfinity() bool { return pt.Z.IsZero() }

// ToAffine converts to affine coordinates, returning (Zero, Zero) for
// infinity.
func (pt Point[T]) ToAffine(p Params[T]) (Affine[T], error) {
	if pt.IsInfinity() {
		return Affine[T]{X: p.Zero, Y: p.Zero}, nil
	}
	zInv, err := pt.Z.Inverse()
	if err != nil {
		return Affine[T]{}, err
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return Affine[T]{X: pt.X.Mul(zInv2), Y: pt.Y.Mul(zInv3)}, nil
}

// IsOnCurve checks the affine Weierstrass equation y^2 = x^3 + b. The
// point (Zero, Zero) (infinity) is always considered valid.
func IsOnCurve[T FieldElement[T]](p Params[T], a Affine[T]) bool {
	if a.X.IsZero() && a.Y.IsZero() {
		return true
	}
	lhs := a.Y.Square()
	rhs := a.X.Square().Mul(a.X).Add(p.B)
	return lhs.Equal(rhs)
}

// Neg returns -P: (x, -y); infinity negates to itself, per spec.md 4.D.
func Neg[T FieldElement[T]](pt Point[T]) Point[T] {
	if pt.IsInfinity() {
		return pt
	}
	return Point[T]{X: pt.X, Y: pt.Y.Neg(), Z: pt.Z}
}

// Double doubles a Jacobian point using the a=0 optimization spec.md 4.D
// calls for.
func Double[T FieldElement[T]](p Params[T], pt Point[T]) Point[T] {
	if pt.IsInfinity() {
		return pt
	}
	a := pt.X.Square()
	b := pt.Y.Square()
	c := b.Square()

	d := pt.X.Add(b).Square().Sub(a).Sub(c)
	d = d.Add(d)

	e := a.Add(a).Add(a)

	x3 := e.Square().Sub(d).Sub(d)

	c2 := c.Add(c)
	c4 := c2.Add(c2)
	c8 := c4.Add(c4)
	y3 := e.Mul(d.Sub(x3)).Sub(c8)

	z3 := pt.Y.Add(pt.Y).Mul(pt.Z)

	return Point[T]{X: x3, Y: y3, Z: z3}
}

// Add adds two Jacobian points, per spec.md 4.D; either argument being
// infinity returns the other, and P + (-P) returns infinity.
func Add[T FieldElement[T]](p Params[T], a, b Point[T]) Point[T] {
	if a.IsInfinity() {
		return b
	}
	if b.IsInfinity() {
		return a
	}

	z1z1 := a.Z.Square()
	z2z2 := b.Z.Square()
	u1 := a.X.Mul(z2z2)
	u2 := b.X.Mul(z1z1)
	s1 := a.Y.Mul(b.Z).Mul(z2z2)
	s2 := b.Y.Mul(a.Z).Mul(z1z1)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return Double(p, a)
		}
		return Infinity(p)
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v).Sub(v)
	s1j := s1.Mul(j)
	y3 := r.Mul(v.Sub(x3)).Sub(s1j).Sub(s1j)
	z3 := a.Z.Add(b.Z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return Point[T]{X: x3, Y: y3, Z: z3}
}

// ScalarMul computes [k]P by double-and-add over the big-endian bits of k,
// excluding the leading 1, per spec.md 4.D; k == 0 returns infinity. k is
// given as a big-endian bit source via the exponent's BitLen/Bit methods,
// abstracted here as a slice of bits, most-significant first.
func ScalarMul[T FieldElement[T]](p Params[T], bits []bool, pt Point[T]) Point[T] {
	if pt.IsInfinity() {
		return Infinity(p)
	}
	result := Infinity(p)
	started := false
	for _, bit := range bits {
		if started {
			result = Double(p, result)
		}
		if bit {
			if started {
				result = Add(p, result, pt)
			} else {
				result = pt
				started = true
			}
		}
	}
	if !started {
		return Infinity(p)
	}
	return result
}
