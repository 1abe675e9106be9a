// Package r1cs builds rank-1 constraint systems over the scalar field
// F_r, per spec.md 4.G. A System tracks an ordered variable table (index
// 0 reserved for the constant 1), a public/private partition, and a list
// of sparse A*B=C rows.
package r1cs

import (
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/zkerrors"
)

var (
	ErrNoVariables       = zkerrors.NewDomainError("r1cs.NewSystem: no variables")
	ErrPublicExceedsVars = zkerrors.NewDomainError("r1cs.NewSystem: public count exceeds variables")
	ErrIndexOutOfBounds  = zkerrors.NewDomainError("r1cs.AddConstraint: variable index out of bounds")
	ErrNoConstraints     = zkerrors.NewDomainError("r1cs.Solve: system has no constraints")
	ErrPublicInputSize   = zkerrors.NewDomainError("r1cs.Solve: public input count mismatch")
	ErrUnsolvedWire      = zkerrors.NewDomainError("r1cs.Solve: could not determine a wire value")
)

// SparseTerm is one coefficient*variable term in a linear combination.
type SparseTerm struct {
	Index       int
	Coefficient field.Fr
}

// Row is one R1CS constraint: (sum A_i w_i) * (sum B_i w_i) = (sum C_i w_i).
type Row struct {
	A, B, C []SparseTerm
}

// System is an R1CS instance over F_r: variable 0 is the constant 1,
// variables [1, NumPublic] are public inputs, the rest are private.
type System struct {
	NumVariables int
	NumPublic    int
	Rows         []Row
}

// NewSystem allocates a System with numVars variables (including the
// constant wire) and numPublic public inputs among them.
func NewSystem(numVars, numPublic int) (*System, error) {
	if numVars <= 0 {
		return nil, ErrNoVariables
	}
	if numPublic >= numVars {
		return nil, ErrPublicExceedsVars
	}
	return &System{NumVariables: numVars, NumPublic: numPublic}, nil
}

func (s *System) ConstraintCount() int { return len(s.Rows) }

func (s *System) checkIndices(terms []SparseTerm) error {
	for _, t := range terms {
		if t.Index < 0 || t.Index >= s.NumVariables {
			return ErrIndexOutOfBounds
		}
	}
	return nil
}

// AddConstraint appends a general sparse A*B=C row.
func (s *System) AddConstraint(a, b, c []SparseTerm) error {
	if err := s.checkIndices(a); err != nil {
		return err
	}
	if err := s.checkIndices(b); err != nil {
		return err
	}
	if err := s.checkIndices(c); err != nil {
		return err
	}
	s.Rows = append(s.Rows, Row{A: a, B: b, C: c})
	return nil
}

// AddMultiplicationGate adds the constraint w[x]*w[y] = w[z].
func (s *System) AddMultiplicationGate(x, y, z int) error {
	one := field.FrOne()
	return s.AddConstraint(
		[]SparseTerm{{Index: x, Coefficient: one}},
		[]SparseTerm{{Index: y, Coefficient: one}},
		[]SparseTerm{{Index: z, Coefficient: one}},
	)
}

// AddAdditionGate adds the constraint (w[x]+w[y])*1 = w[z].
func (s *System) AddAdditionGate(x, y, z int) error {
	one := field.FrOne()
	return s.AddConstraint(
		[]SparseTerm{{Index: x, Coefficient: one}, {Index: y, Coefficient: one}},
		[]SparseTerm{{Index: 0, Coefficient: one}},
		[]SparseTerm{{Index: z, Coefficient: one}},
	)
}

// AddConstantGate adds the constraint w[x]*1 = k (the constant wire
// scaled by k).
func (s *System) AddConstantGate(x int, k field.Fr) error {
	one := field.FrOne()
	return s.AddConstraint(
		[]SparseTerm{{Index: x, Coefficient: one}},
		[]SparseTerm{{Index: 0, Coefficient: one}},
		[]SparseTerm{{Index: 0, Coefficient: k}},
	)
}

// EvalLinearCombination evaluates sum(term.Coefficient * witness[term.Index]).
func (s *System) EvalLinearCombination(terms []SparseTerm, witness []field.Fr) field.Fr {
	acc := field.FrZero()
	for _, t := range terms {
		acc = acc.Add(t.Coefficient.Mul(witness[t.Index]))
	}
	return acc
}

// Verify reports whether witness satisfies every row, and that
// witness[0] == 1 and len(witness) == NumVariables.
func (s *System) Verify(witness []field.Fr) bool {
	if len(witness) != s.NumVariables {
		return false
	}
	if !witness[0].Equal(field.FrOne()) {
		return false
	}
	for _, row := range s.Rows {
		lhs := s.EvalLinearCombination(row.A, witness).Mul(s.EvalLinearCombination(row.B, witness))
		rhs := s.EvalLinearCombination(row.C, witness)
		if !lhs.Equal(rhs) {
			return false
		}
	}
	return true
}

// Stats summarizes a System's shape.
type Stats struct {
	NumConstraints  int
	NumVariables    int
	NumPublicInputs int
	NumPrivateWires int
	TotalTerms      int
}

func (s *System) Stats() Stats {
	total := 0
	for _, row := range s.Rows {
		total += len(row.A) + len(row.B) + len(row.C)
	}
	return Stats{
		NumConstraints:  len(s.Rows),
		NumVariables:    s.NumVariables,
		NumPublicInputs: s.NumPublic,
		NumPrivateWires: s.NumVariables - s.NumPublic - 1,
		TotalTerms:      total,
	}
}
