package r1cs

import "github.com/zkcore/zkcore/field"

// sumKnown evaluates the known part of a linear combination and reports
// the single unknown term, if exactly one exists.
func sumKnown(terms []SparseTerm, witness []field.Fr, known []bool) (sum field.Fr, numUnknown int, unknownIdx int, unknownCoeff field.Fr) {
	sum = field.FrZero()
	unknownIdx = -1
	for _, t := range terms {
		if known[t.Index] {
			sum = sum.Add(t.Coefficient.Mul(witness[t.Index]))
			continue
		}
		numUnknown++
		unknownIdx = t.Index
		unknownCoeff = t.Coefficient
	}
	return
}

// resolveRow attempts to determine exactly one still-unknown wire from a
// row where every other term is known, mirroring how a circuit built by
// the equation parser introduces one new wire per row (spec.md 4.G).
func resolveRow(row Row, witness []field.Fr, known []bool) bool {
	aSum, aUnk, aIdx, aCoeff := sumKnown(row.A, witness, known)
	bSum, bUnk, bIdx, bCoeff := sumKnown(row.B, witness, known)
	cSum, cUnk, cIdx, cCoeff := sumKnown(row.C, witness, known)

	if aUnk+bUnk+cUnk != 1 {
		return false
	}

	switch {
	case cUnk == 1:
		prod := aSum.Mul(bSum)
		inv, err := cCoeff.Inverse()
		if err != nil {
			return false
		}
		witness[cIdx] = prod.Sub(cSum).Mul(inv)
		known[cIdx] = true
		return true
	case aUnk == 1:
		if bSum.IsZero() {
			return false
		}
		bInv, _ := bSum.Inverse()
		target := cSum.Mul(bInv)
		inv, err := aCoeff.Inverse()
		if err != nil {
			return false
		}
		witness[aIdx] = target.Sub(aSum).Mul(inv)
		known[aIdx] = true
		return true
	case bUnk == 1:
		if aSum.IsZero() {
			return false
		}
		aInv, _ := aSum.Inverse()
		target := cSum.Mul(aInv)
		inv, err := bCoeff.Inverse()
		if err != nil {
			return false
		}
		witness[bIdx] = target.Sub(bSum).Mul(inv)
		known[bIdx] = true
		return true
	}
	return false
}

// Solve derives the full witness from the public inputs by repeatedly
// resolving rows that have exactly one remaining unknown wire, per
// spec.md 4.G's "each multiplication node yields one R1CS row" structure.
func (s *System) Solve(public []field.Fr) ([]field.Fr, error) {
	if len(s.Rows) == 0 {
		return nil, ErrNoConstraints
	}
	if len(public) != s.NumPublic {
		return nil, ErrPublicInputSize
	}

	witness := make([]field.Fr, s.NumVariables)
	known := make([]bool, s.NumVariables)
	witness[0] = field.FrOne()
	known[0] = true
	for i, v := range public {
		witness[1+i] = v
		known[1+i] = true
	}

	for changed := true; changed; {
		changed = false
		for _, row := range s.Rows {
			if resolveRow(row, witness, known) {
				changed = true
			}
		}
	}

	for i := range witness {
		if !known[i] {
			return nil, ErrUnsolvedWire
		}
	}
	return witness, nil
}
