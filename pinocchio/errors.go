package pinocchio

import "github.com/zkcore/zkcore/zkerrors"

// errWitnessPolyTooLarge fires when h(x) has more coefficients than the
// proving key's powers-of-s commitments cover, which only happens if the
// proving key was built for a different circuit than the witness.
var errWitnessPolyTooLarge = zkerrors.NewDomainError("pinocchio.Prove: witness polynomial degree exceeds proving key capacity")
