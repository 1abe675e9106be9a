// Package pinocchio implements the Pinocchio (protocol 2) zk-SNARK setup,
// prove, and verify operations of spec.md 4.H over the QAP built from an
// R1CS system.
package pinocchio

import (
	"github.com/zkcore/zkcore/bls12381"
)

// ProvingKey carries the private-witness-indexed commitments the prover
// needs. Index i here always refers to a variable index strictly greater
// than NumPublic (a private wire); public-wire commitments live in
// VerificationKey instead, so the verifier can recompute their
// contribution from the (untrusted) public inputs itself.
type ProvingKey struct {
	NumPublic int

	// Private-index commitments, keyed by variable index.
	AG1      map[int]bls12381.G1
	AG1Prime map[int]bls12381.G1
	BG2      map[int]bls12381.G2
	BG1      map[int]bls12381.G1 // the "B in G1" form used by the K-check.
	BG1Prime map[int]bls12381.G1
	CG1      map[int]bls12381.G1
	CG1Prime map[int]bls12381.G1
	KG1      map[int]bls12381.G1

	// HPowers[j] = s^j * G1, for committing to the witness polynomial h(x).
	HPowers []bls12381.G1
}

// VerificationKey carries the public-index commitments and the fixed
// group elements the five verification equations in Verify check
// against.
type VerificationKey struct {
	NumPublic int

	// Public-index (0..NumPublic) commitments.
	AG1Pub  []bls12381.G1
	BG2Pub  []bls12381.G2
	BG1Pub  []bls12381.G1
	CG1Pub  []bls12381.G1
	KG1Pub  []bls12381.G1

	AlphaAG2    bls12381.G2
	AlphaBG1    bls12381.G1
	AlphaCG2    bls12381.G2
	GammaG2     bls12381.G2
	BetaGammaG2 bls12381.G2
	TG2         bls12381.G2
	G2Gen       bls12381.G2
}

// Proof bundles the eight group elements spec.md 4.H names, plus the
// internal G1 form of B the consistency check (#5) needs alongside πB's
// G2 form (#4) — see DESIGN.md for why Pinocchio's B commitment must
// exist in both groups.
type Proof struct {
	PiA      bls12381.G1
	PiAPrime bls12381.G1
	PiB      bls12381.G2
	PiBInG1  bls12381.G1
	PiBPrime bls12381.G1
	PiC      bls12381.G1
	PiCPrime bls12381.G1
	PiH      bls12381.G1
	PiK      bls12381.G1
}
