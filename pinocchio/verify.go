package pinocchio

import (
	"github.com/zkcore/zkcore/bls12381"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/internal/log"
)

var verifyLog = log.Default().Module("pinocchio.verify")

// Verify checks a proof against a verification key and the public
// witness values (not including the implicit constant-1 wire at index
// 0), per spec.md 4.H. It recomputes the public wires' contribution to
// each commitment from VerificationKey, then checks five pairing
// equations: three knowledge checks (A, B, C each equal their alpha
// shifted twin), the core QAP identity, and the K/gamma non-malleability
// check.
func Verify(vk *VerificationKey, public []field.Fr, proof *Proof) bool {
	if len(public) != vk.NumPublic {
		verifyLog.Warn("public input count mismatch", "got", len(public), "want", vk.NumPublic)
		return false
	}

	full := make([]field.Fr, vk.NumPublic+1)
	full[0] = field.FrOne()
	copy(full[1:], public)

	apub := bls12381.G1Infinity()
	bpubG2 := bls12381.G2Infinity()
	bpubG1 := bls12381.G1Infinity()
	cpub := bls12381.G1Infinity()
	kpub := bls12381.G1Infinity()
	for i, w := range full {
		if w.IsZero() {
			continue
		}
		wBig := w.BigInt()
		apub = apub.Add(vk.AG1Pub[i].ScalarMul(wBig))
		bpubG2 = bpubG2.Add(vk.BG2Pub[i].ScalarMul(wBig))
		bpubG1 = bpubG1.Add(vk.BG1Pub[i].ScalarMul(wBig))
		cpub = cpub.Add(vk.CG1Pub[i].ScalarMul(wBig))
		kpub = kpub.Add(vk.KG1Pub[i].ScalarMul(wBig))
	}

	// 1. e(piA, alphaA*G2) = e(piA', G2): knowledge of A.
	if !bls12381.Pairing(proof.PiA, vk.AlphaAG2).Equal(bls12381.Pairing(proof.PiAPrime, vk.G2Gen)) {
		verifyLog.Warn("knowledge check failed", "term", "A")
		return false
	}

	// 2. e(alphaB*G1, piB) = e(piB', G2): knowledge of B. alpha is baked
	// into the G1 operand here since piB itself lives in G2.
	if !bls12381.Pairing(vk.AlphaBG1, proof.PiB).Equal(bls12381.Pairing(proof.PiBPrime, vk.G2Gen)) {
		verifyLog.Warn("knowledge check failed", "term", "B")
		return false
	}

	// 3. e(piC, alphaC*G2) = e(piC', G2): knowledge of C.
	if !bls12381.Pairing(proof.PiC, vk.AlphaCG2).Equal(bls12381.Pairing(proof.PiCPrime, vk.G2Gen)) {
		verifyLog.Warn("knowledge check failed", "term", "C")
		return false
	}

	// 4. e(piA+Apub, piB+BpubG2) = e(piC+Cpub, G2) * e(piH, t(s)*G2): the
	// core QAP identity A(s)*B(s) - C(s) = h(s)*t(s).
	aFull := proof.PiA.Add(apub)
	bFullG2 := proof.PiB.Add(bpubG2)
	cFull := proof.PiC.Add(cpub)
	lhs := bls12381.Pairing(aFull, bFullG2)
	rhs := bls12381.Pairing(cFull, vk.G2Gen).Mul(bls12381.Pairing(proof.PiH, vk.TG2))
	if !lhs.Equal(rhs) {
		verifyLog.Warn("QAP identity check failed")
		return false
	}

	// 5. e(piK+Kpub, gamma*G2) = e((piA+Apub)+(piBInG1+BpubG1)+(piC+Cpub),
	// beta*gamma*G2): ties A, B, C to the same witness assignment.
	kFull := proof.PiK.Add(kpub)
	bFullG1 := proof.PiBInG1.Add(bpubG1)
	sumFull := aFull.Add(bFullG1).Add(cFull)
	kLhs := bls12381.Pairing(kFull, vk.GammaG2)
	kRhs := bls12381.Pairing(sumFull, vk.BetaGammaG2)
	if !kLhs.Equal(kRhs) {
		verifyLog.Warn("consistency check failed")
		return false
	}

	return true
}
