package pinocchio

import (
	"github.com/zkcore/zkcore/bls12381"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/qap"
)

// Prove builds a proof from the proving key, the full witness (including
// the public wires and the constant-1 wire at index 0), and the witness
// polynomial h(x) = (A(x)B(x)-C(x))/t(x), per spec.md 4.H. Each proof
// element is the sum, over private wire indices only, of the witness
// weight times the corresponding proving-key commitment; the verifier
// adds back the public wires' contribution itself from VerificationKey.
func Prove(pk *ProvingKey, witness []field.Fr, h qap.Poly) (*Proof, error) {
	piA := bls12381.G1Infinity()
	piAPrime := bls12381.G1Infinity()
	piB := bls12381.G2Infinity()
	piBInG1 := bls12381.G1Infinity()
	piBPrime := bls12381.G1Infinity()
	piC := bls12381.G1Infinity()
	piCPrime := bls12381.G1Infinity()
	piK := bls12381.G1Infinity()

	for i, w := range witness {
		if i <= pk.NumPublic {
			continue
		}
		if w.IsZero() {
			continue
		}
		wBig := w.BigInt()
		piA = piA.Add(pk.AG1[i].ScalarMul(wBig))
		piAPrime = piAPrime.Add(pk.AG1Prime[i].ScalarMul(wBig))
		piB = piB.Add(pk.BG2[i].ScalarMul(wBig))
		piBInG1 = piBInG1.Add(pk.BG1[i].ScalarMul(wBig))
		piBPrime = piBPrime.Add(pk.BG1Prime[i].ScalarMul(wBig))
		piC = piC.Add(pk.CG1[i].ScalarMul(wBig))
		piCPrime = piCPrime.Add(pk.CG1Prime[i].ScalarMul(wBig))
		piK = piK.Add(pk.KG1[i].ScalarMul(wBig))
	}

	piH := bls12381.G1Infinity()
	for j, coeff := range h {
		if coeff.IsZero() {
			continue
		}
		if j >= len(pk.HPowers) {
			return nil, errWitnessPolyTooLarge
		}
		piH = piH.Add(pk.HPowers[j].ScalarMul(coeff.BigInt()))
	}

	return &Proof{
		PiA:      piA,
		PiAPrime: piAPrime,
		PiB:      piB,
		PiBInG1:  piBInG1,
		PiBPrime: piBPrime,
		PiC:      piC,
		PiCPrime: piCPrime,
		PiH:      piH,
		PiK:      piK,
	}, nil
}
