package pinocchio

import (
	"github.com/zkcore/zkcore/bls12381"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/internal/log"
	"github.com/zkcore/zkcore/qap"
	"github.com/zkcore/zkcore/r1cs"
	"github.com/zkcore/zkcore/rbg"
)

var setupLog = log.Default().Module("pinocchio.setup")

// Setup samples the trusted-setup secrets from rng and publishes the
// proving and verification keys, per spec.md 4.H. The toolkit
// acknowledges its dependency on an externally supplied random bit
// generator for this step (spec.md 5/6).
func Setup(sys *r1cs.System, q *qap.QAP, rng rbg.Source) (*ProvingKey, *VerificationKey, error) {
	setupLog.Info("generating trusted setup", "variables", sys.NumVariables, "constraints", sys.ConstraintCount())

	secrets, err := sampleSecrets(rng)
	if err != nil {
		setupLog.Error("failed to sample setup secrets", "err", err)
		return nil, nil, err
	}
	defer secrets.zero()

	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()

	evalA := make([]field.Fr, sys.NumVariables)
	evalB := make([]field.Fr, sys.NumVariables)
	evalC := make([]field.Fr, sys.NumVariables)
	for i := 0; i < sys.NumVariables; i++ {
		evalA[i] = q.A[i].Eval(secrets.s)
		evalB[i] = q.B[i].Eval(secrets.s)
		evalC[i] = q.C[i].Eval(secrets.s)
	}

	scalarG1 := func(s field.Fr) bls12381.G1 { return g1.ScalarMul(s.BigInt()) }
	scalarG2 := func(s field.Fr) bls12381.G2 { return g2.ScalarMul(s.BigInt()) }

	pk := &ProvingKey{
		NumPublic: sys.NumPublic,
		AG1:       map[int]bls12381.G1{},
		AG1Prime:  map[int]bls12381.G1{},
		BG2:       map[int]bls12381.G2{},
		BG1:       map[int]bls12381.G1{},
		BG1Prime:  map[int]bls12381.G1{},
		CG1:       map[int]bls12381.G1{},
		CG1Prime:  map[int]bls12381.G1{},
		KG1:       map[int]bls12381.G1{},
	}
	vk := &VerificationKey{
		NumPublic: sys.NumPublic,
		AG1Pub:    make([]bls12381.G1, sys.NumPublic+1),
		BG2Pub:    make([]bls12381.G2, sys.NumPublic+1),
		BG1Pub:    make([]bls12381.G1, sys.NumPublic+1),
		CG1Pub:    make([]bls12381.G1, sys.NumPublic+1),
		KG1Pub:    make([]bls12381.G1, sys.NumPublic+1),
		G2Gen:     g2,
	}

	for i := 0; i < sys.NumVariables; i++ {
		aG1 := scalarG1(evalA[i])
		aG1Prime := scalarG1(secrets.alphaA.Mul(evalA[i]))
		bG2 := scalarG2(evalB[i])
		bG1 := scalarG1(evalB[i])
		bG1Prime := scalarG1(secrets.alphaB.Mul(evalB[i]))
		cG1 := scalarG1(evalC[i])
		cG1Prime := scalarG1(secrets.alphaC.Mul(evalC[i]))
		kVal := secrets.beta.Mul(evalA[i].Add(evalB[i]).Add(evalC[i]))
		kG1 := scalarG1(kVal)

		if i <= sys.NumPublic {
			vk.AG1Pub[i] = aG1
			vk.BG2Pub[i] = bG2
			vk.BG1Pub[i] = bG1
			vk.CG1Pub[i] = cG1
			vk.KG1Pub[i] = kG1
			continue
		}
		pk.AG1[i] = aG1
		pk.AG1Prime[i] = aG1Prime
		pk.BG2[i] = bG2
		pk.BG1[i] = bG1
		pk.BG1Prime[i] = bG1Prime
		pk.CG1[i] = cG1
		pk.CG1Prime[i] = cG1Prime
		pk.KG1[i] = kG1
	}

	hPowersLen := q.Target.Degree()
	if hPowersLen < 1 {
		hPowersLen = 1
	}
	pk.HPowers = make([]bls12381.G1, hPowersLen)
	power := field.FrOne()
	for j := 0; j < hPowersLen; j++ {
		pk.HPowers[j] = scalarG1(power)
		power = power.Mul(secrets.s)
	}

	vk.AlphaAG2 = scalarG2(secrets.alphaA)
	vk.AlphaBG1 = scalarG1(secrets.alphaB)
	vk.AlphaCG2 = scalarG2(secrets.alphaC)
	vk.GammaG2 = scalarG2(secrets.gamma)
	vk.BetaGammaG2 = scalarG2(secrets.beta.Mul(secrets.gamma))
	vk.TG2 = scalarG2(q.Target.Eval(secrets.s))

	setupLog.Info("trusted setup complete", "h_powers", len(pk.HPowers))
	return pk, vk, nil
}

// setupSecrets holds the trusted-setup randomness, per spec.md 4.H.
type setupSecrets struct {
	s, alphaA, alphaB, alphaC, beta, gamma field.Fr
}

func sampleSecrets(rng rbg.Source) (setupSecrets, error) {
	var s setupSecrets
	var err error
	if s.s, err = rng.RandomScalar(); err != nil {
		return setupSecrets{}, err
	}
	if s.alphaA, err = rng.RandomScalar(); err != nil {
		return setupSecrets{}, err
	}
	if s.alphaB, err = rng.RandomScalar(); err != nil {
		return setupSecrets{}, err
	}
	if s.alphaC, err = rng.RandomScalar(); err != nil {
		return setupSecrets{}, err
	}
	if s.beta, err = rng.RandomScalar(); err != nil {
		return setupSecrets{}, err
	}
	if s.gamma, err = rng.RandomScalar(); err != nil {
		return setupSecrets{}, err
	}
	return s, nil
}

// zero is a best-effort scrub of the setup secrets once the keys are
// derived, per spec.md 9's trusted-setup-secrets design note. Go values
// are not guaranteed to be wiped from memory (no mlock, GC may have
// already copied them), so this is advisory rather than a security
// guarantee.
func (s *setupSecrets) zero() {
	var zero field.Fr
	s.s, s.alphaA, s.alphaB, s.alphaC, s.beta, s.gamma = zero, zero, zero, zero, zero, zero
}
