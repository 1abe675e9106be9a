package bulletproofs

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/rbg"
)

func randomVector(t *testing.T, n int) []field.Fr {
	t.Helper()
	out := make([]field.Fr, n)
	for i := range out {
		s, err := rbg.OSRandom().RandomScalar()
		require.NoError(t, err)
		out[i] = s
	}
	return out
}

func TestIPAProveVerifyRoundTrip(t *testing.T) {
	const n = 8
	gens := NewGenerators(n)
	a := randomVector(t, n)
	b := randomVector(t, n)
	c := innerProduct(a, b)
	p := msm(gens.Gvec, a).Add(msm(gens.Hvec, b)).Add(gens.U.ScalarMul(c.BigInt()))

	proof, err := ProveIPA(gens.Gvec, gens.Hvec, gens.U, a, b, NewTranscript("test/ipa"))
	require.NoError(t, err)
	require.True(t, VerifyIPA(gens.Gvec, gens.Hvec, gens.U, p, NewTranscript("test/ipa"), proof),
		"VerifyIPA rejected an honestly constructed proof")
}

// TestIPAPropertyRoundTrip sweeps several vector lengths and random inputs,
// checking the relation <a,b>=c folds down to a verifying proof every time.
func TestIPAPropertyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	for _, n := range []int{1, 2, 4, 8, 16} {
		n := n
		properties.Property("IPA proves and verifies for n="+big.NewInt(int64(n)).String(), prop.ForAll(
			func(seed uint64) bool {
				gens := NewGenerators(n)
				src := rbg.OSRandom()
				a := make([]field.Fr, n)
				b := make([]field.Fr, n)
				for i := 0; i < n; i++ {
					av, err := src.RandomScalar()
					if err != nil {
						return false
					}
					bv, err := src.RandomScalar()
					if err != nil {
						return false
					}
					a[i], b[i] = av, bv
				}
				c := innerProduct(a, b)
				p := msm(gens.Gvec, a).Add(msm(gens.Hvec, b)).Add(gens.U.ScalarMul(c.BigInt()))

				proof, err := ProveIPA(gens.Gvec, gens.Hvec, gens.U, a, b, NewTranscript("property/ipa"))
				if err != nil {
					return false
				}
				return VerifyIPA(gens.Gvec, gens.Hvec, gens.U, p, NewTranscript("property/ipa"), proof)
			},
			gen.UInt64(),
		))
	}

	properties.TestingRun(t)
}

func TestIPAVerifyRejectsWrongInnerProduct(t *testing.T) {
	const n = 4
	gens := NewGenerators(n)
	a := randomVector(t, n)
	b := randomVector(t, n)
	c := innerProduct(a, b)
	// Claim a P for an inner product one off from the true value.
	wrongC := c.Add(field.FrOne())
	p := msm(gens.Gvec, a).Add(msm(gens.Hvec, b)).Add(gens.U.ScalarMul(wrongC.BigInt()))

	proof, err := ProveIPA(gens.Gvec, gens.Hvec, gens.U, a, b, NewTranscript("test/ipa-wrong"))
	require.NoError(t, err)
	require.False(t, VerifyIPA(gens.Gvec, gens.Hvec, gens.U, p, NewTranscript("test/ipa-wrong"), proof),
		"VerifyIPA accepted a proof against a P committing to the wrong inner product")
}

func TestIPAVerifyRejectsTamperedProof(t *testing.T) {
	const n = 4
	gens := NewGenerators(n)
	a := randomVector(t, n)
	b := randomVector(t, n)
	c := innerProduct(a, b)
	p := msm(gens.Gvec, a).Add(msm(gens.Hvec, b)).Add(gens.U.ScalarMul(c.BigInt()))

	proof, err := ProveIPA(gens.Gvec, gens.Hvec, gens.U, a, b, NewTranscript("test/ipa-tamper"))
	require.NoError(t, err)
	proof.A = proof.A.Add(field.FrOne())

	require.False(t, VerifyIPA(gens.Gvec, gens.Hvec, gens.U, p, NewTranscript("test/ipa-tamper"), proof),
		"VerifyIPA accepted a proof with a tampered final scalar")
}

func TestRangeProofInRangeVerifies(t *testing.T) {
	gens := NewGenerators(8)
	proof, err := ProveRange(gens, big.NewInt(42), rbg.OSRandom())
	require.NoError(t, err)
	require.True(t, VerifyRange(gens, proof), "VerifyRange rejected a proof for v=42 in an 8-bit range")
}

func TestRangeProofOutOfRangeFails(t *testing.T) {
	gens := NewGenerators(8)
	proof, err := ProveRange(gens, big.NewInt(256), rbg.OSRandom())
	require.NoError(t, err)
	require.False(t, VerifyRange(gens, proof), "VerifyRange accepted a proof for v=256, which does not fit in 8 bits")
}

func TestRangeProofZeroVerifies(t *testing.T) {
	gens := NewGenerators(8)
	proof, err := ProveRange(gens, big.NewInt(0), rbg.OSRandom())
	require.NoError(t, err)
	require.True(t, VerifyRange(gens, proof), "VerifyRange rejected a proof for v=0")
}

func TestRangeProofMaxValueVerifies(t *testing.T) {
	gens := NewGenerators(8)
	proof, err := ProveRange(gens, big.NewInt(255), rbg.OSRandom())
	require.NoError(t, err)
	require.True(t, VerifyRange(gens, proof), "VerifyRange rejected a proof for v=255, the largest 8-bit value")
}

func TestRangeProofRejectsTamperedCommitment(t *testing.T) {
	gens := NewGenerators(8)
	proof, err := ProveRange(gens, big.NewInt(42), rbg.OSRandom())
	require.NoError(t, err)
	proof.V = proof.V.Add(gens.G)
	require.False(t, VerifyRange(gens, proof), "VerifyRange accepted a proof with a tampered value commitment")
}
