package pinocchio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/qap"
	"github.com/zkcore/zkcore/r1cs"
	"github.com/zkcore/zkcore/rbg"
)

func fr(x int64) field.Fr {
	if x < 0 {
		return field.NewFrFromUint64(uint64(-x)).Neg()
	}
	return field.NewFrFromUint64(uint64(x))
}

// buildXTimesY constructs the x*y=35 circuit named in spec.md's
// end-to-end scenario: wire 0 is the constant 1, wire 1 is the public
// input y, wire 2 is the private witness x. The output 35 has no wire of
// its own: it is folded into the constant wire's coefficient in C.
func buildXTimesY(t *testing.T) (*r1cs.System, []field.Fr, []field.Fr) {
	t.Helper()
	sys, err := r1cs.NewSystem(3, 1)
	require.NoError(t, err)
	// x * y = 35  =>  A={wire2}, B={wire1}, C={35 * wire0}
	err = sys.AddConstraint(
		[]r1cs.SparseTerm{{Index: 2, Coefficient: fr(1)}},
		[]r1cs.SparseTerm{{Index: 1, Coefficient: fr(1)}},
		[]r1cs.SparseTerm{{Index: 0, Coefficient: fr(35)}},
	)
	require.NoError(t, err)

	public := []field.Fr{fr(7)}
	witness, err := sys.Solve(public)
	require.NoError(t, err)
	return sys, public, witness
}

func TestSetupProveVerifyXTimesY(t *testing.T) {
	sys, public, witness := buildXTimesY(t)
	q := qap.Build(sys)

	pk, vk, err := Setup(sys, q, rbg.OSRandom())
	require.NoError(t, err)

	h, err := q.H(witness)
	require.NoError(t, err)

	proof, err := Prove(pk, witness, h)
	require.NoError(t, err)

	require.True(t, Verify(vk, public, proof), "expected Verify to accept a valid proof")
}

func TestVerifyRejectsWrongPublicInput(t *testing.T) {
	sys, _, witness := buildXTimesY(t)
	q := qap.Build(sys)

	pk, vk, err := Setup(sys, q, rbg.OSRandom())
	require.NoError(t, err)

	h, err := q.H(witness)
	require.NoError(t, err)

	proof, err := Prove(pk, witness, h)
	require.NoError(t, err)

	wrongPublic := []field.Fr{fr(8)}
	require.False(t, Verify(vk, wrongPublic, proof),
		"expected Verify to reject a proof checked against the wrong public input")
}

func TestVerifyRejectsSwappedProofElement(t *testing.T) {
	sysA, publicA, witnessA := buildXTimesY(t)
	qA := qap.Build(sysA)
	pkA, vkA, err := Setup(sysA, qA, rbg.OSRandom())
	require.NoError(t, err)
	hA, err := qA.H(witnessA)
	require.NoError(t, err)
	proofA, err := Prove(pkA, witnessA, hA)
	require.NoError(t, err)

	// A second, independent trusted setup for the same circuit shape: its
	// PiC lives under different toxic waste, so splicing it into proofA
	// must break every check that ties PiC to the rest of the proof.
	sysB, _, witnessB := buildXTimesY(t)
	qB := qap.Build(sysB)
	pkB, _, err := Setup(sysB, qB, rbg.OSRandom())
	require.NoError(t, err)
	hB, err := qB.H(witnessB)
	require.NoError(t, err)
	proofB, err := Prove(pkB, witnessB, hB)
	require.NoError(t, err)

	tampered := *proofA
	tampered.PiC = proofB.PiC
	require.False(t, Verify(vkA, publicA, &tampered),
		"expected Verify to reject a proof with a swapped-in PiC from a different setup")
}

func TestVerifyRejectsWrongPublicCount(t *testing.T) {
	sys, public, witness := buildXTimesY(t)
	q := qap.Build(sys)
	pk, vk, err := Setup(sys, q, rbg.OSRandom())
	require.NoError(t, err)
	h, err := q.H(witness)
	require.NoError(t, err)
	proof, err := Prove(pk, witness, h)
	require.NoError(t, err)

	require.False(t, Verify(vk, append(public, fr(1)), proof),
		"expected Verify to reject a mismatched public input count")
}
