package pinocchio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/qap"
	"github.com/zkcore/zkcore/r1cs"
	"github.com/zkcore/zkcore/rbg"
)

// TestCompiledXTimesYSetupProveVerify exercises spec.md 8 scenario 5
// through its actual front end: the equation parser compiles "x*y = 35"
// to an R1CS circuit (rather than the hand-built one in
// pinocchio_test.go), and the rest of the pipeline runs unchanged.
func TestCompiledXTimesYSetupProveVerify(t *testing.T) {
	circuit, err := r1cs.Compile("x * y = 35", []string{"y"})
	require.NoError(t, err)

	public := []field.Fr{field.NewFrFromUint64(7)}
	witness, err := circuit.System.Solve(public)
	require.NoError(t, err)
	require.True(t, circuit.System.Verify(witness))

	q := qap.Build(circuit.System)
	pk, vk, err := Setup(circuit.System, q, rbg.OSRandom())
	require.NoError(t, err)

	h, err := q.H(witness)
	require.NoError(t, err)

	proof, err := Prove(pk, witness, h)
	require.NoError(t, err)
	require.True(t, Verify(vk, public, proof), "expected Verify to accept a proof built from the parsed circuit")

	// Scenario 5's tamper check: replacing pi_A with a different group
	// element must make Verify reject.
	tampered := *proof
	tampered.PiA = pk.HPowers[0]
	require.False(t, Verify(vk, public, &tampered),
		"expected Verify to reject a proof with a swapped-in PiA")
}
