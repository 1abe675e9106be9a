package bulletproofs

import (
	"math/big"

	"github.com/zkcore/zkcore/bls12381"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/internal/log"
	"github.com/zkcore/zkcore/rbg"
	"github.com/zkcore/zkcore/zkerrors"
)

var rangeLog = log.Default().Module("bulletproofs.rangeproof")

// RangeProof proves that a Pedersen-committed value v lies in [0, 2^n),
// following the standard Bulletproofs l(X)/r(X)/t(X) polynomial
// identity, grounded on the teacher pack's rangeproof reference
// (other_examples' takakv-msc-poc bulletproofs.Prove/Verify shape:
// phase-1 bit commitments A/S, phase-2 polynomial commitments T1/T2,
// phase-3 opening tau_x/mu/t-hat), re-grounded on BLS12-381 G1 and
// field.Fr instead of P-256 and a generic algebra.Group.
type RangeProof struct {
	V    bls12381.G1 // Pedersen commitment to v: v*H + gamma*G.
	A    bls12381.G1
	S    bls12381.G1
	T1   bls12381.G1
	T2   bls12381.G1
	Taux field.Fr
	Mu   field.Fr
	That field.Fr // t-hat = t(x), the claimed inner product value.
	IPA  *IPAProof
}

// ProveRange builds a range proof that v in [0, 2^n). v is reduced to
// its low n bits for the bit-decomposition witness (a_L); the
// commitment V binds the full, un-truncated value, so a v that does
// not actually fit in n bits yields a proof that fails verification
// (spec.md 8 scenario 6) rather than one rejected up front.
func ProveRange(gens *Generators, v *big.Int, rng rbg.Source) (*RangeProof, error) {
	if gens.N <= 0 || gens.N&(gens.N-1) != 0 {
		return nil, zkerrors.NewDomainError("bulletproofs.ProveRange: bit length must be a power of 2")
	}
	n := gens.N
	rangeLog.Info("proving range", "bits", n)

	gamma, err := rng.RandomScalar()
	if err != nil {
		return nil, err
	}
	vFr := field.NewFr(v)
	V := gens.H.ScalarMul(vFr.BigInt()).Add(gens.G.ScalarMul(gamma.BigInt()))

	aL := bitsOf(v, n) // may not equal vFr's bits if v >= 2^n.
	aR := make([]field.Fr, n)
	for i := range aL {
		aR[i] = aL[i].Sub(field.FrOne())
	}

	alpha, err := rng.RandomScalar()
	if err != nil {
		return nil, err
	}
	sL, sR := make([]field.Fr, n), make([]field.Fr, n)
	for i := 0; i < n; i++ {
		if sL[i], err = rng.RandomScalar(); err != nil {
			return nil, err
		}
		if sR[i], err = rng.RandomScalar(); err != nil {
			return nil, err
		}
	}
	rho, err := rng.RandomScalar()
	if err != nil {
		return nil, err
	}

	// alpha and rho are blinding factors, so they ride on G, the same
	// base V and T1/T2 use for gamma/tau1/tau2 -- H is reserved for the
	// committed value in every one of these commitments.
	A := gens.G.ScalarMul(alpha.BigInt()).Add(msm(gens.Gvec, aL)).Add(msm(gens.Hvec, aR))
	S := gens.G.ScalarMul(rho.BigInt()).Add(msm(gens.Gvec, sL)).Add(msm(gens.Hvec, sR))

	transcript := NewTranscript("bulletproofs/rangeproof")
	transcript.AppendPoint(V)
	transcript.AppendPoint(A)
	transcript.AppendPoint(S)
	y := transcript.Challenge()
	z := transcript.Challenge()

	yPow := powersOf(y, n)
	twoPow := powersOfTwo(n)
	zSq := z.Mul(z)

	// l(X) = (aL - z*1) + sL*X
	// r(X) = y^n o (aR + z*1 + sR*X) + z^2*2^n
	l0 := vecSubScalar(aL, z)
	r0 := vecAdd(hadamard(yPow, vecAddScalar(aR, z)), vecScaleBy(twoPow, zSq))

	// t1 = <l0, y^n o sR> + <sL, r0>
	t1 := innerProduct(l0, hadamard(yPow, sR)).Add(innerProduct(sL, r0))
	// t2 = <sL, y^n o sR>
	t2 := innerProduct(sL, hadamard(yPow, sR))

	tau1, err := rng.RandomScalar()
	if err != nil {
		return nil, err
	}
	tau2, err := rng.RandomScalar()
	if err != nil {
		return nil, err
	}
	T1 := gens.H.ScalarMul(t1.BigInt()).Add(gens.G.ScalarMul(tau1.BigInt()))
	T2 := gens.H.ScalarMul(t2.BigInt()).Add(gens.G.ScalarMul(tau2.BigInt()))

	transcript.AppendPoint(T1)
	transcript.AppendPoint(T2)
	x := transcript.Challenge()

	// l = l0 + sL*x ; r = r0 + y^n o sR*x
	l := vecAdd(l0, vecScale(sL, x))
	r := vecAdd(r0, hadamard(yPow, vecScale(sR, x)))
	that := innerProduct(l, r)

	xSq := x.Mul(x)
	taux := tau2.Mul(xSq).Add(tau1.Mul(x)).Add(zSq.Mul(gamma))
	mu := alpha.Add(rho.Mul(x))

	// Fold H_vec by y^-i so the IPA operates on the same generators the
	// range relation's <l, r> is expressed against (spec.md 4.I).
	hPrime := make([]bls12381.G1, n)
	yInv, err := y.Inverse()
	if err != nil {
		return nil, err
	}
	yInvPow := powersOf(yInv, n)
	for i := range hPrime {
		hPrime[i] = gens.Hvec[i].ScalarMul(yInvPow[i].BigInt())
	}

	transcript.AppendScalar(taux)
	transcript.AppendScalar(mu)
	transcript.AppendScalar(that)

	ipa, err := ProveIPA(gens.Gvec, hPrime, gens.U, l, r, transcript)
	if err != nil {
		return nil, err
	}

	return &RangeProof{
		V: V, A: A, S: S, T1: T1, T2: T2,
		Taux: taux, Mu: mu, That: that, IPA: ipa,
	}, nil
}

// VerifyRange checks a range proof against gens, per spec.md 4.I and
// 8's scenario 6.
func VerifyRange(gens *Generators, proof *RangeProof) bool {
	n := gens.N

	transcript := NewTranscript("bulletproofs/rangeproof")
	transcript.AppendPoint(proof.V)
	transcript.AppendPoint(proof.A)
	transcript.AppendPoint(proof.S)
	y := transcript.Challenge()
	z := transcript.Challenge()

	transcript.AppendPoint(proof.T1)
	transcript.AppendPoint(proof.T2)
	x := transcript.Challenge()

	// Condition (65): H^that * G^taux == V^z^2 * H^delta(y,z) * T1^x * T2^x^2
	lhs := gens.H.ScalarMul(proof.That.BigInt()).Add(gens.G.ScalarMul(proof.Taux.BigInt()))

	zSq := z.Mul(z)
	xSq := x.Mul(x)
	delta := rangeDelta(y, z, n)

	rhs := proof.V.ScalarMul(zSq.BigInt()).
		Add(gens.H.ScalarMul(delta.BigInt())).
		Add(proof.T1.ScalarMul(x.BigInt())).
		Add(proof.T2.ScalarMul(xSq.BigInt()))

	if !lhs.Equal(rhs) {
		rangeLog.Warn("range proof t(x) check failed")
		return false
	}

	// Fold the generators and derive P so the IPA checks <l,r> = that
	// against the same commitment the prover built: P = A + x*S - z*G_vec
	// + h'^(z*y^n + z^2*2^n), opened by g^-mu to remove the blinding A and
	// S carry (spec.md 4.I condition 66/67 collapsed into a single
	// commitment, since this toolkit's IPA binds the inner product value
	// directly rather than requiring a separate point-at-infinity
	// subtraction check).
	yPow := powersOf(y, n)
	twoPow := powersOfTwo(n)
	yInv, err := y.Inverse()
	if err != nil {
		return false
	}
	yInvPow := powersOf(yInv, n)
	hPrime := make([]bls12381.G1, n)
	for i := range hPrime {
		hPrime[i] = gens.Hvec[i].ScalarMul(yInvPow[i].BigInt())
	}

	negZ := z.Neg()
	negZVec := make([]field.Fr, n)
	for i := range negZVec {
		negZVec[i] = negZ
	}
	zyn := hadamard(yPow, constVec(z, n))
	z22n := vecScaleBy(twoPow, zSq)
	hExp := vecAdd(zyn, z22n)

	p := proof.A.Add(proof.S.ScalarMul(x.BigInt())).
		Add(msm(gens.Gvec, negZVec)).
		Add(msm(hPrime, hExp)).
		Add(gens.G.Neg().ScalarMul(proof.Mu.BigInt())).
		Add(gens.U.ScalarMul(proof.That.BigInt()))

	transcript.AppendScalar(proof.Taux)
	transcript.AppendScalar(proof.Mu)
	transcript.AppendScalar(proof.That)

	if !VerifyIPA(gens.Gvec, hPrime, gens.U, p, transcript, proof.IPA) {
		rangeLog.Warn("range proof inner product check failed")
		return false
	}
	return true
}

// rangeDelta computes delta(y,z) = (z-z^2)*<1,y^n> - z^3*<1,2^n>, per
// the teacher's BulletProofSetupParams.delta.
func rangeDelta(y, z field.Fr, n int) field.Fr {
	zSq := z.Mul(z)
	zCu := zSq.Mul(z)
	yPow := powersOf(y, n)
	twoPow := powersOfTwo(n)
	sumY := field.FrZero()
	for _, v := range yPow {
		sumY = sumY.Add(v)
	}
	sumTwo := field.FrZero()
	for _, v := range twoPow {
		sumTwo = sumTwo.Add(v)
	}
	return z.Sub(zSq).Mul(sumY).Sub(zCu.Mul(sumTwo))
}

func bitsOf(v *big.Int, n int) []field.Fr {
	out := make([]field.Fr, n)
	for i := 0; i < n; i++ {
		out[i] = field.NewFrFromUint64(uint64(v.Bit(i)))
	}
	return out
}

func powersOf(x field.Fr, n int) []field.Fr {
	out := make([]field.Fr, n)
	cur := field.FrOne()
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = cur.Mul(x)
	}
	return out
}

func powersOfTwo(n int) []field.Fr {
	return powersOf(field.NewFrFromUint64(2), n)
}

func hadamard(a, b []field.Fr) []field.Fr {
	out := make([]field.Fr, len(a))
	for i := range a {
		out[i] = a[i].Mul(b[i])
	}
	return out
}

func vecAdd(a, b []field.Fr) []field.Fr {
	out := make([]field.Fr, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func vecAddScalar(a []field.Fr, s field.Fr) []field.Fr {
	out := make([]field.Fr, len(a))
	for i := range a {
		out[i] = a[i].Add(s)
	}
	return out
}

func vecSubScalar(a []field.Fr, s field.Fr) []field.Fr {
	out := make([]field.Fr, len(a))
	for i := range a {
		out[i] = a[i].Sub(s)
	}
	return out
}

func vecScale(a []field.Fr, s field.Fr) []field.Fr {
	out := make([]field.Fr, len(a))
	for i := range a {
		out[i] = a[i].Mul(s)
	}
	return out
}

func vecScaleBy(a []field.Fr, s field.Fr) []field.Fr { return vecScale(a, s) }

func constVec(s field.Fr, n int) []field.Fr {
	out := make([]field.Fr, n)
	for i := range out {
		out[i] = s
	}
	return out
}
