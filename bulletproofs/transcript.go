// Package bulletproofs implements the inner-product argument and range
// proof of spec.md 4.I over BLS12-381 G1 and the scalar field F_r.
package bulletproofs

import (
	"crypto/sha256"
	"math/big"

	"github.com/zkcore/zkcore/bls12381"
	"github.com/zkcore/zkcore/field"
)

// Transcript is a Fiat-Shamir hash absorber: every point and scalar fed
// into it updates a running SHA-256 state, and Challenge derives the
// next verifier challenge from that state, grounded on the teacher's
// ipaTranscript in pkg/crypto/ipa.go (adapted from the Banderwagon group
// to BLS12-381 G1). The domain label only seeds the initial state; it is
// not re-absorbed with later data.
type Transcript struct {
	state []byte
}

// NewTranscript starts a transcript seeded with a domain-separation label.
func NewTranscript(label string) *Transcript {
	h := sha256.Sum256([]byte(label))
	return &Transcript{state: h[:]}
}

func (t *Transcript) absorb(data []byte) {
	h := sha256.New()
	h.Write(t.state)
	h.Write(data)
	t.state = h.Sum(nil)
}

// AppendPoint absorbs a compressed G1 point into the transcript.
func (t *Transcript) AppendPoint(p bls12381.G1) {
	buf := bls12381.CompressG1(p)
	t.absorb(buf[:])
}

// AppendScalar absorbs a field element into the transcript.
func (t *Transcript) AppendScalar(s field.Fr) {
	b := s.Bytes()
	t.absorb(b[:])
}

// Challenge derives the next challenge scalar and advances the
// transcript state, per spec.md 4.I's Fiat-Shamir contract.
func (t *Transcript) Challenge() field.Fr {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte("challenge"))
	digest := h.Sum(nil)
	t.state = digest

	c := field.NewFr(new(big.Int).SetBytes(digest))
	if c.IsZero() {
		c = field.FrOne()
	}
	return c
}
