// Package rbg provides the random bit generator abstraction that trusted
// setup and range-proof blinding sample scalars from, per spec.md's external
// dependency on a host-provided randomness source.
package rbg

import (
	"crypto/rand"
	"math/big"

	"github.com/zkcore/zkcore/field"
)

// Source supplies uniformly random scalars in F_r.
type Source interface {
	RandomScalar() (field.Fr, error)
}

// osRandom backs Source with crypto/rand, the standard library's CSPRNG.
type osRandom struct{}

// OSRandom returns a Source backed by crypto/rand.
func OSRandom() Source { return osRandom{} }

func (osRandom) RandomScalar() (field.Fr, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return field.Fr{}, err
	}
	// Oversample to 512 bits and reduce, avoiding modulo bias against the
	// ~255-bit scalar field order.
	return field.NewFr(new(big.Int).SetBytes(buf[:])), nil
}
