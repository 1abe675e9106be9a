package bls12381

import (
	"math/big"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/tower"
	"github.com/zkcore/zkcore/zkerrors"
)

// Compressed point sizes, per the draft-irtf-cfrg-bls-signature encoding.
const (
	G1CompressedSize = 48
	G2CompressedSize = 96
)

// flag bits in the top byte of a compressed point.
const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagSort       = 0x20
)

// CompressG1 encodes p as a 48-byte compressed point: the high bits of the
// first byte carry the compressed/infinity/sort flags, per spec.md's
// serialization note grounded on the draft-irtf-cfrg-bls-signature layout.
func CompressG1(p G1) [G1CompressedSize]byte {
	var out [G1CompressedSize]byte
	if p.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y, _ := p.Affine()
	xBytes := x.Bytes()
	copy(out[:], xBytes[:])
	out[0] |= flagCompressed
	if ySortsHigh(y.BigInt()) {
		out[0] |= flagSort
	}
	return out
}

// DecompressG1 decodes a 48-byte compressed G1 point, rejecting points off
// the curve or outside the r-order subgroup.
func DecompressG1(data [G1CompressedSize]byte) (G1, error) {
	if data[0]&flagCompressed == 0 {
		return G1{}, zkerrors.NewParseError(0, "missing compressed flag")
	}
	if data[0]&flagInfinity != 0 {
		return G1Infinity(), nil
	}
	sortFlag := data[0]&flagSort != 0
	data[0] &= 0x1f
	x := field.FqSetBytes(data[:])

	rhs := x.Square().Mul(x).Add(field.NewFqFromUint64(4))
	y, ok := rhs.Sqrt()
	if !ok {
		return G1{}, zkerrors.NewNotOnCurveError("G1")
	}
	if sortFlag != ySortsHigh(y.BigInt()) {
		y = y.Neg()
	}
	p, err := NewG1Affine(x, y)
	if err != nil {
		return G1{}, err
	}
	if !p.InSubgroup() {
		return G1{}, zkerrors.NewNotInSubgroupError("G1")
	}
	return p, nil
}

// CompressG2 encodes p as a 96-byte compressed point: x = (c1 || c0), the
// flag byte laid out as in CompressG1.
func CompressG2(p G2) [G2CompressedSize]byte {
	var out [G2CompressedSize]byte
	if p.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y, _ := p.Affine()
	c1Bytes := x.C1.BigInt().Bytes()
	c0Bytes := x.C0.BigInt().Bytes()
	copy(out[G1CompressedSize-len(c1Bytes):G1CompressedSize], c1Bytes)
	copy(out[G2CompressedSize-len(c0Bytes):], c0Bytes)
	out[0] |= flagCompressed
	if fq2SortsHigh(y) {
		out[0] |= flagSort
	}
	return out
}

// DecompressG2 decodes a 96-byte compressed G2 point, rejecting points off
// the twist curve or outside the r-order subgroup.
func DecompressG2(data [G2CompressedSize]byte) (G2, error) {
	if data[0]&flagCompressed == 0 {
		return G2{}, zkerrors.NewParseError(0, "missing compressed flag")
	}
	if data[0]&flagInfinity != 0 {
		return G2Infinity(), nil
	}
	sortFlag := data[0]&flagSort != 0
	data[0] &= 0x1f
	c1 := new(big.Int).SetBytes(data[:G1CompressedSize])
	c0 := new(big.Int).SetBytes(data[G1CompressedSize:])
	if c0.Cmp(field.FqModulus) >= 0 || c1.Cmp(field.FqModulus) >= 0 {
		return G2{}, zkerrors.NewParseError(0, "coordinate out of range")
	}
	x := tower.NewFq2(field.NewFq(c0), field.NewFq(c1))

	rhs := x.Square().Mul(x).Add(g2Params.B)
	y, ok := rhs.Sqrt()
	if !ok {
		return G2{}, zkerrors.NewNotOnCurveError("G2")
	}
	if sortFlag != fq2SortsHigh(y) {
		y = y.Neg()
	}
	p, err := NewG2Affine(x, y)
	if err != nil {
		return G2{}, err
	}
	if !p.InSubgroup() {
		return G2{}, zkerrors.NewNotInSubgroupError("G2")
	}
	return p, nil
}

// ySortsHigh reports whether y is the lexicographically larger root, i.e.
// y > (q-1)/2.
func ySortsHigh(y *big.Int) bool {
	half := new(big.Int).Rsh(field.FqModulus, 1)
	return y.Cmp(half) > 0
}

// fq2SortsHigh orders Fq2 elements as (c1, c0) lexicographically, matching
// the big-endian (c1 || c0) wire encoding.
func fq2SortsHigh(y tower.Fq2) bool {
	half := new(big.Int).Rsh(field.FqModulus, 1)
	c1 := y.C1.BigInt()
	if c1.Sign() != 0 {
		return c1.Cmp(half) > 0
	}
	return y.C0.BigInt().Cmp(half) > 0
}
