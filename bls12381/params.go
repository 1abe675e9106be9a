// Package bls12381 instantiates the generic curve and tower packages with
// the concrete BLS12-381 parameters and implements the optimal ate
// pairing, subgroup checks, and compressed point serialization of
// spec.md 4.D/4.E/4.F.
package bls12381

import (
	"math/big"

	"github.com/zkcore/zkcore/curve"
	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/tower"
)

// X is the BLS parameter, known negative; its magnitude is used
// throughout the Miller loop and final exponentiation, per spec.md 4.F.
var X, _ = new(big.Int).SetString("d201000000010000", 16)

// g1Params pins G1's curve constant: y^2 = x^3 + 4.
var g1Params = curve.Params[field.Fq]{
	B:    field.NewFqFromUint64(4),
	Zero: field.FqZero(),
	One:  field.FqOne(),
}

// g2Params pins G2's twist curve constant: y^2 = x^3 + 4(1+u).
var g2Params = curve.Params[tower.Fq2]{
	B:    tower.NewFq2(field.NewFqFromUint64(4), field.NewFqFromUint64(4)),
	Zero: tower.Fq2Zero(),
	One:  tower.Fq2One(),
}

var (
	g1GenX = mustFq("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	g1GenY = mustFq("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")

	g2GenX = tower.Fq2FromHex(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8",
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e",
	)
	g2GenY = tower.Fq2FromHex(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801",
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be",
	)
)

func mustFq(hex string) field.Fq {
	v, _ := new(big.Int).SetString(hex, 16)
	return field.NewFq(v)
}

// G1Generator returns the fixed BLS12-381 G1 generator, per spec.md 4.E.
func G1Generator() G1 {
	return G1{curve.FromAffine(g1Params, curve.Affine[field.Fq]{X: g1GenX, Y: g1GenY})}
}

// G2Generator returns the fixed BLS12-381 G2 generator, per spec.md 4.E.
func G2Generator() G2 {
	return G2{curve.FromAffine(g2Params, curve.Affine[tower.Fq2]{X: g2GenX, Y: g2GenY})}
}

// scalarBits returns the big-endian bits of a non-negative big.Int,
// including the leading 1, for use with curve.ScalarMul.
func scalarBits(k *big.Int) []bool {
	bits := make([]bool, k.BitLen())
	for i := range bits {
		bits[i] = k.Bit(k.BitLen()-1-i) == 1
	}
	return bits
}
