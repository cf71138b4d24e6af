package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/barnden/crypto/pkg/bigint"
)

// Secp256k1 returns the Bitcoin curve y² = x³ + 7 over its 256-bit prime
// field, with parameters taken from the reference secp256k1 implementation.
// Tests cross-check the generic group law against that implementation.
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	c, err := NewCurve(bigint.New(0), fromBig(params.B), fromBig(params.P))
	if err != nil {
		panic("curve: " + err.Error())
	}
	return c
}

// Secp256k1Generator returns the base point G of the secp256k1 curve.
func Secp256k1Generator() *Point {
	params := secp256k1.S256().Params()
	p, err := NewPoint(Secp256k1(), fromBig(params.Gx), fromBig(params.Gy))
	if err != nil {
		panic("curve: " + err.Error())
	}
	return p
}

// fromBig converts a stdlib big.Int through its decimal rendering.
func fromBig(v *big.Int) *bigint.Int {
	return bigint.MustParse(v.String())
}
