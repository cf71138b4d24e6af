//go:build !montgomery

package curve

import "github.com/barnden/crypto/pkg/bigint"

// scalarMulLoop is binary double-and-add over the scalar bits, most
// significant first. The add only happens on set bits; build with the
// montgomery tag for the fixed-schedule ladder.
func scalarMulLoop(p *Point, k *bigint.Int) *Point {
	acc := Infinity(p.curve)
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.add(acc)
		if k.Bit(i) {
			acc = acc.add(p)
		}
	}
	return acc
}
