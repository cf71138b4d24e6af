//go:build !montgomery

package modmath

import "github.com/barnden/crypto/pkg/bigint"

// modExpLoop is square-and-multiply over the exponent bits, most significant
// first. The multiply only happens on set bits, which leaks the bit pattern
// through timing; build with the montgomery tag for the ladder variant.
func modExpLoop(base, exp, m *bigint.Int) *bigint.Int {
	acc := mod(bigint.New(1), m)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		acc = mod(acc.Mul(acc), m)
		if exp.Bit(i) {
			acc = mod(acc.Mul(base), m)
		}
	}
	return acc
}
