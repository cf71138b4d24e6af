//go:build montgomery

package modmath

import "github.com/barnden/crypto/pkg/bigint"

// modExpLoop is the Montgomery-ladder exponentiation schedule: one multiply
// and one square per exponent bit regardless of its value, smoothing the
// timing side channel of plain square-and-multiply.
func modExpLoop(base, exp, m *bigint.Int) *bigint.Int {
	acc := mod(bigint.New(1), m)
	g := base
	for i := exp.BitLen() - 1; i >= 0; i-- {
		if exp.Bit(i) {
			acc = mod(acc.Mul(g), m)
			g = mod(g.Mul(g), m)
		} else {
			g = mod(acc.Mul(g), m)
			acc = mod(acc.Mul(acc), m)
		}
	}
	return acc
}
