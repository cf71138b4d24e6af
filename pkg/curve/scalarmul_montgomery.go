//go:build montgomery

package curve

import "github.com/barnden/crypto/pkg/bigint"

// scalarMulLoop is the Montgomery ladder: one add and one double per scalar
// bit regardless of its value, the schedule resistant to simple
// power-analysis.
func scalarMulLoop(p *Point, k *bigint.Int) *Point {
	r0 := Infinity(p.curve)
	r1 := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		if k.Bit(i) {
			r0 = r0.add(r1)
			r1 = r1.add(r1)
		} else {
			r1 = r1.add(r0)
			r0 = r0.add(r0)
		}
	}
	return r0
}
