package curve

import "github.com/barnden/crypto/pkg/bigint"

// ScalarMul returns k·p. A negative k multiplies the negated point, so
// (-k)·p = k·(-p); 0·p is the point at infinity.
func (p *Point) ScalarMul(k *bigint.Int) *Point {
	pt := p
	if k.Sign() < 0 {
		k = k.Abs()
		pt = p.Neg()
	}
	if k.IsZero() {
		return Infinity(p.curve)
	}
	if k.Equal(bigint.New(1)) {
		return pt
	}
	return scalarMulLoop(pt, k)
}
