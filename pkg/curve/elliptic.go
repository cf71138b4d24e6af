package curve

import "github.com/barnden/crypto/pkg/bigint"

// EllipticCurve augments a Curve with a lazy enumeration of every affine
// point. Enumeration walks all p² coordinate pairs, so it is only defined
// for fields with p < 2^32, and only practical for tiny curves used in
// examples and tests.
type EllipticCurve struct {
	*Curve
	points []*Point
}

// NewEllipticCurve returns an enumerable curve y² = x³ + ax + b over F_p.
func NewEllipticCurve(a, b, p *bigint.Int) (*EllipticCurve, error) {
	c, err := NewCurve(a, b, p)
	if err != nil {
		return nil, err
	}
	return &EllipticCurve{Curve: c}, nil
}

// Points returns every affine point of the curve, computing and caching the
// set on first use. Fields above 32 bits are refused: intermediate products
// must stay within a 64-bit word.
func (e *EllipticCurve) Points() ([]*Point, error) {
	if e.points != nil {
		return e.points, nil
	}

	p, ok := e.p.Uint64()
	if !ok || p > 1<<32-1 {
		return nil, ErrFieldTooLarge
	}
	a, err := e.a.Mod(e.p)
	if err != nil {
		return nil, err
	}
	b, err := e.b.Mod(e.p)
	if err != nil {
		return nil, err
	}
	av, _ := a.Uint64()
	bv, _ := b.Uint64()

	points := make([]*Point, 0)
	for y := uint64(0); y < p; y++ {
		y2 := y * y % p
		for x := uint64(0); x < p; x++ {
			// x³ + ax + b, reduced at each step
			v := (x*x%p + av) % p
			v = (v*x%p + bv) % p
			if v != y2 {
				continue
			}
			pt, err := NewPoint(e.Curve, bigint.New(int64(x)), bigint.New(int64(y)))
			if err != nil {
				return nil, err
			}
			points = append(points, pt)
		}
	}
	e.points = points
	return points, nil
}
