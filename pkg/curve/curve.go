// Package curve implements the group of points on a short Weierstrass
// elliptic curve y² = x³ + ax + b over a prime field: point negation,
// chord-and-tangent addition, scalar multiplication, and exhaustive point
// enumeration for fields small enough to walk.
package curve

import (
	"errors"

	"github.com/barnden/crypto/pkg/bigint"
	"github.com/barnden/crypto/pkg/modmath"
)

var (
	// ErrCurveMismatch is returned when combining points from different curves.
	ErrCurveMismatch = errors.New("curve: points lie on different curves")

	// ErrNotOnCurve is returned when coordinates fail the curve equation.
	ErrNotOnCurve = errors.New("curve: point does not satisfy the curve equation")

	// ErrFieldTooLarge is returned when asked to enumerate a field whose
	// modulus does not fit in 32 bits.
	ErrFieldTooLarge = errors.New("curve: field too large to enumerate")
)

// Curve holds the parameters of E: y² ≡ x³ + ax + b (mod p). Curves are
// immutable after construction and compared componentwise.
type Curve struct {
	a, b, p *bigint.Int
}

// NewCurve returns the curve y² = x³ + ax + b over F_p. The field modulus
// must be positive.
func NewCurve(a, b, p *bigint.Int) (*Curve, error) {
	if p.Sign() <= 0 {
		return nil, bigint.ErrNegativeModulus
	}
	return &Curve{a: a, b: b, p: p}, nil
}

// A returns the curve coefficient a.
func (c *Curve) A() *bigint.Int { return c.a }

// B returns the curve coefficient b.
func (c *Curve) B() *bigint.Int { return c.b }

// P returns the field modulus.
func (c *Curve) P() *bigint.Int { return c.p }

// Equal reports whether two curves have identical parameters.
func (c *Curve) Equal(o *Curve) bool {
	if c == o {
		return true
	}
	return c.a.Equal(o.a) && c.b.Equal(o.b) && c.p.Equal(o.p)
}

// Contains reports whether affine coordinates (x, y) satisfy the curve
// equation.
func (c *Curve) Contains(x, y *bigint.Int) bool {
	y2 := c.mod(y.Mul(y))
	rhs := c.mod(x.Mul(x).Add(c.a).Mul(x).Add(c.b))
	return y2.Equal(rhs)
}

// mod reduces v into [0, p).
func (c *Curve) mod(v *bigint.Int) *bigint.Int {
	r, err := v.Mod(c.p)
	if err != nil {
		panic("curve: " + err.Error())
	}
	return r
}

// inverse returns v⁻¹ mod p, or false when v is not invertible. Over a
// composite pseudo-field the group law uses the failure as its collapse
// signal.
func (c *Curve) inverse(v *bigint.Int) (*bigint.Int, bool) {
	inv, err := modmath.ModInverse(v, c.p)
	if err != nil {
		return nil, false
	}
	return inv, true
}
