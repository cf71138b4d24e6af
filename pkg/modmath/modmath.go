// Package modmath provides number-theoretic routines over bigint values:
// greatest common divisor, Bézout coefficients, modular inverse and
// exponentiation, the Euler totient, Miller–Rabin primality testing and
// Lenstra elliptic-curve factorization.
//
// Operations that draw randomness take an explicit *math/rand.Rand so the
// caller controls seeding; the output is deterministic pseudorandomness and
// must not be treated as cryptographically strong.
package modmath

import (
	"errors"
	"fmt"

	"github.com/barnden/crypto/pkg/bigint"
)

// ErrNegativeExponent is returned by ModExp for a negative exponent.
var ErrNegativeExponent = errors.New("modmath: negative exponent")

// NoInverseError is returned when a modular inverse does not exist. It
// carries the offending operands and their gcd; Lenstra factorization reads
// the gcd as its factor candidate.
type NoInverseError struct {
	N   *bigint.Int
	Mod *bigint.Int
	GCD *bigint.Int
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("modmath: %s has no inverse modulo %s (gcd %s)", e.N, e.Mod, e.GCD)
}

// mod reduces x modulo m. Every call site has already established that m is
// positive, so a failure here is a programming error.
func mod(x, m *bigint.Int) *bigint.Int {
	r, err := x.Mod(m)
	if err != nil {
		panic("modmath: " + err.Error())
	}
	return r
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, b) = |b|.
func GCD(a, b *bigint.Int) *bigint.Int {
	a, b = a.Abs(), b.Abs()
	for !a.IsZero() {
		a, b = mod(b, a), a
	}
	return b
}

// extGCD runs the extended Euclidean algorithm on non-negative a, b and
// returns g = gcd(a, b) along with s, t such that s*a + t*b = g.
func extGCD(a, b *bigint.Int) (g, s, t *bigint.Int) {
	prevR, r := a, b
	prevS, s := bigint.New(1), bigint.New(0)
	prevT, t := bigint.New(0), bigint.New(1)

	for !r.IsZero() {
		q, rem, err := prevR.QuoRem(r)
		if err != nil {
			panic("modmath: " + err.Error())
		}
		prevR, r = r, rem
		prevS, s = s, prevS.Sub(q.Mul(s))
		prevT, t = t, prevT.Sub(q.Mul(t))
	}
	return prevR, prevS, prevT
}

// BezoutCoefficients returns (s, t) such that s*a + t*b = gcd(a, b). When
// b < a the inputs are swapped first, so the caller is responsible for
// knowing which coefficient belongs to which argument.
func BezoutCoefficients(a, b *bigint.Int) (s, t *bigint.Int) {
	if b.Cmp(a) < 0 {
		a, b = b, a
	}
	_, s, t = extGCD(a, b)
	return s, t
}

// ModInverse returns n⁻¹ modulo m, normalized into [0, m). The modulus must
// be positive. When gcd(n, m) ≠ 1 the result is a *NoInverseError carrying
// the gcd.
func ModInverse(n, m *bigint.Int) (*bigint.Int, error) {
	nm, err := n.Mod(m)
	if err != nil {
		return nil, err
	}
	g, s, _ := extGCD(nm, m)
	if !g.Equal(bigint.New(1)) {
		return nil, &NoInverseError{N: nm, Mod: m, GCD: g}
	}
	if s.Sign() < 0 {
		s = s.Add(m)
	}
	return mod(s, m), nil
}
