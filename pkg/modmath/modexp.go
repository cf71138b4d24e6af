package modmath

import "github.com/barnden/crypto/pkg/bigint"

// ModExp returns base^exp modulo m. The modulus must be positive and the
// exponent non-negative.
//
// Reducing exp modulo ϕ(m) for exp > m is only sound when gcd(base, m) = 1,
// so no such reduction is applied.
func ModExp(base, exp, m *bigint.Int) (*bigint.Int, error) {
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	b, err := base.Mod(m)
	if err != nil {
		return nil, err
	}

	// a ≡ 0 (mod m) forces a^n ≡ 0 for any positive n.
	if b.IsZero() && !exp.IsZero() {
		return bigint.New(0), nil
	}
	switch {
	case exp.IsZero():
		return mod(bigint.New(1), m), nil
	case exp.Equal(bigint.New(1)):
		return b, nil
	case exp.Equal(bigint.New(2)):
		return mod(b.Mul(b), m), nil
	}

	return modExpLoop(b, exp, m), nil
}
