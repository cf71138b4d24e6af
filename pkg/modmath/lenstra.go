package modmath

import (
	"errors"
	"math/rand"

	"github.com/barnden/crypto/pkg/bigint"
)

// ErrNoFactor is returned when no nontrivial factor was found within the
// attempt budget. Lenstra is probabilistic; the caller may simply retry.
var ErrNoFactor = errors.New("modmath: no nontrivial factor found")

const (
	lenstraScalarBound = 1024 // multiples of P tried per curve
	lenstraMaxCurves   = 1000 // fresh random curves before giving up
)

// LenstraFactorization searches for a nontrivial factor of composite n using
// Lenstra's elliptic-curve method. A random pseudo-curve y² = x³ + ax + b is
// formed over Z/nZ. It is not actually a group, which is the point: when the
// chord-and-tangent law needs an inverse that does not exist, the failed
// inversion hands us gcd(denominator, n), and any value strictly between 1
// and n is a factor.
//
// The method performs best when n = p·q with q much smaller than p. Calling
// it with a prime n exhausts the attempt budget and returns ErrNoFactor.
func LenstraFactorization(n *bigint.Int, rnd *rand.Rand) (*bigint.Int, error) {
	one := bigint.New(1)
	if n.Cmp(bigint.New(4)) < 0 {
		return nil, ErrNoFactor
	}
	if !n.Bit(0) {
		return bigint.New(2), nil
	}

	for curve := 0; curve < lenstraMaxCurves; curve++ {
		a := randMod(rnd, n)
		px := randMod(rnd, n)
		py := randMod(rnd, n)

		// Q = j·P, computed incrementally for j = 2, 3, ...
		qx, qy := px, py
		for j := 2; j <= lenstraScalarBound; j++ {
			nx, ny, d, infinite := pseudoAdd(qx, qy, px, py, a, n)
			if d != nil {
				if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
					return d, nil
				}
				break // gcd collapsed to n; try a fresh curve
			}
			if infinite {
				break
			}
			qx, qy = nx, ny
		}
	}
	return nil, ErrNoFactor
}

// pseudoAdd applies the chord-and-tangent rule to (x1,y1) + (x2,y2) over
// Z/nZ. On success it returns the sum. When the slope denominator shares a
// factor with n it returns that gcd in d. When the sum is the point at
// infinity it reports infinite.
func pseudoAdd(x1, y1, x2, y2, a, n *bigint.Int) (x3, y3, d *bigint.Int, infinite bool) {
	var num, den *bigint.Int
	if x1.Equal(x2) {
		if !mod(y1.Add(y2), n).IsZero() && y1.Equal(y2) {
			// Tangent: λ = (3x² + a) / (2y)
			num = mod(x1.Mul(x1).MulUint64(3).Add(a), n)
			den = mod(y1.MulUint64(2), n)
		} else {
			// Vertical chord or tangent.
			return nil, nil, nil, true
		}
	} else {
		num = mod(y2.Sub(y1), n)
		den = mod(x2.Sub(x1), n)
	}

	inv, err := ModInverse(den, n)
	if err != nil {
		var noInv *NoInverseError
		if errors.As(err, &noInv) {
			return nil, nil, noInv.GCD, false
		}
		panic("modmath: " + err.Error())
	}

	lambda := mod(num.Mul(inv), n)
	x3 = mod(lambda.Mul(lambda).Sub(x1).Sub(x2), n)
	y3 = mod(lambda.Mul(x1.Sub(x3)).Sub(y1), n)
	return x3, y3, nil, false
}

// randMod draws a uniform-ish value in [0, n).
func randMod(rnd *rand.Rand, n *bigint.Int) *bigint.Int {
	return mod(bigint.Random(rnd, n.BitLen()), n)
}
