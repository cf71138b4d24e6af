package modmath

import "github.com/barnden/crypto/pkg/bigint"

// Totient returns Euler's totient ϕ(n) for n ≥ 0.
//
// ϕ(p) = p - 1 for prime p, detected with Miller–Rabin. Factors of two are
// stripped through multiplicativity: ϕ(2^k · r) = 2^(k-1) · ϕ(r) for odd r.
// The remaining odd composite case counts integers coprime to n directly,
// which is exponential in the size of n and acceptable only for small n.
func Totient(n *bigint.Int) *bigint.Int {
	one := bigint.New(1)
	if n.IsZero() {
		return bigint.New(0)
	}
	if n.Equal(one) {
		return one
	}

	if n.Bit(0) {
		// Odd prime short circuit.
		if !MillerRabin(n) {
			return n.Sub(one)
		}
		return totientCount(n)
	}

	k := n.TrailingZeros()
	r := n.Rsh(k)
	if r.Equal(one) {
		// n = 2^k
		return one.Lsh(k - 1)
	}
	return Totient(r).Lsh(k - 1)
}

// totientCount walks [2, n) counting values coprime to n; the unit 1 is
// always coprime.
func totientCount(n *bigint.Int) *bigint.Int {
	one := bigint.New(1)
	acc := bigint.New(1)
	for i := bigint.New(2); i.Cmp(n) < 0; i = i.Add(one) {
		if GCD(i, n).Equal(one) {
			acc = acc.Add(one)
		}
	}
	return acc
}
