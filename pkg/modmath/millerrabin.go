package modmath

import (
	"math/rand"
	"sync"

	"github.com/barnden/crypto/pkg/bigint"
)

// Sorenson and Webster (doi:10.1090/mcom/3134): for composite
// n < 3,317,044,064,679,887,385,961,981 at least one base in
// deterministicBases is a witness, making the test deterministic below
// that bound.
var deterministicBound = bigint.MustParse("3,317,044,064,679,887,385,961,981")

var deterministicBases = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43}

// Additional small primes tried before random bases above the bound.
var extendedBases = []int64{
	47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193,
}

// randomRounds is the number of random large bases tested above the
// deterministic bound.
const randomRounds = 20

// witnessRand feeds random witness selection for large candidates. The
// shared source is serialized behind a mutex so concurrent MillerRabin
// calls stay safe.
var (
	witnessMu   sync.Mutex
	witnessRand = rand.New(rand.NewSource(0x6d72)) // deterministic, not secret
)

// MillerRabin reports whether n is composite: true means a witness proved n
// composite, false means n is (probably) prime. Below the Sorenson–Webster
// bound the answer is exact.
func MillerRabin(n *bigint.Int) bool {
	two := bigint.New(2)
	if n.Cmp(two) < 0 {
		return true
	}
	if n.Equal(two) {
		return false
	}
	if !n.Bit(0) {
		return true
	}

	// Write n - 1 = 2^r * d with d odd.
	np := n.Sub(bigint.New(1))
	r := np.TrailingZeros()
	d := np.Rsh(r)

	for _, b := range deterministicBases {
		base := bigint.New(b)
		if base.Equal(n) {
			continue
		}
		if witness(base, d, n, np, r) {
			return true
		}
	}
	if n.Cmp(deterministicBound) < 0 {
		return false
	}

	for _, b := range extendedBases {
		if witness(bigint.New(b), d, n, np, r) {
			return true
		}
	}
	witnessMu.Lock()
	defer witnessMu.Unlock()
	for i := 0; i < randomRounds; i++ {
		base := bigint.Random(witnessRand, n.BitLen()-1)
		if base.Cmp(two) < 0 || base.Equal(n) {
			continue
		}
		if witness(base, d, n, np, r) {
			return true
		}
	}
	return false
}

// witness reports whether base proves n composite, given n-1 = 2^r * d.
func witness(base, d, n, np *bigint.Int, r int) bool {
	x, err := ModExp(base, d, n)
	if err != nil {
		panic("modmath: " + err.Error())
	}
	if x.Equal(bigint.New(1)) || x.Equal(np) {
		return false
	}
	for i := 0; i < r-1; i++ {
		x = mod(x.Mul(x), n)
		if x.Equal(np) {
			return false
		}
	}
	return true
}
