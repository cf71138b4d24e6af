// Package bigint implements an arbitrary-precision signed integer on top of
// 32-bit limbs. Values are sign + magnitude: a sign flag plus a little-endian
// slice of uint32 digits in base 2^32, normalized so that the top limb is
// non-zero except for the canonical single-limb zero.
//
// All operations return fresh values; an Int is never mutated through its
// public API. A single Int is not safe for concurrent mutation, but distinct
// values may be used from distinct goroutines freely.
package bigint

import "math/bits"

// Int is an arbitrary-precision signed integer.
//
// The zero value of Int is not usable; construct values with New, FromString,
// FromLimbs or the arithmetic methods.
type Int struct {
	limbs []uint32 // little-endian base-2^32 magnitude, normalized
	neg   bool     // sign flag; always false for zero
}

// New returns an Int holding v.
func New(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return makeInt([]uint32{uint32(u), uint32(u >> 32)}, neg)
}

// FromLimbs constructs an Int from a little-endian base-2^32 magnitude.
// The slice is copied; the result is non-negative.
func FromLimbs(limbs []uint32) *Int {
	z := &Int{limbs: make([]uint32, len(limbs))}
	copy(z.limbs, limbs)
	return z.trim()
}

// trim strips leading zero limbs and canonicalizes zero in place.
func (x *Int) trim() *Int {
	n := len(x.limbs)
	for n > 1 && x.limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		x.limbs = []uint32{0}
		n = 1
	}
	x.limbs = x.limbs[:n]
	if n == 1 && x.limbs[0] == 0 {
		x.neg = false
	}
	return x
}

// makeInt wraps a magnitude and sign into a normalized Int, taking ownership
// of the slice.
func makeInt(limbs []uint32, neg bool) *Int {
	z := &Int{limbs: limbs, neg: neg}
	return z.trim()
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return len(x.limbs) == 1 && x.limbs[0] == 0
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsNegative reports whether x is strictly negative.
func (x *Int) IsNegative() bool { return x.Sign() < 0 }

// Neg returns -x.
func (x *Int) Neg() *Int {
	z := x.clone()
	if !z.IsZero() {
		z.neg = !z.neg
	}
	return z
}

// Abs returns the absolute value of x.
func (x *Int) Abs() *Int {
	z := x.clone()
	z.neg = false
	return z
}

func (x *Int) clone() *Int {
	limbs := make([]uint32, len(x.limbs))
	copy(limbs, x.limbs)
	return &Int{limbs: limbs, neg: x.neg}
}

// Limbs returns a copy of the little-endian base-2^32 magnitude of x.
func (x *Int) Limbs() []uint32 {
	limbs := make([]uint32, len(x.limbs))
	copy(limbs, x.limbs)
	return limbs
}

// BitLen returns the length of the magnitude of x in bits. BitLen(0) is 0.
func (x *Int) BitLen() int {
	if x.IsZero() {
		return 0
	}
	n := len(x.limbs)
	return (n-1)*32 + bits.Len32(x.limbs[n-1])
}

// TrailingZeros returns the number of consecutive zero bits at the least
// significant end of the magnitude. TrailingZeros(0) is 0.
func (x *Int) TrailingZeros() int {
	if x.IsZero() {
		return 0
	}
	for i, limb := range x.limbs {
		if limb != 0 {
			return i*32 + bits.TrailingZeros32(limb)
		}
	}
	return 0
}

// Bit reports whether bit i of the magnitude of x is set.
func (x *Int) Bit(i int) bool {
	if i < 0 || i/32 >= len(x.limbs) {
		return false
	}
	return x.limbs[i/32]&(1<<uint(i%32)) != 0
}

// IsPowerOfTwo reports whether x is a positive power of two.
func (x *Int) IsPowerOfTwo() bool {
	if x.IsZero() || x.neg {
		return false
	}
	return x.TrailingZeros() == x.BitLen()-1
}

// Uint64 returns the uint64 value of x and whether x fits in a uint64.
func (x *Int) Uint64() (uint64, bool) {
	if x.neg || len(x.limbs) > 2 {
		return 0, false
	}
	v := uint64(x.limbs[0])
	if len(x.limbs) == 2 {
		v |= uint64(x.limbs[1]) << 32
	}
	return v, true
}

// Int64 returns the int64 value of x and whether x fits in an int64.
func (x *Int) Int64() (int64, bool) {
	u, ok := x.Uint64()
	if x.neg {
		if !x.fitsNegInt64() {
			return 0, false
		}
		return -int64(x.low64()), true
	}
	if !ok || u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

func (x *Int) low64() uint64 {
	v := uint64(x.limbs[0])
	if len(x.limbs) > 1 {
		v |= uint64(x.limbs[1]) << 32
	}
	return v
}

func (x *Int) fitsNegInt64() bool {
	return len(x.limbs) <= 2 && x.low64() <= 1<<63
}
