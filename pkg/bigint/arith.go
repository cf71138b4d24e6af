package bigint

// magCmp compares two normalized magnitudes.
func magCmp(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magAdd returns x + y over magnitudes. Limbs are walked in parallel with a
// 64-bit accumulator; the low 32 bits become the new limb and the high bits
// carry into the next position.
func magAdd(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]uint32, len(x)+1)
	var carry uint64
	for i := range x {
		sum := uint64(x[i]) + carry
		if i < len(y) {
			sum += uint64(y[i])
		}
		z[i] = uint32(sum)
		carry = sum >> 32
	}
	z[len(x)] = uint32(carry)
	return z
}

// magSub returns x - y over magnitudes. Requires x >= y.
func magSub(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow int64
	for i := range x {
		d := int64(x[i]) + borrow
		if i < len(y) {
			d -= int64(y[i])
		}
		z[i] = uint32(d)
		borrow = d >> 32
	}
	return z
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		return makeInt(magAdd(x.limbs, y.limbs), x.neg)
	}
	// Differing signs reduce to subtraction of magnitudes; the larger
	// magnitude decides the sign.
	switch magCmp(x.limbs, y.limbs) {
	case 0:
		return New(0)
	case 1:
		return makeInt(magSub(x.limbs, y.limbs), x.neg)
	default:
		return makeInt(magSub(y.limbs, x.limbs), y.neg)
	}
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	if x.neg != y.neg {
		return makeInt(magAdd(x.limbs, y.limbs), x.neg)
	}
	switch magCmp(x.limbs, y.limbs) {
	case 0:
		return New(0)
	case 1:
		return makeInt(magSub(x.limbs, y.limbs), x.neg)
	default:
		return makeInt(magSub(y.limbs, x.limbs), !x.neg)
	}
}
