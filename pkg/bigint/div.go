package bigint

import "math/bits"

// magDivModW divides a magnitude by a single non-zero limb, walking the
// dividend most-significant limb first with a 64-bit running remainder.
func magDivModW(x []uint32, d uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(x))
	var rem uint64
	for j := len(x) - 1; j >= 0; j-- {
		t := rem<<32 | uint64(x[j])
		q[j] = uint32(t / uint64(d))
		rem = t % uint64(d)
	}
	return q, uint32(rem)
}

// magDivMod returns the quotient and remainder magnitudes of x / y.
// Both inputs must be normalized and y must be non-zero.
//
// The multi-limb case is Knuth Algorithm D (TAOCP vol. 2, 4.3.1), following
// the divmnu64 rendition from Hacker's Delight: normalize so the divisor's
// top limb has its high bit set, estimate each quotient digit from the top
// two dividend limbs, correct the estimate at most twice, multiply-subtract
// with a signed borrow, and add the divisor back on the rare underflow.
func magDivMod(x, y []uint32) (q, r []uint32) {
	if len(y) == 1 {
		qw, rw := magDivModW(x, y[0])
		return qw, []uint32{rw}
	}

	switch magCmp(x, y) {
	case -1:
		r = make([]uint32, len(x))
		copy(r, x)
		return []uint32{0}, r
	case 0:
		return []uint32{1}, []uint32{0}
	}

	n := len(y)
	m := len(x) - n

	s := uint(bits.LeadingZeros32(y[n-1]))

	// Shifted copies of divisor and dividend; un gains one extra limb.
	// Shift counts of 32 yield zero in Go, so s == 0 needs no special case.
	vn := make([]uint32, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = y[i]<<s | uint32(uint64(y[i-1])>>(32-s))
	}
	vn[0] = y[0] << s

	un := make([]uint32, len(x)+1)
	un[len(x)] = uint32(uint64(x[len(x)-1]) >> (32 - s))
	for i := len(x) - 1; i > 0; i-- {
		un[i] = x[i]<<s | uint32(uint64(x[i-1])>>(32-s))
	}
	un[0] = x[0] << s

	q = make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		// Trial digit from the top two limbs against the divisor's top limb.
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num % uint64(vn[n-1])

		for qhat >= 1<<32 || qhat*uint64(vn[n-2]) > rhat<<32|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= 1<<32 {
				break
			}
		}

		// Multiply and subtract, tracking a signed borrow.
		var borrow, t int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t = int64(un[i+j]) - borrow - int64(uint32(p))
			un[i+j] = uint32(t)
			borrow = int64(p>>32) - (t >> 32)
		}
		t = int64(un[j+n]) - borrow
		un[j+n] = uint32(t)

		q[j] = uint32(qhat)
		if t < 0 {
			// Trial digit was one too large; add the divisor back.
			q[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				t2 := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(t2)
				carry = t2 >> 32
			}
			un[j+n] += uint32(carry)
		}
	}

	// De-normalize the remainder.
	r = make([]uint32, n)
	for i := 0; i < n; i++ {
		r[i] = un[i]>>s | uint32(uint64(un[i+1])<<(32-s))
	}
	return q, r
}

// QuoRem returns the quotient and remainder of truncated division x / y,
// so that x = q*y + r with the remainder taking the sign of x.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	qm, rm := magDivMod(x.limbs, y.limbs)
	return makeInt(qm, x.neg != y.neg), makeInt(rm, x.neg), nil
}

// Div returns the quotient of truncated division x / y.
func (x *Int) Div(y *Int) (*Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Mod returns x mod m with the result always in [0, m). The modulus must be
// positive: a zero modulus yields ErrDivisionByZero and a negative one
// ErrNegativeModulus.
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	if m.neg {
		return nil, ErrNegativeModulus
	}
	_, rm := magDivMod(x.limbs, m.limbs)
	r := makeInt(rm, x.neg)
	if r.neg {
		r = r.Add(m)
	}
	return r, nil
}
