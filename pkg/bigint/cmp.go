package bigint

// Cmp compares x and y and returns -1, 0, or +1. Zero compares equal to
// zero regardless of how it was produced.
func (x *Int) Cmp(y *Int) int {
	if x.IsZero() && y.IsZero() {
		return 0
	}
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := magCmp(x.limbs, y.limbs)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same integer.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}
