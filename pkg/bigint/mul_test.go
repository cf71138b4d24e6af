package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul(t *testing.T) {
	a := MustParse("123456789012345678901234567890")
	b := MustParse("987654321098765432109876543210")
	want := "121932631137021795226185032733622923332237463801111263526900"
	assert.Equal(t, want, a.Mul(b).String())
	assert.Equal(t, want, b.Mul(a).String())
}

func TestMulIdentities(t *testing.T) {
	values := []string{"0", "1", "-1", "4294967296", "18446744073709551615", "-123456789012345678901234567890"}
	one, zero := New(1), New(0)
	for _, s := range values {
		a := MustParse(s)
		assert.True(t, a.Mul(one).Equal(a), "a * 1 = a for %s", s)
		assert.True(t, a.Mul(zero).Equal(zero), "a * 0 = 0 for %s", s)
	}
}

func TestMulSigns(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"7", "6", "42"},
		{"-7", "6", "-42"},
		{"7", "-6", "-42"},
		{"-7", "-6", "42"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MustParse(c.a).Mul(MustParse(c.b)).String())
	}
}

func TestMulCarryFold(t *testing.T) {
	// (2^64 - 1)^2 = 2^128 - 2^65 + 1 exercises the final-carry fold: the
	// second row's leftover carry lands on a limb already holding a value.
	a := MustParse("18446744073709551615")
	assert.Equal(t,
		"340282366920938463426481119284349108225",
		a.Mul(a).String())

	// (2^96 - 1)^2 = 2^192 - 2^97 + 1
	b := MustParse("79228162514264337593543950335")
	assert.Equal(t,
		"6277101735386680763835789423049210091073826769276946612225",
		b.Mul(b).String())
}

func TestMulUint64(t *testing.T) {
	a := MustParse("123456789012345678901234567890")
	assert.Equal(t, a.Mul(New(1000)).String(), a.MulUint64(1000).String())

	// Multiplier above one limb takes the general path.
	m := MustParse("18446744073709551615")
	assert.Equal(t, a.Mul(m).String(), a.MulUint64(1<<64-1).String())

	assert.Equal(t, "0", New(0).MulUint64(12345).String())
}

func TestMulShiftDuality(t *testing.T) {
	a := MustParse("987654321987654321987654321")
	for _, k := range []int{1, 13, 32, 63} {
		assert.True(t, a.Lsh(k).Equal(a.MulUint64(1<<uint(k))), "a << %d = a * 2^%d", k, k)
	}
}
