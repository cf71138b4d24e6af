package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSubIdentities(t *testing.T) {
	values := []string{
		"0",
		"1",
		"-1",
		"4294967295",
		"4294967296",
		"-4294967296",
		"123456789012345678901234567890",
		"-999999999999999999999999999999999999",
	}
	zero := New(0)
	for _, s := range values {
		a := MustParse(s)
		assert.True(t, a.Add(zero).Equal(a), "a + 0 = a for %s", s)
		assert.True(t, a.Sub(a).Equal(zero), "a - a = 0 for %s", s)
		assert.True(t, a.Add(a.Neg()).Equal(zero), "a + (-a) = 0 for %s", s)
		for _, u := range values {
			b := MustParse(u)
			assert.True(t, a.Add(b).Sub(b).Equal(a), "(a+b)-b = a for %s, %s", s, u)
			assert.True(t, a.Add(b).Equal(b.Add(a)), "a+b = b+a for %s, %s", s, u)
		}
	}
}

func TestAddCarryChain(t *testing.T) {
	// 2^96 - 1 plus one must carry across every limb.
	a := MustParse("79228162514264337593543950335")
	got := a.Add(New(1)).String()
	assert.Equal(t, "79228162514264337593543950336", got)
}

func TestSubBorrowChain(t *testing.T) {
	a := MustParse("79228162514264337593543950336") // 2^96
	got := a.Sub(New(1)).String()
	assert.Equal(t, "79228162514264337593543950335", got)
}

func TestAddSignedDispatch(t *testing.T) {
	cases := []struct {
		a, b, sum, diff string
	}{
		{"5", "3", "8", "2"},
		{"3", "5", "8", "-2"},
		{"-5", "3", "-2", "-8"},
		{"5", "-3", "2", "8"},
		{"-5", "-3", "-8", "-2"},
		{"-3", "-5", "-8", "2"},
		{"0", "-7", "-7", "7"},
	}
	for _, c := range cases {
		a, b := MustParse(c.a), MustParse(c.b)
		assert.Equal(t, c.sum, a.Add(b).String(), "%s + %s", c.a, c.b)
		assert.Equal(t, c.diff, a.Sub(b).String(), "%s - %s", c.a, c.b)
	}
}

func TestCmpTotalOrder(t *testing.T) {
	ordered := []*Int{
		MustParse("-123456789012345678901234567890"),
		New(-4294967296),
		New(-1),
		New(0),
		New(1),
		New(4294967295),
		MustParse("123456789012345678901234567890"),
	}
	for i, a := range ordered {
		for j, b := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.Cmp(b); got != want {
				t.Errorf("Cmp(%s, %s) = %d, want %d", a, b, got, want)
			}
			if (a.Cmp(b) == 0) != a.Equal(b) {
				t.Errorf("Equal inconsistent with Cmp for %s, %s", a, b)
			}
		}
	}

	// Both-negative ordering flips the magnitude comparison.
	if New(-10).Cmp(New(-2)) != -1 {
		t.Error("-10 should be less than -2")
	}
}
