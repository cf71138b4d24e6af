package modmath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnden/crypto/pkg/bigint"
)

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"0", "7", "7"},
		{"7", "0", "7"},
		{"12", "18", "6"},
		{"-12", "18", "6"},
		{"12", "-18", "6"},
		{"17", "31", "1"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "9000000000900000000090"},
	}
	for _, c := range cases {
		got := GCD(bigint.MustParse(c.a), bigint.MustParse(c.b))
		assert.Equal(t, c.want, got.String(), "gcd(%s, %s)", c.a, c.b)
	}
}

func TestGCDLCMProduct(t *testing.T) {
	// gcd(a, b) * lcm(a, b) = |a * b|
	pairs := [][2]string{
		{"12", "18"},
		{"35", "64"},
		{"123456789", "987654321"},
		{"123456789012345678901234567890", "42"},
	}
	for _, p := range pairs {
		a, b := bigint.MustParse(p[0]), bigint.MustParse(p[1])
		g := GCD(a, b)
		lcm, err := a.Mul(b).Abs().Div(g)
		require.NoError(t, err)
		assert.True(t, g.Mul(lcm).Equal(a.Mul(b).Abs()), "gcd*lcm for %v", p)
	}
}

func TestBezoutIdentity(t *testing.T) {
	pairs := [][2]string{
		{"240", "46"},
		{"46", "240"},
		{"17", "31"},
		{"1", "999999937"},
		{"123456789012345678901234567890", "987654321098765432109876543211"},
	}
	for _, p := range pairs {
		a, b := bigint.MustParse(p[0]), bigint.MustParse(p[1])
		s, tt := BezoutCoefficients(a, b)
		// The routine swaps so the smaller operand comes first.
		lo, hi := a, b
		if b.Cmp(a) < 0 {
			lo, hi = b, a
		}
		got := s.Mul(lo).Add(tt.Mul(hi))
		assert.True(t, got.Equal(GCD(a, b)), "s*a + t*b = gcd for %v: got %s", p, got)
	}
}

func TestModInverse(t *testing.T) {
	one := bigint.New(1)
	cases := [][2]string{
		{"3", "7"},
		{"12", "97"},
		{"999999999", "1000000007"},
		{"123456789012345678901234567890", "987654321098765432109876543211"},
	}
	for _, c := range cases {
		n, m := bigint.MustParse(c[0]), bigint.MustParse(c[1])
		inv, err := ModInverse(n, m)
		require.NoError(t, err, "inverse of %s mod %s", c[0], c[1])
		require.GreaterOrEqual(t, inv.Sign(), 0)
		require.Equal(t, -1, inv.Cmp(m))
		got, err := n.Mul(inv).Mod(m)
		require.NoError(t, err)
		assert.True(t, got.Equal(one), "(n * n^-1) mod m = 1 for %v", c)
	}
}

func TestModInverseMissing(t *testing.T) {
	_, err := ModInverse(bigint.New(6), bigint.New(9))
	var noInv *NoInverseError
	require.True(t, errors.As(err, &noInv), "expected NoInverseError, got %v", err)
	assert.Equal(t, "3", noInv.GCD.String())
}

func TestModInverseBadModulus(t *testing.T) {
	_, err := ModInverse(bigint.New(3), bigint.New(0))
	require.ErrorIs(t, err, bigint.ErrDivisionByZero)
	_, err = ModInverse(bigint.New(3), bigint.New(-7))
	require.ErrorIs(t, err, bigint.ErrNegativeModulus)
}

func TestModsub(t *testing.T) {
	assert.Equal(t, uint64(0), Modsub(5, 5, 7))
	assert.Equal(t, uint64(3), Modsub(5, 2, 7))
	assert.Equal(t, uint64(4), Modsub(2, 5, 7))
	assert.Equal(t, uint64(447), Modsub(512, 65, 512))
	assert.Equal(t, uint64(511), Modsub(512, 513, 512))
}
