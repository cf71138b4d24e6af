package curve

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnden/crypto/pkg/bigint"
)

func TestSecp256k1Parameters(t *testing.T) {
	c := Secp256k1()
	assert.Equal(t, "0", c.A().String())
	assert.Equal(t, "7", c.B().String())
	assert.Equal(t, secp256k1.S256().Params().P.String(), c.P().String())

	g := Secp256k1Generator()
	assert.True(t, c.Contains(g.X(), g.Y()), "generator must lie on the curve")
}

// The generic group law must agree with the reference secp256k1
// implementation for small scalar multiples of the base point.
func TestSecp256k1CrossCheck(t *testing.T) {
	g := Secp256k1Generator()
	ref := secp256k1.S256()

	for k := int64(1); k <= 8; k++ {
		wantX, wantY := ref.ScalarBaseMult(new(big.Int).SetInt64(k).Bytes())
		got := g.ScalarMul(bigint.New(k))
		require.False(t, got.IsInfinity(), "k=%d", k)
		assert.Equal(t, wantX.String(), got.X().String(), "x of %d·G", k)
		assert.Equal(t, wantY.String(), got.Y().String(), "y of %d·G", k)
	}
}

func TestSecp256k1AddMatchesReference(t *testing.T) {
	g := Secp256k1Generator()
	ref := secp256k1.S256()

	two := g.ScalarMul(bigint.New(2))
	three, err := two.Add(g)
	require.NoError(t, err)

	wantX, wantY := ref.ScalarBaseMult(big.NewInt(3).Bytes())
	assert.Equal(t, wantX.String(), three.X().String())
	assert.Equal(t, wantY.String(), three.Y().String())
}
