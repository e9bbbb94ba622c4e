package secp256k1

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecmath/types"
)

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return v
}

func TestGenerator(t *testing.T) {
	d := S256()
	g := d.Generator()
	require.False(t, g.IsInfinity())

	x, ok := g.X().Value()
	require.True(t, ok)
	require.Equal(t, hexInt(t, gxHex), x.Value())
	require.Equal(t, "0", d.A().Value().String())
	require.Equal(t, "7", d.B().Value().String())
	require.Equal(t, hexInt(t, pHex), d.P())
	require.Equal(t, hexInt(t, nHex), d.N())
}

func TestValidate(t *testing.T) {
	require.NoError(t, S256().Validate())

	bad := *S256()
	bad.n = new(big.Int).Sub(bad.n, big.NewInt(1))
	err := bad.Validate()
	require.True(t, errors.Is(err, types.ErrInvalidGenerator))
}

func TestSmallMultiples(t *testing.T) {
	d := S256()

	tests := []struct {
		k    int64
		x, y string
	}{
		{1, gxHex, gyHex},
		{2,
			"c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
			"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"},
		{3,
			"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
			"388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672"},
	}

	for _, test := range tests {
		want, err := d.NewPoint(hexInt(t, test.x), hexInt(t, test.y))
		require.NoError(t, err)

		got, err := d.ScalarBaseMult(big.NewInt(test.k))
		require.NoError(t, err)
		require.True(t, want.Equals(got), "%d*G = %s", test.k, got)
	}
}

func TestScalarBaseMultNotInfinity(t *testing.T) {
	d := S256()

	for k := int64(1); k <= 16; k++ {
		p, err := d.ScalarBaseMult(big.NewInt(k))
		require.NoError(t, err)
		require.False(t, p.IsInfinity())
	}

	// (n-1)*G == -G
	nMinusOne := new(big.Int).Sub(d.N(), big.NewInt(1))
	p, err := d.ScalarBaseMult(nMinusOne)
	require.NoError(t, err)
	require.True(t, p.Equals(d.Generator().Neg()))

	sum, err := p.Add(d.Generator())
	require.NoError(t, err)
	require.True(t, sum.IsInfinity())

	zero, err := d.ScalarBaseMult(new(big.Int))
	require.NoError(t, err)
	require.True(t, zero.IsInfinity())
}

func TestNewPointRejectsBadInput(t *testing.T) {
	d := S256()

	gy := hexInt(t, gyHex)
	_, err := d.NewPoint(hexInt(t, gxHex), new(big.Int).Add(gy, big.NewInt(1)))
	require.True(t, errors.Is(err, types.ErrNotOnCurve))

	_, err = d.NewPoint(d.P(), gy)
	require.True(t, errors.Is(err, types.ErrRange))

	_, err = d.NewPoint(hexInt(t, gxHex), big.NewInt(-1))
	require.True(t, errors.Is(err, types.ErrRange))
}

// TestAgainstDecred cross-checks scalar multiplication with decred's
// implementation.
func TestAgainstDecred(t *testing.T) {
	d := S256()
	r := rand.New(rand.NewSource(256))

	for i := 0; i < 8; i++ {
		var b [32]byte
		r.Read(b[:])
		k := new(big.Int).SetBytes(b[:])
		k.Mod(k, d.N())
		if k.Sign() == 0 {
			continue
		}

		got, err := d.ScalarBaseMult(k)
		require.NoError(t, err)

		pk := dcrsecp.PrivKeyFromBytes(k.Bytes()).PubKey()
		want, err := FromPublicKey(pk)
		require.NoError(t, err)
		require.True(t, want.Equals(got), "k = %x", k)

		converted, err := ToPublicKey(got)
		require.NoError(t, err)
		require.True(t, pk.IsEqual(converted))
	}
}

func TestToPublicKey(t *testing.T) {
	d := S256()

	pk, err := ToPublicKey(d.Generator())
	require.NoError(t, err)
	require.Equal(t, hexInt(t, gxHex), pk.X())
	require.Equal(t, hexInt(t, gyHex), pk.Y())

	p, err := FromPublicKey(pk)
	require.NoError(t, err)
	require.True(t, p.Equals(d.Generator()))

	_, err = ToPublicKey(d.Infinity())
	require.Equal(t, errInfinityPublicKey, err)
}
