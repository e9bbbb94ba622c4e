package secp256k1

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecmath/field"
	"github.com/athanorlabs/go-ecmath/types"
)

func randomPair(t *testing.T, r *rand.Rand) (FieldVal, *field.Big) {
	var b [32]byte
	r.Read(b[:])
	v := new(big.Int).SetBytes(b[:])
	v.Mod(v, fieldPrime)

	fv, err := NewFieldVal(v)
	require.NoError(t, err)
	fb, err := field.NewBig(v, fieldPrime)
	require.NoError(t, err)
	return fv, fb
}

func TestFieldValMatchesBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		av, ab := randomPair(t, r)
		bv, bb := randomPair(t, r)

		sv, err := av.Add(bv)
		require.NoError(t, err)
		sb, err := ab.Add(bb)
		require.NoError(t, err)
		require.Equal(t, sb.String(), sv.String())

		sv, err = av.Sub(bv)
		require.NoError(t, err)
		sb, err = ab.Sub(bb)
		require.NoError(t, err)
		require.Equal(t, sb.String(), sv.String())

		sv, err = av.Mul(bv)
		require.NoError(t, err)
		sb, err = ab.Mul(bb)
		require.NoError(t, err)
		require.Equal(t, sb.String(), sv.String())

		sv, err = av.Div(bv)
		require.NoError(t, err)
		sb, err = ab.Div(bb)
		require.NoError(t, err)
		require.Equal(t, sb.String(), sv.String())

		require.Equal(t, ab.Neg().String(), av.Neg().String())
		require.Equal(t, ab.Scale(3).String(), av.Scale(3).String())

		exp := big.NewInt(r.Int63() - r.Int63())
		require.Equal(t, ab.Pow(exp).String(), av.Pow(exp).String())
	}
}

func TestFieldValEdgeCases(t *testing.T) {
	_, err := NewFieldVal(fieldPrime)
	require.True(t, errors.Is(err, types.ErrRange))

	_, err = NewFieldVal(big.NewInt(-1))
	require.True(t, errors.Is(err, types.ErrRange))

	zero, err := NewFieldVal(new(big.Int))
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	seven, err := NewFieldVal(big.NewInt(7))
	require.NoError(t, err)
	_, err = seven.Div(zero)
	require.True(t, errors.Is(err, types.ErrDivisionByZero))

	// p-1 is -1
	top, err := NewFieldVal(new(big.Int).Sub(fieldPrime, big.NewInt(1)))
	require.NoError(t, err)
	sq, err := top.Mul(top)
	require.NoError(t, err)
	require.Equal(t, "1", sq.Value().String())
	require.True(t, top.Equal(top.Pow(big.NewInt(-2)).Neg()))
}

func TestFieldValGenerator(t *testing.T) {
	d := S256()
	gv := d.FieldValGenerator()
	gb := d.Generator()
	require.Equal(t, gb.String(), gv.String())

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 4; i++ {
		k := new(big.Int).SetUint64(r.Uint64())
		pv, err := gv.ScalarMult(k)
		require.NoError(t, err)
		pb, err := gb.ScalarMult(k)
		require.NoError(t, err)
		require.Equal(t, pb.String(), pv.String())
	}

	nG, err := gv.ScalarMult(d.N())
	require.NoError(t, err)
	require.True(t, nG.IsInfinity())
}
