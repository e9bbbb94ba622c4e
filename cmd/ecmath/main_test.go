package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/athanorlabs/go-ecmath/types"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{v: viper.New(), logger: zap.NewNop()}
	root := a.rootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

const (
	gx = "FieldElement_115792089237316195423570985008687907853269984665640564039457584007908834671663(55066263022277343669578718895168534326250603453777594175500187360389116729240)"
	gy = "FieldElement_115792089237316195423570985008687907853269984665640564039457584007908834671663(32670510020758816978083085130507043184471273380659243275938904335757337482424)"
)

func TestGenerator(t *testing.T) {
	out, err := run(t, "generator")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Point("+gx+", "+gy+")_a:"), out)
}

func TestValidateDomain(t *testing.T) {
	out, err := run(t, "validate-domain")
	require.NoError(t, err)
	require.Equal(t, "ok", out)

	out, err = run(t, "--toy", "validate-domain")
	require.NoError(t, err)
	require.Equal(t, "ok", out)
}

func TestMul(t *testing.T) {
	out, err := run(t, "mul", "1")
	require.NoError(t, err)
	require.Contains(t, out, gx)

	tests := []struct {
		k    string
		x, y string
	}{
		{"2", "FieldElement_223(36)", "FieldElement_223(111)"},
		{"0x4", "FieldElement_223(194)", "FieldElement_223(51)"},
		{"8", "FieldElement_223(116)", "FieldElement_223(55)"},
		{"20", "FieldElement_223(47)", "FieldElement_223(152)"},
	}

	for _, tc := range tests {
		out, err := run(t, "--toy", "mul", tc.k)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "Point("+tc.x+", "+tc.y+")"), out)
	}

	out, err = run(t, "--toy", "mul", "21")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Point(Infinity, Infinity)"), out)
}

func TestMulInvalid(t *testing.T) {
	_, err := run(t, "--toy", "mul", "--", "-3")
	require.ErrorIs(t, err, types.ErrNegativeScalar)

	_, err = run(t, "mul", "twelve")
	require.Error(t, err)

	_, err = run(t, "mul")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "--toy", "check", "192", "105")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Point(FieldElement_223(192), FieldElement_223(105))"), out)

	_, err = run(t, "--toy", "check", "200", "119")
	require.ErrorIs(t, err, types.ErrNotOnCurve)

	_, err = run(t, "--toy", "check", "223", "0")
	require.ErrorIs(t, err, types.ErrRange)

	_, err = run(t, "check", "1", "2")
	require.ErrorIs(t, err, types.ErrNotOnCurve)
}

func TestToyFromEnv(t *testing.T) {
	t.Setenv("ECMATH_TOY", "true")
	out, err := run(t, "generator")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Point(FieldElement_223(47), FieldElement_223(71))"), out)
}

func TestErrorKind(t *testing.T) {
	kind, ok := errorKind(types.NewError(types.ErrRange, "x"))
	require.True(t, ok)
	require.Equal(t, types.ErrRange, kind)

	_, ok = errorKind(bytes.ErrTooLarge)
	require.False(t, ok)
}
