package interp_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sksp-lang/sscript/runtime/interp"
	"github.com/sksp-lang/sscript/runtime/value"
)

func topFloat(t *testing.T, src string) float64 {
	t.Helper()
	st := run(t, src)
	v, ok := st.Stack.Top()
	require.True(t, ok)
	require.Equal(t, value.Floating, v.Kind())
	return v.Float()
}

func TestUnaryMath(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0 sin", 0},
		{"0 cos", 1},
		{"1 exp", math.E},
		{"1 arctan", math.Pi / 4},
		{"8 log2", 3},
		{"1000 log10", 3},
		{"1 log", 0},
		{"5 gamma", 24},
		{"0 sinh", 0},
		{"0 tanh", 0},
		{"1 arcsinh", math.Asinh(1)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.InDelta(t, tt.want, topFloat(t, tt.src), 1e-12)
		})
	}
}

func TestUnaryMathWidensIntegers(t *testing.T) {
	// an Integer operand always yields a Floating result
	st := run(t, "9 sqrt")
	v, _ := st.Stack.Top()
	require.Equal(t, value.Floating, v.Kind())
	require.Equal(t, 3.0, v.Float())
}

func TestPlainTimes(t *testing.T) {
	st := run(t, "0 [1 +] 3 times")
	require.Equal(t, "3", canon(st))

	st = run(t, "5 [dup] 0 times")
	require.Equal(t, "5", canon(st))
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	ip := interp.New()
	ip.Out = &out
	st := interp.NewState()

	require.NoError(t, ip.Execute(st, "1 2 print"))
	require.Equal(t, "2\n", out.String())

	out.Reset()
	require.NoError(t, ip.Execute(st, `"x" printall`))
	require.Equal(t, "1\n2\n\"x\"\n", out.String())

	out.Reset()
	require.NoError(t, ip.Execute(st, "clear print"))
	require.Equal(t, "", out.String())
}

func TestDisplayForms(t *testing.T) {
	var out bytes.Buffer
	ip := interp.New()
	ip.Out = &out
	st := interp.NewState()
	require.NoError(t, ip.Execute(st, "[1 +] {1 2} 2.5 printall"))
	require.Equal(t, "[ 1 + ]\nstack(size=2)\n2.500000\n", out.String())
}
