package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop

	return xs
}

func TestEval_Elementwise(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2}

	tests := []struct {
		input string
		fn    func(x float64) float64
	}{
		{"x**2", func(x float64) float64 { return x * x }},
		{"-x**2", func(x float64) float64 { return -(x * x) }},
		{"2*x + 1", func(x float64) float64 { return 2*x + 1 }},
		{"x - 3", func(x float64) float64 { return x - 3 }},
		{"x / 4", func(x float64) float64 { return x / 4 }},
		{"sin(x)", math.Sin},
		{"cos(x) * sin(x)", func(x float64) float64 { return math.Cos(x) * math.Sin(x) }},
		{"sqrt(x**2 + 1)", func(x float64) float64 { return math.Sqrt(x*x + 1) }},
		{"np.sin(np.pi * x)", func(x float64) float64 { return math.Sin(math.Pi * x) }},
		{"np.e ** x", func(x float64) float64 { return math.Pow(math.E, x) }},
		{"x % 3", func(x float64) float64 { return flooredMod(x, 3) }},
		{"x // 3", func(x float64) float64 { return math.Floor(x / 3) }},
		{"(x + 1) * (x - 1)", func(x float64) float64 { return (x + 1) * (x - 1) }},
		{"+x", func(x float64) float64 { return x }},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog, err := Compile(tt.input, DefaultEnv())
			require.NoError(t, err)

			ys, err := prog.Eval(xs)
			require.NoError(t, err)
			require.Len(t, ys, len(xs))
			for i, x := range xs {
				require.InDelta(t, tt.fn(x), ys[i], 1e-12, "x=%v", x)
			}
		})
	}
}

func TestEval_FlooredModulo(t *testing.T) {
	prog := MustCompile("x % 3", nil)

	ys, err := prog.Eval([]float64{-5, -3, -1, 1, 5})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 2, 1, 2}, ys)

	neg := MustCompile("x % -3", nil)
	ys, err = neg.Eval([]float64{5, -5})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -2}, ys)

	div := MustCompile("x // 2", nil)
	ys, err = div.Eval([]float64{-3, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 1}, ys)
}

func TestEval_IEEEOverSamples(t *testing.T) {
	xs := []float64{-1, 0, 1}

	ys, err := MustCompile("1/x", nil).Eval(xs)
	require.NoError(t, err)
	require.Equal(t, -1.0, ys[0])
	require.True(t, math.IsInf(ys[1], 1))
	require.Equal(t, 1.0, ys[2])

	ys, err = MustCompile("x/x", nil).Eval(xs)
	require.NoError(t, err)
	require.True(t, math.IsNaN(ys[1]))

	ys, err = MustCompile("sqrt(x)", nil).Eval(xs)
	require.NoError(t, err)
	require.True(t, math.IsNaN(ys[0]))
	require.Equal(t, 0.0, ys[1])

	ys, err = MustCompile("x % 0", nil).Eval(xs)
	require.NoError(t, err)
	require.True(t, math.IsNaN(ys[2]))

	ys, err = MustCompile("10**(x*400)", nil).Eval(xs)
	require.NoError(t, err)
	require.True(t, math.IsInf(ys[2], 1))
}

func TestEval_ConstantBroadcast(t *testing.T) {
	prog := MustCompile("2 * np.pi", nil)
	require.True(t, prog.IsConstant())

	ys, err := prog.Eval([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{2 * math.Pi, 2 * math.Pi, 2 * math.Pi}, ys)
}

func TestEval_StrictConstantArithmetic(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"1/0", "float division by zero"},
		{"x + 1/0", "float division by zero"},
		{"np.pi / (1 - 1)", "float division by zero"},
		{"5 // 0", "float floor division by zero"},
		{"5 % 0", "float modulo by zero"},
		{"0**-1", "0.0 cannot be raised to a negative power"},
		{"10.0**400", "numerical result out of range"},
		{"(-8)**(1/3)", "negative number cannot be raised to a fractional power"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog, err := Compile(tt.input, nil)
			require.NoError(t, err)

			_, err = prog.Eval([]float64{1, 2})
			var aerr *ArithmeticError
			require.ErrorAs(t, err, &aerr)
			require.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestEval_FunctionResultsAreNotStrict(t *testing.T) {
	ys, err := MustCompile("1/sin(0)", nil).Eval([]float64{0, 1})
	require.NoError(t, err)
	require.True(t, math.IsInf(ys[0], 1))
	require.True(t, math.IsInf(ys[1], 1))

	ys, err = MustCompile("(-8)**2", nil).Eval([]float64{0})
	require.NoError(t, err)
	require.Equal(t, 64.0, ys[0])

	ys, err = MustCompile("1e400 - 1", nil).Eval([]float64{0})
	require.NoError(t, err)
	require.True(t, math.IsInf(ys[0], 1))
}

func TestEval_DoesNotModifyInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	_, err := MustCompile("-(x * 2 + sin(x))", nil).Eval(xs)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, xs)

	ys, err := MustCompile("x", nil).Eval(xs)
	require.NoError(t, err)
	ys[0] = 99
	require.Equal(t, 1.0, xs[0])
}

func TestEval_EmptyInput(t *testing.T) {
	ys, err := MustCompile("x**2 + 1", nil).Eval(nil)
	require.NoError(t, err)
	require.Empty(t, ys)
}

func TestEval_Repeatable(t *testing.T) {
	prog := MustCompile("sin(x) / x + x % 2", nil)
	xs := linspace(-10, 10, 500)

	first, err := prog.Eval(xs)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := prog.Eval(xs)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEvalAt(t *testing.T) {
	y, err := MustCompile("x**2", nil).EvalAt(10)
	require.NoError(t, err)
	require.Equal(t, 100.0, y)

	_, err = MustCompile("x/0", nil).EvalAt(0)
	require.NoError(t, err)
}

func TestProgram_Accessors(t *testing.T) {
	prog := MustCompile("x ** 2", nil)
	require.Equal(t, "x ** 2", prog.Source())
	require.Equal(t, "(x ** 2)", prog.String())
	require.Same(t, DefaultEnv(), prog.Env())
	require.IsType(t, &BinaryNode{}, prog.Root())
	require.False(t, prog.IsConstant())
}

func TestMustCompile_Panics(t *testing.T) {
	require.Panics(t, func() { MustCompile("import os", nil) })
}

func BenchmarkEval_500(b *testing.B) {
	prog := MustCompile("sin(x) * x**2 + sqrt(x*x + 1) / 3", nil)
	xs := linspace(-10, 10, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prog.Eval(xs)
	}
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Compile("sin(x) * x**2 + sqrt(x*x + 1) / 3", nil)
	}
}
