package interp

import (
	"math"

	"github.com/sksp-lang/sscript/runtime/value"
)

// numericBinary pops two numeric operands and pushes the result.
// Integer+Integer stays Integer; any Floating operand widens the
// result. The stack is restored untouched on a type mismatch.
func numericBinary(st *State, intFn func(a, b int64) int64, floatFn func(a, b float64) float64) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	if !a.IsNumeric() || !b.IsNumeric() {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return invalidOperands()
	}
	if a.Is(value.Integer) && b.Is(value.Integer) {
		st.Stack.Push(value.NewInt(intFn(a.Int(), b.Int())))
	} else {
		st.Stack.Push(value.NewFloat(floatFn(a.AsFloat(), b.AsFloat())))
	}
	return nil
}

// unaryFloat pops one numeric operand and pushes fn of it as Floating.
func unaryFloat(st *State, fn func(float64) float64) error {
	if st.Stack.Len() == 0 {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.IsNumeric() {
		st.Stack.Push(v)
		return invalidOperands()
	}
	st.Stack.Push(value.NewFloat(fn(v.AsFloat())))
	return nil
}

func opSum(ip *Interp, st *State) error {
	return numericBinary(st,
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

func opSub(ip *Interp, st *State) error {
	return numericBinary(st,
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

func opMul(ip *Interp, st *State) error {
	return numericBinary(st,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

// opDiv divides; the quotient is always Floating, and a zero divisor
// of either kind raises ValueError.
func opDiv(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	if !a.IsNumeric() || !b.IsNumeric() {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return invalidOperands()
	}
	if b.AsFloat() == 0 {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return valueError()
	}
	st.Stack.Push(value.NewFloat(a.AsFloat() / b.AsFloat()))
	return nil
}

func opMod(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	if !a.Is(value.Integer) || !b.Is(value.Integer) {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return invalidOperands()
	}
	if b.Int() == 0 {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return valueError()
	}
	st.Stack.Push(value.NewInt(a.Int() % b.Int()))
	return nil
}

// opPow raises a to b; the result is always Floating.
func opPow(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	if !a.IsNumeric() || !b.IsNumeric() {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return invalidOperands()
	}
	st.Stack.Push(value.NewFloat(math.Pow(a.AsFloat(), b.AsFloat())))
	return nil
}

func opSqrt(ip *Interp, st *State) error {
	if st.Stack.Len() == 0 {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.IsNumeric() {
		st.Stack.Push(v)
		return invalidOperands()
	}
	if v.AsFloat() == 0 {
		st.Stack.Push(v)
		return valueError()
	}
	st.Stack.Push(value.NewFloat(math.Sqrt(v.AsFloat())))
	return nil
}

// opInt truncates a Floating to Integer; an Integer passes through.
func opInt(ip *Interp, st *State) error {
	if st.Stack.Len() == 0 {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	switch {
	case v.Is(value.Floating):
		st.Stack.Push(value.NewInt(int64(v.Float())))
	case v.Is(value.Integer):
		st.Stack.Push(v)
	default:
		st.Stack.Push(v)
		return invalidOperands()
	}
	return nil
}

// opNeg negates, preserving the operand kind.
func opNeg(ip *Interp, st *State) error {
	if st.Stack.Len() == 0 {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	switch {
	case v.Is(value.Integer):
		st.Stack.Push(value.NewInt(-v.Int()))
	case v.Is(value.Floating):
		st.Stack.Push(value.NewFloat(-v.Float()))
	default:
		st.Stack.Push(v)
		return invalidOperands()
	}
	return nil
}

// opFact is the exact integer factorial; negatives raise ValueError.
func opFact(ip *Interp, st *State) error {
	if st.Stack.Len() == 0 {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.Is(value.Integer) {
		st.Stack.Push(v)
		return invalidOperands()
	}
	if v.Int() < 0 {
		st.Stack.Push(v)
		return valueError()
	}
	res := int64(1)
	for i := int64(2); i <= v.Int(); i++ {
		res *= i
	}
	st.Stack.Push(value.NewInt(res))
	return nil
}

func opGamma(ip *Interp, st *State) error { return unaryFloat(st, math.Gamma) }
func opExp(ip *Interp, st *State) error { return unaryFloat(st, math.Exp) }
func opLog(ip *Interp, st *State) error { return unaryFloat(st, math.Log) }
func opLog2(ip *Interp, st *State) error { return unaryFloat(st, math.Log2) }
func opLog10(ip *Interp, st *State) error { return unaryFloat(st, math.Log10) }

func opSin(ip *Interp, st *State) error { return unaryFloat(st, math.Sin) }
func opCos(ip *Interp, st *State) error { return unaryFloat(st, math.Cos) }
func opTan(ip *Interp, st *State) error { return unaryFloat(st, math.Tan) }
func opArcsin(ip *Interp, st *State) error { return unaryFloat(st, math.Asin) }
func opArccos(ip *Interp, st *State) error { return unaryFloat(st, math.Acos) }
func opArctan(ip *Interp, st *State) error { return unaryFloat(st, math.Atan) }
func opSinh(ip *Interp, st *State) error { return unaryFloat(st, math.Sinh) }
func opCosh(ip *Interp, st *State) error { return unaryFloat(st, math.Cosh) }
func opTanh(ip *Interp, st *State) error { return unaryFloat(st, math.Tanh) }
func opArcsinh(ip *Interp, st *State) error { return unaryFloat(st, math.Asinh) }
func opArccosh(ip *Interp, st *State) error { return unaryFloat(st, math.Acosh) }
func opArctanh(ip *Interp, st *State) error { return unaryFloat(st, math.Atanh) }
