package interp

import "github.com/sksp-lang/sscript/runtime/value"

func opTrue(ip *Interp, st *State) error {
	st.Stack.Push(value.NewBool(true))
	return nil
}

func opFalse(ip *Interp, st *State) error {
	st.Stack.Push(value.NewBool(false))
	return nil
}

func opNot(ip *Interp, st *State) error {
	if st.Stack.Len() == 0 {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.Is(value.Boolean) {
		st.Stack.Push(v)
		return invalidOperands()
	}
	st.Stack.Push(value.NewBool(!v.Bool()))
	return nil
}

// boolBinary pops two Boolean operands and pushes fn of them.
func boolBinary(st *State, fn func(a, b bool) bool) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	if !a.Is(value.Boolean) || !b.Is(value.Boolean) {
		st.Stack.Push(a)
		st.Stack.Push(b)
		return invalidOperands()
	}
	st.Stack.Push(value.NewBool(fn(a.Bool(), b.Bool())))
	return nil
}

func opAnd(ip *Interp, st *State) error {
	return boolBinary(st, func(a, b bool) bool { return a && b })
}

func opOr(ip *Interp, st *State) error {
	return boolBinary(st, func(a, b bool) bool { return a || b })
}

func opXor(ip *Interp, st *State) error {
	return boolBinary(st, func(a, b bool) bool { return a != b })
}

// compareNumeric pops two numeric operands and pushes the Boolean
// result of the comparison, widening mixed operands to Floating.
func compareNumeric(st *State, intFn func(a, b int64) bool, floatFn func(a, b float64) bool) error {
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
	var res bool
	if a.Is(value.Integer) && b.Is(value.Integer) {
		res = intFn(a.Int(), b.Int())
	} else {
		res = floatFn(a.AsFloat(), b.AsFloat())
	}
	st.Stack.Push(value.NewBool(res))
	return nil
}

func opGreater(ip *Interp, st *State) error {
	return compareNumeric(st,
		func(a, b int64) bool { return a > b },
		func(a, b float64) bool { return a > b })
}

func opGreaterEq(ip *Interp, st *State) error {
	return compareNumeric(st,
		func(a, b int64) bool { return a >= b },
		func(a, b float64) bool { return a >= b })
}

func opLower(ip *Interp, st *State) error {
	return compareNumeric(st,
		func(a, b int64) bool { return a < b },
		func(a, b float64) bool { return a < b })
}

func opLowerEq(ip *Interp, st *State) error {
	return compareNumeric(st,
		func(a, b int64) bool { return a <= b },
		func(a, b float64) bool { return a <= b })
}

// opEqual consumes both operands; cross-kind comparisons are false
// rather than an error, except for the Integer/Floating widening.
func opEqual(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	st.Stack.Push(value.NewBool(a.Equal(b)))
	return nil
}

func opNotEqual(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	st.Stack.Push(value.NewBool(!a.Equal(b)))
	return nil
}
