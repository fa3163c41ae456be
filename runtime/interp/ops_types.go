package interp

import "github.com/sksp-lang/sscript/runtime/value"

// opType pushes the reified kind of the top value without consuming it.
func opType(ip *Interp, st *State) error {
	top, ok := st.Stack.Top()
	if !ok {
		return underflow()
	}
	st.Stack.Push(value.NewType(top.Kind()))
	return nil
}

// typeWord builds the operator that pushes one reified kind.
func typeWord(k value.Kind) opFunc {
	return func(ip *Interp, st *State) error {
		st.Stack.Push(value.NewType(k))
		return nil
	}
}

func opNone(ip *Interp, st *State) error {
	st.Stack.Push(value.NewNone())
	return nil
}

// opStack pushes a fresh empty inner stack.
func opStack(ip *Interp, st *State) error {
	st.Stack.Push(value.NewInner(value.NewInnerStack()))
	return nil
}
