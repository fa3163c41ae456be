package interp

import "github.com/sksp-lang/sscript/runtime/value"

func opDup(ip *Interp, st *State) error { return dupAt(st, 0) }

// dupAt deep-copies the value at the given depth onto the top.
func dupAt(st *State, depth int) error {
	if depth >= st.Stack.Len() {
		return underflow()
	}
	st.Stack.Push(st.Stack.FromTop(depth).Clone())
	return nil
}

func opSwap(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	st.Stack.SwapDepth(1)
	return nil
}

func opDrop(ip *Interp, st *State) error {
	if _, ok := st.Stack.Pop(); !ok {
		return underflow()
	}
	return nil
}

func opSize(ip *Interp, st *State) error {
	st.Stack.Push(value.NewInt(int64(st.Stack.Len())))
	return nil
}

func opEmpty(ip *Interp, st *State) error {
	st.Stack.Push(value.NewBool(st.Stack.Empty()))
	return nil
}

func opClear(ip *Interp, st *State) error {
	st.Stack.Clear()
	return nil
}

// opRoll rotates the top element to the bottom; an empty stack is fine.
func opRoll(ip *Interp, st *State) error {
	st.Stack.Roll()
	return nil
}

// opTop copies the bottom element to the top.
func opTop(ip *Interp, st *State) error {
	if st.Stack.Empty() {
		return underflow()
	}
	st.Stack.Push(st.Stack.At(0).Clone())
	return nil
}

// opCompress replaces the whole stack with one inner stack holding all
// prior elements in order.
func opCompress(ip *Interp, st *State) error {
	inner := value.NewInnerStack()
	for _, v := range st.Stack.Items() {
		inner.Push(v)
	}
	st.Stack.Clear()
	st.Stack.Push(value.NewInner(inner))
	return nil
}

// opPush moves the top value into the inner stack beneath it.
func opPush(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	if !st.Stack.FromTop(1).Is(value.InnerStack) {
		return invalidOperands()
	}
	v, _ := st.Stack.Pop()
	top, _ := st.Stack.Top()
	top.Inner().Push(v)
	return nil
}

// opPop removes the top of the inner stack on top and pushes it onto
// the outer stack; an empty inner stack yields None.
func opPop(ip *Interp, st *State) error {
	if st.Stack.Empty() {
		return underflow()
	}
	top, _ := st.Stack.Top()
	if !top.Is(value.InnerStack) {
		return invalidOperands()
	}
	v, ok := top.Inner().Pop()
	if !ok {
		v = value.NewNone()
	}
	st.Stack.Push(v)
	return nil
}

func numopDup(ip *Interp, st *State, n int) error { return dupAt(st, n) }

func numopSwap(ip *Interp, st *State, n int) error {
	if n >= st.Stack.Len() {
		return underflow()
	}
	st.Stack.SwapDepth(n)
	return nil
}

func numopDig(ip *Interp, st *State, n int) error {
	if n >= st.Stack.Len() {
		return underflow()
	}
	st.Stack.Dig(n)
	return nil
}

// popDepth evaluates arg and pops the resulting Integer depth,
// restoring the stack on a mismatch.
func popDepth(ip *Interp, st *State, arg string) (int, error) {
	if err := ip.Execute(st, arg); err != nil {
		return 0, err
	}
	if st.Stack.Empty() {
		return 0, underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.Is(value.Integer) {
		st.Stack.Push(v)
		return 0, invalidOperands()
	}
	return int(v.Int()), nil
}

func bropDup(ip *Interp, st *State, arg string) error {
	n, err := popDepth(ip, st, arg)
	if err != nil {
		return err
	}
	return dupAt(st, n)
}

func bropSwap(ip *Interp, st *State, arg string) error {
	n, err := popDepth(ip, st, arg)
	if err != nil {
		return err
	}
	return numopSwap(ip, st, n)
}

func bropDig(ip *Interp, st *State, arg string) error {
	n, err := popDepth(ip, st, arg)
	if err != nil {
		return err
	}
	return numopDig(ip, st, n)
}
