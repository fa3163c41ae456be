package interp

import (
	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/value"
)

// popInstr pops the top value, which must be an Instruction; the stack
// is restored on a mismatch.
func popInstr(st *State) (string, error) {
	if st.Stack.Empty() {
		return "", underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.Is(value.Instruction) {
		st.Stack.Push(v)
		return "", invalidOperands()
	}
	return v.Text(), nil
}

// opIf pops the false branch, the true branch and a Boolean, then
// executes the chosen branch.
func opIf(ip *Interp, st *State) error {
	if st.Stack.Len() < 3 {
		return underflow()
	}
	onFalse, _ := st.Stack.Pop()
	if !onFalse.Is(value.Instruction) {
		st.Stack.Push(onFalse)
		return invalidOperands()
	}
	onTrue, _ := st.Stack.Pop()
	if !onTrue.Is(value.Instruction) {
		st.Stack.Push(onTrue)
		st.Stack.Push(onFalse)
		return invalidOperands()
	}
	cond, _ := st.Stack.Pop()
	if !cond.Is(value.Boolean) {
		st.Stack.Push(cond)
		st.Stack.Push(onTrue)
		st.Stack.Push(onFalse)
		return invalidOperands()
	}
	if cond.Bool() {
		return ip.Execute(st, onTrue.Text())
	}
	return ip.Execute(st, onFalse.Text())
}

// bropIf pops both branches, evaluates the condition expression and
// executes the branch chosen by the resulting Boolean.
func bropIf(ip *Interp, st *State, cond string) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	onFalse, _ := st.Stack.Pop()
	if !onFalse.Is(value.Instruction) {
		st.Stack.Push(onFalse)
		return invalidOperands()
	}
	onTrue, _ := st.Stack.Pop()
	if !onTrue.Is(value.Instruction) {
		st.Stack.Push(onTrue)
		st.Stack.Push(onFalse)
		return invalidOperands()
	}
	if err := ip.Execute(st, cond); err != nil {
		return err
	}
	v, ok := st.Stack.Pop()
	if !ok {
		return underflow()
	}
	if !v.Is(value.Boolean) {
		st.Stack.Push(v)
		return invalidOperands()
	}
	if v.Bool() {
		return ip.Execute(st, onTrue.Text())
	}
	return ip.Execute(st, onFalse.Text())
}

// opLoop runs the popped body repeatedly; every iteration must leave a
// Boolean on top, consumed as the continuation flag.
func opLoop(ip *Interp, st *State) error {
	body, err := popInstr(st)
	if err != nil {
		return err
	}
	for {
		if err := ip.Execute(st, body); err != nil {
			return err
		}
		flag, ok := st.Stack.Pop()
		if !ok {
			return underflow()
		}
		if !flag.Is(value.Boolean) {
			st.Stack.Push(flag)
			return invalidOperands()
		}
		if !flag.Bool() {
			return nil
		}
	}
}

// bropLoop evaluates the condition before each iteration and runs the
// popped body while it holds.
func bropLoop(ip *Interp, st *State, cond string) error {
	body, err := popInstr(st)
	if err != nil {
		return err
	}
	for {
		if err := ip.Execute(st, cond); err != nil {
			return err
		}
		flag, ok := st.Stack.Pop()
		if !ok {
			return underflow()
		}
		if !flag.Is(value.Boolean) {
			st.Stack.Push(flag)
			return invalidOperands()
		}
		if !flag.Bool() {
			return nil
		}
		if err := ip.Execute(st, body); err != nil {
			return err
		}
	}
}

// bropTimes pops the body, evaluates the count expression to an
// Integer, and runs the body that many times.
func bropTimes(ip *Interp, st *State, arg string) error {
	body, err := popInstr(st)
	if err != nil {
		return err
	}
	if err := ip.Execute(st, arg); err != nil {
		return err
	}
	n, ok := st.Stack.Pop()
	if !ok {
		return underflow()
	}
	if !n.Is(value.Integer) {
		st.Stack.Push(n)
		st.Stack.Push(value.NewInstr(body))
		return invalidOperands()
	}
	for i := int64(0); i < n.Int(); i++ {
		if err := ip.Execute(st, body); err != nil {
			return err
		}
	}
	return nil
}

// opTimes pops the count and the body beneath it.
func opTimes(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	n, _ := st.Stack.Pop()
	if !n.Is(value.Integer) {
		st.Stack.Push(n)
		return invalidOperands()
	}
	body, _ := st.Stack.Pop()
	if !body.Is(value.Instruction) {
		st.Stack.Push(body)
		st.Stack.Push(n)
		return invalidOperands()
	}
	for i := int64(0); i < n.Int(); i++ {
		if err := ip.Execute(st, body.Text()); err != nil {
			return err
		}
	}
	return nil
}

// opApply executes the Instruction on top.
func opApply(ip *Interp, st *State) error {
	body, err := popInstr(st)
	if err != nil {
		return err
	}
	return ip.Execute(st, body)
}

// opDip pops the Instruction and the value beneath it, executes the
// Instruction, then re-pushes the saved value on every exit path.
func opDip(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	body, err := popInstr(st)
	if err != nil {
		return err
	}
	saved, _ := st.Stack.Pop()
	err = ip.Execute(st, body)
	st.Stack.Push(saved)
	return err
}

// opTry executes the Instruction on top and maps the outcome to a
// Boolean: true on success, false on any raised exception.
func opTry(ip *Interp, st *State) error {
	body, err := popInstr(st)
	if err != nil {
		return err
	}
	st.Stack.Push(value.NewBool(ip.Execute(st, body) == nil))
	return nil
}

func opNop(ip *Interp, st *State) error { return nil }

func opExit(ip *Interp, st *State) error {
	return fault.New(fault.ProgramExit)
}
