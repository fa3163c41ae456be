package interp

import (
	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/lexer"
	"github.com/sksp-lang/sscript/runtime/value"
)

// bropDefine binds the Instruction on top to name. The name may not
// contain a reserved byte; the definition takes ownership of the text.
func bropDefine(ip *Interp, st *State, name string) error {
	for i := 0; i < len(name); i++ {
		if lexer.Reserved(name[i]) {
			return fault.New(fault.InvalidNameDefine)
		}
	}
	if st.Stack.Empty() {
		return underflow()
	}
	v, _ := st.Stack.Pop()
	if !v.Is(value.Instruction) {
		st.Stack.Push(v)
		return invalidOperands()
	}
	st.Env.Set(name, v.Text())
	return nil
}

func bropDelete(ip *Interp, st *State, name string) error {
	st.Env.Remove(name)
	return nil
}

func bropIsdef(ip *Interp, st *State, name string) error {
	_, ok := st.Env.Get(name)
	st.Stack.Push(value.NewBool(ok))
	return nil
}
