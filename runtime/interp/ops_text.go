package interp

import (
	"strings"

	"github.com/sksp-lang/sscript/runtime/lexer"
	"github.com/sksp-lang/sscript/runtime/value"
)

// opQuote converts the top value into an Instruction holding its
// canonical source form. Inner stacks are rejected.
func opQuote(ip *Interp, st *State) error {
	if st.Stack.Empty() {
		return underflow()
	}
	top, _ := st.Stack.Top()
	if top.Is(value.InnerStack) {
		return invalidOperands()
	}
	v, _ := st.Stack.Pop()
	st.Stack.Push(value.NewInstr(v.Canon()))
	return nil
}

// opCompose concatenates two values of the same kind: Instructions
// with a single-space separator, Strings without.
func opCompose(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	switch {
	case a.Is(value.Instruction) && b.Is(value.Instruction):
		st.Stack.Push(value.NewInstr(a.Text() + " " + b.Text()))
	case a.Is(value.String) && b.Is(value.String):
		st.Stack.Push(value.NewStr(a.Text() + b.Text()))
	default:
		st.Stack.Push(a)
		st.Stack.Push(b)
		return invalidOperands()
	}
	return nil
}

// bropCompose evaluates the delimiter expression and joins the two
// Strings beneath it around the resulting String.
func bropCompose(ip *Interp, st *State, arg string) error {
	if err := ip.Execute(st, arg); err != nil {
		return err
	}
	if st.Stack.Len() < 3 {
		return underflow()
	}
	delim, _ := st.Stack.Pop()
	b, _ := st.Stack.Pop()
	a, _ := st.Stack.Pop()
	if !a.Is(value.String) || !b.Is(value.String) || !delim.Is(value.String) {
		st.Stack.Push(a)
		st.Stack.Push(b)
		st.Stack.Push(delim)
		return invalidOperands()
	}
	st.Stack.Push(value.NewStr(a.Text() + delim.Text() + b.Text()))
	return nil
}

// splitOn splits src on any byte of delim, skipping empty fragments.
func splitOn(src, delim string) []string {
	return strings.FieldsFunc(src, func(r rune) bool {
		return strings.ContainsRune(delim, r)
	})
}

// opSplit takes the top value apart. An Instruction is re-lexed at the
// top level and each fragment pushed back as an Instruction; an inner
// stack is unpacked element-wise. A String splits on the String
// beneath it when there is one, on whitespace otherwise.
func opSplit(ip *Interp, st *State) error {
	if st.Stack.Empty() {
		return underflow()
	}
	top, _ := st.Stack.Top()
	switch top.Kind() {
	case value.Instruction:
		v, _ := st.Stack.Pop()
		toks, err := lexer.Tokens(v.Text())
		if err != nil {
			return err
		}
		for _, tok := range toks {
			st.Stack.Push(value.NewInstr(tok.Text))
		}
	case value.String:
		if st.Stack.Len() >= 2 && st.Stack.FromTop(1).Is(value.String) {
			delim, _ := st.Stack.Pop()
			src, _ := st.Stack.Pop()
			for _, part := range splitOn(src.Text(), delim.Text()) {
				st.Stack.Push(value.NewStr(part))
			}
		} else {
			v, _ := st.Stack.Pop()
			for _, part := range strings.Fields(v.Text()) {
				st.Stack.Push(value.NewStr(part))
			}
		}
	case value.InnerStack:
		v, _ := st.Stack.Pop()
		for _, elem := range v.Inner().Items() {
			st.Stack.Push(elem)
		}
	default:
		return invalidOperands()
	}
	return nil
}

// bropSplit evaluates the delimiter expression, leaving (string,
// delim), and splits the string on the bytes of delim.
func bropSplit(ip *Interp, st *State, arg string) error {
	if err := ip.Execute(st, arg); err != nil {
		return err
	}
	if st.Stack.Len() < 2 {
		return underflow()
	}
	delim, _ := st.Stack.Pop()
	src, _ := st.Stack.Pop()
	if !src.Is(value.String) || !delim.Is(value.String) {
		st.Stack.Push(src)
		st.Stack.Push(delim)
		return invalidOperands()
	}
	for _, part := range splitOn(src.Text(), delim.Text()) {
		st.Stack.Push(value.NewStr(part))
	}
	return nil
}
