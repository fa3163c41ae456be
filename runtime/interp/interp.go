// Package interp evaluates script source against a program state: a
// single operand stack plus a flat environment of named definitions.
// Tokens stream in from the lexer one at a time; every failure unwinds
// as a *fault.Error carrying the fragment executing at each depth.
package interp

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sksp-lang/sscript/runtime/env"
	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/lexer"
	"github.com/sksp-lang/sscript/runtime/value"
)

// State is the mutable program state an evaluation runs against. Inner
// stacks evaluate through a child State sharing the same environment.
type State struct {
	Stack *value.Stack
	Env   *env.Environment
}

// NewState creates an empty state with default capacities.
func NewState() *State {
	return &State{
		Stack: value.NewStack(value.DefaultCapacity),
		Env:   env.New(env.DefaultCapacity),
	}
}

func (st *State) child(inner *value.Stack) *State {
	return &State{Stack: inner, Env: st.Env}
}

// Interp drives evaluation. It carries no script state of its own and
// may be shared across program states.
type Interp struct {
	Log logrus.FieldLogger
	Out io.Writer
}

// New creates an interpreter writing to stdout and logging through the
// standard logrus logger.
func New() *Interp {
	return &Interp{Log: logrus.StandardLogger(), Out: os.Stdout}
}

// Execute runs src against st. When a token fails, the returned fault's
// backtrace has gained one frame: the token executing at this level.
// A lexing fault is returned without a frame.
func (ip *Interp) Execute(st *State, src string) error {
	lx := lexer.New(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			return err
		}
		if tok.Type == lexer.EOF {
			return nil
		}
		if err := ip.exec(st, tok); err != nil {
			return fault.WithFrame(err, tok.Text)
		}
	}
}

// exec dispatches a single token: literals push, bracketed names go
// through the bracketed table, words through the builtin table, then
// the numbered table, then the environment.
func (ip *Interp) exec(st *State, tok lexer.Token) error {
	switch tok.Type {
	case lexer.INSTRUCTION:
		st.Stack.Push(value.NewInstr(tok.Body))
	case lexer.STRING:
		st.Stack.Push(value.NewStr(tok.Body))
	case lexer.INTEGER:
		st.Stack.Push(value.NewInt(tok.Int))
	case lexer.FLOATING:
		st.Stack.Push(value.NewFloat(tok.Float))
	case lexer.INNERSTACK:
		inner := value.NewInnerStack()
		if err := ip.Execute(st.child(inner), tok.Body); err != nil {
			return err
		}
		st.Stack.Push(value.NewInner(inner))
	case lexer.BRACKETED:
		if fn, ok := builtins.brops.lookup(tok.Head); ok {
			return fn(ip, st, tok.Arg)
		}
		if script, ok := st.Env.Get(tok.Text); ok {
			return ip.Execute(st, script)
		}
		return fault.New(fault.InvalidInstruction)
	case lexer.WORD:
		if fn, ok := builtins.ops.lookup(tok.Text); ok {
			return fn(ip, st)
		}
		if tok.HasNum {
			if fn, ok := builtins.numops.lookup(tok.NumHead); ok {
				return fn(ip, st, tok.NumArg)
			}
		}
		if script, ok := st.Env.Get(tok.Text); ok {
			return ip.Execute(st, script)
		}
		return fault.New(fault.InvalidInstruction)
	}
	return nil
}

func underflow() error { return fault.New(fault.StackUnderflow) }
func invalidOperands() error { return fault.New(fault.InvalidOperands) }
func valueError() error { return fault.New(fault.ValueError) }
