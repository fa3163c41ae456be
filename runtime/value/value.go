package value

import (
	"fmt"
	"strings"
)

// Kind discriminates the value universe. The order is canonical: it is
// the order of the reified type names pushed by the TYPE words.
type Kind int

const (
	Instruction Kind = iota
	Integer
	Floating
	Boolean
	String
	Type
	None
	InnerStack
)

var kindNames = [...]string{
	Instruction: "INSTR",
	Integer:     "INT",
	Floating:    "FLOAT",
	Boolean:     "BOOL",
	String:      "STR",
	Type:        "TYPE",
	None:        "NONE",
	InnerStack:  "STACK",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && k >= 0 {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindByName resolves a canonical type name back to its Kind.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Value is one element of a stack. Exactly one of the payload fields is
// meaningful, selected by the kind. Inner stacks are exclusively owned:
// moving a Value moves the ownership, copying goes through Clone.
type Value struct {
	kind  Kind
	ival  int64
	fval  float64
	text  string
	inner *Stack
}

func NewInstr(text string) Value { return Value{kind: Instruction, text: text} }
func NewStr(text string) Value { return Value{kind: String, text: text} }
func NewInt(n int64) Value { return Value{kind: Integer, ival: n} }
func NewFloat(f float64) Value { return Value{kind: Floating, fval: f} }
func NewNone() Value { return Value{kind: None} }

func NewBool(b bool) Value {
	v := Value{kind: Boolean}
	if b {
		v.ival = 1
	}
	return v
}

// NewType reifies a kind as a Type value.
func NewType(k Kind) Value { return Value{kind: Type, ival: int64(k)} }

// NewInner wraps a stack; the value takes ownership of it.
func NewInner(s *Stack) Value { return Value{kind: InnerStack, inner: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() int64 { return v.ival }

func (v Value) Float() float64 { return v.fval }

func (v Value) Bool() bool { return v.ival != 0 }

func (v Value) Text() string { return v.text }

func (v Value) Inner() *Stack { return v.inner }

func (v Value) TypeKind() Kind { return Kind(v.ival) }

func (v Value) IsNumeric() bool { return v.kind == Integer || v.kind == Floating }

func (v Value) Is(k Kind) bool { return v.kind == k }

// AsFloat widens a numeric value to Floating.
func (v Value) AsFloat() float64 {
	if v.kind == Integer {
		return float64(v.ival)
	}
	return v.fval
}

// Clone deep-copies the value. Inner stacks are copied recursively so
// the result shares no storage with the original.
func (v Value) Clone() Value {
	if v.kind == InnerStack {
		return NewInner(v.inner.Clone())
	}
	return v
}

// Equal implements the language's equality: cross-kind comparisons are
// false except for the Integer/Floating widening; byte strings compare
// bytewise; inner stacks compare structurally.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		if v.IsNumeric() && o.IsNumeric() {
			return v.AsFloat() == o.AsFloat()
		}
		return false
	}
	switch v.kind {
	case Instruction, String:
		return v.text == o.text
	case Integer, Boolean, Type:
		return v.ival == o.ival
	case Floating:
		return v.fval == o.fval
	case None:
		return true
	case InnerStack:
		return v.inner.Equal(o.inner)
	}
	return false
}

// Canon renders the canonical source form: the token stream that, fed
// back through the evaluator, reproduces the value. Floats go through
// %f and are lossy.
func (v Value) Canon() string {
	switch v.kind {
	case Instruction:
		return "[" + v.text + "]"
	case String:
		return "\"" + v.text + "\""
	case Integer:
		return fmt.Sprintf("%d", v.ival)
	case Floating:
		return fmt.Sprintf("%f", v.fval)
	case Boolean:
		if v.ival != 0 {
			return "true"
		}
		return "false"
	case None:
		return "none"
	case Type:
		return Kind(v.ival).String()
	case InnerStack:
		parts := make([]string, 0, v.inner.Len())
		for _, e := range v.inner.Items() {
			parts = append(parts, e.Canon())
		}
		return "{" + strings.Join(parts, " ") + "}"
	}
	return ""
}

// Display renders the interactive print form.
func (v Value) Display() string {
	switch v.kind {
	case Instruction:
		return fmt.Sprintf("[ %s ]", v.text)
	case String:
		return fmt.Sprintf("%q", v.text)
	case Integer:
		return fmt.Sprintf("%d", v.ival)
	case Floating:
		return fmt.Sprintf("%f", v.fval)
	case Boolean:
		if v.ival != 0 {
			return "true"
		}
		return "false"
	case None:
		return "none"
	case Type:
		return Kind(v.ival).String()
	case InnerStack:
		return fmt.Sprintf("stack(size=%d)", v.inner.Len())
	}
	return ""
}
