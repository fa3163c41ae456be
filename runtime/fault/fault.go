package fault

import (
	"fmt"
	"strings"
)

// Kind enumerates the exception kinds an evaluation can raise.
type Kind int

const (
	ProgramOk Kind = iota
	ProgramExit
	InvalidChar
	InvalidInstruction
	StackUnderflow
	ValueError
	InvalidOperands
	ProgramPanic
	IOError
	FileNotFound
	FileNotCreatable
	RoundParenthesisError
	SquaredParenthesisError
	CurlyParenthesisError
	StringQuotingError
	InjectError
	InvalidNameDefine
)

var kindMessages = [...]string{
	ProgramOk:               "ok",
	ProgramExit:             "program exit",
	InvalidChar:             "Invalid character",
	InvalidInstruction:      "Invalid instruction",
	StackUnderflow:          "Stack underflow",
	ValueError:              "Value Error",
	InvalidOperands:         "Invalid operands",
	ProgramPanic:            "Error while allocating memory",
	IOError:                 "I/O Error",
	FileNotFound:            "File not found",
	FileNotCreatable:        "File not creatable",
	RoundParenthesisError:   "Round parenthesis mismatch",
	SquaredParenthesisError: "Squared parenthesis mismatch",
	CurlyParenthesisError:   "Curly parenthesis mismatch",
	StringQuotingError:      "String quoting mismatch",
	InjectError:             "Parallel inject failed",
	InvalidNameDefine:       "Invalid name for definition",
}

// Message returns the user-facing message for the kind.
func (k Kind) Message() string {
	if int(k) < len(kindMessages) && k >= 0 {
		return kindMessages[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the nonlocal unwind carried out of an evaluation. Backtrace
// holds the fragment executing at each nesting depth, outermost first.
// Tasks is populated only for InjectError: one slot per parallel task,
// nil where the task succeeded.
type Error struct {
	Kind      Kind
	Backtrace []string
	Tasks     []*Error
}

// New creates an Error of the given kind with an empty backtrace.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Backtrace) == 0 {
		return e.Kind.Message()
	}
	return fmt.Sprintf("%s not executed: %s", e.Kind.Message(), e.Backtrace[0])
}

// Render formats the full diagnostic: the kind message, the failing
// token, nested fragments indented one tab deeper per level, and
// per-task diagnostics for InjectError.
func (e *Error) Render() string {
	var b strings.Builder
	b.WriteString(e.Error())
	for depth, frag := range e.Backtrace {
		if depth == 0 {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("\t", depth))
		b.WriteString(frag)
	}
	for i, task := range e.Tasks {
		if task == nil {
			continue
		}
		b.WriteString(fmt.Sprintf("\ntask %d: %s", i, task.Render()))
	}
	return b.String()
}

// WithFrame records frag as the fragment executing at the current
// nesting depth. Frames accumulate outermost-first as the unwind
// crosses evaluator levels. Non-fault errors pass through untouched.
func WithFrame(err error, frag string) error {
	f, ok := err.(*Error)
	if !ok {
		return err
	}
	f.Backtrace = append([]string{frag}, f.Backtrace...)
	return f
}

// KindOf extracts the exception kind from err, or ProgramOk if err is
// nil or not a fault.
func KindOf(err error) Kind {
	if f, ok := err.(*Error); ok {
		return f.Kind
	}
	return ProgramOk
}
