package fault

import (
	"errors"
	"strings"
	"testing"
)

func TestWithFrameAccumulatesOutermostFirst(t *testing.T) {
	err := error(New(ValueError))
	err = WithFrame(err, "/")
	err = WithFrame(err, "apply")
	f := err.(*Error)
	if len(f.Backtrace) != 2 || f.Backtrace[0] != "apply" || f.Backtrace[1] != "/" {
		t.Errorf("Backtrace = %v, want [apply /]", f.Backtrace)
	}
}

func TestWithFramePassesForeignErrors(t *testing.T) {
	plain := errors.New("boom")
	if got := WithFrame(plain, "tok"); got != plain {
		t.Errorf("WithFrame wrapped a non-fault error: %v", got)
	}
}

func TestRender(t *testing.T) {
	err := New(StackUnderflow)
	_ = WithFrame(err, "+")
	_ = WithFrame(err, "sq")
	out := err.Render()
	if !strings.HasPrefix(out, "Stack underflow not executed: sq") {
		t.Errorf("Render prefix = %q", out)
	}
	if !strings.Contains(out, "\n\t+") {
		t.Errorf("Render does not indent the nested fragment: %q", out)
	}
}

func TestRenderTasks(t *testing.T) {
	agg := New(InjectError)
	agg.Tasks = []*Error{nil, New(ValueError)}
	out := agg.Render()
	if !strings.Contains(out, "task 1") || !strings.Contains(out, "Value Error") {
		t.Errorf("Render missing task diagnostics: %q", out)
	}
	if strings.Contains(out, "task 0") {
		t.Errorf("Render reported the successful task: %q", out)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(New(IOError)) != IOError {
		t.Error("KindOf missed the fault kind")
	}
	if KindOf(nil) != ProgramOk {
		t.Error("KindOf(nil) != ProgramOk")
	}
	if KindOf(errors.New("x")) != ProgramOk {
		t.Error("KindOf(plain error) != ProgramOk")
	}
}
