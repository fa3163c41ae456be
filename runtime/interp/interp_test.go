package interp_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/interp"
)

func newInterp() *interp.Interp {
	ip := interp.New()
	ip.Out = io.Discard
	return ip
}

// canon renders the whole stack in canonical form, bottom first.
func canon(st *interp.State) string {
	parts := make([]string, 0, st.Stack.Len())
	for _, v := range st.Stack.Items() {
		parts = append(parts, v.Canon())
	}
	return strings.Join(parts, " ")
}

func run(t *testing.T, src string) *interp.State {
	t.Helper()
	ip := newInterp()
	st := interp.NewState()
	require.NoError(t, ip.Execute(st, src))
	return st
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"integer addition", "1 2 +", "3"},
		{"mixed addition widens", "1 2.0 +", "3.000000"},
		{"apply", "[1 2 +] apply", "3"},
		{"define and call", "[dup *] define(sq) 5 sq", "25"},
		{"times", "0 [1 +] times(3)", "3"},
		{"equality and not", "1 2 == not", "true"},
		{"string split on delimiter", `"a b c" " " split`, `"a" "b" "c"`},
		{"division is floating", "6 3 /", "2.000000"},
		{"subtraction", "10 4 -", "6"},
		{"modulo", "7 2 %", "1"},
		{"pow is floating", "2 8 pow", "256.000000"},
		{"negate", "3 --", "-3"},
		{"factorial", "4 !", "24"},
		{"sqrt", "4.0 sqrt", "2.000000"},
		{"int truncates", "2.9 int", "2"},
		{"comparisons", "1 2 < 2 2 >= and", "true"},
		{"boolean xor", "true false xor", "true"},
		{"roll", "1 2 3 roll", "3 1 2"},
		{"top copies bottom", "1 2 top", "1 2 1"},
		{"swap", "1 2 swap", "2 1"},
		{"drop", "1 2 drop", "1"},
		{"size", "1 size", "1 1"},
		{"empty on empty stack", "empty", "true"},
		{"clear", "1 2 3 clear", ""},
		{"numbered dup", "1 2 3 4 dup3", "1 2 3 4 1"},
		{"numbered swap", "1 2 3 swap2", "3 2 1"},
		{"numbered dig", "1 2 3 dig2", "2 3 1"},
		{"bracketed dup evaluates depth", "1 2 3 dup(1 1 +)", "1 2 3 1"},
		{"if true branch", "true [1] [2] if", "1"},
		{"if false branch", "false [1] [2] if", "2"},
		{"bracketed if", "[1] [2] if(1 2 ==)", "2"},
		{"loop", "3 [1 - dup 0 >] loop", "0"},
		{"bracketed loop", "0 [1 +] loop(dup 3 <)", "3"},
		{"dip", "1 2 [drop] dip", "2"},
		{"quote integer", "5 quote", "[5]"},
		{"quote apply round trip", "5 quote apply", "5"},
		{"compose instructions", "[a b] [c] compose", "[a b c]"},
		{"compose strings", `"a" "b" compose`, `"ab"`},
		{"compose with delimiter", `"a" "b" compose("-")`, `"a-b"`},
		{"split instruction", "[1 2 +] split", "[1] [2] [+]"},
		{"split string on whitespace", `"a  b" split`, `"a" "b"`},
		{"split inner stack", "{1 2 3} split", "1 2 3"},
		{"bracketed split", `"a-b" split("-")`, `"a" "b"`},
		{"inner stack literal", "{1 2 3}", "{1 2 3}"},
		{"nested inner stack", "{1 {2 3}}", "{1 {2 3}}"},
		{"stack word", "stack", "{}"},
		{"push", "{1} 2 push", "{1 2}"},
		{"pop", "{1 2} pop", "{1} 2"},
		{"pop empty yields none", "{} pop", "{} none"},
		{"inject", "{1 2} [+] inject", "{3}"},
		{"compress", "1 2 compress", "{1 2}"},
		{"type reflects", "3 type", "3 INT"},
		{"type words", "3 type INT ==", "3 true"},
		{"none", "none", "none"},
		{"inner stack equality", "{1 2} {1 2} ==", "true"},
		{"inner stack inequality", "{1 2} {1 3} !=", "true"},
		{"isdef miss", "isdef(sq)", "false"},
		{"isdef hit", "[dup *] define(sq) isdef(sq)", "true"},
		{"delete", "[1] define(x) delete(x) isdef(x)", "false"},
		{"try success", "[1 1 +] try", "2 true"},
		{"nop", "1 nop", "1"},
		{"user word recursion", "[dup 1 > [dup 1 - fact *] [nop] if] define(fact) 5 fact", "120"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := run(t, tt.src)
			require.Equal(t, tt.want, canon(st))
		})
	}
}

func TestTryFailure(t *testing.T) {
	// the body's partial effects stay; try itself maps the fault to false
	st := run(t, "[1 0 /] try")
	require.Equal(t, "1 0 false", canon(st))

	// exit is caught like any other exception
	st = run(t, "[exit] try")
	require.Equal(t, "false", canon(st))
}

func runExpectFault(t *testing.T, src string, kind fault.Kind) (*interp.State, *fault.Error) {
	t.Helper()
	ip := newInterp()
	st := interp.NewState()
	err := ip.Execute(st, src)
	require.Error(t, err)
	f, ok := err.(*fault.Error)
	require.True(t, ok, "error is not a fault: %v", err)
	require.Equal(t, kind, f.Kind, "fault kind for %q", src)
	return st, f
}

// TestStackConservation: operators that raise StackUnderflow or
// InvalidOperands leave the stack exactly as it was.
func TestStackConservation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind fault.Kind
		want string
	}{
		{"sum underflow empty", "+", fault.StackUnderflow, ""},
		{"sum underflow one", "1 +", fault.StackUnderflow, "1"},
		{"sum wrong kind", "true 1 +", fault.InvalidOperands, "true 1"},
		{"division by zero", "1 0 /", fault.ValueError, "1 0"},
		{"float division by zero", "1.0 0.0 /", fault.ValueError, "1.000000 0.000000"},
		{"modulo by zero", "7 0 %", fault.ValueError, "7 0"},
		{"sqrt of zero", "0 sqrt", fault.ValueError, "0"},
		{"negative factorial", "-1 !", fault.ValueError, "-1"},
		{"not on integer", "1 not", fault.InvalidOperands, "1"},
		{"and on mixed", "true 1 and", fault.InvalidOperands, "true 1"},
		{"quote inner stack", "{1} quote", fault.InvalidOperands, "{1}"},
		{"compose mixed kinds", `[a] "b" compose`, fault.InvalidOperands, `[a] "b"`},
		{"numbered dup too deep", "1 dup3", fault.StackUnderflow, "1"},
		{"numbered swap too deep", "1 2 swap5", fault.StackUnderflow, "1 2"},
		{"if without operands", "true [1] if", fault.StackUnderflow, "true [1]"},
		{"if wrong condition", "3 [1] [2] if", fault.InvalidOperands, "3 [1] [2]"},
		{"apply non-instruction", "5 apply", fault.InvalidOperands, "5"},
		{"dip underflow", "[1] dip", fault.StackUnderflow, "[1]"},
		{"push without inner stack", "1 2 push", fault.InvalidOperands, "1 2"},
		{"pop without inner stack", "1 pop", fault.InvalidOperands, "1"},
		{"inject wrong target", "1 [x] inject", fault.InvalidOperands, "1 [x]"},
		{"define non-instruction", "5 define(x)", fault.InvalidOperands, "5"},
		{"define reserved name", "[1] define(a])", fault.InvalidNameDefine, "[1]"},
		{"unknown word", "1 frobnicate", fault.InvalidInstruction, "1"},
		{"unknown bracketed word", "1 frobnicate(2)", fault.InvalidInstruction, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := runExpectFault(t, tt.src, tt.kind)
			require.Equal(t, tt.want, canon(st), "stack not conserved for %q", tt.src)
		})
	}
}

// TestQuoteApplyRoundTrip: for every non-InnerStack literal v,
// `v quote apply` leaves a value equal to v.
func TestQuoteApplyRoundTrip(t *testing.T) {
	literals := []string{"5", "-3", "2.5", "true", "false", "none", "INT", "STACK", `"abc"`, "[dup *]"}
	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			direct := run(t, lit)
			round := run(t, lit+" quote apply")
			require.Equal(t, 1, round.Stack.Len())
			v, _ := direct.Stack.Top()
			w, _ := round.Stack.Top()
			require.True(t, v.Equal(w), "round trip of %s: %s != %s", lit, v.Canon(), w.Canon())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.sksp")
	src := `1 2.5 "x y" [dup *] true none INT {1 {2 "a"}}`

	ip := newInterp()
	st := interp.NewState()
	require.NoError(t, ip.Execute(st, src))
	before := canon(st)
	require.NoError(t, ip.Execute(st, "save("+path+")"))

	restored := interp.NewState()
	require.NoError(t, ip.Execute(restored, "load("+path+")"))
	require.Equal(t, before, canon(restored))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, string(data))
}

func TestLoadMissingFile(t *testing.T) {
	_, f := runExpectFault(t, "load(no/such/file.sksp)", fault.FileNotFound)
	require.Equal(t, []string{"load(no/such/file.sksp)"}, f.Backtrace)
}

// TestDeepCopyDisjointness: dup deep-copies an inner stack, so
// mutating the copy through inject leaves the original untouched.
func TestDeepCopyDisjointness(t *testing.T) {
	st := run(t, "{1 2} dup [5] inject")
	require.Equal(t, "{1 2} {1 2 5}", canon(st))

	// structurally equal inner stacks compare true even when
	// allocated separately
	st = run(t, "{1 {2}} dup ==")
	require.Equal(t, "true", canon(st))
}

func TestBacktrace(t *testing.T) {
	_, f := runExpectFault(t, "[1 0 /] apply", fault.ValueError)
	require.Equal(t, []string{"apply", "/"}, f.Backtrace)

	_, f = runExpectFault(t, "[[+] apply] apply", fault.StackUnderflow)
	require.Equal(t, []string{"apply", "apply", "+"}, f.Backtrace)

	// a failing user word shows the definition's fragment beneath it
	_, f = runExpectFault(t, "[1 0 /] define(boom) boom", fault.ValueError)
	require.Equal(t, []string{"boom", "/"}, f.Backtrace)
}

func TestExit(t *testing.T) {
	ip := newInterp()
	st := interp.NewState()
	err := ip.Execute(st, "1 exit 2")
	require.Equal(t, fault.ProgramExit, fault.KindOf(err))
	require.Equal(t, "1", canon(st))
}

func TestEnvironmentIsSharedWithInnerStacks(t *testing.T) {
	// words defined outside resolve inside inner stack bodies and
	// injected scripts
	st := run(t, "[dup *] define(sq) {3 sq}")
	require.Equal(t, "{9}", canon(st))

	st = run(t, "[dup *] define(sq) {4} [sq] inject")
	require.Equal(t, "{16}", canon(st))
}
