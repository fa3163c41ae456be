package interp

import (
	"sync"

	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/value"
)

// opInject executes the Instruction on top against the inner stack
// beneath it; the inner stack stays on the outer stack.
func opInject(ip *Interp, st *State) error {
	if st.Stack.Len() < 2 {
		return underflow()
	}
	if !st.Stack.FromTop(1).Is(value.InnerStack) {
		return invalidOperands()
	}
	script, err := popInstr(st)
	if err != nil {
		return err
	}
	target, _ := st.Stack.Top()
	return ip.Execute(st.child(target.Inner()), script)
}

// injectTargets collects the inner stacks at the top n positions,
// deepest first, without mutating the outer stack.
func injectTargets(st *State, n int) ([]*value.Stack, error) {
	if n > st.Stack.Len() {
		return nil, underflow()
	}
	targets := make([]*value.Stack, 0, n)
	for i := st.Stack.Len() - n; i < st.Stack.Len(); i++ {
		v := st.Stack.At(i)
		if !v.Is(value.InnerStack) {
			return nil, invalidOperands()
		}
		targets = append(targets, v.Inner())
	}
	return targets, nil
}

// runInject executes script against every target, sequentially or as a
// strict fork-join parallel region. Each parallel task keeps its own
// unwind context; when any task fails, the peers still run to
// completion and the aggregate InjectError carries the per-task faults
// for introspection.
func runInject(ip *Interp, st *State, targets []*value.Stack, script string, parallel bool) error {
	if !parallel {
		for _, target := range targets {
			if err := ip.Execute(st.child(target), script); err != nil {
				return err
			}
		}
		return nil
	}
	ip.Log.WithField("tasks", len(targets)).Debug("parallel inject")
	faults := make([]*fault.Error, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, inner *value.Stack) {
			defer wg.Done()
			if err := ip.Execute(st.child(inner), script); err != nil {
				faults[i], _ = err.(*fault.Error)
			}
		}(i, target)
	}
	wg.Wait()
	for _, f := range faults {
		if f != nil {
			agg := fault.New(fault.InjectError)
			agg.Tasks = faults
			return agg
		}
	}
	return nil
}

func injectAtDepth(ip *Interp, st *State, n int, parallel bool) error {
	script, err := popInstr(st)
	if err != nil {
		return err
	}
	targets, err := injectTargets(st, n)
	if err != nil {
		st.Stack.Push(value.NewInstr(script))
		return err
	}
	return runInject(ip, st, targets, script, parallel)
}

func numopInject(ip *Interp, st *State, n int) error {
	return injectAtDepth(ip, st, n, false)
}

func numopPinject(ip *Interp, st *State, n int) error {
	return injectAtDepth(ip, st, n, true)
}

// popInjectPair evaluates the argument expression and pops the script
// and the stack count, accepting them in either order.
func popInjectPair(ip *Interp, st *State, arg string) (script string, n int, err error) {
	if err := ip.Execute(st, arg); err != nil {
		return "", 0, err
	}
	if st.Stack.Len() < 2 {
		return "", 0, underflow()
	}
	a, _ := st.Stack.Pop()
	b, _ := st.Stack.Pop()
	switch {
	case a.Is(value.Instruction) && b.Is(value.Integer):
		return a.Text(), int(b.Int()), nil
	case a.Is(value.Integer) && b.Is(value.Instruction):
		return b.Text(), int(a.Int()), nil
	default:
		st.Stack.Push(b)
		st.Stack.Push(a)
		return "", 0, invalidOperands()
	}
}

func injectEvaluated(ip *Interp, st *State, arg string, parallel bool) error {
	script, n, err := popInjectPair(ip, st, arg)
	if err != nil {
		return err
	}
	targets, err := injectTargets(st, n)
	if err != nil {
		st.Stack.Push(value.NewInt(int64(n)))
		st.Stack.Push(value.NewInstr(script))
		return err
	}
	return runInject(ip, st, targets, script, parallel)
}

func bropInject(ip *Interp, st *State, arg string) error {
	return injectEvaluated(ip, st, arg, false)
}

func bropPinject(ip *Interp, st *State, arg string) error {
	return injectEvaluated(ip, st, arg, true)
}
