package interp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sksp-lang/sscript/runtime/fault"
)

// bropLoad reads the file in one shot and evaluates its contents
// against the current state.
func bropLoad(ip *Interp, st *State, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fault.New(fault.FileNotFound)
		}
		return fault.New(fault.IOError)
	}
	if len(content) == 0 {
		return nil
	}
	ip.Log.WithField("path", path).Debug("loading script")
	return ip.Execute(st, string(content))
}

// bropSave writes every stack value in canonical form, bottom first,
// separated by a single space.
func bropSave(ip *Interp, st *State, path string) error {
	parts := make([]string, 0, st.Stack.Len())
	for _, v := range st.Stack.Items() {
		parts = append(parts, v.Canon())
	}
	f, err := os.Create(path)
	if err != nil {
		return fault.New(fault.FileNotCreatable)
	}
	ip.Log.WithField("path", path).Debug("saving stack")
	if _, err := f.WriteString(strings.Join(parts, " ")); err != nil {
		f.Close()
		return fault.New(fault.IOError)
	}
	if err := f.Close(); err != nil {
		return fault.New(fault.IOError)
	}
	return nil
}

// LoadFile reads and evaluates path against st, the same operation the
// load(path) builtin performs. The path becomes the outermost
// backtrace frame on failure.
func (ip *Interp) LoadFile(st *State, path string) error {
	if err := bropLoad(ip, st, path); err != nil {
		return fault.WithFrame(err, path)
	}
	return nil
}

// opPrint shows the top value; an empty stack prints nothing.
func opPrint(ip *Interp, st *State) error {
	if top, ok := st.Stack.Top(); ok {
		fmt.Fprintln(ip.Out, top.Display())
	}
	return nil
}

// opPrintall shows the whole stack, bottom first, one value per line.
func opPrintall(ip *Interp, st *State) error {
	for _, v := range st.Stack.Items() {
		fmt.Fprintln(ip.Out, v.Display())
	}
	return nil
}
