package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/sksp-lang/sscript/runtime/fault"
	"github.com/sksp-lang/sscript/runtime/interp"
)

// inputBufferSize caps one line of shell input.
const inputBufferSize = 256

// repl runs the line-oriented shell until exit or end of input. Any
// fault other than ProgramExit is printed and the loop continues with
// the unwind context reset.
func repl(ip *interp.Interp, st *interp.State, verbose int, debug bool) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Fprintln(ip.Out, "STACK_SCRIPT")
		fmt.Fprintln(ip.Out, "-------------------------------------------")
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, inputBufferSize), inputBufferSize)
	for {
		if interactive {
			fmt.Fprint(ip.Out, ">")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ip.Execute(st, scanner.Text()); err != nil {
			if fault.KindOf(err) == fault.ProgramExit {
				return nil
			}
			printFault(err)
		}
		if debug {
			pp.Fprintln(os.Stderr, st.Stack.Items())
		}
		showTop(ip, st, verbose)
	}
}

func printFault(err error) {
	if f, ok := err.(*fault.Error); ok {
		fmt.Fprintln(os.Stderr, f.Render())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

// showTop echoes the top n stack values, deepest of the n first.
func showTop(ip *interp.Interp, st *interp.State, n int) {
	if n > st.Stack.Len() {
		n = st.Stack.Len()
	}
	for depth := n - 1; depth >= 0; depth-- {
		fmt.Fprintln(ip.Out, st.Stack.FromTop(depth).Display())
	}
}
