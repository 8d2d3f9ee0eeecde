package shell

import (
	"fmt"
	"os"

	"github.com/xiaq/inductive/pkg/eval"
)

// Evaluates the code in args[0] if cmd is true, or the script file named by
// args[0] otherwise. The remaining arguments are ignored. It returns the exit
// status.
func script(ev *eval.Evaler, fds [3]*os.File, args []string, cmd bool) int {
	arg0 := args[0]
	if len(args) > 1 {
		logger.Printf("ignoring extra arguments %q", args[1:])
	}

	var code string
	if cmd {
		code = arg0
	} else {
		bs, err := os.ReadFile(arg0)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", arg0, err)
			return 2
		}
		code = string(bs)
	}

	if err := ev.Eval(code, fds[1]); err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	return 0
}
