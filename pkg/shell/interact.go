package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/xiaq/inductive/pkg/config"
	"github.com/xiaq/inductive/pkg/errutil"
	"github.com/xiaq/inductive/pkg/eval"
	"github.com/xiaq/inductive/pkg/store"
	"github.com/xiaq/inductive/pkg/sys"
)

// Runs the read-eval-print loop until the input is exhausted. Each line is
// evaluated on its own; evaluation errors are written to stderr and don't
// end the session.
func interact(ev *eval.Evaler, st store.Store, fds [3]*os.File, cfg config.Config) error {
	ed := newEditor(fds, st, cfg.Prompt, cfg.History, sys.IsATTY(fds[0]))
	var err error
	for {
		var line string
		line, err = ed.ReadLine()
		if err == io.EOF {
			err = nil
			break
		} else if err != nil {
			if _, isMin := ed.(*minEditor); isMin {
				break
			}
			fmt.Fprintln(fds[2], "Editor error:", err)
			fmt.Fprintln(fds[2], "Falling back to basic line editor")
			err = ed.Close()
			if err != nil {
				break
			}
			ed = newMinEditor(fds[0], fds[2], cfg.Prompt)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ed.AddHistory(line)
		if st != nil {
			if _, err := st.AddCmd(line); err != nil {
				logger.Println("failed to add command to history:", err)
			}
		}
		if err := ev.Eval(line, fds[1]); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	return errutil.Multi(err, ed.Close())
}

// Sets up handling of signals in interactive mode. SIGUSR1, where supported,
// dumps the stacks of all goroutines to stderr.
func initSignal(stderr io.Writer) func() {
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			logger.Println("signal", sig)
			fmt.Fprint(stderr, sys.DumpStack())
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
