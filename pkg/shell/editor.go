package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiaq/inductive/pkg/store"
)

// The interface that line editors satisfy.
type editor interface {
	// ReadLine reads one line of input, without the line ending. It returns
	// io.EOF when there is no more input.
	ReadLine() (string, error)
	AddHistory(line string)
	Close() error
}

// A line reader for input that doesn't come from a terminal. The prompt is
// written to out.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in io.Reader, out io.Writer, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadLine() (string, error) {
	fmt.Fprint(ed.out, ed.prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// Last line without a line ending.
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (ed *minEditor) AddHistory(string) {}

func (ed *minEditor) Close() error { return nil }

// A line editor for terminals. It always uses the process's standard input
// and output.
type linerEditor struct {
	state  *liner.State
	prompt string
}

func newLinerEditor(prompt string, history []store.Cmd) *linerEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	for _, cmd := range history {
		state.AppendHistory(cmd.Text)
	}
	return &linerEditor{state, prompt}
}

func (ed *linerEditor) ReadLine() (string, error) {
	line, err := ed.state.Prompt(ed.prompt)
	if err == liner.ErrPromptAborted {
		// Ctrl-C discards the current line.
		return "", nil
	}
	return line, err
}

func (ed *linerEditor) AddHistory(line string) { ed.state.AppendHistory(line) }

func (ed *linerEditor) Close() error { return ed.state.Close() }

// Creates the editor for interactive mode: a liner editor seeded with the
// most recent commands in st if stdin is a terminal, a minEditor otherwise.
func newEditor(fds [3]*os.File, st store.Store, prompt string, historySize int, tty bool) editor {
	if !tty {
		return newMinEditor(fds[0], fds[2], prompt)
	}
	var history []store.Cmd
	if st != nil && historySize > 0 {
		var err error
		history, err = recentCmds(st, historySize)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot load history:", err)
		}
	}
	return newLinerEditor(prompt, history)
}

// Returns the last n commands in the history.
func recentCmds(st store.Store, n int) ([]store.Cmd, error) {
	next, err := st.NextCmdSeq()
	if err != nil {
		return nil, err
	}
	return st.Cmds(next-n, next)
}
