// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the ThatInductive function, followed by
// method calls that add additional information to it.
//
// Example:
//
//	Test(t, someProgram,
//	    ThatInductive("-c", "(+ 1 2)").WritesStdout("3\n"),
//	    ThatInductive("-c", "(").
//	        ExitsWith(2).WritesStderrContaining("parse error"))
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/xiaq/inductive/pkg/must"
	"github.com/xiaq/inductive/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

// ThatInductive returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "inductive -c x" exits with 2 reads
// like:
//
//	ThatInductive("-c", "x").ExitsWith(2)
func ThatInductive(args ...string) Case {
	return Case{args: append([]string{"inductive"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatInductive("-norc").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exitCode, stdout, stderr := Run(p, c.stdin, c.args...)
			if exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", exitCode, c.want.exitCode)
			}
			if !match(c.want.stdout, stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.stdout)
			}
			if !match(c.want.stderr, stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given stdin and arguments, the first of which
// is the program name. It returns the exit code and the output written to
// stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.OK2(os.Pipe())
	r1, w1 := must.OK2(os.Pipe())
	r2, w2 := must.OK2(os.Pipe())
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	outCh, errCh := readAllAsync(r1), readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.OK1(io.ReadAll(r)))
		r.Close()
	}()
	return ch
}

func match(want output, got string) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func quote(s string) string {
	if s == "" {
		return "empty"
	}
	return "`" + s + "`"
}
