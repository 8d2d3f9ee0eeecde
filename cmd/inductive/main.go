// Inductive is a calculator over Peano naturals and immutable lists, with an
// s-expression syntax. It evaluates code given with -c, script files, or
// lines read interactively.
package main

import (
	"os"

	"github.com/xiaq/inductive/pkg/buildinfo"
	"github.com/xiaq/inductive/pkg/prog"
	"github.com/xiaq/inductive/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.Program{})))
}
