// Package shell is the entry point for the calculator interface of inductive.
package shell

import (
	"fmt"
	"os"

	"github.com/xiaq/inductive/pkg/config"
	"github.com/xiaq/inductive/pkg/eval"
	"github.com/xiaq/inductive/pkg/logutil"
	"github.com/xiaq/inductive/pkg/prog"
	"github.com/xiaq/inductive/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It always runs, so it should come last in
// a composite program.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires an argument")
	}

	cfg := loadConfig(fds[2], f)
	cfg.Apply()

	ev := eval.NewEvaler()
	st := openStore(fds[2], f, cfg)
	if st != nil {
		ev.Store = st
		defer func() {
			if err := st.Close(); err != nil {
				fmt.Fprintln(fds[2], "Warning: failed to close database:", err)
			}
		}()
	}

	if len(args) > 0 {
		return prog.Exit(script(ev, fds, args, f.CodeInArg))
	}

	cleanup := initSignal(fds[2])
	defer cleanup()
	return interact(ev, st, fds, cfg)
}

// Loads the rc file named by the flags. Problems with the rc file are
// reported as warnings, and the default settings are used instead.
func loadConfig(stderr *os.File, f *prog.Flags) config.Config {
	path, err := rcPath(f)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		return config.Default()
	}
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	return cfg
}

// Opens the database named by the flags or the rc file. It returns nil if
// the database is disabled or can't be opened.
func openStore(stderr *os.File, f *prog.Flags, cfg config.Config) store.Store {
	if f.NoDB {
		return nil
	}
	path, err := dbPath(f, cfg)
	if err == nil {
		var st store.Store
		st, err = store.NewStore(path)
		if err == nil {
			logger.Println("opened database", path)
			return st
		}
	}
	fmt.Fprintln(stderr, "Warning:", err)
	fmt.Fprintln(stderr, "Variables and history will not be saved.")
	return nil
}
