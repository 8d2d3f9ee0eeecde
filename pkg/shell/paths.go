package shell

import (
	"os"
	"path/filepath"

	"github.com/xiaq/inductive/pkg/config"
	"github.com/xiaq/inductive/pkg/prog"
)

// Returns the path of the rc file, or "" if -norc was given.
func rcPath(f *prog.Flags) (string, error) {
	switch {
	case f.NoRC:
		return "", nil
	case f.RC != "":
		return f.RC, nil
	default:
		return config.DefaultPath()
	}
}

// Returns the path of the database. A -db flag takes precedence over the rc
// file. The directory of the default path is created if needed.
func dbPath(f *prog.Flags, cfg config.Config) (string, error) {
	if f.DB != "" {
		return f.DB, nil
	}
	if cfg.DB != "" {
		return cfg.DB, nil
	}
	p, err := config.DefaultDBPath()
	if err != nil {
		return "", err
	}
	return p, os.MkdirAll(filepath.Dir(p), 0700)
}
