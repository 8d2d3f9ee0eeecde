package testutil

import (
	"os"
	"path/filepath"

	"github.com/xiaq/inductive/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory.
//
// It panics if the test directory cannot be created or symlinks cannot be
// resolved. It is only suitable for use in tests.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "inductivetest."))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return dir
}

// Dir describes the layout of a directory. The keys of the map represent
// filenames. Each value is either a string (for the content of a regular
// file) or a Dir (for the content of a subdirectory).
type Dir map[string]any

// ApplyDir creates the given filesystem layout in dir.
func ApplyDir(dir string, layout Dir) {
	for name, file := range layout {
		path := filepath.Join(dir, name)
		switch file := file.(type) {
		case string:
			must.WriteFile(path, file)
		case Dir:
			must.MkdirAll(path)
			ApplyDir(path, file)
		default:
			panic("file is neither string nor Dir")
		}
	}
}
