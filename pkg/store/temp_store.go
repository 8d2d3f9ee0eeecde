package store

import (
	"path/filepath"

	"github.com/xiaq/inductive/pkg/must"
	"github.com/xiaq/inductive/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file, which is closed
// and removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) Store {
	st := must.OK1(NewStore(filepath.Join(testutil.TempDir(c), "db.bolt")))
	c.Cleanup(func() {
		if err := st.Close(); err != nil {
			logger.Println("failed to close temp store:", err)
		}
	})
	return st
}
