package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xiaq/inductive/pkg/must"
)

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("TempDir returns %q which cannot be stated", dir)
	}
	if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
	if resolved := must.OK1(filepath.EvalSymlinks(dir)); resolved != dir {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)
	must.WriteFile(filepath.Join(dir, "a"), "test")

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestApplyDir(t *testing.T) {
	dir := TempDir(t)
	ApplyDir(dir, Dir{
		"rc.yaml": "prompt: '> '\n",
		"d": Dir{
			"rc.toml": "prompt = '> '\n",
		},
	})

	if got := must.ReadFileString(filepath.Join(dir, "rc.yaml")); got != "prompt: '> '\n" {
		t.Errorf("rc.yaml has content %q", got)
	}
	if got := must.ReadFileString(filepath.Join(dir, "d", "rc.toml")); got != "prompt = '> '\n" {
		t.Errorf("d/rc.toml has content %q", got)
	}
}

func TestSet(t *testing.T) {
	c := &cleanuper{}
	s := "old"
	Set(c, &s, "new")
	if s != "new" {
		t.Errorf("after Set, s = %q", s)
	}
	c.runCleanups()
	if s != "old" {
		t.Errorf("after cleanup, s = %q", s)
	}
}

const envName = "INDUCTIVE_TESTUTIL_ENV"

func TestSetenv(t *testing.T) {
	os.Unsetenv(envName)
	c := &cleanuper{}
	if v := Setenv(c, envName, "bar"); v != "bar" {
		t.Errorf("Setenv returned %q", v)
	}
	if v := os.Getenv(envName); v != "bar" {
		t.Errorf("after Setenv, env is %q", v)
	}
	c.runCleanups()
	if _, ok := os.LookupEnv(envName); ok {
		t.Errorf("after cleanup, env is still set")
	}
}

func TestUnsetenv(t *testing.T) {
	os.Setenv(envName, "foo")
	defer os.Unsetenv(envName)
	c := &cleanuper{}
	Unsetenv(c, envName)
	if _, ok := os.LookupEnv(envName); ok {
		t.Errorf("after Unsetenv, env is still set")
	}
	c.runCleanups()
	if v := os.Getenv(envName); v != "foo" {
		t.Errorf("after cleanup, env is %q", v)
	}
}
