package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_DiscardsByDefault(t *testing.T) {
	SetOutput(io.Discard)
	logger := GetLogger("[test] ")
	logger.Println("nowhere")
	if logger.Writer() != io.Discard {
		t.Errorf("logger writes to %v, want io.Discard", logger.Writer())
	}
}

func TestSetOutput(t *testing.T) {
	logger := GetLogger("[test] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	logger.Println("hello")
	if !strings.Contains(buf.String(), "[test] hello") {
		t.Errorf("log output %q does not contain %q", buf.String(), "[test] hello")
	}

	// Loggers obtained later also use the new output.
	GetLogger("[later] ").Println("world")
	if !strings.Contains(buf.String(), "[later] world") {
		t.Errorf("log output %q does not contain %q", buf.String(), "[later] world")
	}
}

func TestSetOutputFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "log")
	logger := GetLogger("[test] ")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Errorf("SetOutputFile(\"\") -> %v", err)
	}

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "[test] to file") {
		t.Errorf("log file contains %q", content)
	}

	if err := SetOutputFile(filepath.Join(fname, "bad")); err == nil {
		t.Errorf("SetOutputFile under a regular file -> nil error")
	}
}
