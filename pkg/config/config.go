// Package config manages runtime settings of inductive: the stack ceiling
// needed by deeply recursive values, and the settings read from the rc file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiaq/inductive/pkg/logutil"
)

var logger = logutil.GetLogger("[config] ")

// Config holds the settings that can be set in an rc file.
type Config struct {
	// Stack ceiling in bytes. Zero leaves the runtime default alone.
	MaxStack int `yaml:"max_stack" toml:"max_stack"`
	// Path of the database of variables and command history.
	DB string `yaml:"db" toml:"db"`
	// Number of history entries loaded into the line editor.
	History int    `yaml:"history" toml:"history"`
	Prompt  string `yaml:"prompt" toml:"prompt"`
}

// Default returns the settings used when there is no rc file.
func Default() Config {
	return Config{History: 1000, Prompt: "> "}
}

// ErrUnknownKeys is wrapped by the error Load returns for a TOML rc file with
// keys that don't correspond to any setting. YAML rc files with such keys are
// rejected by the YAML decoder itself.
var ErrUnknownKeys = errors.New("unknown keys")

// Load reads an rc file. Files whose names end in .toml are decoded as TOML;
// all other files are decoded as YAML. Settings absent from the file keep
// their default values. A file that doesn't exist yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("rc file %s doesn't exist, using defaults", path)
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(data, &cfg)
	} else {
		err = decodeYAML(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("loaded rc file %s: %+v", path, cfg)
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownKeys, undecoded)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// Empty file.
		return nil
	}
	return err
}

// Apply puts the settings that affect the runtime into effect.
func (cfg Config) Apply() {
	if cfg.MaxStack > 0 {
		old := debug.SetMaxStack(cfg.MaxStack)
		logger.Printf("stack ceiling changed from %d to %d", old, cfg.MaxStack)
	}
}

// DefaultPath returns the path of the rc file: $INDUCTIVE_RC if set, or
// rc.yaml in the inductive directory under the user's config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv("INDUCTIVE_RC"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inductive", "rc.yaml"), nil
}

// DefaultDBPath returns the path of the database used when neither the
// command line nor the rc file names one: db.bolt in the inductive directory
// under the user's cache directory.
func DefaultDBPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inductive", "db.bolt"), nil
}
