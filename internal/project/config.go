// Package project loads the optional todoc.toml project manifest.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is searched in the extraction root.
const ConfigFileName = "todoc.toml"

// OutputConfig is the [output] section.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// ExtractConfig is the [extract] section.
type ExtractConfig struct {
	Jobs          int  `toml:"jobs"`
	IncludeLocals bool `toml:"include_locals"`
	Cache         bool `toml:"cache"`
}

// Config is the parsed todoc.toml.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Extract ExtractConfig `toml:"extract"`
}

// DefaultConfig returns the values used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Output:  OutputConfig{Dir: "docs", Format: "markdown"},
		Extract: ExtractConfig{Jobs: 0, IncludeLocals: false, Cache: true},
	}
}

// Load parses the manifest at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(meta.Undecoded()) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, meta.Undecoded()[0].String())
	}
	return cfg, nil
}

// LoadFromDir looks for todoc.toml in dir and parses it when present.
func LoadFromDir(dir string) (Config, error) {
	return Load(filepath.Join(dir, ConfigFileName))
}

// Starter is the manifest written by `todoc init`.
const Starter = `[output]
dir = "docs"
format = "markdown"

[extract]
# 0 means one worker per CPU.
jobs = 0
include_locals = false
cache = true
`

// WriteStarter creates a starter manifest in dir. It refuses to overwrite
// an existing file.
func WriteStarter(dir string) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(Starter), 0o644); err != nil {
		return path, err
	}
	return path, nil
}
