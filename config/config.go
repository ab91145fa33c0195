// Package config handles tagrt.toml runtime configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"myceliumweb.org/tagrt/driver"
	"myceliumweb.org/tagrt/printer"
	"myceliumweb.org/tagrt/spec"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "tagrt.toml"

// Config represents a tagrt.toml file.
type Config struct {
	Heap    Heap    `toml:"heap"`
	Printer Printer `toml:"printer"`
	Log     Log     `toml:"log"`
}

// Heap configures the heap allocated for each run.
type Heap struct {
	// Words is the size of the heap in words.
	Words int `toml:"words"`
}

// Printer configures the external printer.
type Printer struct {
	MaxDepth int `toml:"max-depth"`
}

// Log configures logging to stderr.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Heap:    Heap{Words: spec.DefaultHeapWords},
		Printer: Printer{MaxDepth: printer.DefaultMaxDepth},
		Log:     Log{Level: "warn"},
	}
}

// Load reads the config file at path on top of Default().
// If path is DefaultPath and the file does not exist, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, leaving fields absent from data untouched.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Heap.Words <= 0 {
		return fmt.Errorf("heap.words must be positive, have %d", c.Heap.Words)
	}
	if c.Printer.MaxDepth <= 0 {
		return fmt.Errorf("printer.max-depth must be positive, have %d", c.Printer.MaxDepth)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}

// Driver returns the driver configuration.
func (c Config) Driver() driver.Config {
	return driver.Config{
		HeapWords: c.Heap.Words,
		Printer:   printer.Printer{MaxDepth: c.Printer.MaxDepth},
	}
}
