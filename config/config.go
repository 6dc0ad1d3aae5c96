// Package config handles bytestack.toml tuning configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/bytestack/stack"
)

// FileName is the configuration file read by Load and FindAndLoad.
const FileName = "bytestack.toml"

// Config represents a bytestack.toml configuration.
type Config struct {
	Stack StackConfig `toml:"stack"`

	// Dir is the directory containing the bytestack.toml file (set at load time).
	Dir string `toml:"-"`
}

// StackConfig tunes stack allocation: how many bytes a fresh stack starts
// with and how many each growth adds.
type StackConfig struct {
	InitialSize int `toml:"initial-size"`
	GrowthStep  int `toml:"growth-step"`
}

// Default returns the tuning used when no bytestack.toml is present.
func Default() *Config {
	return &Config{
		Stack: StackConfig{
			InitialSize: 1024,
			GrowthStep:  1024,
		},
	}
}

// Load parses a bytestack.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults for unset fields
	def := Default()
	if c.Stack.InitialSize == 0 {
		c.Stack.InitialSize = def.Stack.InitialSize
	}
	if c.Stack.GrowthStep == 0 {
		c.Stack.GrowthStep = def.Stack.GrowthStep
	}

	if c.Stack.InitialSize < 0 {
		return nil, fmt.Errorf("%s: %w: got %d", path, stack.ErrInvalidInitialSize, c.Stack.InitialSize)
	}
	if c.Stack.GrowthStep < 0 {
		return nil, fmt.Errorf("%s: %w: got %d", path, stack.ErrInvalidGrowthStep, c.Stack.GrowthStep)
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a bytestack.toml file, then
// loads and returns the configuration. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// NewStack builds a stack with the configured tuning.
func (c *Config) NewStack() (*stack.Stack, error) {
	return stack.New(c.Stack.InitialSize, c.Stack.GrowthStep)
}

// NewGuarded builds a mutex-wrapped stack with the configured tuning.
func (c *Config) NewGuarded() (*stack.Guarded, error) {
	return stack.NewGuarded(c.Stack.InitialSize, c.Stack.GrowthStep)
}
