// SPDX-License-Identifier: MIT

// Package config reads run defaults for the strassen command from the
// environment, optionally seeded from a .env file.
//
// Variables (all optional; empty means unset):
//
//	STRASSEN_SIZE          matrix extent n            (default 4)
//	STRASSEN_ALGO          naive|recursive|strassen   (default strassen)
//	STRASSEN_LEAF_SIZE     recursion cutoff, >= 1     (default 1)
//	STRASSEN_MEMORY_LIMIT  element budget, 0 = none   (default 0)
//
// Variables already present in the process environment win over the .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/strassen/matmul"
)

// Environment variable names.
const (
	EnvSize        = "STRASSEN_SIZE"
	EnvAlgorithm   = "STRASSEN_ALGO"
	EnvLeafSize    = "STRASSEN_LEAF_SIZE"
	EnvMemoryLimit = "STRASSEN_MEMORY_LIMIT"
)

// envFileDepth bounds the upward search for a .env file.
const envFileDepth = 5

// ErrInvalidValue is returned when a variable is set to a value that does not parse
// or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the run defaults.
type Config struct {
	Size        int
	Algorithm   matmul.Algorithm
	LeafSize    int
	MemoryLimit int
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Size:        4,
		Algorithm:   matmul.Strassen,
		LeafSize:    matmul.DefaultLeafSize,
		MemoryLimit: matmul.DefaultMemoryLimit,
	}
}

// Options converts the configuration into multiplier options.
func (c Config) Options() []matmul.Option {
	return []matmul.Option{matmul.WithLeafSize(c.LeafSize), matmul.WithMemoryLimit(c.MemoryLimit)}
}

// Load reads the configuration, first loading the nearest .env file found in
// the working directory or up to envFileDepth of its parents.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return LoadFrom(dir)
}

// LoadFrom is Load with the .env search starting at dir.
func LoadFrom(dir string) (*Config, error) {
	if err := loadEnvFile(dir); err != nil {
		return nil, err
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	c := Default()
	var err error

	if c.Size, err = intVar(lookup, EnvSize, c.Size, 0); err != nil {
		return nil, err
	}
	if c.LeafSize, err = intVar(lookup, EnvLeafSize, c.LeafSize, 1); err != nil {
		return nil, err
	}
	if c.MemoryLimit, err = intVar(lookup, EnvMemoryLimit, c.MemoryLimit, 0); err != nil {
		return nil, err
	}
	if v, ok := lookup(EnvAlgorithm); ok && v != "" {
		if c.Algorithm, err = matmul.ParseAlgorithm(v); err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvAlgorithm, err)
		}
	}

	return &c, nil
}

// intVar parses an integer variable >= lo, returning def when it is unset or empty.
func intVar(lookup func(string) (string, bool), name string, def, lo int) (int, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", name, v, ErrInvalidValue)
	}
	if n < lo {
		return 0, fmt.Errorf("config: %s=%d below %d: %w", name, n, lo, ErrInvalidValue)
	}

	return n, nil
}

// loadEnvFile looks upward from dir for a .env file and loads the first one found.
// A missing file is not an error.
func loadEnvFile(dir string) error {
	for i := 0; i < envFileDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err = godotenv.Load(envPath); err != nil {
				return fmt.Errorf("config: %s: %w", envPath, err)
			}
			return nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
