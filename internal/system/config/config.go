// Released under an MIT license. See LICENSE.

// Package config reads the calculator's optional TOML configuration file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const (
	DefaultPrompt = "> "
	DefaultType   = "int"
	DefaultLevel  = "error"
	fileName      = ".rational.toml"
)

type Custom struct {
	Number struct {
		Type string `toml:"type"`
	} `toml:"number"`
	REPL struct {
		Prompt    string `toml:"prompt"`
		NoHistory bool   `toml:"no-history"`
	} `toml:"repl"`
	Log struct {
		Level   string `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Custom {
	var config Custom

	config.defaults()

	return &config
}

// Path returns the default location of the configuration file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), fileName)
}

// Initialize reads file. A missing file is only an error if required.
func Initialize(file string, required bool) (*Custom, error) {
	f, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) && !required {
		return Default(), nil
	}

	if err != nil {
		return nil, err
	}

	return Parse(f)
}

// Parse decodes a TOML document and fills in defaults.
func Parse(b []byte) (*Custom, error) {
	config := Custom{}

	err := toml.Unmarshal(b, &config)
	if err != nil {
		return nil, err
	}

	config.defaults()

	return &config, nil
}

func (c *Custom) defaults() {
	if c.Number.Type == "" {
		c.Number.Type = DefaultType
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = DefaultPrompt
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLevel
	}
}
