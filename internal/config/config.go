// SPDX-License-Identifier: MIT

// Package config loads the CLI configuration: built-in defaults overlaid by
// an optional YAML file. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Render modes accepted by Output.Render.
const (
	RenderVertical = "vertical"
	RenderIndent   = "indent"
	RenderOutline  = "outline"
	RenderNone     = "none"
)

// ErrInvalid marks a configuration that parsed but holds unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the whole CLI configuration.
type Config struct {
	Engine    Engine    `yaml:"engine"`
	Generator Generator `yaml:"generator"`
	Log       Log       `yaml:"log"`
	Output    Output    `yaml:"output"`
}

// Engine bounds a single reconstruction.
type Engine struct {
	MaxStates int           `yaml:"max_states"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Generator drives the random modes.
type Generator struct {
	// Seed 0 means "derive from the clock".
	Seed             int64   `yaml:"seed"`
	BackboneFraction float64 `yaml:"backbone_fraction"`
}

// Log selects the logger level: debug, info, warn or error.
type Log struct {
	Level string `yaml:"level"`
}

// Output selects how trees are printed.
type Output struct {
	Render string `yaml:"render"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine:    Engine{MaxStates: 2_000_000, Timeout: 30 * time.Second},
		Generator: Generator{Seed: 0, BackboneFraction: 0.3},
		Log:       Log{Level: "info"},
		Output:    Output{Render: RenderVertical},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result. Keys the
// configuration does not know are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch {
	case c.Engine.MaxStates < 0:
		return fmt.Errorf("Validate: engine.max_states %d: %w", c.Engine.MaxStates, ErrInvalid)
	case c.Engine.Timeout < 0:
		return fmt.Errorf("Validate: engine.timeout %s: %w", c.Engine.Timeout, ErrInvalid)
	case c.Generator.BackboneFraction <= 0 || c.Generator.BackboneFraction > 1:
		return fmt.Errorf("Validate: generator.backbone_fraction %g: %w", c.Generator.BackboneFraction, ErrInvalid)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("Validate: log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Output.Render {
	case RenderVertical, RenderIndent, RenderOutline, RenderNone:
	default:
		return fmt.Errorf("Validate: output.render %q: %w", c.Output.Render, ErrInvalid)
	}
	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
