// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/user/spritechop/pkg/options"
	"gopkg.in/yaml.v3"
)

// Config represents a spritechop configuration file. Every field is
// optional; command-line flags and environment variables take precedence.
type Config struct {
	// Input/Output
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Geometry
	Size       string `yaml:"size"`
	OutputSize string `yaml:"output_size"`

	// Animation
	Delay       *int     `yaml:"delay"`
	Loop        *int     `yaml:"loop"`
	Transparent string   `yaml:"transparent"`
	Frames      []string `yaml:"frames"`

	// Reporting
	LogLevel string `yaml:"log_level"`
	Summary  string `yaml:"summary"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "warn",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values; unknown keys are rejected.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Fill returns in with every empty value taken from the file.
func (c Config) Fill(in options.Input) options.Input {
	in.InputPath = firstNonEmpty(in.InputPath, c.Input)
	in.OutputPath = firstNonEmpty(in.OutputPath, c.Output)
	in.FrameSize = firstNonEmpty(in.FrameSize, c.Size)
	in.OutputSize = firstNonEmpty(in.OutputSize, c.OutputSize)
	in.ColorKey = firstNonEmpty(in.ColorKey, c.Transparent)

	if in.Delay == "" && c.Delay != nil {
		in.Delay = strconv.Itoa(*c.Delay)
	}
	if in.Loop == "" && c.Loop != nil {
		in.Loop = strconv.Itoa(*c.Loop)
	}
	if len(in.Coordinates) == 0 {
		in.Coordinates = c.Frames
	}

	return in
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
