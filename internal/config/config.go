// SPDX-License-Identifier: EPL-2.0

// Package config loads the YAML settings of the audmix command.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audmix/audio"
)

// Config is the complete command configuration.
type Config struct {
	Audio      AudioConfig      `yaml:"audio"`
	Compressor CompressorConfig `yaml:"compressor"`
	Sources    SourcesConfig    `yaml:"sources"`
	Bank       BankConfig       `yaml:"bank"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AudioConfig holds the rendering parameters.
type AudioConfig struct {
	SampleRate  int     `yaml:"sample_rate"` // Hz, used for note sequences
	Volume      float64 `yaml:"volume"`
	Concurrency int     `yaml:"concurrency"`
}

// CompressorConfig holds the optional dynamics stage. The parameters are
// dimensionless, not decibels or seconds.
type CompressorConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"`
	Knee      float64 `yaml:"knee"`
	Ratio     float64 `yaml:"ratio"`
	Attack    float64 `yaml:"attack"`
	Release   float64 `yaml:"release"`
	Volume    float64 `yaml:"volume"`
}

// SourcesConfig tells where refs are loaded from. A non-empty base_url wins
// over root.
type SourcesConfig struct {
	Root    string `yaml:"root"`
	BaseURL string `yaml:"base_url"`
}

// BankConfig maps note pitches to sample refs.
type BankConfig struct {
	Template string `yaml:"template"`
	MinPitch int    `yaml:"min_pitch"`
	MaxPitch int    `yaml:"max_pitch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"` // stdout, stderr or a file path
}

// Default returns the built in configuration.
func Default() *Config {
	comp := audio.DefaultCompressor()
	return &Config{
		Audio: AudioConfig{
			SampleRate:  audio.DefaultSampleRate,
			Volume:      audio.DefaultVolume,
			Concurrency: 4,
		},
		Compressor: CompressorConfig{
			Enabled:   false,
			Threshold: comp.Threshold,
			Knee:      comp.Knee,
			Ratio:     comp.Ratio,
			Attack:    comp.Attack,
			Release:   comp.Release,
			Volume:    comp.Volume,
		},
		Sources: SourcesConfig{Root: "."},
		Bank: BankConfig{
			Template: "midis/%d.ogg",
			MinPitch: 0,
			MaxPitch: 127,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads the configuration file at path. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	if err := c.Compressor.Validate(); err != nil {
		return fmt.Errorf("compressor config: %w", err)
	}

	if err := c.Bank.Validate(); err != nil {
		return fmt.Errorf("bank config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func (a *AudioConfig) Validate() error {
	if a.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", a.SampleRate)
	}

	if math.IsNaN(a.Volume) || math.IsInf(a.Volume, 0) {
		return fmt.Errorf("volume must be a finite number, got %f", a.Volume)
	}

	if a.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", a.Concurrency)
	}

	return nil
}

func (c *CompressorConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.Knee == 0 {
		return fmt.Errorf("knee cannot be zero")
	}

	if c.Ratio == 0 {
		return fmt.Errorf("ratio cannot be zero")
	}

	if c.Attack < 0 || c.Release < 0 {
		return fmt.Errorf("attack and release cannot be negative, got %f and %f", c.Attack, c.Release)
	}

	return nil
}

// Compressor returns the configured compressor, or nil when disabled.
func (c *CompressorConfig) Compressor() *audio.Compressor {
	if !c.Enabled {
		return nil
	}
	return &audio.Compressor{
		Threshold: c.Threshold,
		Knee:      c.Knee,
		Ratio:     c.Ratio,
		Attack:    c.Attack,
		Release:   c.Release,
		Volume:    c.Volume,
	}
}

func (b *BankConfig) Validate() error {
	if b.Template == "" {
		return fmt.Errorf("template cannot be empty")
	}

	if b.MinPitch < 0 {
		return fmt.Errorf("min_pitch cannot be negative, got %d", b.MinPitch)
	}

	if b.MaxPitch < b.MinPitch {
		return fmt.Errorf("max_pitch (%d) must not be below min_pitch (%d)", b.MaxPitch, b.MinPitch)
	}

	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	if l.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}

	return nil
}
