// Package config loads run configuration and the corpus from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wizenheimer/ngramlab"
)

var (
	ErrNoDocuments = errors.New("config: corpus has no documents")
	ErrInvalidN    = errors.New("config: n must be positive")
	ErrInvalidTop  = errors.New("config: top must not be negative")
)

// Config represents a corpus analysis run
type Config struct {
	Documents     []string `yaml:"documents"`
	DocumentFiles []string `yaml:"document_files"` // Relative to the config file
	N             int      `yaml:"n"`
	Top           int      `yaml:"top"`
	CloudSize     int      `yaml:"cloud_size"`
	ExcludedChars string   `yaml:"excluded_chars"`
	Stemmers      []string `yaml:"stemmers"` // Snowball languages in priority order
	OutputDir     string   `yaml:"output_dir"`
}

// Default returns the configuration used when a file leaves a field unset.
func Default() Config {
	return Config{
		N:             2,
		Top:           10,
		CloudSize:     100,
		ExcludedChars: ngramlab.DefaultExcludedChars,
		Stemmers:      []string{"russian", "english"},
	}
}

// Load reads a YAML config file over the defaults and resolves
// document_files against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for _, name := range cfg.DocumentFiles {
		if !filepath.IsAbs(name) {
			name = filepath.Join(base, name)
		}
		doc, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load document: %w", err)
		}
		cfg.Documents = append(cfg.Documents, strings.TrimSpace(string(doc)))
	}

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if len(c.Documents) == 0 {
		return ErrNoDocuments
	}
	if c.N <= 0 {
		return ErrInvalidN
	}
	if c.Top < 0 {
		return ErrInvalidTop
	}
	if _, err := ngramlab.StemChainFor(c.Stemmers); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// PassConfig converts the run settings into a pipeline pass configuration.
func (c *Config) PassConfig() ngramlab.PassConfig {
	return ngramlab.PassConfig{
		N:         c.N,
		TopK:      c.Top,
		CloudSize: c.CloudSize,
		Analyzer: ngramlab.AnalyzerConfig{
			ExcludedChars: c.ExcludedChars,
		},
	}
}

// StemChain builds the configured stemming service. An empty list yields the
// default russian/english chain.
func (c *Config) StemChain() (*ngramlab.StemChain, error) {
	if len(c.Stemmers) == 0 {
		return ngramlab.DefaultStemChain(), nil
	}
	return ngramlab.StemChainFor(c.Stemmers)
}
