package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alde/aspectratio/pkg/aspect"
)

// Config holds the CLI configuration
type Config struct {
	Ratio  RatioConfig  `toml:"ratio"`
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
}

// RatioConfig holds the defaults applied to every ratio computation
type RatioConfig struct {
	Delimiter      string `toml:"delimiter"`
	Algorithm      string `toml:"algorithm"`
	SortOrder      string `toml:"sort_order"`
	SortDimensions bool   `toml:"sort_dimensions"`
	Digits         int    `toml:"digits"`
}

// OutputConfig holds configuration for result rendering
type OutputConfig struct {
	Format string `toml:"format"`
}

// BatchConfig holds configuration for batch processing
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Ratio: RatioConfig{
			Delimiter:      aspect.DefaultDelimiter,
			Algorithm:      string(aspect.AlgorithmIterative),
			SortOrder:      string(aspect.SortDescending),
			SortDimensions: false,
			Digits:         aspect.DefaultDigits,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Batch: BatchConfig{
			Workers: 0,
		},
	}
}

// LoadFromFile loads configuration from a TOML file. Keys missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return cfg, nil
}

// Load reads the config at path. An empty path means GetConfigPath(), and
// a missing file at the default path yields Default().
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}

	cfg, err := LoadFromFile(GetConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveToFile saves configuration to a TOML file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Ratio.Delimiter == "" {
		return fmt.Errorf("ratio.delimiter cannot be empty")
	}

	switch strings.ToUpper(c.Ratio.Algorithm) {
	case string(aspect.AlgorithmIterative), string(aspect.AlgorithmRecursive):
	default:
		return fmt.Errorf("ratio.algorithm must be ITERATIVE or RECURSIVE, got %q", c.Ratio.Algorithm)
	}

	switch strings.ToLower(c.Ratio.SortOrder) {
	case string(aspect.SortAscending), string(aspect.SortDescending):
	default:
		return fmt.Errorf("ratio.sort_order must be asc or desc, got %q", c.Ratio.SortOrder)
	}

	if c.Ratio.Digits < 1 || c.Ratio.Digits > 20 {
		return fmt.Errorf("ratio.digits must be between 1 and 20")
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatTOML:
	default:
		return fmt.Errorf("output.format must be one of text, json, toml; got %q", c.Output.Format)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers cannot be negative")
	}

	return nil
}

// RatioOptions returns the ratio defaults as aspect options
func (c *Config) RatioOptions() aspect.Options {
	return aspect.Options{
		ProportionDelimiter: c.Ratio.Delimiter,
		Algorithm:           aspect.ParseAlgorithm(c.Ratio.Algorithm),
		SortOrder:           aspect.ParseSortOrder(c.Ratio.SortOrder),
		SortDimensions:      c.Ratio.SortDimensions,
		Digits:              c.Ratio.Digits,
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./aspectratio.toml"
	}
	return filepath.Join(home, ".config", "aspectratio", "config.toml")
}
