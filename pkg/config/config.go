// Package config loads the settings of the dataset generator from
// stlc.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/samber/lo"
	"github.com/vic/gostlc/pkg/gen"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
)

var formats = []string{FormatJSONL, FormatSQLite}

// DefaultCount is the number of records generated when count is omitted.
const DefaultCount = 100

// Config represents the top-level stlc.yaml configuration.
type Config struct {
	// Seed makes generation reproducible: record i is generated from
	// Seed+i regardless of how many workers run.
	Seed int64 `yaml:"seed"`

	// Count is the number of records to generate.
	Count int `yaml:"count,omitempty"`

	// Workers bounds the number of records generated concurrently.
	// Defaults to the number of CPUs.
	Workers int `yaml:"workers,omitempty"`

	// MaxDepth bounds the nesting of conditionals and applications.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// MaxTypeDepth bounds the nesting of arrows in generated types.
	MaxTypeDepth int `yaml:"max_type_depth,omitempty"`

	// Strategy is one of random, bool, unit or function.
	Strategy string `yaml:"strategy,omitempty"`

	// Annotate prints binder types in the source column of each record.
	Annotate bool `yaml:"annotate,omitempty"`

	// Compile adds the erased lambda term and its combinator translation
	// to every record.
	Compile bool `yaml:"compile,omitempty"`

	Output Output `yaml:"output"`
}

// Output describes where records are written.
type Output struct {
	// Format is jsonl (the default) or sqlite.
	Format string `yaml:"format,omitempty"`

	// Path of the output file. Empty means stdout for jsonl; sqlite
	// requires a path.
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no stlc.yaml is found.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// LoadConfig reads and parses a stlc.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses stlc.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for stlc.yaml starting from dir and walking up
// to parent directories. It returns an empty path and nil error if
// there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"stlc.yaml", "stlc.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Validate checks a configuration that was assembled in code, for example
// from command-line flags.
func (c *Config) Validate() error {
	return c.validate("config")
}

func (c *Config) validate(path string) error {
	if c.Count < 0 {
		return fmt.Errorf("%s: count must not be negative, got %d", path, c.Count)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%s: workers must not be negative, got %d", path, c.Workers)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must not be negative, got %d", path, c.MaxDepth)
	}
	if c.MaxTypeDepth < 0 {
		return fmt.Errorf("%s: max_type_depth must not be negative, got %d", path, c.MaxTypeDepth)
	}
	if _, err := gen.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%s: strategy: %w", path, err)
	}
	if !lo.Contains(formats, c.Output.Format) {
		return fmt.Errorf("%s: output.format: unknown format %q (want one of %v)", path, c.Output.Format, formats)
	}
	if c.Output.Format == FormatSQLite && c.Output.Path == "" {
		return fmt.Errorf("%s: output.path is required for format %s", path, FormatSQLite)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Count == 0 {
		c.Count = DefaultCount
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = gen.MaxDepth
	}
	if c.MaxTypeDepth == 0 {
		c.MaxTypeDepth = gen.MaxTypeDepth
	}
	if c.Strategy == "" {
		c.Strategy = string(gen.StrategyRandom)
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatJSONL
	}
}
