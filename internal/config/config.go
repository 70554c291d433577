// Package config loads the aocdoc configuration: where the solutions live,
// where the document goes, the front matter, and the commentary table.
//
// Configuration files may be YAML (.yaml, .yml) or JSON with comments
// (.json, .jsonc). JSONC is stripped with github.com/tidwall/jsonc and then
// parsed with encoding/json. When no file is given, the embedded
// default.yaml is used.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/aocdoc/internal/model"
)

// Hard-coded defaults, used for any key a configuration file leaves out.
const (
	DefaultRoot     = "aoc"
	DefaultOutput   = "aoc.qmd"
	DefaultSolution = "main.py"
	DefaultLanguage = "python"
	DefaultYear     = 2023
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the full set of inputs for one build.
type Config struct {
	// Root is the directory holding one numbered subdirectory per day.
	Root string `yaml:"root" json:"root"`

	// Output is the document path, overwritten on every successful build.
	Output string `yaml:"output" json:"output"`

	// Solution is the file name read from each day directory.
	Solution string `yaml:"solution" json:"solution"`

	// Language names the code block engine (```{python}).
	Language string `yaml:"language" json:"language"`

	// Year selects the puzzle links. Zero disables them.
	Year int `yaml:"year" json:"year"`

	// Preamble is the document front matter.
	Preamble model.Preamble `yaml:"preamble" json:"preamble"`

	// Notes is the commentary table keyed by day number.
	Notes model.Commentary `yaml:"notes" json:"notes"`
}

// New returns a Config holding only the hard-coded defaults and an empty
// commentary table.
func New() *Config {
	return &Config{
		Root:     DefaultRoot,
		Output:   DefaultOutput,
		Solution: DefaultSolution,
		Language: DefaultLanguage,
		Year:     DefaultYear,
		Preamble: model.DefaultPreamble(),
	}
}

// Default returns the embedded configuration, including the built-in
// commentary table.
func Default() (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded default config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedded default config: %w", err)
	}
	return cfg, nil
}

// Load reads a configuration file. Keys missing from the file keep their
// hard-coded defaults; the commentary table starts empty so a file's
// notes replace the built-in ones instead of merging with them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data according to the file extension ext (".yaml",
// ".yml", ".json", ".jsonc") and validates the result.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := New()

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		// Strip // and /* */ comments and trailing commas first.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (valid: .yaml, .yml, .json, .jsonc)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the assembler depends on.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.Solution == "" {
		return fmt.Errorf("solution must not be empty")
	}
	if strings.ContainsAny(c.Solution, `/\`) {
		return fmt.Errorf("solution %q must be a file name, not a path", c.Solution)
	}
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if c.Year < 0 {
		return fmt.Errorf("year %d must not be negative", c.Year)
	}
	return c.Notes.Validate()
}
