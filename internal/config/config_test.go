package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/aocdoc/internal/model"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDefault checks the embedded configuration carries the built-in
// commentary table and the hard-coded layout.
func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot, cfg.Root)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultSolution, cfg.Solution)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultYear, cfg.Year)
	assert.Equal(t, model.DefaultPreamble(), cfg.Preamble)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, cfg.Notes.Days())
	assert.Equal(t, "Stuck on part 2 for now...", cfg.Notes.Note(5))
	assert.True(t, strings.HasPrefix(cfg.Notes.Note(9), "\nLearned about Lagrangian Interpolation"))
	assert.Contains(t, cfg.Notes.Note(9), "$$\n\\frac{\\text{diff}_n}{n!}\\prod_{i=1}^{n}(x - i)\n$$\n")
	assert.True(t, strings.HasSuffix(cfg.Notes.Note(9), "The differencing\ntable \n    "),
		"trailing whitespace of the note is preserved")
	assert.Equal(t, "", cfg.Notes.Note(10))
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "aocdoc.yaml", `
root: solutions
year: 2024
preamble:
  title: Advent 2024
notes:
  1: first
  10: tenth
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "solutions", cfg.Root)
	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, DefaultOutput, cfg.Output, "unset keys keep defaults")
	assert.Equal(t, "Advent 2024", cfg.Preamble.Title)
	assert.Equal(t, "python3", cfg.Preamble.Jupyter, "unset preamble keys keep defaults")
	assert.Equal(t, model.Commentary{1: "first", 10: "tenth"}, cfg.Notes)
}

// TestLoad_JSONC checks comments and trailing commas are accepted.
func TestLoad_JSONC(t *testing.T) {
	path := writeConfig(t, "aocdoc.jsonc", `{
  // solutions checked out next to the repo
  "root": "../aoc",
  "language": "go",
  /* notes keyed by day */
  "notes": {
    "2": "second",
    "3": "third",
  },
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "../aoc", cfg.Root)
	assert.Equal(t, "go", cfg.Language)
	assert.Equal(t, model.Commentary{2: "second", 3: "third"}, cfg.Notes)
}

// TestLoad_NotesDoNotMerge checks a file's notes replace the built-in table.
func TestLoad_NotesDoNotMerge(t *testing.T) {
	path := writeConfig(t, "aocdoc.yml", "notes:\n  4: only\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.Commentary{4: "only"}, cfg.Notes)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{"non-numeric note key", "c.json", `{"notes": {"abc": "x"}}`, "failed to parse JSON"},
		{"zero note key", "c.yaml", "notes:\n  0: x\n", "day 0"},
		{"empty solution", "c.yaml", "solution: \"\"\n", "solution must not be empty"},
		{"solution path", "c.yaml", "solution: src/main.py\n", "must be a file name"},
		{"negative year", "c.yaml", "year: -1\n", "must not be negative"},
		{"bad yaml", "c.yaml", "root: [\n", "failed to parse YAML"},
		{"unknown extension", "c.toml", "root = 'x'\n", "unsupported config format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
