// Package model defines the domain types for the aocdoc CLI.
//
// These types are transient: a Day list and the assembled document are
// built, written, and discarded within a single run. Nothing persists
// across invocations except the output file.
package model

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Day is one unit of work: a numbered solution directory together with
// its commentary note.
type Day struct {
	// Number is the day identifier parsed from the directory name.
	Number int `json:"day"`

	// Dir is the path to the day's directory (root joined with the
	// original directory name, which may carry leading zeros).
	Dir string `json:"dir"`

	// SolutionPath is the path to the solution file whose contents are
	// copied verbatim into the document.
	SolutionPath string `json:"solutionPath"`

	// Note is the commentary text for this day. Empty when the
	// commentary table has no entry.
	Note string `json:"note,omitempty"`
}

// NewDay builds a Day rooted at root/dirName with the given solution file
// name. The note is looked up in notes; a missing key yields "".
func NewDay(root, dirName string, number int, solution string, notes Commentary) Day {
	dir := filepath.Join(root, dirName)
	return Day{
		Number:       number,
		Dir:          dir,
		SolutionPath: filepath.Join(dir, solution),
		Note:         notes.Note(number),
	}
}

// HasNote reports whether the day carries commentary text.
func (d Day) HasNote() bool {
	return d.Note != ""
}

// Commentary maps a day number to its free-text note. It is static and
// injected into the assembler so tests can substitute their own table.
type Commentary map[int]string

// Note returns the note for day, or "" if the table has no entry.
// A nil Commentary behaves like an empty one.
func (c Commentary) Note(day int) string {
	return c[day]
}

// Days returns the day numbers that have notes, in ascending order.
func (c Commentary) Days() []int {
	days := make([]int, 0, len(c))
	for d := range c {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Validate checks that every key is a positive day number.
func (c Commentary) Validate() error {
	for _, d := range c.Days() {
		if d < 1 {
			return fmt.Errorf("commentary: day %d must be a positive integer", d)
		}
	}
	return nil
}

// Preamble is the Quarto front matter written at the top of the document.
// Field order here is the order keys appear in the rendered YAML block.
type Preamble struct {
	TOC             bool     `yaml:"toc" json:"toc"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	Categories      []string `yaml:"categories,omitempty" json:"categories,omitempty"`
	Title           string   `yaml:"title,omitempty" json:"title,omitempty"`
	Date            string   `yaml:"date,omitempty" json:"date,omitempty"`
	Jupyter         string   `yaml:"jupyter,omitempty" json:"jupyter,omitempty"`
	CodeLineNumbers bool     `yaml:"code-line-numbers" json:"code-line-numbers"`
	HighlightStyle  string   `yaml:"highlight-style,omitempty" json:"highlight-style,omitempty"`
}

// DefaultPreamble returns the front matter used when no configuration
// overrides it.
func DefaultPreamble() Preamble {
	return Preamble{
		TOC:             true,
		Description:     "Advent of Code 2023 Solutions in Python",
		Categories:      []string{"python"},
		Title:           "🎄",
		Date:            "2023-12-01",
		Jupyter:         "python3",
		CodeLineNumbers: true,
		HighlightStyle:  "github",
	}
}

// ExitCode defines the process exit codes returned by the CLI.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidDay indicates a directory name under the root could not
	// be parsed as a day number, or two directories share a number.
	ExitInvalidDay ExitCode = 2

	// ExitReadFailed indicates the root directory or a solution file
	// could not be read.
	ExitReadFailed ExitCode = 3

	// ExitWriteFailed indicates the output document could not be written.
	ExitWriteFailed ExitCode = 4

	// ExitConfigError indicates the configuration file could not be
	// loaded or failed validation.
	ExitConfigError ExitCode = 5

	// ExitCheckFailed indicates the check command found structural
	// problems in a document.
	ExitCheckFailed ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the message, followed by the underlying error if present.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
