package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/aocdoc/internal/days"
	xlog "github.com/shinji-kodama/aocdoc/internal/log"
	"github.com/shinji-kodama/aocdoc/internal/model"
)

const (
	// ColumnPageOpen starts the wide content region around each code block.
	ColumnPageOpen = "::: {.column-page}"

	// ColumnPageClose ends the wide content region.
	ColumnPageClose = ":::"

	// PuzzleURLFormat is the link emitted under each heading; year then day.
	PuzzleURLFormat = "https://adventofcode.com/%d/day/%d"
)

// Options control the parts of the document that are not derived from
// the solutions directory.
type Options struct {
	// Preamble is rendered as the YAML front matter block.
	Preamble model.Preamble

	// Language is the fenced code block's engine, written as ```{<Language>}.
	Language string

	// Year selects the puzzle link under each heading. Zero omits the link.
	Year int
}

// Assembler reads solution files through FS and builds the document.
type Assembler struct {
	FS      afero.Fs
	Options Options

	logger zerolog.Logger
}

// NewAssembler creates an Assembler reading from fs.
func NewAssembler(fs afero.Fs, opts Options) *Assembler {
	return &Assembler{
		FS:      fs,
		Options: opts,
		logger:  xlog.WithComponent("assembler"),
	}
}

// Assemble renders the preamble followed by one section per day, in the
// order given. It returns nothing if any solution file cannot be read.
func (a *Assembler) Assemble(ds []model.Day) ([]byte, error) {
	var buf bytes.Buffer

	if err := WritePreamble(&buf, a.Options.Preamble); err != nil {
		return nil, err
	}

	for _, d := range ds {
		source, err := afero.ReadFile(a.FS, d.SolutionPath)
		if err != nil {
			return nil, fmt.Errorf("day %d: failed to read %s: %w", d.Number, d.SolutionPath, err)
		}
		WriteSection(&buf, d, source, a.Options)
		a.logger.Debug().
			Int("day", d.Number).
			Str("path", d.SolutionPath).
			Int("bytes", len(source)).
			Bool("note", d.HasNote()).
			Msg("section assembled")
	}

	return buf.Bytes(), nil
}

// WritePreamble writes the front matter block: the YAML between two "---"
// lines, then a blank line.
func WritePreamble(w io.Writer, p model.Preamble) error {
	var body bytes.Buffer
	enc := yaml.NewEncoder(&body)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to render preamble: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to render preamble: %w", err)
	}

	_, err := fmt.Fprintf(w, "---\n%s---\n\n", body.String())
	return err
}

// WriteSection appends one day's section to buf.
func WriteSection(buf *bytes.Buffer, d model.Day, source []byte, opts Options) {
	fmt.Fprintf(buf, "## %d\n", d.Number)
	if opts.Year > 0 {
		url := fmt.Sprintf(PuzzleURLFormat, opts.Year, d.Number)
		fmt.Fprintf(buf, "[%s](%s)\n\n", url, url)
	}
	buf.WriteString(d.Note)
	buf.WriteString("\n")

	buf.WriteString("\n" + ColumnPageOpen + "\n")

	fence := Fence(source)
	fmt.Fprintf(buf, "%s{%s}\n", fence, opts.Language)
	buf.Write(source)
	buf.WriteString("\n")
	buf.WriteString(fence + "\n")

	buf.WriteString(ColumnPageClose + "\n")
}

// Fence returns the backtick run used to delimit source. It is three
// backticks unless a line of source starts with three or more, in which
// case it is one longer than the longest such run.
func Fence(source []byte) string {
	longest := 0
	for _, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		// Indentation of four or more spaces cannot close a fence.
		if len(line)-len(trimmed) > 3 {
			continue
		}
		n := len(trimmed) - len(strings.TrimLeft(trimmed, "`"))
		if n > longest {
			longest = n
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

// Build discovers and orders the days under root and assembles the
// document. Nothing is written; the caller owns the single output write.
func Build(fs afero.Fs, root, solution string, notes model.Commentary, opts Options) ([]byte, []model.Day, error) {
	ds, err := days.Load(fs, root, notes, solution)
	if err != nil {
		return nil, nil, err
	}

	doc, err := NewAssembler(fs, opts).Assemble(ds)
	if err != nil {
		return nil, nil, err
	}
	return doc, ds, nil
}
