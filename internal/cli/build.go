// build.go implements the "aocdoc build" command.
//
// build discovers the day directories, assembles the full document in
// memory, and only then writes it. Any failure before the write (a bad
// directory name, a missing solution file) leaves an existing document
// untouched and creates no new one.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/aocdoc/internal/document"
	xlog "github.com/shinji-kodama/aocdoc/internal/log"
	"github.com/shinji-kodama/aocdoc/internal/model"
	"github.com/shinji-kodama/aocdoc/internal/output"
)

// NewBuildCommand creates the "build" cobra command.
func NewBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate the solutions document",
		Long: `Generate the Quarto document from the numbered day directories.

Days are ordered numerically (2 before 10). Each section holds the day
heading, the puzzle link, the note from the commentary table if one
exists, and the verbatim solution file.

Examples:
  aocdoc build
  aocdoc build --root ./aoc --output aoc.qmd
  aocdoc build --config aocdoc.yaml --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.OutOrStdout())
		},
	}
}

// buildResultJSON is the --json output of a successful build.
type buildResultJSON struct {
	Output string `json:"output"`
	Bytes  int    `json:"bytes"`
	Days   []int  `json:"days"`
}

// runBuild is the main logic function for the build command.
func runBuild(w io.Writer) error {
	logger := xlog.WithComponent("build")

	// Step 1: Resolve configuration (file or embedded default, plus flags).
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug().Str("root", cfg.Root).Str("output", cfg.Output).Msg("configuration loaded")

	// Step 2: Discover, order and assemble. Nothing is written yet.
	opts := document.Options{
		Preamble: cfg.Preamble,
		Language: cfg.Language,
		Year:     cfg.Year,
	}
	doc, ds, err := document.Build(afero.NewOsFs(), cfg.Root, cfg.Solution, cfg.Notes, opts)
	if err != nil {
		return classifyError("failed to assemble document", err)
	}
	logger.Debug().Int("days", len(ds)).Msg("document assembled")

	// Step 3: Single write of the finished document.
	if err := output.WriteFile(cfg.Output, doc); err != nil {
		return model.WrapCLIError(model.ExitWriteFailed,
			fmt.Sprintf("failed to write %s", cfg.Output), err)
	}
	logger.Info().Str("path", cfg.Output).Int("days", len(ds)).Msg("document written")

	// Step 4: Report.
	numbers := make([]int, 0, len(ds))
	for _, d := range ds {
		numbers = append(numbers, d.Number)
	}
	if IsJSONOutput() {
		return writeJSON(w, buildResultJSON{Output: cfg.Output, Bytes: len(doc), Days: numbers})
	}
	_, err = fmt.Fprintf(w, "Wrote %s (%s)\n", cfg.Output, FormatDayCount(len(ds)))
	return err
}

// FormatDayCount renders a day count for human output.
func FormatDayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
