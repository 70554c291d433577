// check.go implements the "aocdoc check" command.
//
// check re-reads a generated document and verifies its structure: one
// numeric heading per day in ascending order, each followed by exactly one
// code block. With --against-root it also compares the sections with the
// day directories currently on disk.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/aocdoc/internal/days"
	"github.com/shinji-kodama/aocdoc/internal/document"
	"github.com/shinji-kodama/aocdoc/internal/model"
)

// checkFlags holds the flag values for the check command.
type checkFlags struct {
	// againstRoot compares document sections with the day directories.
	againstRoot bool
}

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [document]",
		Short: "Verify the structure of a generated document",
		Long: `Verify the structure of a generated document.

The document defaults to the configured output path. Exits with a
non-zero status if any problem is found.

Examples:
  aocdoc check
  aocdoc check aoc.qmd --against-root
  aocdoc check --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(cmd.OutOrStdout(), path, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.againstRoot, "against-root", false,
		"Also compare sections with the day directories under --root")

	return cmd
}

// runCheck is the main logic function for the check command.
func runCheck(w io.Writer, path string, flags *checkFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.Output
	}

	fs := afero.NewOsFs()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return model.WrapCLIError(model.ExitReadFailed, fmt.Sprintf("failed to read %s", path), err)
	}

	report, err := document.Check(data)
	if err != nil {
		return model.WrapCLIError(model.ExitCheckFailed, fmt.Sprintf("failed to parse %s", path), err)
	}

	if flags.againstRoot {
		ds, err := days.Load(fs, cfg.Root, cfg.Notes, cfg.Solution)
		if err != nil {
			return classifyError("failed to list days", err)
		}
		report.CompareDays(ds)
	}

	if IsJSONOutput() {
		if err := writeJSON(w, report); err != nil {
			return err
		}
	} else {
		printCheckText(w, path, report)
	}

	if !report.OK() {
		return model.NewCLIError(model.ExitCheckFailed,
			fmt.Sprintf("%s: %d problem(s) found", path, len(report.Issues)))
	}
	return nil
}

func printCheckText(w io.Writer, path string, report *document.Report) {
	ds := make([]model.Day, 0, len(report.Sections))
	for _, n := range report.Days() {
		ds = append(ds, model.Day{Number: n})
	}
	fmt.Fprintf(w, "%s: %s [%s]\n", path, FormatDayCount(len(ds)), FormatDayList(ds))

	for _, issue := range report.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
	if report.OK() {
		fmt.Fprintln(w, "OK")
	}
}
