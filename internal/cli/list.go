// list.go implements the "aocdoc list" command.
//
// The list command shows the days that a build would include, in build
// order, with whether each has a note and whether its solution file
// exists. Output is a text table or a JSON array, depending on --json.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/aocdoc/internal/days"
	"github.com/shinji-kodama/aocdoc/internal/model"
)

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days a build would include",
		Long: `List the numbered day directories in build order.

Each day is shown with its directory, whether the commentary table has a
note for it, and whether its solution file exists.

Examples:
  aocdoc list
  aocdoc list --root ./aoc --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

// listDayJSON is the JSON output structure for a single day.
type listDayJSON struct {
	Day            int    `json:"day"`
	Dir            string `json:"dir"`
	SolutionPath   string `json:"solutionPath"`
	HasNote        bool   `json:"hasNote"`
	SolutionExists bool   `json:"solutionExists"`
}

// runList is the main logic function for the list command.
func runList(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	ds, err := days.Load(fs, cfg.Root, cfg.Notes, cfg.Solution)
	if err != nil {
		return classifyError("failed to list days", err)
	}

	entries := make([]listDayJSON, 0, len(ds))
	for _, d := range ds {
		entries = append(entries, listDayJSON{
			Day:            d.Number,
			Dir:            d.Dir,
			SolutionPath:   d.SolutionPath,
			HasNote:        d.HasNote(),
			SolutionExists: days.SolutionExists(fs, d),
		})
	}

	if IsJSONOutput() {
		return writeJSON(w, struct {
			Days []listDayJSON `json:"days"`
		}{Days: entries})
	}
	printListText(w, entries)
	return nil
}

// printListText outputs the days as a text table:
//
//	DAY   NOTE  SOLUTION  DIR
//	1     yes   ok        aoc/1
//	2     -     missing   aoc/2
func printListText(w io.Writer, entries []listDayJSON) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No day directories found.")
		return
	}

	fmt.Fprintf(w, "%-5s %-5s %-9s %s\n", "DAY", "NOTE", "SOLUTION", "DIR")
	for _, e := range entries {
		note := "-"
		if e.HasNote {
			note = "yes"
		}
		solution := "missing"
		if e.SolutionExists {
			solution = "ok"
		}
		fmt.Fprintf(w, "%-5d %-5s %-9s %s\n", e.Day, note, solution, e.Dir)
	}
}

// FormatDayList converts days into a comma-separated list of day numbers
// in the order given. Returns "-" for an empty list.
//
// Example:
//
//	[{Number: 1}, {Number: 2}, {Number: 10}] → "1,2,10"
//	[]                                        → "-"
func FormatDayList(ds []model.Day) string {
	if len(ds) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, strconv.Itoa(d.Number))
	}
	return strings.Join(parts, ",")
}
