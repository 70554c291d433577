// Package cli implements the cobra-based CLI commands for aocdoc.
//
// Each subcommand (build, list, check) is defined in its own file within
// this package. This file defines the root command, the global flags, and
// the error-to-exit-code translation. Running the root command without a
// subcommand performs a build.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/aocdoc/internal/config"
	"github.com/shinji-kodama/aocdoc/internal/days"
	xlog "github.com/shinji-kodama/aocdoc/internal/log"
	"github.com/shinji-kodama/aocdoc/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput switches command output and error output to JSON.
	jsonOutput bool

	// verbose lowers the log level to debug.
	verbose bool

	// configPath points at a YAML or JSONC configuration file. Empty means
	// the embedded default configuration.
	configPath string

	// rootOverride and outputOverride replace the configured paths when set.
	rootOverride   string
	outputOverride string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aocdoc",
		Short: "Assemble Advent of Code solutions into a Quarto document",
		Long: `aocdoc collects the solution file from every numbered day directory,
orders the days numerically, and writes a single Quarto document with a
section per day: a heading, an optional note, and the solution source.

Running aocdoc without a subcommand is the same as "aocdoc build".`,

		// Errors are printed by Execute in text or JSON form.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		Args: cobra.NoArgs,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr())
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Configuration file (.yaml, .yml, .json, .jsonc); defaults to the built-in configuration")
	rootCmd.PersistentFlags().StringVar(&rootOverride, "root", "",
		"Directory containing one numbered subdirectory per day (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputOverride, "output", "o", "",
		"Path of the generated document (overrides config)")

	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// configureLogging sets up the shared logger from the global flags.
func configureLogging(w io.Writer) {
	level := "info"
	if verbose {
		level = "debug"
	}
	xlog.Configure(xlog.Config{Level: level, Output: w, JSON: jsonOutput})
}

// loadConfig resolves the configuration for a command: the --config file
// or the embedded default, then the --root and --output overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
	}

	if rootOverride != "" {
		cfg.Root = rootOverride
	}
	if outputOverride != "" {
		cfg.Output = outputOverride
	}
	return cfg, nil
}

// classifyError maps discovery and read failures onto exit codes.
func classifyError(message string, err error) *model.CLIError {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, days.ErrInvalidDayName), errors.Is(err, days.ErrDuplicateDay):
		return model.WrapCLIError(model.ExitInvalidDay, message, err)
	case errors.As(err, &pathErr):
		return model.WrapCLIError(model.ExitReadFailed, message, err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, message, err)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
