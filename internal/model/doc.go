// Package model defines the domain types and value objects for the
// aocdoc CLI.
//
// This package contains pure data structures with no external dependencies.
// Day entries are reconstructed from the solutions directory on every run;
// there are no persistent state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
