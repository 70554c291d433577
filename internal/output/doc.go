// Package output writes the assembled document to disk.
//
// The document is written exactly once per run, through a temporary file
// in the destination directory that is renamed over the target only after
// every byte has been written and synced. A failed run therefore never
// leaves a truncated or partially written document behind.
package output
