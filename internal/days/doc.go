// Package days discovers and orders the per-day solution directories.
//
// Discovery and ordering are split on purpose: Discover touches the
// filesystem (through afero, so tests can use an in-memory tree), while
// Order is a pure function over directory names. Ordering is numeric,
// never lexicographic, so "10" always sorts after "2".
package days
