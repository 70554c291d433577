package days

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/afero"

	"github.com/shinji-kodama/aocdoc/internal/model"
)

var (
	// ErrInvalidDayName is returned when a directory name under the root
	// is not a decimal integer.
	ErrInvalidDayName = errors.New("directory name is not a day number")

	// ErrDuplicateDay is returned when two directories resolve to the same
	// day number (e.g. "1" and "01").
	ErrDuplicateDay = errors.New("duplicate day number")
)

// Discover returns the names of the immediate child directories of root.
// Symlinks are followed, so a link to a directory counts as a day; links
// to files and dangling links are ignored, as are regular files. The names are returned in the order
// afero reports them; callers sort with Order.
func Discover(fs afero.Fs, root string) ([]string, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read solutions root %s: %w", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Mode()&os.ModeSymlink != 0 {
			// ReadDir lstats entries; resolve the link target. A dangling
			// link is not a directory.
			target, err := fs.Stat(filepath.Join(root, e.Name()))
			isDir = err == nil && target.IsDir()
		}
		if !isDir {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ParseDayNumber converts a directory name into a day number.
// Only plain ASCII digits are accepted; signs, spaces and underscores
// are rejected.
func ParseDayNumber(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidDayName)
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDayName, name)
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		// Only reachable on overflow.
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDayName, name, err)
	}
	return n, nil
}

// Order turns directory names into Day records sorted by ascending day
// number. It fails on the first name that is not a day number, and on
// two names that resolve to the same number. The note for each day comes
// from notes; absent keys give an empty note.
//
// Order performs no I/O.
func Order(root string, names []string, notes model.Commentary, solution string) ([]model.Day, error) {
	seen := make(map[int]string, len(names))
	out := make([]model.Day, 0, len(names))

	for _, name := range names {
		n, err := ParseDayNumber(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: %q and %q are both day %d", ErrDuplicateDay, prev, name, n)
		}
		seen[n] = name
		out = append(out, model.NewDay(root, name, n, solution, notes))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out, nil
}

// Load is Discover followed by Order.
func Load(fs afero.Fs, root string, notes model.Commentary, solution string) ([]model.Day, error) {
	names, err := Discover(fs, root)
	if err != nil {
		return nil, err
	}
	return Order(root, names, notes, solution)
}

// SolutionExists reports whether the day's solution file is present.
func SolutionExists(fs afero.Fs, d model.Day) bool {
	ok, err := afero.Exists(fs, d.SolutionPath)
	return err == nil && ok
}
