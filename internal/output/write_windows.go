//go:build windows

package output

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	xlog "github.com/shinji-kodama/aocdoc/internal/log"
)

// WriteFile replaces path with data using a temp file and rename.
// renameio does not support Windows, so the sync-then-rename is done by hand.
func WriteFile(path string, data []byte) error {
	logger := xlog.WithComponent("output")
	fs := afero.NewOsFs()

	tmp, err := afero.TempFile(fs, filepath.Dir(path), ".aocdoc-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		if err := fs.Remove(tmpPath); err != nil {
			logger.Debug().Err(err).Str("path", tmpPath).Msg("remove temp file")
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := fs.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	committed = true
	return nil
}
