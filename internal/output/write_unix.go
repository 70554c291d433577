//go:build !windows

package output

import (
	"fmt"

	"github.com/google/renameio/v2"

	xlog "github.com/shinji-kodama/aocdoc/internal/log"
)

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte) error {
	logger := xlog.WithComponent("output")

	// renameio creates the temp file next to path so the rename stays on
	// one filesystem.
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer func() {
		// No-op once the file has been committed.
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("cleanup pending file")
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
