// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/log"
)

// WriteFile writes the table to path with full durability guarantees using
// renameio: the workbook lands under a temporary name and replaces the
// target only after a successful fsync, so readers never see a torn file.
func WriteFile(ctx context.Context, path string, t Table) error {
	logger := log.FromContext(ctx)

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending workbook: %w", err)
	}
	defer func() {
		// Cleanup on error - renameio removes temp file if not committed
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(log.FieldPath, path).Msg("cleanup pending workbook")
		}
	}()

	if err := WriteXLSX(pending, t); err != nil {
		return fmt.Errorf("write workbook data: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace workbook: %w", err)
	}

	return nil
}
