package runner

import (
	"fmt"
	"os"
	"path/filepath"
)

// skipNote is the constant content of skipped_api_call.txt.
const skipNote = "API call skipped (dry-run). Set PPLX_API_KEY to enable."

// writeRowFile writes data to path atomically: temp file in the same
// directory, fsync, rename. A failed write never leaves a partial
// file at the destination.
func writeRowFile(path string, data []byte) error {
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	_, writeErr := file.Write(data)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), writeErr)
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), syncErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ensureRowDir creates the per-row output directory. Safe to rerun.
func ensureRowDir(paths OutputPaths) error {
	if err := os.MkdirAll(paths.Dir(), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
