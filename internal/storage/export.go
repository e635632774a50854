package storage

import (
	"fmt"
	"os"
	"time"
)

const exportFilePerm os.FileMode = 0o600

// DefaultExportFilename names export files by the current date so repeat
// exports on different days never clobber each other.
func DefaultExportFilename(now time.Time) string {
	return fmt.Sprintf("focusd-export-%s.json", now.Format("2006-01-02"))
}

// ExportSnapshot writes a pretty-printed snapshot file.
func ExportSnapshot(path string, snap Snapshot) error {
	data, err := EncodeSnapshotIndent(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), exportFilePerm); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ImportSnapshot reads and decodes a snapshot file. The caller is
// responsible for the destructive-replace confirmation; a decode failure
// carries ErrFormat and must leave current state untouched.
func ImportSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read import file: %w", err)
	}
	return DecodeSnapshot(data)
}
