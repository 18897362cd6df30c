package rewrite

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrBackup means the snapshot could not be written; the primary file was not touched
	ErrBackup = errors.New("backup failed")
	// ErrWrite means the snapshot exists but the primary file could not be written
	ErrWrite = errors.New("write failed")
)

// BackupPath returns the sibling snapshot path for path
func BackupPath(path, suffix string) string {
	return path + suffix
}

// WriteWithBackup persists original to path+suffix and only then writes
// updated to path. If the snapshot cannot be written the primary file is left
// exactly as it was.
func WriteWithBackup(path, original, updated, suffix string) (string, error) {
	backup := BackupPath(path, suffix)

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(backup, []byte(original), mode); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBackup, backup, err)
	}

	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return backup, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return backup, nil
}

// WriteFile writes a generated artifact that has no backup
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
