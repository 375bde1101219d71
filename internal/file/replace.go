package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audionorm/internal/domain/logger"
)

// CreateTempSibling creates an empty temp file next to path, keeping its extension.
//
// The caller owns the returned path and must remove it if it is not used.
func CreateTempSibling(path string) (string, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	ext := filepath.Ext(base)
	pattern := "." + strings.TrimSuffix(base, ext) + ".normalizing-*" + ext

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file next to %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file %q: %w", f.Name(), err)
	}
	return f.Name(), nil
}

// CheckNonEmpty verifies that the file exists and has content.
func CheckNonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output verification failed: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output file is empty: %s", path)
	}
	return nil
}

// Replace moves src over dst, carrying over dst's permission bits.
func Replace(src, dst string) error {
	if info, err := os.Stat(dst); err == nil {
		if err := os.Chmod(src, info.Mode().Perm()); err != nil {
			logger.Pl.W("Could not copy permissions of %q to %q: %v", dst, src, err)
		}
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %q over %q: %w", src, dst, err)
	}
	return nil
}

// RemoveIfExists deletes path, ignoring a missing file.
func RemoveIfExists(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Pl.E("Failed to remove temp file %q: %v", path, err)
	}
}
