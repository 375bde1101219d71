// Package validation checks user input and filesystem state before any work runs.
package validation

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"audionorm/internal/domain/consts"
	"audionorm/internal/domain/logger"
)

// ValidateFile checks that f is a regular file, optionally creating it if missing.
func ValidateFile(f string, createIfNotFound bool) (os.FileInfo, error) {
	logger.Pl.D(3, "Statting file %q...", f)

	info, err := os.Stat(f)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("path %q is a directory, not a file", f)
		}
		return info, nil

	case errors.Is(err, os.ErrNotExist) && createIfNotFound:
		file, createErr := os.OpenFile(f, os.O_CREATE|os.O_EXCL|os.O_WRONLY, consts.PermsLogFile)
		if createErr != nil {
			return nil, fmt.Errorf("failed to create file %q: %w", f, createErr)
		}
		if closeErr := file.Close(); closeErr != nil {
			logger.Pl.E("failed to close file %q: %v", f, closeErr)
		}
		return os.Stat(f)

	default:
		return nil, fmt.Errorf("failed to stat file %q: %w", f, err)
	}
}

// ValidateDirectory checks that dir is a directory, optionally creating it if missing.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logger.Pl.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q is a file, not a directory", dir)
		}
		return info, nil

	case errors.Is(err, os.ErrNotExist) && createIfNotFound:
		if mkErr := os.MkdirAll(dir, consts.PermsHomeProgDir); mkErr != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, mkErr)
		}
		return os.Stat(dir)

	default:
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}
}

// ValidateStage checks a post-processing stage name, returning the default for "".
func ValidateStage(when string) (string, error) {
	when = strings.TrimSpace(when)
	if when == "" {
		return consts.DefaultStage, nil
	}
	if !slices.Contains(consts.Stages, when) {
		return "", fmt.Errorf("invalid stage %q, must be one of: %s", when, strings.Join(consts.Stages, ", "))
	}
	return when, nil
}

// ValidateDebugLevel clamps the debug level into 0-5.
func ValidateDebugLevel(l int) int {
	switch {
	case l < 0:
		return 0
	case l > 5:
		return 5
	default:
		return l
	}
}

// ValidateRunStatus checks a history status filter.
func ValidateRunStatus(status string) error {
	switch status {
	case "", consts.RunStatusRunning, consts.RunStatusSuccess, consts.RunStatusFailed:
		return nil
	}
	return fmt.Errorf("invalid status %q, must be one of: %s, %s, %s",
		status, consts.RunStatusRunning, consts.RunStatusSuccess, consts.RunStatusFailed)
}
