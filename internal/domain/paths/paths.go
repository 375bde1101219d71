// Package paths initializes audionorm's filepaths and directories.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"audionorm/internal/domain/consts"
)

const (
	progDir    = ".audionorm"
	dbFile     = "audionorm.db"
	logFile    = "audionorm.log"
	configFile = "config.yaml"
)

// File and directory path strings.
var (
	HomeProgDir       string
	DBFilePath        string
	LogFilePath       string
	DefaultConfigFile string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}

	// Home program dir ~/.audionorm
	HomeProgDir = filepath.Join(userHomeDir, progDir)
	if _, err := os.Stat(HomeProgDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeProgDir, consts.PermsHomeProgDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	// Main files
	DBFilePath = filepath.Join(HomeProgDir, dbFile)
	LogFilePath = filepath.Join(HomeProgDir, logFile)
	DefaultConfigFile = filepath.Join(HomeProgDir, configFile)
	return nil
}
