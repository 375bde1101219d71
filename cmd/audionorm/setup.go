package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"audionorm/internal/command"
	"audionorm/internal/domain/consts"
	"audionorm/internal/domain/logger"
	"audionorm/internal/domain/paths"
	"audionorm/internal/logging"
	"audionorm/internal/normalize"

	"golang.org/x/term"
)

// Exit codes.
const (
	exitFailure     = 1
	exitConfigError = 2
	exitInterrupted = 130
)

// setupLogging logs to stderr (stdout belongs to command output) and the program log file.
func setupLogging() (*logging.ProgramLogger, error) {
	return logging.SetupLogging(logging.LoggingConfig{
		LogFilePath: paths.LogFilePath,
		MaxSizeMB:   1,
		MaxBackups:  3,
		Console:     os.Stderr,
		Program:     consts.ProgramName,
		NoColor:     !term.IsTerminal(int(os.Stderr.Fd())),
	})
}

// cleanup logs the run time and closes the log file.
func cleanup(startTime time.Time) {
	logger.Pl.D(1, "audionorm finished in %v", time.Since(startTime).Round(time.Millisecond))
	if err := logger.Pl.Close(); err != nil {
		os.Stderr.WriteString("failed to close log file: " + err.Error() + "\n")
	}
}

// exitCode maps an error to the process exit status seen by the download host.
func exitCode(err error) int {
	switch {
	case errors.Is(err, normalize.ErrConfig):
		return exitConfigError
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return exitFailure
	}
}

// hintFor suggests a fix for common failures.
func hintFor(err error) []string {
	var exitErr *command.ExitError
	switch {
	case errors.Is(err, normalize.ErrUnknownParam):
		return []string{"run 'audionorm params' to list valid parameter names"}
	case errors.Is(err, normalize.ErrFlagString):
		return []string{"quote values containing spaces or shell operators inside --ppa"}
	case errors.Is(err, exec.ErrNotFound):
		return []string{"install ffmpeg-normalize or set ffmpeg-normalize-bin in the config"}
	case errors.As(err, &exitErr):
		return []string{"see the log file for ffmpeg-normalize's full output"}
	}
	return nil
}
