// Package main is the entrypoint of audionorm.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"audionorm/internal/cfg"
	"audionorm/internal/domain/logger"
	"audionorm/internal/domain/paths"
	"audionorm/internal/ui"
)

func main() {
	os.Exit(run())
}

// run executes the program and returns its exit code.
func run() int {
	startTime := time.Now()

	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "audionorm exiting with error: %v\n", err)
		return 1
	}

	pl, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audionorm exiting with error: %v\n", err)
		return 1
	}
	logger.Pl = pl
	defer cleanup(startTime)

	// Cancelling kills a running ffmpeg-normalize, leaving the original file in place
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if err := cfg.Execute(ctx, os.Args[1:]); err != nil {
		logger.Pl.FileE("Error: %v", err)
		ui.ErrorMsg("audionorm failed", err, hintFor(err)...)
		return exitCode(err)
	}
	return 0
}
