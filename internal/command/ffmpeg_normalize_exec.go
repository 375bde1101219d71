package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"audionorm/internal/domain/errconsts"
	"audionorm/internal/domain/logger"
	"audionorm/internal/normalize"
)

const stderrTailLines = 10

// ExitError reports a failed ffmpeg-normalize run.
type ExitError struct {
	Cmd    string
	Stderr []string // Last lines written to stderr
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Errorf(errconsts.FFmpegNormalizeFailure, e.Err).Error()
	if len(e.Stderr) > 0 {
		msg += ": " + strings.Join(e.Stderr, " | ")
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status, or -1 if it never exited normally.
func (e *ExitError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Normalize runs ffmpeg-normalize, streaming its output into the logger.
func (f *FFmpegNormalize) Normalize(ctx context.Context, input, output string, params normalize.ParameterSet) error {
	cmd := f.Command(ctx, input, output, params)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	logger.Pl.I("Running ffmpeg-normalize command: %s", cmd.String())
	if err := cmd.Start(); err != nil {
		return &ExitError{Cmd: cmd.String(), Err: err}
	}

	var (
		wg   sync.WaitGroup
		tail []string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanLines(stdout, func(line string) {
			logger.Pl.D(1, "ffmpeg-normalize: %s", line)
		})
	}()
	go func() {
		defer wg.Done()
		scanLines(stderr, func(line string) {
			logger.Pl.D(1, "ffmpeg-normalize: %s", line)
			tail = append(tail, line)
			if len(tail) > stderrTailLines {
				tail = tail[1:]
			}
		})
	}()

	// Pipes must be drained before Wait closes them
	wg.Wait()
	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w (%v)", ctxErr, err)
		}
		return &ExitError{Cmd: cmd.String(), Stderr: tail, Err: err}
	}
	return nil
}

// scanLines calls fn for every non-empty line read from r.
func scanLines(r io.Reader, fn func(string)) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			fn(line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Pl.E("Scanner error: %v", err)
	}
}
