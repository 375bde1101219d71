// Package command builds and runs the external ffmpeg-normalize command.
package command

import (
	"context"
	"os/exec"

	"audionorm/internal/domain/consts"
	"audionorm/internal/normalize"
)

// FFmpegNormalize runs the ffmpeg-normalize CLI on one file at a time.
type FFmpegNormalize struct {
	Binary string
}

// NewFFmpegNormalize returns a runner for the given binary ("" looks up the default on $PATH).
func NewFFmpegNormalize(binary string) *FFmpegNormalize {
	if binary == "" {
		binary = consts.DefaultFFmpegNormalizeBin
	}
	return &FFmpegNormalize{Binary: binary}
}

// BuildArgs returns the argument list for normalizing input into output.
//
// The output is always forced since it is a pre-created temp file.
func (f *FFmpegNormalize) BuildArgs(input, output string, params normalize.ParameterSet) []string {
	args := make([]string, 0, 4+len(params)*2)
	args = append(args, input, "-o", output, "-f")
	return append(args, params.Args()...)
}

// Command builds the exec.Cmd without running it.
func (f *FFmpegNormalize) Command(ctx context.Context, input, output string, params normalize.ParameterSet) *exec.Cmd {
	return exec.CommandContext(ctx, f.Binary, f.BuildArgs(input, output, params)...)
}
