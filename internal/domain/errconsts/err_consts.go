// Package errconsts holds constant error messages
package errconsts

// Programs
const (
	FFmpegNormalizeFailure = "ffmpeg-normalize failed: %w"
)

// File
const (
	ConfigFileLoadFail = "failed to load config file %q: %w"
)
