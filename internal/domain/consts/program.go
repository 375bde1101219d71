// Package consts holds program-wide constant values.
package consts

// ProgramName is used for the home directory, env prefix and log lines.
const ProgramName = "audionorm"

// DefaultFFmpegNormalizeBin is looked up on $PATH unless configured.
const DefaultFFmpegNormalizeBin = "ffmpeg-normalize"

// DefaultSampleRate applies when neither the caller nor the source sets one.
const DefaultSampleRate = 48000

// Post-processing stages understood by the download host.
const (
	StagePreProcess  = "pre_process"
	StageAfterFilter = "after_filter"
	StageVideo       = "video"
	StageBeforeDL    = "before_dl"
	StagePostProcess = "post_process"
	StageAfterMove   = "after_move"
	StageAfterVideo  = "after_video"
	StagePlaylist    = "playlist"
)

// DefaultStage is the host's default when no stage is named.
const DefaultStage = StagePostProcess

// Stages lists every valid stage in host execution order.
var Stages = []string{
	StagePreProcess,
	StageAfterFilter,
	StageVideo,
	StageBeforeDL,
	StagePostProcess,
	StageAfterMove,
	StageAfterVideo,
	StagePlaylist,
}

// AbsentMetaValues are the placeholders the host substitutes for missing metadata fields.
var AbsentMetaValues = map[string]bool{
	"":     true,
	"NA":   true,
	"none": true,
}
