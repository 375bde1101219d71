// Package normalize resolves ffmpeg-normalize parameters from declarative
// kwargs, a raw flag string and the downloaded file's metadata.
package normalize

import (
	"strings"
)

// Kind is the scalar type of a parameter.
type Kind int

// Parameter kinds.
const (
	String Kind = iota
	Bool
	Int
	Float
	Enum
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Enum:
		return "enum"
	default:
		return "string"
	}
}

// Param describes one scalar construction parameter of ffmpeg-normalize.
type Param struct {
	Name    string
	Kind    Kind
	Default string   // As documented upstream, empty when the tool has none
	Enum    []string // Allowed values for Enum kinds
	Usage   string
}

// Params lists every scalar ffmpeg-normalize parameter, in the order flags are rendered.
//
// List-valued options (extra input/output options, audio stream selection)
// are not part of the table.
var Params = []Param{
	// Normalization
	{Name: "normalization_type", Kind: Enum, Default: "ebu", Enum: []string{"ebu", "rms", "peak"}, Usage: "normalization type"},
	{Name: "target_level", Kind: Float, Default: "-23.0", Usage: "normalization target level in dB/LUFS"},
	{Name: "print_stats", Kind: Bool, Default: "false", Usage: "print loudness statistics"},

	// EBU R128
	{Name: "loudness_range_target", Kind: Float, Default: "7.0", Usage: "EBU loudness range target in LUFS"},
	{Name: "keep_loudness_range_target", Kind: Bool, Default: "false", Usage: "keep the input loudness range target"},
	{Name: "keep_lra_above_loudness_range_target", Kind: Bool, Default: "false", Usage: "keep input LRA if above the target"},
	{Name: "true_peak", Kind: Float, Default: "-2.0", Usage: "EBU maximum true peak in dBTP"},
	{Name: "offset", Kind: Float, Default: "0.0", Usage: "EBU offset gain in dB"},
	{Name: "lower_only", Kind: Bool, Default: "false", Usage: "only lower, never raise, loudness"},
	{Name: "auto_lower_loudness_target", Kind: Bool, Default: "false", Usage: "lower target to avoid true peak limiting"},
	{Name: "dual_mono", Kind: Bool, Default: "false", Usage: "treat mono input as dual-mono"},
	{Name: "dynamic", Kind: Bool, Default: "false", Usage: "force dynamic normalization"},

	// Audio encoding
	{Name: "audio_codec", Kind: String, Default: "pcm_s16le", Usage: "audio codec for the output"},
	{Name: "audio_bitrate", Kind: String, Usage: "audio bitrate, e.g. 192k"},
	{Name: "sample_rate", Kind: Int, Usage: "audio sample rate in Hz"},
	{Name: "audio_channels", Kind: Int, Usage: "number of audio channels"},
	{Name: "keep_original_audio", Kind: Bool, Default: "false", Usage: "copy original, non-normalized audio streams"},
	{Name: "keep_other_audio", Kind: Bool, Default: "false", Usage: "keep audio streams that are not normalized"},
	{Name: "audio_default_only", Kind: Bool, Default: "false", Usage: "only normalize the default audio stream"},

	// Filters
	{Name: "pre_filter", Kind: String, Usage: "ffmpeg filter chain applied before normalization"},
	{Name: "post_filter", Kind: String, Usage: "ffmpeg filter chain applied after normalization"},

	// Video/subtitles/metadata
	{Name: "video_codec", Kind: String, Default: "copy", Usage: "video codec for the output"},
	{Name: "video_disable", Kind: Bool, Default: "false", Usage: "drop video streams"},
	{Name: "subtitle_disable", Kind: Bool, Default: "false", Usage: "drop subtitle streams"},
	{Name: "metadata_disable", Kind: Bool, Default: "false", Usage: "drop metadata"},
	{Name: "chapters_disable", Kind: Bool, Default: "false", Usage: "drop chapters"},

	// Output format
	{Name: "output_format", Kind: String, Usage: "ffmpeg output container format"},
	{Name: "extension", Kind: String, Default: "mkv", Usage: "output file extension"},

	// Execution
	{Name: "dry_run", Kind: Bool, Default: "false", Usage: "show what would be done"},
	{Name: "debug", Kind: Bool, Default: "false", Usage: "print debug output"},
	{Name: "progress", Kind: Bool, Default: "false", Usage: "show progress bars"},
	{Name: "replaygain", Kind: Bool, Default: "false", Usage: "write ReplayGain tags instead of re-encoding"},
	{Name: "batch", Kind: Bool, Default: "false", Usage: "preserve relative loudness across files"},
}

var (
	paramsByName = make(map[string]*Param, len(Params))
	paramsByFlag = make(map[string]*Param, len(Params)+len(ShortFlags))
)

func init() {
	for i := range Params {
		p := &Params[i]
		paramsByName[p.Name] = p
		paramsByFlag[LongFlag(p.Name)] = p
	}
	for short, name := range ShortFlags {
		p, ok := paramsByName[name]
		if !ok {
			panic("normalize: short flag " + short + " maps to unknown parameter " + name)
		}
		paramsByFlag[short] = p
	}
}

// LongFlag returns the long flag for a parameter name (target_level -> --target-level).
func LongFlag(name string) string {
	return "--" + strings.ReplaceAll(name, "_", "-")
}

// Lookup finds a parameter by canonical name.
func Lookup(name string) (Param, bool) {
	p, ok := paramsByName[name]
	if !ok {
		return Param{}, false
	}
	return *p, true
}

// LookupKey finds a parameter by canonical name, long flag or short alias.
func LookupKey(key string) (Param, bool) {
	if p, ok := paramsByName[key]; ok {
		return *p, true
	}
	if p, ok := paramsByFlag[key]; ok {
		return *p, true
	}
	return Param{}, false
}

// ShortFlagFor returns the short alias of a parameter, if it has one.
func ShortFlagFor(name string) string {
	for short, n := range ShortFlags {
		if n == name {
			return short
		}
	}
	return ""
}
