package normalize

// ShortFlags maps ffmpeg-normalize's short flags to canonical parameter names.
//
// Only aliases that can't be derived from a parameter name live here.
// See https://slhck.info/ffmpeg-normalize/usage/cli-options/
var ShortFlags = map[string]string{
	// Normalization
	"-nt": "normalization_type",
	"-t":  "target_level",
	"-p":  "print_stats",

	// EBU R128
	"-lrt": "loudness_range_target",
	"-tp":  "true_peak",

	// Audio encoding
	"-c:a": "audio_codec",
	"-b:a": "audio_bitrate",
	"-ar":  "sample_rate",
	"-ac":  "audio_channels",
	"-koa": "keep_original_audio",

	// Filters
	"-prf": "pre_filter",
	"-pof": "post_filter",

	// Video/subtitles/metadata
	"-vn":  "video_disable",
	"-c:v": "video_codec",
	"-sn":  "subtitle_disable",
	"-mn":  "metadata_disable",
	"-cn":  "chapters_disable",

	// Output format
	"-ofmt": "output_format",
	"-ext":  "extension",

	// Execution
	"-d":  "debug",
	"-n":  "dry_run",
	"-pr": "progress",
}
