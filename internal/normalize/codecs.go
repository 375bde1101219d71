package normalize

import "strings"

// encoderNames maps decoder names reported by the download host to ffmpeg encoder names.
var encoderNames = map[string]string{
	"aac":    "aac",
	"mp4a":   "aac",
	"opus":   "libopus",
	"vorbis": "libvorbis",
	"mp3":    "libmp3lame",
	"flac":   "flac",
	"alac":   "alac",
	"ac-3":   "ac3",
	"ac3":    "ac3",
	"ec-3":   "eac3",
	"eac3":   "eac3",
	"dts":    "dca",
	"wav":    "pcm_s16le",
}

// EncoderFor maps a decoder name to the encoder ffmpeg-normalize should use.
//
// Codec strings with a profile suffix (mp4a.40.2) are matched on their base
// name. Unknown names are returned unchanged and ok is false.
func EncoderFor(decoder string) (encoder string, ok bool) {
	d := strings.ToLower(strings.TrimSpace(decoder))
	if enc, found := encoderNames[d]; found {
		return enc, true
	}
	if base, _, cut := strings.Cut(d, "."); cut {
		if enc, found := encoderNames[base]; found {
			return enc, true
		}
	}
	return decoder, false
}
