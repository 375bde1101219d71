// Package media reads the download host's metadata for a file and derives the
// facts the parameter resolver needs from it.
package media

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"audionorm/internal/domain/consts"
)

// Info is the host's metadata dictionary for one downloaded item.
type Info map[string]any

// Facts is a read-only snapshot of the metadata relevant to normalization.
//
// Zero values mean the field was absent.
type Facts struct {
	Extension    string
	AudioCodec   string // Decoder name as reported by the host
	SampleRate   int
	AudioBitrate string
}

// FilePath returns the item's current file path, or "" when there is none.
func (i Info) FilePath() string {
	for _, key := range []string{"filepath", "_filename"} {
		if s := i.str(key); s != "" {
			return s
		}
	}
	return ""
}

// SetFilePath records the item's current path.
func (i Info) SetFilePath(path string) {
	i["filepath"] = path
}

// Facts derives the normalization-relevant facts from the metadata.
func (i Info) Facts() Facts {
	return Facts{
		Extension:    i.str("ext"),
		AudioCodec:   i.str("acodec"),
		SampleRate:   SampleRateOf(i["asr"]),
		AudioBitrate: BitrateOf(i["abr"]),
	}
}

func (i Info) str(key string) string {
	v, ok := i[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	if consts.AbsentMetaValues[s] {
		return ""
	}
	return s
}

// SampleRateOf converts an "asr" field into Hz, returning 0 when absent or unusable.
func SampleRateOf(v any) int {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(math.Round(n))
		}
	case int:
		if n > 0 {
			return n
		}
	case json.Number:
		if f, err := n.Float64(); err == nil && f > 0 {
			return int(math.Round(f))
		}
	case string:
		s := strings.TrimSpace(n)
		if consts.AbsentMetaValues[s] {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
			return int(math.Round(f))
		}
	}
	return 0
}

// BitrateOf converts an "abr" field into an ffmpeg bitrate string.
//
// Numbers are kbit/s (129.5 -> "130k"); strings with a unit pass through.
func BitrateOf(v any) string {
	switch n := v.(type) {
	case float64:
		return kbps(n)
	case int:
		return kbps(float64(n))
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return kbps(f)
		}
	case string:
		s := strings.TrimSpace(n)
		if consts.AbsentMetaValues[s] {
			return ""
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return kbps(f)
		}
		return s
	}
	return ""
}

func kbps(f float64) string {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.Itoa(int(math.Round(f))) + "k"
}

// ReadInfo decodes a JSON metadata document.
func ReadInfo(r io.Reader) (Info, error) {
	var info Info
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode info JSON: %w", err)
	}
	if info == nil {
		info = Info{}
	}
	return info, nil
}

// LoadInfoJSON reads the host's info JSON from a file, or from stdin when path is "-".
func LoadInfoJSON(path string) (Info, error) {
	if path == "-" {
		return ReadInfo(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := ReadInfo(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}
