package normalize

import (
	"fmt"
	"maps"
	"slices"

	"audionorm/internal/domain/consts"
	"audionorm/internal/media"
)

// StageKey is the reserved kwarg naming the host stage; it is not a parameter.
const StageKey = "when"

// Resolve merges the three parameter sources into one set.
//
// Precedence, highest first: raw flag string, kwargs, media facts. Anything
// left unset falls back to ffmpeg-normalize's own default.
func Resolve(kwargs map[string]any, ppa string, facts media.Facts) (ParameterSet, error) {
	set := FromFacts(facts)

	declared, err := FromKwargs(kwargs)
	if err != nil {
		return nil, err
	}
	maps.Copy(set, declared)

	flags, err := ParseFlagString(ppa)
	if err != nil {
		return nil, err
	}
	maps.Copy(set, flags)

	return set, nil
}

// FromFacts derives parameters from the downloaded file's metadata.
func FromFacts(f media.Facts) ParameterSet {
	set := make(ParameterSet, 4)
	if f.Extension != "" {
		set["extension"] = StringValue(f.Extension)
	}
	if f.AudioCodec != "" {
		enc, _ := EncoderFor(f.AudioCodec)
		set["audio_codec"] = StringValue(enc)
	}

	rate := f.SampleRate
	if rate <= 0 {
		rate = consts.DefaultSampleRate
	}
	set["sample_rate"] = IntValue(rate)

	if f.AudioBitrate != "" {
		set["audio_bitrate"] = StringValue(f.AudioBitrate)
	}
	return set
}

// FromKwargs validates and coerces declarative parameters.
//
// Keys may be a parameter name, its long flag or its short alias. The stage key
// is skipped. Unknown keys and uncoercible values are configuration errors.
func FromKwargs(kwargs map[string]any) (ParameterSet, error) {
	set := make(ParameterSet, len(kwargs))
	seen := make(map[string]string, len(kwargs))

	for _, key := range slices.Sorted(maps.Keys(kwargs)) {
		if key == StageKey {
			continue
		}
		raw := kwargs[key]

		p, ok := LookupKey(key)
		if !ok {
			return nil, &ConfigError{Key: key, Err: ErrUnknownParam}
		}
		if prev, dup := seen[p.Name]; dup {
			return nil, &ConfigError{Key: key, Err: fmt.Errorf("%w (also given as %q)", ErrDuplicate, prev)}
		}
		seen[p.Name] = key

		v, err := Coerce(p, raw)
		if err != nil {
			return nil, &ConfigError{Key: key, Value: fmt.Sprint(raw), Err: err}
		}
		set[p.Name] = v
	}
	return set, nil
}

// CanonicalKey maps a kwarg key to its parameter name, leaving the stage key alone.
func CanonicalKey(key string) (string, bool) {
	if key == StageKey {
		return key, true
	}
	p, ok := LookupKey(key)
	if !ok {
		return "", false
	}
	return p.Name, true
}
