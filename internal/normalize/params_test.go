package normalize_test

import (
	"slices"
	"strings"
	"testing"

	"audionorm/internal/media"
	"audionorm/internal/normalize"
)

func TestShortFlags_DocumentedAliases(t *testing.T) {
	want := map[string]string{
		"-t":   "target_level",
		"-c:a": "audio_codec",
		"-b:a": "audio_bitrate",
	}
	for short, name := range want {
		p, ok := normalize.LookupKey(short)
		if !ok || p.Name != name {
			t.Errorf("%s: expected %s, got %+v (found=%v)", short, name, p, ok)
		}
	}
}

func TestShortFlags_Injective(t *testing.T) {
	seen := make(map[string]string, len(normalize.ShortFlags))
	for short, name := range normalize.ShortFlags {
		if prev, ok := seen[name]; ok {
			t.Errorf("%s and %s both map to %s", prev, short, name)
		}
		seen[name] = short

		if len(short) < 2 || len(short) > 5 || !strings.HasPrefix(short, "-") {
			t.Errorf("alias %q is not a two-to-five character short flag", short)
		}
	}
}

func TestShortFlags_MatchLongFlags(t *testing.T) {
	for short, name := range normalize.ShortFlags {
		viaShort, ok := normalize.LookupKey(short)
		if !ok {
			t.Fatalf("%s not resolvable", short)
		}
		viaLong, ok := normalize.LookupKey(normalize.LongFlag(name))
		if !ok {
			t.Fatalf("%s has no long flag", name)
		}
		if viaShort.Name != viaLong.Name || viaShort.Kind != viaLong.Kind {
			t.Errorf("%s and %s disagree: %+v vs %+v", short, normalize.LongFlag(name), viaShort, viaLong)
		}
		if normalize.ShortFlagFor(name) != short {
			t.Errorf("ShortFlagFor(%s) = %q, want %q", name, normalize.ShortFlagFor(name), short)
		}
	}
}

func TestParams_Table(t *testing.T) {
	names := make([]string, 0, len(normalize.Params))
	for _, p := range normalize.Params {
		if slices.Contains(names, p.Name) {
			t.Errorf("duplicate parameter %s", p.Name)
		}
		names = append(names, p.Name)
		if p.Kind == normalize.Enum && len(p.Enum) == 0 {
			t.Errorf("enum parameter %s has no values", p.Name)
		}
	}

	for _, listParam := range []string{"extra_input_options", "extra_output_options", "audio_streams"} {
		if _, ok := normalize.Lookup(listParam); ok {
			t.Errorf("list parameter %s must not be in the table", listParam)
		}
	}

	if p, _ := normalize.Lookup("audio_bitrate"); p.Kind != normalize.String {
		t.Errorf("audio_bitrate must be a string, got %s", p.Kind)
	}
	if p, _ := normalize.Lookup("dual_mono"); p.Kind != normalize.Bool {
		t.Errorf("dual_mono must be a bool, got %s", p.Kind)
	}
	if normalize.LongFlag("target_level") != "--target-level" {
		t.Errorf("unexpected long flag %q", normalize.LongFlag("target_level"))
	}
}

func TestParameterSet_Args(t *testing.T) {
	set := normalize.ParameterSet{
		"sample_rate":         normalize.IntValue(48000),
		"target_level":        normalize.FloatValue(-16),
		"dual_mono":           normalize.BoolValue(false),
		"keep_original_audio": normalize.BoolValue(true),
		"normalization_type":  normalize.EnumValue("ebu"),
	}

	got := set.Args()
	want := []string{
		"--normalization-type=ebu",
		"--target-level=-16",
		"--sample-rate=48000",
		"--keep-original-audio",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParameterSet_ArgsDashValue(t *testing.T) {
	set, err := normalize.Resolve(nil, "-pof -n", media.Facts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := set.Args()
	want := []string{"--sample-rate=48000", "--post-filter=-n"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEncoderFor(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		mapped bool
	}{
		{"aac", "aac", true},
		{"mp4a.40.2", "aac", true},
		{"opus", "libopus", true},
		{"Vorbis", "libvorbis", true},
		{"ec-3", "eac3", true},
		{"mystery", "mystery", false},
	}
	for _, tt := range tests {
		got, ok := normalize.EncoderFor(tt.in)
		if got != tt.want || ok != tt.mapped {
			t.Errorf("EncoderFor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.mapped)
		}
	}
}

func TestCoerce(t *testing.T) {
	target, _ := normalize.Lookup("target_level")
	channels, _ := normalize.Lookup("audio_channels")
	bitrate, _ := normalize.Lookup("audio_bitrate")

	if v, err := normalize.Coerce(target, -14); err != nil || v != normalize.FloatValue(-14) {
		t.Errorf("int into float: got %v, %v", v, err)
	}
	if v, err := normalize.Coerce(channels, float64(2)); err != nil || v != normalize.IntValue(2) {
		t.Errorf("whole float into int: got %v, %v", v, err)
	}
	if _, err := normalize.Coerce(channels, 2.5); err == nil {
		t.Errorf("fractional float into int should fail")
	}
	if v, err := normalize.Coerce(bitrate, 192); err != nil || v != normalize.StringValue("192") {
		t.Errorf("int into string: got %v, %v", v, err)
	}
	if _, err := normalize.Coerce(target, "NaN"); err == nil {
		t.Errorf("NaN should be rejected")
	}
}
