package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audionorm/internal/media"
)

func TestInfoFacts(t *testing.T) {
	info := media.Info{
		"ext":    "m4a",
		"acodec": "mp4a.40.2",
		"asr":    float64(44100),
		"abr":    129.478,
	}

	got := info.Facts()
	want := media.Facts{Extension: "m4a", AudioCodec: "mp4a.40.2", SampleRate: 44100, AudioBitrate: "129k"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestInfoFacts_AbsentPlaceholders(t *testing.T) {
	info := media.Info{
		"ext":    "NA",
		"acodec": "none",
		"asr":    "NA",
		"abr":    nil,
	}

	if got := info.Facts(); got != (media.Facts{}) {
		t.Fatalf("expected all facts absent, got %+v", got)
	}
	if got := (media.Info{}).Facts(); got != (media.Facts{}) {
		t.Fatalf("expected empty facts for empty info, got %+v", got)
	}
}

func TestBitrateOf(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"128k", "128k"},
		{"160", "160k"},
		{float64(96), "96k"},
		{128, "128k"},
		{float64(0), ""},
		{"", ""},
		{"NA", ""},
		{true, ""},
	}
	for _, tt := range tests {
		if got := media.BitrateOf(tt.in); got != tt.want {
			t.Errorf("BitrateOf(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSampleRateOf(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{float64(48000), 48000},
		{22050, 22050},
		{"44100", 44100},
		{"abc", 0},
		{float64(-1), 0},
		{nil, 0},
	}
	for _, tt := range tests {
		if got := media.SampleRateOf(tt.in); got != tt.want {
			t.Errorf("SampleRateOf(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFilePath(t *testing.T) {
	if got := (media.Info{"_filename": "/dl/a.webm"}).FilePath(); got != "/dl/a.webm" {
		t.Fatalf("expected _filename fallback, got %q", got)
	}

	info := media.Info{"filepath": "/dl/b.mp4", "_filename": "/dl/a.webm"}
	if got := info.FilePath(); got != "/dl/b.mp4" {
		t.Fatalf("expected filepath to win, got %q", got)
	}

	info.SetFilePath("/dl/c.mp4")
	if got := info.FilePath(); got != "/dl/c.mp4" {
		t.Fatalf("expected updated path, got %q", got)
	}
}

func TestLoadInfoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.info.json")
	doc := `{"filepath": "/dl/video.mp4", "ext": "mp4", "acodec": "opus", "asr": 48000, "abr": 160.2}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write info JSON: %v", err)
	}

	info, err := media.LoadInfoJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.FilePath() != "/dl/video.mp4" {
		t.Fatalf("unexpected file path %q", info.FilePath())
	}
	if f := info.Facts(); f.SampleRate != 48000 || f.AudioBitrate != "160k" || f.AudioCodec != "opus" {
		t.Fatalf("unexpected facts %+v", f)
	}
}

func TestReadInfo_Invalid(t *testing.T) {
	if _, err := media.ReadInfo(strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := media.LoadInfoJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
