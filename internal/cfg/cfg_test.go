package cfg_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"audionorm/internal/cfg"
	"audionorm/internal/normalize"
	"audionorm/internal/ui"

	"github.com/spf13/viper"
)

// execute runs the command tree with a fresh viper instance and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prev := ui.Out
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = prev })

	root := cfg.NewRootCmd(viper.New())
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

// fakeNormalizer writes a stand-in ffmpeg-normalize that appends a marker to the input.
func fakeNormalizer(t *testing.T) (bin, calls string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	dir := t.TempDir()
	bin = filepath.Join(dir, "ffmpeg-normalize")
	calls = filepath.Join(dir, "calls")
	script := "#!/bin/sh\necho \"$@\" >> " + calls + "\n{ cat \"$1\"; printf ' normalized'; } > \"$3\"\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return bin, calls
}

func writeMedia(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.m4a")
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("failed to write media: %v", err)
	}
	return path
}

func TestParamsCmd(t *testing.T) {
	out, err := execute(t, "params")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"target_level", "--target-level", "-t", "ebu|rms|peak", "keep_original_audio", "-koa"} {
		if !strings.Contains(out, want) {
			t.Errorf("params output missing %q", want)
		}
	}
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve",
		"--file", "/media/clip.m4a",
		"--ext", "m4a",
		"--acodec", "mp4a.40.2",
		"--asr", "44100",
		"--kwargs", "target_level=-14;when=after_move",
		"--ppa", "-t -16 -koa",
		"--ffmpeg-normalize-bin", "ffmpeg-normalize",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"after_move", "--target-level", "-16", "aac", "44100", "--keep-original-audio", "/media/clip.m4a -o"} {
		if !strings.Contains(out, want) {
			t.Errorf("resolve output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "-14") {
		t.Errorf("raw flag should have overridden the kwarg:\n%s", out)
	}
}

func TestResolveCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	yaml := "kwargs:\n  target_level: -19\n  -ar: 22050\n"
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, err := execute(t, "resolve", "--config", cfgFile, "--asr", "44100", "--kwargs", "-t=-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "-12") || strings.Contains(out, "-19") {
		t.Errorf("command line kwargs should replace config kwargs:\n%s", out)
	}
	if !strings.Contains(out, "22050") {
		t.Errorf("config kwarg should override the derived sample rate:\n%s", out)
	}
}

func TestResolveCmd_KwargsNotAMap(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("kwargs: \"target_level=-19\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := execute(t, "resolve", "--config", cfgFile)
	if !errors.Is(err, normalize.ErrConfig) || !errors.Is(err, normalize.ErrInvalidValue) {
		t.Fatalf("expected configuration error for non-map kwargs, got %v", err)
	}
}

func TestRunCmd(t *testing.T) {
	bin, calls := fakeNormalizer(t)
	media := writeMedia(t)
	db := filepath.Join(t.TempDir(), "audionorm.db")

	if _, err := execute(t, "run",
		"--file", media,
		"--acodec", "opus",
		"--ppa", "-t -16",
		"--ffmpeg-normalize-bin", bin,
		"--db-path", db,
	); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(media)
	if err != nil || string(data) != "audio normalized" {
		t.Fatalf("expected normalized file in place, got %q, %v", data, err)
	}
	args, _ := os.ReadFile(calls)
	if !strings.Contains(string(args), "--audio-codec=libopus") || !strings.Contains(string(args), "--target-level=-16") {
		t.Errorf("unexpected ffmpeg-normalize arguments: %s", args)
	}

	out, err := execute(t, "history", "--db-path", db)
	if err != nil {
		t.Fatalf("unexpected history error: %v", err)
	}
	if !strings.Contains(out, "success") || !strings.Contains(out, "clip.m4a") {
		t.Errorf("history should list the run:\n%s", out)
	}

	out, err = execute(t, "history", "--db-path", db, "--status", "failed")
	if err != nil {
		t.Fatalf("unexpected history error: %v", err)
	}
	if !strings.Contains(out, "No runs recorded") {
		t.Errorf("status filter should exclude the run:\n%s", out)
	}
}

func TestRunCmd_InfoJSON(t *testing.T) {
	bin, calls := fakeNormalizer(t)
	media := writeMedia(t)
	info := filepath.Join(t.TempDir(), "clip.info.json")
	doc := `{"filepath": "` + media + `", "ext": "m4a", "acodec": "mp4a.40.2", "asr": 44100, "abr": 129.5}`
	if err := os.WriteFile(info, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write info JSON: %v", err)
	}

	if _, err := execute(t, "run", "--info-json", info, "--ffmpeg-normalize-bin", bin, "--history=false"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	args, _ := os.ReadFile(calls)
	for _, want := range []string{"--audio-codec=aac", "--audio-bitrate=130k", "--sample-rate=44100", "--extension=m4a"} {
		if !strings.Contains(string(args), want) {
			t.Errorf("arguments missing %q: %s", want, args)
		}
	}
}

func TestRunCmd_ConfigErrors(t *testing.T) {
	bin, calls := fakeNormalizer(t)
	media := writeMedia(t)

	tests := map[string][]string{
		"unknown kwarg":  {"--kwargs", "bogus=1"},
		"bad kwarg type": {"--kwargs", "target_level=loud"},
		"bad flag":       {"--ppa", "--no-such-flag"},
		"bad quoting":    {"--ppa", `-t "-16`},
		"bad stage":      {"--when", "sometime"},
	}

	for name, extra := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"run", "--file", media, "--ffmpeg-normalize-bin", bin, "--history=false"}, extra...)
			_, err := execute(t, args...)
			if !errors.Is(err, normalize.ErrConfig) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}

	if _, err := os.Stat(calls); !os.IsNotExist(err) {
		t.Fatalf("ffmpeg-normalize must not run on configuration errors")
	}
	data, _ := os.ReadFile(media)
	if string(data) != "audio" {
		t.Fatalf("file was modified: %q", data)
	}
}

func TestHistoryCmd_BadInput(t *testing.T) {
	db := filepath.Join(t.TempDir(), "audionorm.db")
	if _, err := execute(t, "history", "--db-path", db, "--status", "weird"); err == nil {
		t.Errorf("expected error for invalid status")
	}
	if _, err := execute(t, "history", "--db-path", db, "--since", "not a date"); err == nil {
		t.Errorf("expected error for invalid date")
	}
}
