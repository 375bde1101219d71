package file_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audionorm/internal/file"

	"github.com/spf13/viper"
)

func TestCreateTempSibling(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "song.m4a")

	tmp, err := file.CreateTempSibling(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(tmp) != dir {
		t.Fatalf("temp file %q not in %q", tmp, dir)
	}
	if filepath.Ext(tmp) != ".m4a" {
		t.Fatalf("temp file %q should keep the .m4a extension", tmp)
	}
	if !strings.HasPrefix(filepath.Base(tmp), ".song.normalizing-") {
		t.Fatalf("unexpected temp name %q", tmp)
	}
	if _, err := os.Stat(tmp); err != nil {
		t.Fatalf("temp file should exist: %v", err)
	}

	if _, err := file.CreateTempSibling(filepath.Join(dir, "nope", "song.m4a")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestCheckNonEmpty(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	full := filepath.Join(dir, "full")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := file.CheckNonEmpty(full); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := file.CheckNonEmpty(empty); err == nil {
		t.Fatalf("expected error for empty file")
	}
	if err := file.CheckNonEmpty(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	if err := os.WriteFile(src, []byte("new"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := file.Replace(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "new" {
		t.Fatalf("expected replaced content, got %q, %v", data, err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source should be gone after replace")
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("expected original permissions 0644, got %o", info.Mode().Perm())
	}
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	file.RemoveIfExists(path)
	file.RemoveIfExists(path)
	file.RemoveIfExists("")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file to be removed")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "debug: 2\nkwargs:\n  target_level: -16\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	if err := file.LoadConfigFile(v, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.GetInt("debug") != 2 {
		t.Fatalf("expected debug 2, got %d", v.GetInt("debug"))
	}
	if v.GetStringMap("kwargs")["target_level"] != -16 {
		t.Fatalf("expected kwargs.target_level -16, got %v", v.GetStringMap("kwargs"))
	}

	if err := file.LoadConfigFile(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
