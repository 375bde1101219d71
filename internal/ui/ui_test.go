package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"audionorm/internal/ui"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevErr := ui.Out, ui.Err
	ui.Out, ui.Err = &buf, &buf
	t.Cleanup(func() { ui.Out, ui.Err = prevOut, prevErr })
	return &buf
}

func TestTable(t *testing.T) {
	buf := capture(t)

	ui.Table([]string{"name", "kind"}, [][]string{
		{"target_level", "float"},
		{"dual_mono", "bool"},
	})

	out := buf.String()
	for _, want := range []string{"name", "kind", "target_level", "float", "dual_mono"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestMessages(t *testing.T) {
	buf := capture(t)

	ui.SuccessMsg("done")
	ui.WarnMsg("careful")
	ui.ErrorMsg("failed", errors.New("exit status 1"), "check the binary path")

	out := buf.String()
	for _, want := range []string{"done", "careful", "failed", "exit status 1", "Hint:", "check the binary path"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
