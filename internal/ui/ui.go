// Package ui renders audionorm's terminal output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// Out receives regular output, Err receives error reports.
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr

	cyan   = lipgloss.Color("6")
	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	Primary = lipgloss.NewStyle().Foreground(cyan)
	Success = lipgloss.NewStyle().Foreground(green)
	Error   = lipgloss.NewStyle().Foreground(red)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
	Bold    = lipgloss.NewStyle().Bold(true)

	cell = lipgloss.NewStyle().Padding(0, 1)
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Disable colors in non-TTY
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SuccessMsg prints a success message with checkmark.
func SuccessMsg(msg string) {
	fmt.Fprintf(Out, "%s %s\n", Success.Render("✓"), msg)
}

// ErrorMsg prints an error with formatting and optional hints.
func ErrorMsg(title string, err error, hints ...string) {
	fmt.Fprintf(Err, "%s %s\n", Error.Render("✗"), title)
	if err != nil {
		fmt.Fprintf(Err, "  %s\n", Dim.Render(err.Error()))
	}
	for _, hint := range hints {
		fmt.Fprintf(Err, "  %s %s\n", Dim.Render("Hint:"), hint)
	}
}

// WarnMsg prints a warning message.
func WarnMsg(msg string) {
	fmt.Fprintf(Out, "%s %s\n", Warning.Render("!"), msg)
}

// Detail prints indented secondary info with arrow.
func Detail(msg string) {
	fmt.Fprintf(Out, "  %s %s\n", Dim.Render("→"), msg)
}

// Heading prints a bold section title.
func Heading(title string) {
	fmt.Fprintln(Out, Bold.Render(title))
}

// Table prints rows under a header with rounded borders.
func Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Dim).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Inherit(Primary).Bold(true)
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(Out, t.Render())
}

// StatusStyle colors a run status.
func StatusStyle(status string) string {
	switch status {
	case "success":
		return Success.Render(status)
	case "failed":
		return Error.Render(status)
	default:
		return Warning.Render(status)
	}
}
