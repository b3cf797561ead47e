package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used by the calculator. Each
// stream gets its own renderer so the color profile follows the writer being
// printed to, not os.Stdout.

var noColor bool

// SetNoColor forces plain output on every stream when disabled is true.
func SetNoColor(disabled bool) {
	noColor = disabled
}

// Styles renders calculator output for a single stream.
type Styles struct {
	banner lipgloss.Style
	prompt lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
}

// For returns the styles for w.
func For(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		banner: r.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true),
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("252")), // Light Gray
		result: r.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true),
		err: r.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),
	}
}

// Banner renders the session header.
func (s Styles) Banner(title string) string {
	return s.banner.Render("--- " + title + " ---")
}

// Prompt renders a prompt label.
func (s Styles) Prompt(label string) string {
	return s.prompt.Render(label)
}

// Result renders a successful equation line.
func (s Styles) Result(line string) string {
	return s.result.Render(line)
}

// Error renders "[ERROR] <msg>".
func (s Styles) Error(msg string) string {
	return s.err.Render("[ERROR] " + msg)
}

// Banner renders the session header for w.
func Banner(w io.Writer, title string) string { return For(w).Banner(title) }

// Prompt renders a prompt label for w.
func Prompt(w io.Writer, label string) string { return For(w).Prompt(label) }

// Result renders an equation line for w.
func Result(w io.Writer, line string) string { return For(w).Result(line) }

// Error renders "[ERROR] <msg>" for w.
func Error(w io.Writer, msg string) string { return For(w).Error(msg) }
