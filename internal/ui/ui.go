// Package ui renders styled terminal output for the nextforge CLI.
//
// A Printer wraps a pair of writers (stdout, stderr) with a set of
// lipgloss styles. Color support is detected from the environment via
// termenv, so piped output and NO_COLOR terminals get plain text.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const banner = `
  ╔╗╔┌─┐─┐ ┬┌┬┐╔═╗┌─┐┬─┐┌─┐┌─┐
  ║║║├┤ ┌┴┬┘ │ ╠╣ │ │├┬┘│ ┬├┤
  ╝╚╝└─┘┴ └─ ┴ ╚  └─┘┴└─└─┘└─┘
`

// Styles holds the lipgloss styles used across the CLI.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() *Styles {
	return &Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles returns a style set that renders text unmodified.
func PlainStyles() *Styles {
	return &Styles{
		Header:  lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}

// ColorEnabled reports whether the environment supports colored output.
func ColorEnabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Printer writes styled CLI output.
type Printer struct {
	stdout io.Writer
	stderr io.Writer
	styles *Styles
}

// New creates a Printer on the given writers, detecting color support
// from the environment.
func New(stdout, stderr io.Writer) *Printer {
	styles := DefaultStyles()
	if !ColorEnabled() {
		styles = PlainStyles()
	}
	return NewWithStyles(stdout, stderr, styles)
}

// NewWithStyles creates a Printer with an explicit style set.
func NewWithStyles(stdout, stderr io.Writer, styles *Styles) *Printer {
	return &Printer{stdout: stdout, stderr: stderr, styles: styles}
}

// Default returns a Printer on os.Stdout and os.Stderr.
func Default() *Printer {
	return New(os.Stdout, os.Stderr)
}

// Styles returns the printer's style set.
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Writer returns the printer's stdout writer.
func (p *Printer) Writer() io.Writer {
	return p.stdout
}

// ErrWriter returns the printer's stderr writer.
func (p *Printer) ErrWriter() io.Writer {
	return p.stderr
}

// Printf writes formatted output to stdout.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.stdout, format, args...)
}

// Println writes a line to stdout.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.stdout, args...)
}

// Banner prints the nextforge ASCII art banner.
func (p *Printer) Banner() {
	fmt.Fprint(p.stdout, p.styles.Header.Render(banner)+"\n")
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.stdout, "%s %s\n", p.styles.Success.Render("✓"), fmt.Sprintf(format, args...))
}

// Info prints an indented info message.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.stdout, "  %s\n", fmt.Sprintf(format, args...))
}

// Muted prints an indented low-emphasis message.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintf(p.stdout, "  %s\n", p.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a warning message.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.stdout, "%s %s\n", p.styles.Warning.Render("⚠"), fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.stderr, "%s %s\n", p.styles.Error.Render("✗"), fmt.Sprintf(format, args...))
}

// Step prints a progress line for a named setup step.
func (p *Printer) Step(index, total int, name, description string) {
	fmt.Fprintf(p.stdout, "%s %s %s\n",
		p.styles.Info.Render(fmt.Sprintf("[%d/%d]", index, total)),
		p.styles.Bold.Render(name),
		p.styles.Muted.Render(description),
	)
}
