// Package ui formats the line-oriented progress output of the CLI. Status
// tags follow the "[ OK ]" / "[SKIP]" convention and are colored with
// lipgloss when the destination is a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#E53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#8A94A6")
)

// Status tags.
const (
	TagOK   = "[ OK ]"
	TagSkip = "[SKIP]"
	TagMiss = "[MISS]"
	TagWarn = "[WARN]"
	TagFail = "[FAIL]"
	TagFix  = "[FIX ]"
)

// Printer writes progress lines to a single destination.
type Printer struct {
	w     io.Writer
	color bool

	ok, skip, warn, fail, info, bold lipgloss.Style
}

// NewPrinter returns a Printer writing to w. When color is false, or w is
// not a terminal, output is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		color: color,
		ok:    r.NewStyle().Foreground(colorSuccess).Bold(true),
		skip:  r.NewStyle().Foreground(colorMuted),
		warn:  r.NewStyle().Foreground(colorWarning).Bold(true),
		fail:  r.NewStyle().Foreground(colorError).Bold(true),
		info:  r.NewStyle().Foreground(colorInfo),
		bold:  r.NewStyle().Bold(true),
	}
}

// Writer returns the underlying destination.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) tagged(s lipgloss.Style, tag, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.render(s, tag), fmt.Sprintf(format, args...))
}

// OK prints an indented success line.
func (p *Printer) OK(format string, args ...any) { p.tagged(p.ok, TagOK, format, args...) }

// Skip prints an indented line for work that was already done.
func (p *Printer) Skip(format string, args ...any) { p.tagged(p.skip, TagSkip, format, args...) }

// Miss prints an indented line for something absent.
func (p *Printer) Miss(format string, args ...any) { p.tagged(p.warn, TagMiss, format, args...) }

// Warn prints an indented warning line.
func (p *Printer) Warn(format string, args ...any) { p.tagged(p.warn, TagWarn, format, args...) }

// Fail prints an indented failure line.
func (p *Printer) Fail(format string, args ...any) { p.tagged(p.fail, TagFail, format, args...) }

// Fix prints an indented line for a repair.
func (p *Printer) Fix(format string, args ...any) { p.tagged(p.info, TagFix, format, args...) }

// Step prints an unindented progress line, e.g. "Scaffolded service: auth".
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(p.ok, "✔"), fmt.Sprintf(format, args...))
}

// Heading prints a bold line.
func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(p.bold, fmt.Sprintf(format, args...)))
}

// Println prints a plain line.
func (p *Printer) Println(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
