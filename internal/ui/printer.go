package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
)

// Options select the look of the console output.
type Options struct {
	Theme   string
	NoColor bool
}

// Printer renders the session screen. The *View methods return strings
// so the Bubble Tea front-end can reuse them; the rest write to w.
type Printer struct {
	w     io.Writer
	r     *lipgloss.Renderer
	theme Theme
}

// NewPrinter builds a printer for w. Colour is dropped automatically
// when w is not a terminal.
func NewPrinter(w io.Writer, opts Options) *Printer {
	t := LookupTheme(opts.Theme)
	if opts.NoColor {
		t.Colorless = true
	}
	return &Printer{w: w, r: lipgloss.NewRenderer(w), theme: t}
}

// Theme returns the active theme.
func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) style(c lipgloss.Color) lipgloss.Style {
	s := p.r.NewStyle()
	if p.theme.Colorless || c == "" {
		return s
	}
	return s.Foreground(c)
}

// Clear wipes the screen before the next render.
func (p *Printer) Clear() { Clear(p.w) }

// Print writes s followed by a newline.
func (p *Printer) Print(s string) { fmt.Fprintln(p.w, s) }

// OKLine is a success status line prefixed with sym.
func (p *Printer) OKLine(sym, msg string) string {
	return p.style(p.theme.Success).Render(sym + " " + msg)
}

// FailLine is an error status line.
func (p *Printer) FailLine(msg string) string {
	return p.style(p.theme.Error).Bold(!p.theme.Colorless).Render(p.theme.SymFail + " " + msg)
}

// ListView renders the banner, the numbered active list and, once
// something has been closed, the session progress.
func (p *Printer) ListView(items []model.Item, closed int) string {
	t := p.theme
	var lines []string
	lines = append(lines, p.style(t.Muted).Render(t.Banner))

	header := t.SymList + " " + p.style(t.Title).Bold(!t.Colorless).Render("Todo list:")
	if closed > 0 {
		header += "  " + p.style(t.Muted).Render(
			fmt.Sprintf("closed %d of %d  %s", closed, closed+len(items), ProgressBar(closed, closed+len(items), 20)))
	}
	lines = append(lines, header)

	for i, it := range items {
		idx := p.style(t.Accent).Render(fmt.Sprintf("%d.", i+1))
		lines = append(lines, fmt.Sprintf("%s %s %s", t.SymItem, idx, it.Title))
	}
	return strings.Join(lines, "\n")
}

// PromptLine names the accepted commands.
func (p *Printer) PromptLine(keywords []string) string {
	return fmt.Sprintf("%s Enter command (%s): ", p.theme.SymPrompt, strings.Join(keywords, ", "))
}

// HistoryView frames the closed items in removal order.
func (p *Printer) HistoryView(items []model.Item) string {
	t := p.theme
	lines := []string{t.SymHistory + " " + p.style(t.Title).Bold(!t.Colorless).Render("Completed items:")}
	if len(items) == 0 {
		lines = append(lines, p.style(t.Muted).Render("(none)"))
	}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s %d. %s", t.SymDone, i+1, it.Title))
	}
	return p.panel(lines)
}
