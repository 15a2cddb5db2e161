package ui

import (
	"bytes"
	"go/format"
	"os"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestListView(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Options{Theme: "mono"})
	out := StripANSI(p.ListView(model.FromTitles([]string{"a", "b"}), 0))

	want := []string{
		strings.Repeat("*", 31),
		"# Todo list:",
		"- 1. a",
		"- 2. b",
	}
	if got := strings.Split(out, "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestListViewProgress(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Options{Theme: "mono"})
	out := p.ListView(model.FromTitles([]string{"a"}), 1)
	if !strings.Contains(out, "closed 1 of 2") {
		t.Errorf("expected progress in header, got %q", out)
	}
	if !strings.Contains(out, " 50%") {
		t.Errorf("expected percentage in header, got %q", out)
	}
}

func TestHistoryView(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Options{Theme: "classic", NoColor: true})
	out := p.HistoryView(model.FromTitles([]string{"b", "a"}))

	first := strings.Index(out, "✅ 1. b")
	second := strings.Index(out, "✅ 2. a")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected history in removal order, got:\n%s", out)
	}
	if !strings.Contains(out, "Completed items:") {
		t.Errorf("expected header, got:\n%s", out)
	}

	empty := p.HistoryView(nil)
	if !strings.Contains(empty, "(none)") {
		t.Errorf("expected empty marker, got:\n%s", empty)
	}
}

func TestPromptLine(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Options{Theme: "mono"})
	got := p.PromptLine([]string{"add", "close", "exit", "swap", "history"})
	if got != "> Enter command (add, close, exit, swap, history): " {
		t.Errorf("unexpected prompt %q", got)
	}
}

func TestStatusLinesWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Theme: "neon", NoColor: true})
	p.Print(p.OKLine("+", "Added item: x"))
	p.Print(p.FailLine("Invalid index"))

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape codes, got %q", out)
	}
	if out != "+ Added item: x\n✖ Invalid index\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestClear(t *testing.T) {
	var buf bytes.Buffer
	Clear(&buf)
	if buf.String() != "\x1b[2J\x1b[H" {
		t.Errorf("unexpected clear sequence %q", buf.String())
	}
	if StripANSI(buf.String()) != "" {
		t.Error("StripANSI should remove the clear sequence")
	}
}

func TestLookupTheme(t *testing.T) {
	if got := LookupTheme(" NEON ").Name; got != "neon" {
		t.Errorf("expected neon, got %s", got)
	}
	if got := LookupTheme("unknown").Name; got != "classic" {
		t.Errorf("expected classic fallback, got %s", got)
	}
	if !LookupTheme("mono").Colorless {
		t.Error("mono must be colorless")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 5, "░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 4, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestThemeSourceFormatted(t *testing.T) {
	src, err := os.ReadFile("theme.go")
	if err != nil {
		t.Fatal(err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !bytes.Equal(src, formatted) {
		t.Error("theme.go is not gofmt-formatted")
	}
}

func TestThemeNamesResolve(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := LookupTheme(name).Name; got != name {
			t.Errorf("ThemeNames lists %q but LookupTheme returns %q", name, got)
		}
	}
}
