package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and the panel border.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Color

	Banner                             string
	SymList, SymItem, SymPrompt        string
	SymAdd, SymClose, SymSwap, SymFail string
	SymHistory, SymDone                string
	Border                             lipgloss.Border
	Colorless                          bool
}

var themes = map[string]Theme{
	"classic": {
		Name:       "classic",
		Title:      "15",
		Muted:      "8",
		Accent:     "12",
		Success:    "42",
		Error:      "9",
		Banner:     strings.Repeat("*", 31),
		SymList:    "📋",
		SymItem:    "💣",
		SymPrompt:  "💬",
		SymAdd:     "➕",
		SymClose:   "➖",
		SymSwap:    "♻️",
		SymFail:    "❌",
		SymHistory: "🧾",
		SymDone:    "✅",
		Border:     lipgloss.NormalBorder(),
	},
	"neon": {
		Name:       "neon",
		Title:      "13",
		Muted:      "8",
		Accent:     "14",
		Success:    "10",
		Error:      "9",
		Banner:     strings.Repeat("─", 31),
		SymList:    "◆",
		SymItem:    "◻",
		SymPrompt:  "›",
		SymAdd:     "+",
		SymClose:   "✔",
		SymSwap:    "⇅",
		SymFail:    "✖",
		SymHistory: "◆",
		SymDone:    "◼",
		Border:     lipgloss.RoundedBorder(),
	},
	"mono": {
		Name:       "mono",
		Banner:     strings.Repeat("*", 31),
		SymList:    "#",
		SymItem:    "-",
		SymPrompt:  ">",
		SymAdd:     "+",
		SymClose:   "x",
		SymSwap:    "~",
		SymFail:    "!",
		SymHistory: "#",
		SymDone:    "x",
		Border:     lipgloss.ASCIIBorder(),
		Colorless:  true,
	},
}

// LookupTheme returns the named theme, falling back to classic.
func LookupTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["classic"]
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }
