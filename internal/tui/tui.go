// Package tui is a Bubble Tea front-end over the same command language
// as the line loop: the user still types "add ...", "close 2" and so on.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/command"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/ui"
)

type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Submit, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model drives one session. A storage failure quits the program and is
// kept in err for Run to return.
type Model struct {
	sess  *session.Session
	p     *ui.Printer
	input textinput.Model
	keys  keyMap
	help  help.Model

	status  string
	history string
	err     error
	done    bool
}

// New builds a focused model for sess.
func New(sess *session.Session, p *ui.Printer) Model {
	ti := textinput.New()
	ti.Prompt = p.PromptLine(command.Keywords)
	ti.Placeholder = "add buy milk"
	ti.Focus()
	return Model{
		sess:  sess,
		p:     p,
		input: ti,
		keys:  defaultKeys(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	res, err := m.sess.Apply(command.Parse(line))
	if err != nil {
		m.err = err
		m.done = true
		return m, tea.Quit
	}

	t := m.p.Theme()
	m.history = ""
	switch res.Kind {
	case session.Exited:
		m.done = true
		return m, tea.Quit
	case session.Added:
		m.status = m.p.OKLine(t.SymAdd, res.Message)
	case session.Closed:
		m.status = m.p.OKLine(t.SymClose, res.Message)
	case session.Swapped:
		m.status = m.p.OKLine(t.SymSwap, res.Message)
	case session.Listed:
		m.status = ""
		m.history = m.p.HistoryView(res.History)
	default:
		m.status = m.p.FailLine(res.Message)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if m.history != "" {
		b.WriteString(m.history + "\n\n")
	}
	b.WriteString(m.p.ListView(m.sess.Items(), len(m.sess.Closed())))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Err is the storage failure that ended the program, if any.
func (m Model) Err() error { return m.err }

// Run starts the program and blocks until the user quits.
func Run(sess *session.Session, p *ui.Printer, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(New(sess, p), opts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
