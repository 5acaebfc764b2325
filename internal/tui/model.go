package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fatfinder/internal/picker"
	"fatfinder/pkg/utils"
)

// Options configures the picker program.
type Options struct {
	Root          string
	HumanReadable bool
	DryRun        bool
	Keys          picker.KeyMap
}

type model struct {
	session  *picker.Session
	keys     picker.KeyMap
	help     help.Model
	renderer picker.Renderer
	root     string
	human    bool
	dryRun   bool

	outcome picker.Outcome
	done    bool
}

func newModel(session *picker.Session, opts Options) model {
	return model{
		session:  session,
		keys:     opts.Keys,
		help:     help.New(),
		renderer: picker.NewRenderer(opts.HumanReadable),
		root:     opts.Root,
		human:    opts.HumanReadable,
		dryRun:   opts.DryRun,
	}
}

// Run drives session until the user commits or quits and reports which.
// Deleting the marked files is left to the caller.
func Run(session *picker.Session, opts Options) (picker.Outcome, error) {
	p := tea.NewProgram(newModel(session, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return picker.Outcome{}, err
	}
	m, ok := final.(model)
	if !ok {
		return picker.Outcome{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.outcome, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Commit):
			m.outcome = picker.Outcome{Committed: true, Marked: m.session.Marked()}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.session.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.session.MoveDown()
		case key.Matches(msg, m.keys.PageUp):
			m.session.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.session.PageDown()
		case key.Matches(msg, m.keys.Toggle):
			m.session.ToggleMark()
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.headerText())
	_ = m.session.Render(&b, m.renderer)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m model) headerText() string {
	marked := m.session.Marked()
	mode := ""
	if m.dryRun {
		mode = dryRunStyle.Render(" [dry-run]")
	}
	line := fmt.Sprintf("%s  Files: %d  Marked: %d (%s)",
		m.root, m.session.Len(), len(marked), utils.FormatSize(m.session.MarkedSize(), m.human))
	return headerStyle.Render(line) + mode + "\n\n"
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dryRunStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
)
