// Package tui renders the three demo views: the product explorer, the
// helpdesk browser and the shopping-agent chat.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shopdesk/internal/agent"
	"shopdesk/internal/explorer"
	"shopdesk/internal/helpdesk"
)

type view int

const (
	viewExplorer view = iota
	viewHelpdesk
	viewAgent
)

var viewNames = []string{"Products", "Helpdesk", "Shopping Agent"}

// Deps wires the application services into the UI.
type Deps struct {
	Explorer   *explorer.Service
	Helpdesk   *helpdesk.Service
	Agent      *agent.Agent
	ReplyDelay time.Duration
	Language   string
}

// Model is the root Bubble Tea model; it owns the three sub-views and
// routes events to whichever is active.
type Model struct {
	explorer explorerModel
	helpdesk helpdeskModel
	chat     chatModel
	active   view
	width    int
	height   int
	ready    bool
}

// New creates the root model with the explorer view focused.
func New(deps Deps) Model {
	lang := deps.Language
	if lang == "" {
		lang = "en"
	}
	return Model{
		explorer: newExplorerModel(deps.Explorer, lang),
		helpdesk: newHelpdeskModel(deps.Helpdesk),
		chat:     newChatModel(deps.Agent, deps.ReplyDelay),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.explorer.Init(), m.helpdesk.Init(), m.chat.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		body := msg.Height - 3 // tab bar + spacer + footer
		m.explorer = m.explorer.resize(msg.Width, body)
		m.helpdesk = m.helpdesk.resize(msg.Width, body)
		m.chat = m.chat.resize(msg.Width, body)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyTab {
			m.active = (m.active + 1) % 3
			return m, nil
		}
		if msg.Type == tea.KeyShiftTab {
			m.active = (m.active + 2) % 3
			return m, nil
		}
	}
	var cmd tea.Cmd
	switch m.active {
	case viewExplorer:
		m.explorer, cmd = m.explorer.update(msg)
	case viewHelpdesk:
		m.helpdesk, cmd = m.helpdesk.update(msg)
	case viewAgent:
		m.chat, cmd = m.chat.update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var body string
	switch m.active {
	case viewExplorer:
		body = m.explorer.view()
	case viewHelpdesk:
		body = m.helpdesk.view()
	case viewAgent:
		body = m.chat.view()
	}
	return m.tabBar() + "\n" + body + "\n" + footerStyle.Render("tab: switch view • ctrl+c: quit")
}

func (m Model) tabBar() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("10"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
