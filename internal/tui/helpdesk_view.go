package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"shopdesk/internal/domain"
	"shopdesk/internal/helpdesk"
)

type ticketResultsMsg struct {
	query   string
	tickets []domain.HelpdeskTicket
	err     error
}

// priorityCycle and statusCycle are the filter states cycled with
// ctrl+p and ctrl+s; the empty string means "all".
var priorityCycle = []domain.TicketPriority{"", domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}
var statusCycle = []domain.TicketStatus{"", domain.TicketOpen, domain.TicketInProgress, domain.TicketResolved}

type helpdeskModel struct {
	service    *helpdesk.Service
	input      textinput.Model
	viewport   viewport.Model
	spin       spinner.Model
	tickets    []domain.HelpdeskTicket
	cursor     int
	priorityIx int
	statusIx   int
	salesOnly  bool
	showDetail bool
	searching  bool
	status     string
	searchErr  error
}

func newHelpdeskModel(service *helpdesk.Service) helpdeskModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search ticket summaries..."
	ti.Focus()
	ti.CharLimit = 0
	return helpdeskModel{
		service:  service,
		input:    ti,
		viewport: viewport.New(0, 0),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		status:   "Type a query and press Enter. ctrl+p/ctrl+s cycle filters, ctrl+f sales-only, ctrl+o detail.",
	}
}

func (m helpdeskModel) Init() tea.Cmd { return nil }

func (m helpdeskModel) resize(width, height int) helpdeskModel {
	_, frame := boxStyle.GetFrameSize()
	m.viewport.Width = max(20, width-2)
	m.viewport.Height = max(3, height-frame-4)
	m.viewport.SetContent(m.renderTickets())
	return m
}

func (m helpdeskModel) update(msg tea.Msg) (helpdeskModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEnter && !m.searching:
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.searching = true
			m.showDetail = false
			m.status = "Searching summaries with AI embeddings..."
			return m, tea.Batch(m.spin.Tick, m.searchCmd(q))
		case msg.String() == "ctrl+p":
			m.priorityIx = (m.priorityIx + 1) % len(priorityCycle)
			return m.refresh(), nil
		case msg.String() == "ctrl+s":
			m.statusIx = (m.statusIx + 1) % len(statusCycle)
			return m.refresh(), nil
		case msg.String() == "ctrl+f":
			m.salesOnly = !m.salesOnly
			return m.refresh(), nil
		case msg.String() == "ctrl+o":
			m.showDetail = !m.showDetail
			return m.refresh(), nil
		case msg.Type == tea.KeyDown:
			if n := len(m.filtered()); n > 0 {
				m.cursor = (m.cursor + 1) % n
				return m.refresh(), nil
			}
		case msg.Type == tea.KeyUp:
			if n := len(m.filtered()); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				return m.refresh(), nil
			}
		}
	case ticketResultsMsg:
		m.searching = false
		m.searchErr = msg.err
		if msg.err != nil {
			m.status = "Search failed: " + msg.err.Error()
			m.tickets = nil
		} else {
			m.tickets = msg.tickets
			m.cursor = 0
			m.status = fmt.Sprintf("%d tickets for %q (%d need sales)", len(msg.tickets), msg.query, helpdesk.SalesCount(msg.tickets))
		}
		m.viewport.SetContent(m.renderTickets())
		return m, nil
	case spinner.TickMsg:
		if m.searching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m helpdeskModel) refresh() helpdeskModel {
	if n := len(m.filtered()); m.cursor >= n {
		m.cursor = 0
	}
	m.viewport.SetContent(m.renderTickets())
	return m
}

func (m helpdeskModel) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		tickets, err := m.service.Search(query)
		return ticketResultsMsg{query: query, tickets: tickets, err: err}
	}
}

func (m helpdeskModel) filtered() []domain.HelpdeskTicket {
	return helpdesk.Filter(m.tickets, helpdesk.FilterOptions{
		Priority:  priorityCycle[m.priorityIx],
		Status:    statusCycle[m.statusIx],
		SalesOnly: m.salesOnly,
	})
}

func (m helpdeskModel) view() string {
	status := statusStyle.Render(m.status + m.filterSuffix())
	if m.searchErr != nil {
		status = errorStyle.Render(m.status)
	}
	if m.searching {
		status = m.spin.View() + " " + status
	}
	return boxStyle.Render(m.viewport.View()) + "\n" + boxStyle.Render(m.input.View()) + "\n" + status
}

func (m helpdeskModel) filterSuffix() string {
	var parts []string
	if p := priorityCycle[m.priorityIx]; p != "" {
		parts = append(parts, "priority="+string(p))
	}
	if s := statusCycle[m.statusIx]; s != "" {
		parts = append(parts, "status="+string(s))
	}
	if m.salesOnly {
		parts = append(parts, "sales-only")
	}
	if len(parts) == 0 {
		return ""
	}
	return "  [" + strings.Join(parts, " ") + "]"
}

func (m helpdeskModel) renderTickets() string {
	tickets := m.filtered()
	if len(tickets) == 0 {
		return dimStyle.Render("No tickets to show.")
	}
	if m.showDetail && m.cursor < len(tickets) {
		return m.renderDetail(tickets[m.cursor])
	}
	var b strings.Builder
	for i, t := range tickets {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		flags := []string{string(t.Status), string(t.Priority)}
		if t.NeedsSales {
			flags = append(flags, "sales")
		}
		if t.SalesAssigned != "" {
			flags = append(flags, "assigned")
		}
		b.WriteString(marker + titleStyle.Render(t.Title) + "  " + dimStyle.Render("["+strings.Join(flags, ", ")+"]") + "\n")
		b.WriteString("  " + t.Summary + "\n")
		line := fmt.Sprintf("  %s • %s", t.CustomerName, t.CreatedAt.Format("2006-01-02"))
		if t.OrderID != "" {
			line += " • order " + t.OrderID
		}
		b.WriteString(dimStyle.Render(line) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m helpdeskModel) renderDetail(t domain.HelpdeskTicket) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s • %s • %s • tags: %s", t.CustomerName, t.Priority, t.Status, strings.Join(t.Tags, ", "))) + "\n\n")
	b.WriteString("Summary: " + t.Summary + "\n\n")
	for _, msg := range t.Conversation {
		b.WriteString(fmt.Sprintf("%s (%s): %s\n", msg.SenderName, msg.Timestamp.Format("Jan 2"), msg.Content))
	}
	return strings.TrimRight(b.String(), "\n")
}
