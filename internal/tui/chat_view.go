package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"shopdesk/internal/agent"
	"shopdesk/internal/domain"
)

type agentReplyMsg struct {
	session agent.Session
	reply   domain.ChatMessage
}

type chatModel struct {
	agent      *agent.Agent
	session    agent.Session
	delay      time.Duration
	input      textinput.Model
	viewport   viewport.Model
	spin       spinner.Model
	transcript []domain.ChatMessage
	processing bool
}

func newChatModel(a *agent.Agent, delay time.Duration) chatModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about products, place orders, or check stock..."
	ti.Focus()
	ti.CharLimit = 0
	return chatModel{
		agent:    a,
		delay:    delay,
		input:    ti,
		viewport: viewport.New(0, 0),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m chatModel) Init() tea.Cmd { return nil }

func (m chatModel) resize(width, height int) chatModel {
	_, frame := boxStyle.GetFrameSize()
	m.viewport.Width = max(20, width-2)
	m.viewport.Height = max(3, height-frame-4)
	m.viewport.SetContent(m.renderTranscript())
	return m
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// One utterance is fully handled before the next is accepted.
		if msg.Type == tea.KeyEnter && !m.processing {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, m.agent.UserMessage(text))
			m.input.SetValue("")
			m.processing = true
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, tea.Batch(m.spin.Tick, m.handleCmd(text))
		}
	case agentReplyMsg:
		m.processing = false
		m.session = msg.session
		m.transcript = append(m.transcript, msg.reply)
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	case spinner.TickMsg:
		if m.processing {
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

// handleCmd pauses for the configured delay before producing the reply.
// The timer has no early-cancel contract.
func (m chatModel) handleCmd(text string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		if m.delay > 0 {
			time.Sleep(m.delay)
		}
		updated, reply := m.agent.Handle(session, text)
		return agentReplyMsg{session: updated, reply: reply}
	}
}

func (m chatModel) view() string {
	status := statusStyle.Render(m.cartLine())
	if m.processing {
		status = m.spin.View() + " " + statusStyle.Render("Thinking...")
	}
	return boxStyle.Render(m.viewport.View()) + "\n" + boxStyle.Render(m.input.View()) + "\n" + status
}

func (m chatModel) cartLine() string {
	if len(m.session.Cart) == 0 && m.session.CurrentOrder == nil {
		return `Cart is empty. Try "Do you have Chai in stock?" or "Can you recommend some beverages?"`
	}
	var parts []string
	if len(m.session.Cart) > 0 {
		items := make([]string, len(m.session.Cart))
		for i, line := range m.session.Cart {
			items[i] = fmt.Sprintf("%dx %s", line.Quantity, line.Product.Name)
		}
		parts = append(parts, fmt.Sprintf("Cart: %s ($%s)", strings.Join(items, ", "), m.session.CartTotal().StringFixed(2)))
	}
	if o := m.session.CurrentOrder; o != nil {
		parts = append(parts, fmt.Sprintf("Order #%s: %s, $%s", o.ID, o.Status, o.Total.StringFixed(2)))
	}
	return strings.Join(parts, " • ")
}

func (m chatModel) renderTranscript() string {
	if len(m.transcript) == 0 {
		return dimStyle.Render("Ask the shopping assistant anything about the catalog.")
	}
	var b strings.Builder
	for _, msg := range m.transcript {
		label := "Assistant"
		if msg.Role == domain.RoleUser {
			label = "You"
		} else if msg.Role == domain.RoleSystem {
			label = "System"
		}
		b.WriteString(titleStyle.Render(label) + " " + dimStyle.Render(msg.Timestamp.Format("15:04:05")) + "\n")
		b.WriteString(msg.Content + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
