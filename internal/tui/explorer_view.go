package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"shopdesk/internal/domain"
	"shopdesk/internal/explorer"
)

type productResultsMsg struct {
	query    string
	products []domain.Product
}

type explorerModel struct {
	service   *explorer.Service
	lang      string
	input     textinput.Model
	viewport  viewport.Model
	spin      spinner.Model
	products  []domain.Product
	searching bool
	status    string
}

func newExplorerModel(service *explorer.Service, lang string) explorerModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search products with natural language (e.g. 'spicy condiments')"
	ti.Focus()
	ti.CharLimit = 0
	return explorerModel{
		service:  service,
		lang:     lang,
		input:    ti,
		viewport: viewport.New(0, 0),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		status:   "Type a query and press Enter.",
	}
}

func (m explorerModel) Init() tea.Cmd { return textinput.Blink }

func (m explorerModel) resize(width, height int) explorerModel {
	_, frame := boxStyle.GetFrameSize()
	m.viewport.Width = max(20, width-2)
	m.viewport.Height = max(3, height-frame-4)
	m.viewport.SetContent(m.renderProducts())
	return m
}

func (m explorerModel) update(msg tea.Msg) (explorerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && !m.searching {
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.searching = true
			m.status = "Searching with vector embeddings..."
			return m, tea.Batch(m.spin.Tick, m.searchCmd(q))
		}
	case productResultsMsg:
		m.searching = false
		m.products = msg.products
		if len(msg.products) == 0 {
			m.status = fmt.Sprintf("No products found for %q. Try different keywords.", msg.query)
		} else {
			m.status = fmt.Sprintf("Found %d products for %q", len(msg.products), msg.query)
		}
		m.viewport.SetContent(m.renderProducts())
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

func (m explorerModel) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return productResultsMsg{query: query, products: m.service.Search(query, m.lang)}
	}
}

func (m explorerModel) view() string {
	status := statusStyle.Render(m.status)
	if m.searching {
		status = m.spin.View() + " " + status
	}
	return boxStyle.Render(m.viewport.View()) + "\n" + boxStyle.Render(m.input.View()) + "\n" + status
}

func (m explorerModel) renderProducts() string {
	if len(m.products) == 0 {
		return dimStyle.Render("No results yet.")
	}
	var b strings.Builder
	for _, p := range m.products {
		name := p.LocalizedName(m.lang)
		b.WriteString(titleStyle.Render(name))
		b.WriteString(fmt.Sprintf("  [%s]  $%s\n", p.Category, p.Price))
		b.WriteString(p.Description + "\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Supplier: %s • Stock: %d units", p.Supplier, p.StockQuantity)))
		if p.VectorScore != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" • Score: %.3f", *p.VectorScore)))
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
