package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/stock"
)

// StockModel searches the stock master by name prefix.
type StockModel struct {
	CommonModel
	stockService *stock.Service
	workspaceID  uuid.UUID

	searchInput textinput.Model
	items       []*stock.Item
	status      string
}

func NewStockModel(stockSvc *stock.Service, workspaceID uuid.UUID) StockModel {
	ti := textinput.New()
	ti.Placeholder = "Item name"
	ti.Width = 40
	ti.Prompt = "Search: "
	ti.Focus()

	return StockModel{
		stockService: stockSvc,
		workspaceID:  workspaceID,
		searchInput:  ti,
	}
}

func (m StockModel) Title() string     { return "Stock Items" }
func (m StockModel) ShortHelp() string { return "Type to search | Esc: back" }

func (m StockModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listCmd())
}

func (m StockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

	case stockItemsMsg:
		if msg.query != m.searchInput.Value() {
			return m, nil
		}

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.items = msg.items
		m.status = ""

		if len(m.items) == 0 {
			m.status = "No matching items."
		}

		return m, nil
	}

	before := m.searchInput.Value()

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		return m, tea.Batch(cmd, m.listCmd())
	}

	return m, cmd
}

func (m StockModel) View() string {
	var b strings.Builder

	b.WriteString("Stock Items\n\n" + m.searchInput.View() + "\n\n")

	faint := lipgloss.NewStyle().Faint(true)
	b.WriteString(faint.Render(fmt.Sprintf("%s %s %s %s %s", pad("Name", 30), pad("HSN", 10), pad("Unit", 6), pad("Rate", 14), "GST %")) + "\n")

	for _, it := range m.items {
		b.WriteString(fmt.Sprintf(
			"%s %s %s %s %s\n",
			pad(it.Name, 30), pad(it.HSN, 10), pad(it.Unit, 6), pad(FormatAmount(it.Rate), 14), it.TaxRate,
		))
	}

	if m.status != "" {
		b.WriteString("\n" + faint.Render(m.status) + "\n")
	}

	b.WriteString("\n(Esc to back)")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

type stockItemsMsg struct {
	query string
	items []*stock.Item
	err   error
}

// listCmd lists every item for an empty query and prefix matches otherwise.
func (m StockModel) listCmd() tea.Cmd {
	query := m.searchInput.Value()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if strings.TrimSpace(query) == "" {
			items, err := m.stockService.List(ctx, m.workspaceID)
			return stockItemsMsg{query: query, items: items, err: err}
		}

		items, err := m.stockService.Suggest(ctx, m.workspaceID, query)

		return stockItemsMsg{query: query, items: items, err: err}
	}
}
