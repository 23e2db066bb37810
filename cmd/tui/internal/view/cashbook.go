package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/cashbook"
	"github.com/MrJamesThe3rd/khata/internal/money"
)

// CashbookModel shows one day of the workspace's cashbook.
type CashbookModel struct {
	CommonModel
	cashbookService *cashbook.Service
	workspaceID     uuid.UUID

	dateInput textinput.Model
	entry     *cashbook.Entry

	loading bool
	status  string
}

func NewCashbookModel(cashbookSvc *cashbook.Service, workspaceID uuid.UUID) CashbookModel {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = "Day: "
	ti.SetValue(FormatDate(time.Now()))
	ti.Focus()

	return CashbookModel{
		cashbookService: cashbookSvc,
		workspaceID:     workspaceID,
		dateInput:       ti,
	}
}

func (m CashbookModel) Title() string     { return "Cashbook" }
func (m CashbookModel) ShortHelp() string { return "Enter: load day | Esc: back" }

func (m CashbookModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadEntryCmd(m.dateInput.Value()))
}

func (m CashbookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "enter":
			m.loading = true
			return m, m.loadEntryCmd(m.dateInput.Value())
		}

	case loadEntryMsg:
		m.loading = false
		m.entry = msg.entry

		switch {
		case errors.Is(msg.err, cashbook.ErrNotFound):
			m.status = "Nothing recorded for that day."
		case msg.err != nil:
			m.status = fmt.Sprintf("Error: %v", msg.err)
		default:
			m.status = ""
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)

	return m, cmd
}

func (m CashbookModel) View() string {
	var b strings.Builder

	b.WriteString("Cashbook\n\n" + m.dateInput.View() + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.entry != nil:
		b.WriteString(rowsView("Income", m.entry.IncomeRows, m.entry.IncomeTotal))
		b.WriteString("\n")
		b.WriteString(rowsView("Expense", m.entry.ExpenseRows, m.entry.ExpenseTotal))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(totalRow("Balance", FormatAmount(m.entry.Balance))))
	}

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.status) + "\n")
	}

	b.WriteString("\n(Enter to load, Esc to back)")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func rowsView(title string, rows []cashbook.Row, total decimal.Decimal) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Underline(true).Render(title) + "\n")

	for _, r := range rows {
		b.WriteString(totalRow("  "+r.Particulars, FormatAmount(money.Parse(r.Amount))))
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render(totalRow("  Total", FormatAmount(total))))

	return b.String()
}

type loadEntryMsg struct {
	entry *cashbook.Entry
	err   error
}

func (m CashbookModel) loadEntryCmd(day string) tea.Cmd {
	return func() tea.Msg {
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(day))
		if err != nil {
			return loadEntryMsg{err: errors.New("date must be YYYY-MM-DD")}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		entry, err := m.cashbookService.Get(ctx, m.workspaceID, date)

		return loadEntryMsg{entry: entry, err: err}
	}
}
