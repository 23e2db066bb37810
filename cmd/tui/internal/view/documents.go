package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

type documentsState int

const (
	documentsStateBrowse documentsState = iota
	documentsStatePeriod
)

// OpenDocumentMsg asks for doc to be opened in the editor.
type OpenDocumentMsg struct {
	Doc document.Document
}

type DocumentsModel struct {
	CommonModel
	docService  *document.Service
	workspaceID uuid.UUID

	state  documentsState
	table  table.Model
	picker PeriodPicker
	docs   []*document.Document

	directionIdx int
	statusIdx    int
	period       PeriodSelectedMsg

	filter  document.ListFilter
	loading bool
	err     error
	status  string
}

var (
	directionLabels = []string{"All", "Purchases", "Sales"}
	statusLabels    = []string{"All", "Pending", "Paid"}
)

func NewDocumentsModel(docSvc *document.Service, workspaceID uuid.UUID) DocumentsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 14},
		{Title: "Number", Width: 14},
		{Title: "Party", Width: 30},
		{Title: "Status", Width: 8},
		{Title: "Grand Total", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DocumentsModel{
		docService:  docSvc,
		workspaceID: workspaceID,
		table:       t,
		picker:      NewPeriodPicker(PeriodThisMonth),
		period:      PeriodSelectedMsg{Period: PeriodAll, All: true},
		filter:      document.ListFilter{WorkspaceID: workspaceID},
		loading:     true,
	}
}

func (m DocumentsModel) Title() string { return "Bills & Invoices" }

func (m DocumentsModel) ShortHelp() string {
	if m.state == documentsStatePeriod {
		return "Up/Down: choose | Enter: select | Esc: cancel"
	}

	return "Esc: back | Enter: open | t: type | s: status | p: period | x: delete | r: refresh"
}

func (m DocumentsModel) Init() tea.Cmd {
	return m.loadDocsCmd()
}

func (m DocumentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDocsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.docs = msg.docs
		m.refreshTable()

		return m, nil

	case deleteDocMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Deleted."

		return m, m.loadDocsCmd()

	case PeriodSelectedMsg:
		m.period = msg
		m.state = documentsStateBrowse
		m.applyFilter()
		m.table.Focus()

		return m, m.loadDocsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == documentsStatePeriod {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
			m.state = documentsStateBrowse
			m.table.Focus()

			return m, nil
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadDocsCmd()
		case "t":
			m.directionIdx = (m.directionIdx + 1) % len(directionLabels)
			m.applyFilter()

			return m, m.loadDocsCmd()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(statusLabels)
			m.applyFilter()

			return m, m.loadDocsCmd()
		case "p":
			m.state = documentsStatePeriod
			m.picker = NewPeriodPicker(m.period.Period)
			m.table.Blur()

			return m, nil
		case "enter":
			if doc := m.selected(); doc != nil {
				return m, func() tea.Msg { return OpenDocumentMsg{Doc: *doc} }
			}

			return m, nil
		case "x":
			if doc := m.selected(); doc != nil {
				return m, m.deleteCmd(doc.ID)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DocumentsModel) selected() *document.Document {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.docs) {
		return nil
	}

	return m.docs[idx]
}

func (m DocumentsModel) View() string {
	if m.state == documentsStatePeriod {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading documents...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	period := m.period.Period.String()
	if m.period.Period == PeriodCustom {
		period = fmt.Sprintf("%s to %s", FormatDate(m.period.Start), FormatDate(m.period.End))
	}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [s] Status: %s | [p] Period: %s",
		activeStyle(directionLabels[m.directionIdx]),
		activeStyle(statusLabels[m.statusIdx]),
		activeStyle(period),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *DocumentsModel) applyFilter() {
	switch m.directionIdx {
	case 1:
		m.filter.Direction = new(document.DirectionPurchase)
	case 2:
		m.filter.Direction = new(document.DirectionSale)
	default:
		m.filter.Direction = nil
	}

	switch m.statusIdx {
	case 1:
		m.filter.Status = new(document.StatusPending)
	case 2:
		m.filter.Status = new(document.StatusPaid)
	default:
		m.filter.Status = nil
	}

	if m.period.All {
		m.filter.StartDate = nil
		m.filter.EndDate = nil

		return
	}

	start, end := m.period.Start, m.period.End
	m.filter.StartDate = &start
	m.filter.EndDate = &end
}

func (m *DocumentsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.docs))
	for _, doc := range m.docs {
		rows = append(rows, table.Row{
			FormatDate(doc.Date),
			doc.Direction.Label(),
			doc.DocumentNumber,
			doc.CounterpartyName,
			string(doc.Status),
			FormatAmount(doc.GrandTotal),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadDocsMsg struct {
	docs []*document.Document
	err  error
}

func (m DocumentsModel) loadDocsCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		docs, err := m.docService.List(ctx, filter)

		return loadDocsMsg{docs: docs, err: err}
	}
}

type deleteDocMsg struct {
	err error
}

func (m DocumentsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteDocMsg{err: m.docService.Delete(ctx, m.workspaceID, id)}
	}
}
