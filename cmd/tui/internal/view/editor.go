package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/party"
	"github.com/MrJamesThe3rd/khata/internal/stock"
)

type editorState int

const (
	editorStateLoading editorState = iota
	editorStateGrid
	editorStateHeader
)

type cellKind int

const (
	cellLine cellKind = iota
	cellSubtotal
	cellTax
	cellDuty
)

type lineColumn struct {
	field document.Field
	title string
	width int
}

var lineColumns = []lineColumn{
	{document.FieldItemName, "Item", 24},
	{document.FieldHSNCode, "HSN", 10},
	{document.FieldQty, "Qty", 8},
	{document.FieldRate, "Rate", 10},
	{document.FieldTaxRate, "GST %", 6},
	{document.FieldUnit, "Unit", 6},
}

// cell is one focusable input of the editor. Line cells carry the line id
// and column; duty cells carry the duty id.
type cell struct {
	kind   cellKind
	lineID string
	field  document.Field
	dutyID string
	input  textinput.Model
}

// EditorModel edits one purchase bill or sales invoice. Every keystroke is
// pushed through the document engine so totals are always current.
type EditorModel struct {
	CommonModel
	docService   *document.Service
	stockService *stock.Service
	partyService *party.Service
	workspaceID  uuid.UUID

	state     editorState
	direction document.Direction
	doc       document.Document
	lookup    document.StockLookup
	cells     []cell
	focus     int
	form      *huh.Form
	status    string
	err       error

	// Header form bindings
	formParty  string
	formTaxID  string
	formNumber string
	formDate   string
	formDesc   string
	formGST    document.GSTType
	formStatus document.Status
}

func NewEditorModel(
	docSvc *document.Service,
	stockSvc *stock.Service,
	partySvc *party.Service,
	workspaceID uuid.UUID,
	direction document.Direction,
) EditorModel {
	return EditorModel{
		docService:   docSvc,
		stockService: stockSvc,
		partyService: partySvc,
		workspaceID:  workspaceID,
		state:        editorStateLoading,
		direction:    direction,
	}
}

// WithDocument returns an editor that opens doc instead of starting a blank
// document.
func (m EditorModel) WithDocument(doc document.Document) EditorModel {
	m.doc = doc
	m.direction = doc.Direction
	m.state = editorStateGrid
	m.rebuildCells()

	return m
}

func (m EditorModel) Title() string { return m.direction.Label() }

func (m EditorModel) ShortHelp() string {
	if m.state == editorStateHeader {
		return "Enter/Tab: navigate form | Esc: cancel"
	}

	return "Tab/Shift+Tab: move | Ctrl+N: add line | Ctrl+D: remove line | Ctrl+E: header | Ctrl+S: save | Esc: back"
}

func (m EditorModel) Init() tea.Cmd {
	if m.state == editorStateLoading {
		return tea.Batch(m.newDocumentCmd(), m.loadLookupCmd())
	}

	return m.loadLookupCmd()
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorDocMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.doc = msg.doc
		m.state = editorStateGrid
		m.rebuildCells()

		return m, textinput.Blink

	case editorLookupMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Stock items unavailable: %v", msg.err)
			return m, nil
		}

		m.lookup = msg.lookup

		return m, nil

	case editorPartyMsg:
		if msg.taxID != "" && m.doc.CounterpartyTaxID == "" {
			m.doc.CounterpartyTaxID = msg.taxID
		}

		return m, nil

	case editorSubmitMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Not saved: %v", msg.err)
			return m, nil
		}

		m.doc = *msg.doc
		m.status = fmt.Sprintf("Saved %s %s.", m.Title(), m.doc.DocumentNumber)
		m.syncCells()

		return m, nil
	}

	switch m.state {
	case editorStateGrid:
		return m.updateGrid(msg)
	case editorStateHeader:
		return m.updateHeader(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m EditorModel) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "tab", "down":
			m.moveFocus(1)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, textinput.Blink
		case "ctrl+n":
			m.doc = document.AddLineItem(m.doc)
			m.syncCells()
			m.focusLine(m.doc.Lines[len(m.doc.Lines)-1].ID)

			return m, textinput.Blink
		case "ctrl+d":
			if c := m.focused(); c != nil && c.kind == cellLine {
				m.doc = document.RemoveLineItem(m.doc, c.lineID)
				m.syncCells()
			}

			return m, nil
		case "ctrl+e":
			return m.enterHeader()
		case "ctrl+s":
			return m, m.submitCmd()
		}
	}

	c := m.focused()
	if c == nil {
		return m, nil
	}

	before := c.input.Value()

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)

	if c.input.Value() != before {
		m.apply(*c)
		m.syncCells()
	}

	return m, cmd
}

// apply feeds the focused cell's text into the engine.
func (m *EditorModel) apply(c cell) {
	raw := c.input.Value()

	switch c.kind {
	case cellLine:
		m.doc = document.UpdateLineItem(m.doc, c.lineID, c.field, raw, m.lookup)
	case cellSubtotal:
		m.doc = document.Recompute(m.doc, document.SubtotalOverride(raw))
	case cellTax:
		m.doc = document.Recompute(m.doc, document.TaxOverride(raw))
	case cellDuty:
		m.doc = document.Recompute(m.doc, document.DutyOverride(c.dutyID, raw))
	}
}

func (m *EditorModel) focused() *cell {
	if m.focus < 0 || m.focus >= len(m.cells) {
		return nil
	}

	return &m.cells[m.focus]
}

func (m *EditorModel) moveFocus(delta int) {
	if len(m.cells) == 0 {
		return
	}

	m.cells[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.cells)) % len(m.cells)
	m.cells[m.focus].input.Focus()
	m.cells[m.focus].input.CursorEnd()
}

func (m *EditorModel) focusLine(lineID string) {
	for i, c := range m.cells {
		if c.kind == cellLine && c.lineID == lineID {
			m.moveFocus(i - m.focus)
			return
		}
	}
}

func newCell(kind cellKind, width int) cell {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = width

	return cell{kind: kind, input: ti}
}

// layoutKey identifies the shape of the grid: which lines and duties have
// cells.
func layoutKey(doc document.Document) string {
	var b strings.Builder

	for _, l := range doc.Lines {
		b.WriteString("l:" + l.ID + ";")
	}

	for _, d := range doc.Duties {
		b.WriteString("d:" + d.ID + ";")
	}

	return b.String()
}

func (m EditorModel) cellsKey() string {
	var b strings.Builder

	for _, c := range m.cells {
		switch c.kind {
		case cellLine:
			if c.field == lineColumns[0].field {
				b.WriteString("l:" + c.lineID + ";")
			}
		case cellDuty:
			b.WriteString("d:" + c.dutyID + ";")
		}
	}

	return b.String()
}

// rebuildCells lays out one input per editable value of the document.
func (m *EditorModel) rebuildCells() {
	cells := make([]cell, 0, len(m.doc.Lines)*len(lineColumns)+2+len(m.doc.Duties))

	for _, l := range m.doc.Lines {
		for _, col := range lineColumns {
			c := newCell(cellLine, col.width)
			c.lineID = l.ID
			c.field = col.field
			cells = append(cells, c)
		}
	}

	cells = append(cells, newCell(cellSubtotal, 14), newCell(cellTax, 14))

	for _, d := range m.doc.Duties {
		c := newCell(cellDuty, 14)
		c.dutyID = d.ID
		cells = append(cells, c)
	}

	m.cells = cells
	m.focus = min(m.focus, len(m.cells)-1)
	m.focus = max(m.focus, 0)

	for i := range m.cells {
		m.cells[i].input.SetValue(m.valueOf(m.cells[i]))
	}

	m.cells[m.focus].input.Focus()
	m.cells[m.focus].input.CursorEnd()
}

// syncCells refreshes every cell but the focused one from the document,
// rebuilding the grid when lines or duties were added or removed.
func (m *EditorModel) syncCells() {
	if m.cellsKey() != layoutKey(m.doc) {
		m.rebuildCells()
		return
	}

	for i := range m.cells {
		if i == m.focus {
			continue
		}

		m.cells[i].input.SetValue(m.valueOf(m.cells[i]))
	}
}

func (m EditorModel) valueOf(c cell) string {
	switch c.kind {
	case cellSubtotal:
		return m.doc.TaxableSubtotal.StringFixed(2)
	case cellTax:
		return m.doc.TaxTotal.StringFixed(2)
	case cellDuty:
		for _, d := range m.doc.Duties {
			if d.ID == c.dutyID {
				return d.Amount.StringFixed(2)
			}
		}
	case cellLine:
		for _, l := range m.doc.Lines {
			if l.ID != c.lineID {
				continue
			}

			switch c.field {
			case document.FieldItemName:
				return l.ItemName
			case document.FieldHSNCode:
				return l.HSNCode
			case document.FieldQty:
				return l.Qty
			case document.FieldRate:
				return l.Rate
			case document.FieldTaxRate:
				return l.TaxRatePercent.String()
			case document.FieldUnit:
				return l.Unit
			}
		}
	}

	return ""
}

func (m EditorModel) enterHeader() (tea.Model, tea.Cmd) {
	m.formParty = m.doc.CounterpartyName
	m.formTaxID = m.doc.CounterpartyTaxID
	m.formNumber = m.doc.DocumentNumber
	m.formDate = FormatDate(m.doc.Date)
	m.formDesc = m.doc.Description
	m.formGST = m.doc.GSTType
	m.formStatus = m.doc.Status

	partyTitle := "Vendor"
	if m.direction == document.DirectionSale {
		partyTitle = "Customer"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("party").
				Title(partyTitle).
				Value(&m.formParty),

			huh.NewInput().
				Key("tax_id").
				Title("GSTIN (filled from the party roster when blank)").
				Value(&m.formTaxID),

			huh.NewInput().
				Key("number").
				Title("Bill Number").
				Value(&m.formNumber),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return errors.New("date must be YYYY-MM-DD")
					}

					return nil
				}),

			huh.NewSelect[document.GSTType]().
				Key("gst_type").
				Title("GST").
				Options(
					huh.NewOption("Intra-State (CGST + SGST)", document.GSTIntraState),
					huh.NewOption("Inter-State (IGST)", document.GSTInterState),
				).
				Value(&m.formGST),

			huh.NewSelect[document.Status]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Pending", document.StatusPending),
					huh.NewOption("Paid", document.StatusPaid),
				).
				Value(&m.formStatus),

			huh.NewText().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = editorStateHeader

	return m, m.form.Init()
}

func (m EditorModel) updateHeader(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = editorStateGrid
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.doc.CounterpartyName = m.formParty
	m.doc.CounterpartyTaxID = strings.TrimSpace(m.formTaxID)
	m.doc.DocumentNumber = m.formNumber
	m.doc.GSTType = m.formGST
	m.doc.Status = m.formStatus
	m.doc.Description = m.formDesc

	if t, err := time.Parse(time.DateOnly, m.formDate); err == nil {
		m.doc.Date = t
	}

	m.state = editorStateGrid
	m.form = nil

	if m.doc.CounterpartyTaxID == "" && strings.TrimSpace(m.doc.CounterpartyName) != "" {
		return m, m.findPartyCmd(m.doc.CounterpartyName)
	}

	return m, nil
}

func (m EditorModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	switch m.state {
	case editorStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Preparing document...")
	case editorStateHeader:
		return lipgloss.NewStyle().Padding(1).Render(m.Title() + "\n\n" + m.form.View())
	}

	faint := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(m.headerView() + "\n\n")

	titles := make([]string, 0, len(lineColumns)+2)
	for _, col := range lineColumns {
		titles = append(titles, pad(col.title, col.width+1))
	}

	titles = append(titles, pad("Taxable", 14), "Gross")
	b.WriteString(faint.Render(strings.Join(titles, " ")) + "\n")

	cellIdx := 0

	for _, l := range m.doc.Lines {
		parts := make([]string, 0, len(lineColumns)+2)

		for _, col := range lineColumns {
			parts = append(parts, pad(m.cells[cellIdx].input.View(), col.width+1))
			cellIdx++
		}

		parts = append(parts, pad(FormatAmount(l.TaxableAmount), 14), FormatAmount(l.GrossAmount))
		b.WriteString(strings.Join(parts, " ") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(totalRow("Taxable Subtotal", m.cells[cellIdx].input.View()))
	b.WriteString(totalRow("GST", m.cells[cellIdx+1].input.View()))

	split := document.TaxSplit(m.doc)
	if m.doc.GSTType == document.GSTInterState {
		b.WriteString(faint.Render(totalRow("  IGST", FormatAmount(split.IGST))))
	} else {
		b.WriteString(faint.Render(totalRow("  CGST", FormatAmount(split.CGST))))
		b.WriteString(faint.Render(totalRow("  SGST", FormatAmount(split.SGST))))
	}

	for i, d := range m.doc.Duties {
		label := d.Name
		if d.CalcMethod == document.CalcPercentage {
			label = fmt.Sprintf("%s (%s%% on %s)", d.Name, d.Rate, d.ApplyOn)
		}

		b.WriteString(totalRow(label, m.cells[cellIdx+2+i].input.View()))
	}

	b.WriteString(totalRow("Round Off", FormatAmount(m.doc.RoundOff)))
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(totalRow("Grand Total", FormatAmount(m.doc.GrandTotal))))

	if m.status != "" {
		b.WriteString("\n" + faint.Render(m.status) + "\n")
	}

	b.WriteString("\n" + faint.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m EditorModel) headerView() string {
	party := m.doc.CounterpartyName
	if party == "" {
		party = "(no party, Ctrl+E)"
	}

	number := m.doc.DocumentNumber
	if number == "" {
		number = "-"
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"%s %s  |  %s  |  %s  |  %s  |  %s",
			m.Title(), number, party, FormatDate(m.doc.Date), m.doc.GSTType, m.doc.Status,
		))
}

func totalRow(label, value string) string {
	return fmt.Sprintf("%s %s\n", pad(label, 40), value)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}

	return s
}

// Messages

type editorDocMsg struct {
	doc document.Document
	err error
}

func (m EditorModel) newDocumentCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		doc, err := m.docService.New(ctx, m.workspaceID, m.direction)

		return editorDocMsg{doc: doc, err: err}
	}
}

type editorLookupMsg struct {
	lookup document.StockLookup
	err    error
}

func (m EditorModel) loadLookupCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		lookup, err := m.stockService.Lookup(ctx, m.workspaceID)

		return editorLookupMsg{lookup: lookup, err: err}
	}
}

type editorPartyMsg struct {
	taxID string
}

func (m EditorModel) findPartyCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.partyService.Find(ctx, m.workspaceID, name)
		if err != nil {
			return editorPartyMsg{}
		}

		return editorPartyMsg{taxID: p.TaxID}
	}
}

type editorSubmitMsg struct {
	doc *document.Document
	err error
}

func (m EditorModel) submitCmd() tea.Cmd {
	doc := m.doc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		saved, err := m.docService.Submit(ctx, m.workspaceID, doc)

		return editorSubmitMsg{doc: saved, err: err}
	}
}
