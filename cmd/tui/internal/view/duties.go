package view

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/duty"
)

type dutiesState int

const (
	dutiesStateList dutiesState = iota
	dutiesStateCreate
)

// dutyItem wraps a definition to implement list.Item.
type dutyItem struct {
	def      *duty.Definition
	selected bool
}

func (i dutyItem) Title() string {
	box := "[ ]"
	if i.selected || i.def.IsDefault {
		box = "[x]"
	}

	value := FormatAmount(i.def.FixedAmount)
	if i.def.CalcMethod == document.CalcPercentage {
		value = i.def.Rate.String() + "%"
	}

	return fmt.Sprintf("%s  %s  %s", box, i.def.Name, lipgloss.NewStyle().Faint(true).Render(value))
}

func (i dutyItem) Description() string {
	desc := fmt.Sprintf("%s | %s on %s", i.def.Type, i.def.CalcMethod, i.def.ApplyOn)
	if i.def.IsDefault {
		desc += " | always applied"
	}

	return desc
}

func (i dutyItem) FilterValue() string {
	return i.def.Name
}

// DutiesModel lists the workspace's duty and tax ledgers and toggles which
// ones new documents start with.
type DutiesModel struct {
	CommonModel
	dutyService *duty.Service
	workspaceID uuid.UUID

	state dutiesState
	list  list.Model
	form  *huh.Form
	defs  []*duty.Definition

	loading bool
	status  string

	// Form field bindings
	formName    string
	formType    document.DutyType
	formMethod  document.CalcMethod
	formValue   string
	formApplyOn document.ApplyOn
	formDefault bool
}

func NewDutiesModel(dutySvc *duty.Service, workspaceID uuid.UUID) DutiesModel {
	l := list.New([]list.Item{}, dutyItemDelegate{}, 0, 0)
	l.Title = "Duties & Taxes"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return DutiesModel{
		dutyService: dutySvc,
		workspaceID: workspaceID,
		list:        l,
		loading:     true,
	}
}

func (m DutiesModel) Title() string { return "Duties & Taxes" }

func (m DutiesModel) ShortHelp() string {
	switch m.state {
	case dutiesStateList:
		return "Esc: back | Space: select | n: new ledger | x: delete | /: filter"
	case dutiesStateCreate:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m DutiesModel) Init() tea.Cmd {
	return m.loadDutiesCmd()
}

func (m DutiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDutiesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.defs = msg.defs
		m.refreshListItems(msg.selected)

		if len(msg.defs) == 0 {
			m.status = "No ledgers yet. Press n to create one."
		}

		return m, nil

	case dutyActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = dutiesStateList

			return m, nil
		}

		m.status = msg.done
		m.state = dutiesStateList

		return m, m.loadDutiesCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case dutiesStateList:
		return m.updateList(msg)
	case dutiesStateCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m DutiesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case " ":
			if item, ok := m.list.SelectedItem().(dutyItem); ok {
				return m, m.toggleCmd(item.def.ID)
			}
		case "n":
			return m.startCreate()
		case "x":
			if item, ok := m.list.SelectedItem().(dutyItem); ok {
				return m, m.deleteCmd(item.def)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m DutiesModel) startCreate() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formType = document.DutyTypeCharge
	m.formMethod = document.CalcPercentage
	m.formValue = ""
	m.formApplyOn = document.ApplyOnSubtotal
	m.formDefault = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Ledger Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}

					return nil
				}),

			huh.NewSelect[document.DutyType]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Charge", document.DutyTypeCharge),
					huh.NewOption("Deduction", document.DutyTypeDeduction),
				).
				Value(&m.formType),

			huh.NewSelect[document.CalcMethod]().
				Key("calc_method").
				Title("Calculation at").
				Options(
					huh.NewOption("Percentage", document.CalcPercentage),
					huh.NewOption("Fixed Amount", document.CalcFixed),
				).
				Value(&m.formMethod),

			huh.NewInput().
				Key("value").
				Title("Default Value").
				Placeholder("0.00").
				Value(&m.formValue).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}

					if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
						return errors.New("value must be a number")
					}

					return nil
				}),

			huh.NewSelect[document.ApplyOn]().
				Key("apply_on").
				Title("Apply on").
				Options(
					huh.NewOption("Subtotal", document.ApplyOnSubtotal),
					huh.NewOption("Net Total (subtotal + GST)", document.ApplyOnNetTotal),
				).
				Value(&m.formApplyOn),

			huh.NewConfirm().
				Key("is_default").
				Title("Apply to every new document?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formDefault),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = dutiesStateCreate

	return m, m.form.Init()
}

func (m DutiesModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = dutiesStateList
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

	return m, m.createCmd()
}

func (m DutiesModel) View() string {
	if m.state == dutiesStateCreate && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render("New Ledger\n\n" + m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledgers...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

func (m *DutiesModel) refreshListItems(selected []string) {
	items := make([]list.Item, len(m.defs))
	for i, def := range m.defs {
		items[i] = dutyItem{def: def, selected: slices.Contains(selected, def.ID.String())}
	}

	m.list.SetItems(items)
}

// Messages

type loadDutiesMsg struct {
	defs     []*duty.Definition
	selected []string
	err      error
}

func (m DutiesModel) loadDutiesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		defs, err := m.dutyService.List(ctx, m.workspaceID)
		if err != nil {
			return loadDutiesMsg{err: err}
		}

		selected, err := m.dutyService.SelectedLedgerIDs(ctx, m.workspaceID)

		return loadDutiesMsg{defs: defs, selected: selected, err: err}
	}
}

type dutyActionMsg struct {
	done string
	err  error
}

func (m DutiesModel) toggleCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		on, err := m.dutyService.Toggle(ctx, m.workspaceID, id)
		if err != nil {
			return dutyActionMsg{err: err}
		}

		if on {
			return dutyActionMsg{done: "Selected for new documents."}
		}

		return dutyActionMsg{done: "Deselected."}
	}
}

func (m DutiesModel) deleteCmd(def *duty.Definition) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.dutyService.Delete(ctx, m.workspaceID, def.ID); err != nil {
			return dutyActionMsg{err: err}
		}

		return dutyActionMsg{done: fmt.Sprintf("Deleted %s.", def.Name)}
	}
}

func (m DutiesModel) createCmd() tea.Cmd {
	params := duty.CreateParams{
		Name:       m.formName,
		Type:       m.formType,
		CalcMethod: m.formMethod,
		ApplyOn:    m.formApplyOn,
		IsDefault:  m.formDefault,
	}

	value, _ := decimal.NewFromString(strings.TrimSpace(m.formValue))
	if params.CalcMethod == document.CalcPercentage {
		params.Rate = value
	} else {
		params.FixedAmount = value
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		def, err := m.dutyService.Create(ctx, m.workspaceID, params)
		if err != nil {
			return dutyActionMsg{err: err}
		}

		return dutyActionMsg{done: fmt.Sprintf("Created %s.", def.Name)}
	}
}

// dutyItemDelegate renders ledgers in the list.
type dutyItemDelegate struct{}

func (d dutyItemDelegate) Height() int                             { return 2 }
func (d dutyItemDelegate) Spacing() int                            { return 0 }
func (d dutyItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d dutyItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(dutyItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
