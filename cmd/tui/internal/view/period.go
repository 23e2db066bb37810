package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Period is a predefined or custom range of document dates.
type Period int

const (
	PeriodToday             Period = 0
	PeriodThisMonth         Period = 1
	PeriodLastMonth         Period = 2
	PeriodThisFinancialYear Period = 3
	PeriodLastFinancialYear Period = 4
	PeriodAll               Period = 5
	PeriodCustom            Period = 6
)

const financialYearStartMonth = time.April

func (p Period) String() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodThisMonth:
		return "This Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodThisFinancialYear:
		return "This Financial Year"
	case PeriodLastFinancialYear:
		return "Last Financial Year"
	case PeriodAll:
		return "All Time"
	case PeriodCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// financialYearStart returns the 1 April that opens the financial year
// containing t.
func financialYearStart(t time.Time) time.Time {
	year := t.Year()
	if t.Month() < financialYearStartMonth {
		year--
	}

	return time.Date(year, financialYearStartMonth, 1, 0, 0, 0, 0, time.UTC)
}

// PeriodRange returns the inclusive date range of p as seen on now. The
// range is empty for PeriodAll and PeriodCustom.
func PeriodRange(p Period, now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodToday:
		return today, today
	case PeriodThisMonth:
		return today.AddDate(0, 0, 1-today.Day()), today
	case PeriodLastMonth:
		start := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	case PeriodThisFinancialYear:
		return financialYearStart(today), today
	case PeriodLastFinancialYear:
		end := financialYearStart(today).AddDate(0, 0, -1)
		return financialYearStart(end), end
	}

	return time.Time{}, time.Time{}
}

// PeriodSelectedMsg is emitted when the user has selected a valid date range.
// Start and End are zero values when All is true.
type PeriodSelectedMsg struct {
	Period Period
	Start  time.Time
	End    time.Time
	All    bool
}

type periodState int

const (
	periodStateSelect periodState = iota
	periodStateCustom
)

// PeriodPicker selects the date range a document list is filtered by.
type PeriodPicker struct {
	state    periodState
	selected Period

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	now func() time.Time
	err error
}

func NewPeriodPicker(initial Period) PeriodPicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "From: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "To:   "

	return PeriodPicker{
		state:      periodStateSelect,
		selected:   initial,
		startInput: si,
		endInput:   ei,
		now:        time.Now,
	}
}

func (m PeriodPicker) Init() tea.Cmd {
	return nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case periodStateSelect:
			return m.updateSelect(msg)
		case periodStateCustom:
			return m.updateCustom(msg)
		}
	}

	if m.state == periodStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m PeriodPicker) updateSelect(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > PeriodToday {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < PeriodCustom {
			m.selected++
		}
	case tea.KeyEnter:
		switch m.selected {
		case PeriodCustom:
			m.state = periodStateCustom
			m.startInput.Focus()
			m.focusIndex = 0

			return m, textinput.Blink
		case PeriodAll:
			return m, func() tea.Msg {
				return PeriodSelectedMsg{Period: PeriodAll, All: true}
			}
		}

		p := m.selected
		start, end := PeriodRange(p, m.now())

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Period: p, Start: start, End: end}
		}
	}

	return m, nil
}

func (m PeriodPicker) updateCustom(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
			return m, textinput.Blink
		}

		m.endInput.Focus()

		return m, textinput.Blink

	case "enter":
		start, err := time.Parse(time.DateOnly, m.startInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid start date (YYYY-MM-DD)")
			return m, nil
		}

		end, err := time.Parse(time.DateOnly, m.endInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid end date (YYYY-MM-DD)")
			return m, nil
		}

		if end.Before(start) {
			m.err = fmt.Errorf("end date is before start date")
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Period: PeriodCustom, Start: start, End: end}
		}

	case "esc":
		m.state = periodStateSelect
		m.err = nil

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m PeriodPicker) updateInputs(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	var cmds []tea.Cmd

	var c tea.Cmd

	m.startInput, c = m.startInput.Update(msg)
	cmds = append(cmds, c)
	m.endInput, c = m.endInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m PeriodPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == periodStateCustom {
		return fmt.Sprintf(
			"Enter Custom Range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	s := "Select Period:\n\n"

	for p := PeriodToday; p <= PeriodCustom; p++ {
		cursor := " "
		if m.selected == p {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, p)
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting reports whether the picker is showing the period list rather
// than the custom range inputs.
func (m PeriodPicker) IsSelecting() bool {
	return m.state == periodStateSelect
}
