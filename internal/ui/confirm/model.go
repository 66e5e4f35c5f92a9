package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/theme"
)

// Kind identifies which question the dialog is asking.
type Kind int

const (
	KindAddWeek Kind = iota
	KindClearList
)

// AddWeekDecisionMsg carries the answer to the replace-or-merge question.
// Aborting the form answers DecideCancel.
type AddWeekDecisionMsg struct {
	Decision session.Decision
}

// ClearListMsg carries the answer to the clear-list question.
type ClearListMsg struct {
	Confirmed bool
}

const (
	choiceReplace = "replace"
	choiceMerge   = "merge"
	choiceCancel  = "cancel"
)

// Model is a modal dialog backed by a huh form.
type Model struct {
	kind   Kind
	form   *huh.Form
	choice *string
	yes    *bool
	width  int
	height int
}

// New creates an idle dialog.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// Kind returns the question being asked.
func (m Model) Kind() Kind {
	return m.kind
}

// StartAddWeek opens the replace, merge or cancel select.
func (m *Model) StartAddWeek(prompt string) tea.Cmd {
	m.kind = KindAddWeek
	m.choice = new(string)
	*m.choice = choiceMerge
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Add this week to your shopping list").
				Description(prompt).
				Options(
					huh.NewOption("Merge - keep my list and add what is missing", choiceMerge),
					huh.NewOption("Replace - start over with this week only", choiceReplace),
					huh.NewOption("Cancel", choiceCancel),
				).
				Value(m.choice),
		),
	).WithWidth(m.formWidth())
	return m.form.Init()
}

// StartClearList opens the clear-list confirmation.
func (m *Model) StartClearList(itemCount int) tea.Cmd {
	m.kind = KindClearList
	m.yes = new(bool)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear the shopping list?").
				Description(fmt.Sprintf("This removes all %d items.", itemCount)).
				Affirmative("Yes, clear").
				Negative("Cancel").
				Value(m.yes),
		),
	).WithWidth(m.formWidth())
	return m.form.Init()
}

// Update forwards messages to the form and reports the answer once it is
// completed or aborted.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	// huh only aborts on ctrl+c, which quits the program first.
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		answer := m.answer(true)
		m.form = nil
		return m, answer
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		answer := m.answer(false)
		m.form = nil
		return m, answer
	case huh.StateAborted:
		answer := m.answer(true)
		m.form = nil
		return m, answer
	}
	return m, cmd
}

func (m Model) answer(aborted bool) tea.Cmd {
	switch m.kind {
	case KindClearList:
		confirmed := !aborted && *m.yes
		return func() tea.Msg { return ClearListMsg{Confirmed: confirmed} }
	default:
		decision := session.DecideCancel
		if !aborted {
			switch *m.choice {
			case choiceReplace:
				decision = session.DecideReplace
			case choiceMerge:
				decision = session.DecideMerge
			}
		}
		return func() tea.Msg { return AddWeekDecisionMsg{Decision: decision} }
	}
}

// View renders the dialog.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Height(m.height).
		Render(theme.PanelStyle.Render(m.form.View()))
}

// SetSize updates the dialog dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}
}

func (m Model) formWidth() int {
	w := m.width - 10
	if w < 40 {
		w = 40
	}
	if w > 90 {
		w = 90
	}
	return w
}
