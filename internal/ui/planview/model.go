package planview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/keys"
	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/theme"
)

// OpenRecipeMsg asks the parent to show a recipe's detail view.
type OpenRecipeMsg struct {
	RecipeID string
}

// AddWeekMsg asks the parent to start the add-week flow.
type AddWeekMsg struct{}

// Model is the meal planning view: a calendar strip and the meals of the
// selected day.
type Model struct {
	sess   *session.Session
	keys   *keys.KeyMap
	slot   int
	width  int
	height int
}

// New creates a new planning view model.
func New(s *session.Session, k *keys.KeyMap, width, height int) Model {
	return Model{
		sess:   s,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedMealType returns the focused meal slot.
func (m Model) SelectedMealType() model.MealType {
	return model.MealTypes[m.slot]
}

// Update handles messages for the planning view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Prev):
		m.moveDay(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.moveDay(1)
	case key.Matches(keyMsg, m.keys.Up):
		if m.slot > 0 {
			m.slot--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.slot < len(model.MealTypes)-1 {
			m.slot++
		}
	case key.Matches(keyMsg, m.keys.Generate):
		m.sess.GeneratePlan()
	case key.Matches(keyMsg, m.keys.ClearPlan):
		m.sess.ClearPlan()
	case key.Matches(keyMsg, m.keys.Reroll):
		m.sess.RerollMeal(m.sess.SelectedDay(), m.SelectedMealType())
	case key.Matches(keyMsg, m.keys.AddMeal):
		m.sess.AddMealToShoppingList(m.sess.SelectedDay(), m.SelectedMealType())
	case key.Matches(keyMsg, m.keys.AddWeek):
		return m, func() tea.Msg { return AddWeekMsg{} }
	case key.Matches(keyMsg, m.keys.Select):
		if r := m.selectedRecipe(); r != nil {
			id := r.ID
			return m, func() tea.Msg { return OpenRecipeMsg{RecipeID: id} }
		}
	}
	return m, nil
}

// moveDay shifts the selected day within the calendar window.
func (m *Model) moveDay(delta int) {
	days := m.sess.CalendarWindow()
	for i, d := range days {
		if d.FullDate != m.sess.SelectedDay() {
			continue
		}
		j := i + delta
		if j >= 0 && j < len(days) {
			m.sess.SelectDay(days[j].FullDate)
		}
		return
	}
	if len(days) > 0 {
		m.sess.SelectDay(days[0].FullDate)
	}
}

func (m Model) selectedRecipe() *model.Recipe {
	day, ok := m.sess.MealsForSelectedDay()
	if !ok {
		return nil
	}
	return day.Meals.Get(m.SelectedMealType())
}

// View renders the planning view.
func (m Model) View() string {
	var b strings.Builder

	title := "This week"
	if r := m.sess.PlanRange(); r != "" {
		title = fmt.Sprintf("This week · %s", r)
	}
	b.WriteString(theme.SectionStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.renderCalendar())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.sess.DayTitle()))
	b.WriteString("\n\n")

	if !m.sess.HasPlan() {
		b.WriteString(theme.DimStyle.Render("No meal plan yet. Press g to generate one."))
		return b.String()
	}

	day, ok := m.sess.MealsForSelectedDay()
	if !ok {
		b.WriteString(theme.DimStyle.Render("No meals planned for this day."))
		return b.String()
	}

	for i, t := range model.MealTypes {
		label := theme.CategoryStyle(t).Width(11).Render(capitalize(string(t)))
		text := theme.DimStyle.Render("nothing planned")
		if r := day.Meals.Get(t); r != nil {
			text = r.Title
		}
		line := label + text
		if i == m.slot {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCalendar draws the calendar window as a strip of day cells.
func (m Model) renderCalendar() string {
	planned := make(map[string]bool)
	for _, d := range m.sess.Plan() {
		planned[d.FullDate] = true
	}

	days := m.sess.CalendarWindow()
	cells := make([]string, len(days))
	for i, d := range days {
		style := theme.DayStyle(d.FullDate == m.sess.SelectedDay(), planned[d.FullDate], d.IsPast)
		cells[i] = style.Render(fmt.Sprintf("%s\n%2d", d.Weekday, d.Date))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
