package recipedetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/keys"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/theme"
)

// BackMsg signals the parent to navigate back to the previous view.
type BackMsg struct{}

// Model is the recipe detail view: ingredients with their shopping list
// state, then the directions.
type Model struct {
	sess     *session.Session
	keys     *keys.KeyMap
	recipeID string
	cursor   int
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new recipe detail model.
func New(s *session.Session, k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		sess:     s,
		keys:     k,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetRecipe switches the view to another recipe.
func (m *Model) SetRecipe(recipeID string) {
	m.recipeID = recipeID
	m.cursor = 0
	m.viewport.GotoTop()
}

// RecipeID returns the recipe being shown.
func (m Model) RecipeID() string {
	return m.recipeID
}

// Cursor returns the index of the focused ingredient.
func (m Model) Cursor() int {
	return m.cursor
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		ings, _ := m.sess.RecipeIngredients(m.recipeID)

		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(ings)-1 {
				m.cursor++
				m.follow()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.follow()
			}
			return m, nil

		case key.Matches(msg, m.keys.AddRecipe):
			m.sess.AddRecipeToShoppingList(m.recipeID)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(ings) {
				m.sess.ToggleRecipeIngredient(m.recipeID, m.cursor)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if m.cursor < len(ings) {
				m.sess.DeleteIngredient(ings[m.cursor].ItemID)
			}
			return m, nil
		}
	}

	// Delegate to viewport for scrolling (pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// follow scrolls the viewport so the cursor line stays visible.
func (m *Model) follow() {
	_, first := m.renderContent()
	line := first + m.cursor
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// View renders the detail view. Content is rebuilt on every render so
// list changes made elsewhere show up immediately.
func (m Model) View() string {
	if _, ok := m.sess.Recipe(m.recipeID); !ok {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No recipe selected")
	}

	vp := m.viewport
	content, _ := m.renderContent()
	vp.SetContent(content)
	return vp.View()
}

// renderContent builds the viewport content and returns the line index of
// the first ingredient.
func (m Model) renderContent() (string, int) {
	r, ok := m.sess.Recipe(m.recipeID)
	if !ok {
		return "", 0
	}
	ings, _ := m.sess.RecipeIngredients(m.recipeID)

	var lines []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	lines = append(lines, titleStyle.Render(r.Title))
	lines = append(lines, theme.CategoryStyle(r.Category).Render(strings.ToUpper(string(r.Category)))+
		"  "+theme.DimStyle.Render(r.Image))
	lines = append(lines, "")

	lines = append(lines, theme.SectionStyle.Render(fmt.Sprintf("Ingredients (%d)", len(ings))))
	first := len(lines)
	for i, ing := range ings {
		mark := "[ ]"
		text := ing.Name
		switch {
		case ing.Checked:
			mark = "[x]"
			text = theme.CheckedItemStyle.Render(text)
		case ing.InList:
			mark = "[•]"
		}
		line := mark + " " + text
		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(line))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(line))
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	lines = append(lines, "", sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 80), 0))), "")

	lines = append(lines, theme.SectionStyle.Render("Directions"))
	wrap := lipgloss.NewStyle().Width(max(m.width-6, 20))
	for i, step := range r.Directions {
		lines = append(lines, wrap.Render(fmt.Sprintf("%d. %s", i+1, step)))
	}

	return strings.Join(lines, "\n"), first
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
}
