package recipelist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/keys"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/theme"
)

// SelectedRecipeMsg is sent when a user opens a recipe.
type SelectedRecipeMsg struct {
	RecipeID string
}

// Model is the recipe browser view.
type Model struct {
	list        list.Model
	sess        *session.Session
	keys        *keys.KeyMap
	query       string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new recipe list model.
func New(s *session.Session, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Recipes"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search recipes..."
	si.Prompt = "/ "
	si.Width = width - 4

	m := Model{
		list:        l,
		sess:        s,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
	m.reload()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// Query returns the active search query.
func (m Model) Query() string {
	return m.query
}

// Update handles messages for the recipe list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode. The list
// follows the query as it is typed.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.query = ""
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != m.query {
		m.query = m.searchInput.Value()
		m.reload()
	}
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(RecipeItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedRecipeMsg{RecipeID: item.Recipe.ID}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.SetValue(m.query)
		return m, m.searchInput.Focus()
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// reload replaces the list items with the recipes matching the query.
func (m *Model) reload() {
	recipes := m.sess.Recipes(m.query)
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = RecipeItem{Recipe: r}
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// View renders the recipe list view.
func (m Model) View() string {
	var searchBar string
	if m.searchMode || m.query != "" {
		searchBar = lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = m.renderEmptyState()
	}

	if searchBar == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, searchBar, body)
}

// renderEmptyState shows guidance text when no recipe matches.
func (m Model) renderEmptyState() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray).
		Render("No matching recipes.\nPress / to change the search.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
