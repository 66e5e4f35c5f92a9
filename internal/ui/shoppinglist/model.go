package shoppinglist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/keys"
	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/theme"
)

// ClearRequestMsg asks the parent to confirm clearing the whole list.
type ClearRequestMsg struct{}

// row is one rendered line: a recipe header or an item.
type row struct {
	header bool
	group  model.RecipeGroup
	item   model.ShoppingItem
}

// Model is the shopping list view. It shows either the flat list or the
// items grouped by recipe; the cursor moves over items only.
type Model struct {
	sess        *session.Session
	keys        *keys.KeyMap
	cursor      int
	filterMode  bool
	filterInput textinput.Model
	width       int
	height      int
}

// New creates a new shopping list model.
func New(s *session.Session, k *keys.KeyMap, width, height int) Model {
	fi := textinput.New()
	fi.Placeholder = "filter ingredients..."
	fi.Prompt = "/ "
	fi.Width = width - 4

	return Model{
		sess:        s,
		keys:        k,
		filterInput: fi,
		width:       width,
		height:      height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filterMode
}

// Query returns the active filter.
func (m Model) Query() string {
	return m.filterInput.Value()
}

// visibleItems returns the items in display order for the current mode.
func (m Model) visibleItems() []model.ShoppingItem {
	if m.sess.ShoppingViewMode() == model.ViewModeList {
		return m.sess.FilteredShoppingList(m.Query())
	}
	var items []model.ShoppingItem
	for _, g := range m.sess.GroupedShoppingList(m.Query()) {
		items = append(items, g.Items...)
	}
	return items
}

// Selected returns the item under the cursor.
func (m Model) Selected() (model.ShoppingItem, bool) {
	items := m.visibleItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.ShoppingItem{}, false
	}
	return items[m.cursor], true
}

// Update handles messages for the shopping list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.filterMode {
		return m.handleFilterKeys(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor++
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor--
	case key.Matches(keyMsg, m.keys.ViewMode):
		// Keep the cursor on the same item across modes.
		sel, had := m.Selected()
		next := model.ViewModeRecipe
		if m.sess.ShoppingViewMode() == model.ViewModeRecipe {
			next = model.ViewModeList
		}
		m.sess.SetShoppingViewMode(next)
		if had {
			m.cursor = m.indexOf(sel.ID)
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if it, ok := m.Selected(); ok {
			m.sess.ToggleIngredient(it.ID)
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if it, ok := m.Selected(); ok {
			m.sess.DeleteIngredient(it.ID)
		}
	case key.Matches(keyMsg, m.keys.DeleteRecipe):
		if it, ok := m.Selected(); ok {
			m.sess.DeleteRecipeGroup(it.RecipeID)
		}
	case key.Matches(keyMsg, m.keys.ClearList):
		if m.sess.ItemCount() > 0 {
			return m, func() tea.Msg { return ClearRequestMsg{} }
		}
	case key.Matches(keyMsg, m.keys.Search):
		m.filterMode = true
		return m, m.filterInput.Focus()
	}

	m.clamp()
	return m, nil
}

// handleFilterKeys processes key input while the filter has focus.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case "esc":
		m.filterMode = false
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.clamp()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *Model) clamp() {
	n := len(m.visibleItems())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) indexOf(id string) int {
	for i, it := range m.visibleItems() {
		if it.ID == id {
			return i
		}
	}
	return 0
}

// rows returns the display rows for the current mode.
func (m Model) rows() []row {
	var rows []row
	if m.sess.ShoppingViewMode() == model.ViewModeList {
		for _, it := range m.sess.FilteredShoppingList(m.Query()) {
			rows = append(rows, row{item: it})
		}
		return rows
	}
	for _, g := range m.sess.GroupedShoppingList(m.Query()) {
		rows = append(rows, row{header: true, group: g})
		for _, it := range g.Items {
			rows = append(rows, row{item: it})
		}
	}
	return rows
}

// View renders the shopping list view.
func (m Model) View() string {
	var b strings.Builder

	mode := "list"
	if m.sess.ShoppingViewMode() == model.ViewModeRecipe {
		mode = "by recipe"
	}
	summary := fmt.Sprintf("Shopping list · %d items from %d recipes · %d checked · %s",
		m.sess.ItemCount(), m.sess.RecipeCount(), m.sess.CheckedCount(), mode)
	b.WriteString(theme.SectionStyle.Render(summary))
	b.WriteString("\n")

	if m.filterMode || m.Query() != "" {
		b.WriteString(lipgloss.NewStyle().Padding(0, 1).Render(m.filterInput.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.sess.ItemCount() == 0 {
		b.WriteString(theme.DimStyle.Render("Your shopping list is empty. Add a recipe or the whole week."))
		return b.String()
	}

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(theme.DimStyle.Render("No matching ingredients."))
		return b.String()
	}

	idx := 0
	for _, r := range rows {
		if r.header {
			b.WriteString(theme.SectionStyle.Render(fmt.Sprintf("%s (%d)", r.group.RecipeName, len(r.group.Items))))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderItem(r.item, idx == m.cursor))
		b.WriteString("\n")
		idx++
	}
	return b.String()
}

func (m Model) renderItem(it model.ShoppingItem, selected bool) string {
	mark := "[ ]"
	name := it.Name
	if it.Checked {
		mark = "[x]"
		name = theme.CheckedItemStyle.Render(name)
	}
	line := mark + " " + name
	if m.sess.ShoppingViewMode() == model.ViewModeList {
		line += "  " + theme.DimStyle.Render(it.RecipeName)
	}
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.filterInput.Width = width - 4
}
