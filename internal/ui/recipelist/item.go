package recipelist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/theme"
)

// RecipeItem wraps a model.Recipe so it can be used in a bubbles/list.
type RecipeItem struct {
	Recipe model.Recipe
}

// FilterValue returns the string used for filtering.
func (i RecipeItem) FilterValue() string { return i.Recipe.Title }

// Title returns the recipe title for the list.
func (i RecipeItem) Title() string { return i.Recipe.Title }

// Description returns the category and ingredient count.
func (i RecipeItem) Description() string {
	return fmt.Sprintf("%s | %d ingredients", i.Recipe.Category, len(i.Recipe.Ingredients))
}

// ItemDelegate implements list.ItemDelegate for rendering recipe rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single recipe line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(RecipeItem)
	if !ok {
		return
	}

	category := theme.CategoryStyle(ri.Recipe.Category).Width(10).Render(string(ri.Recipe.Category))
	line := category + " " + ri.Recipe.Title + " " +
		theme.DimStyle.Render(fmt.Sprintf("(%d)", len(ri.Recipe.Ingredients)))

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(line))
}
