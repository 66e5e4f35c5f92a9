package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding
	Prev key.Binding
	Next key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Tabs
	TabPlan     key.Binding
	TabRecipes  key.Binding
	TabShopping key.Binding

	// Search
	Search key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Toasts
	DismissToast key.Binding

	// Planning
	Generate  key.Binding
	ClearPlan key.Binding
	Reroll    key.Binding
	AddWeek   key.Binding
	AddMeal   key.Binding

	// Recipe detail
	AddRecipe key.Binding

	// Shopping list
	Toggle       key.Binding
	Delete       key.Binding
	DeleteRecipe key.Binding
	ClearList    key.Binding
	ViewMode     key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous day"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next day"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open recipe"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		TabPlan: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "meal plan"),
		),
		TabRecipes: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "recipes"),
		),
		TabShopping: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "shopping list"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "new plan"),
		),
		ClearPlan: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear plan"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reroll meal"),
		),
		AddWeek: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add week to list"),
		),
		AddMeal: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add meal to list"),
		),
		AddRecipe: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to list"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "check"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete item"),
		),
		DeleteRecipe: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete recipe"),
		),
		ClearList: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear list"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "list/recipe view"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.TabPlan, k.TabRecipes, k.TabShopping,
		k.Select, k.Back, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next, k.Select, k.Back, k.Quit},
		{k.TabPlan, k.TabRecipes, k.TabShopping, k.Search, k.Command, k.Help, k.DismissToast},
		{k.Generate, k.ClearPlan, k.Reroll, k.AddMeal, k.AddWeek},
		{k.AddRecipe, k.Toggle, k.Delete, k.DeleteRecipe, k.ClearList, k.ViewMode},
	}
}
