package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/mealplanner/internal/model"
)

// paletteCommands lists the commands offered by the command palette.
var paletteCommands = []string{
	"generate",
	"clear plan",
	"add week",
	"clear list",
	"list view",
	"recipe view",
	"plan",
	"recipes",
	"shopping",
	"help",
	"quit",
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case "generate", "new plan", "g":
		m.sess.GeneratePlan()
	case "clear plan":
		m.sess.ClearPlan()
	case "add week", "add all":
		m.currentView = ViewPlan
		return m.requestAddWeek()
	case "clear list", "clear":
		m.currentView = ViewShopping
		return m.requestClearList()
	case "list view":
		m.sess.SetShoppingViewMode(model.ViewModeList)
	case "recipe view":
		m.sess.SetShoppingViewMode(model.ViewModeRecipe)
	case "plan", "1":
		m.currentView = ViewPlan
	case "recipes", "2":
		m.currentView = ViewRecipes
	case "shopping", "list", "3":
		m.currentView = ViewShopping
	case "help":
		m.previousView = m.currentView
		m.currentView = ViewHelp
	case "quit", "q":
		return tea.Quit
	default:
		m.statusMsg = "Unknown command: " + cmd
	}
	return nil
}
