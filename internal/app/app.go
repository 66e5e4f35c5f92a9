package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/mealplanner/internal/keys"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/ui"
	"github.com/nhle/mealplanner/internal/ui/command"
	"github.com/nhle/mealplanner/internal/ui/confirm"
	helpview "github.com/nhle/mealplanner/internal/ui/help"
	"github.com/nhle/mealplanner/internal/ui/planview"
	"github.com/nhle/mealplanner/internal/ui/recipedetail"
	"github.com/nhle/mealplanner/internal/ui/recipelist"
	"github.com/nhle/mealplanner/internal/ui/shoppinglist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewPlan ViewState = iota
	ViewRecipes
	ViewRecipeDetail
	ViewShopping
	ViewConfirm
	ViewHelp
	ViewCommand
)

var tabNames = []string{"1 Plan", "2 Recipes", "3 Shopping"}

// Model is the root Bubble Tea model that manages view routing, layout
// and the session handle shared by every view.
type Model struct {
	currentView  ViewState
	previousView ViewState
	detailReturn ViewState
	layout       ui.Layout
	sess         *session.Session
	sched        *TickScheduler
	keys         *keys.KeyMap
	planView     planview.Model
	recipeList   recipelist.Model
	recipeDetail recipedetail.Model
	shoppingList shoppinglist.Model
	confirmView  confirm.Model
	helpView     helpview.Model
	commandView  command.Model
	ready        bool
	statusMsg    string
}

// New creates the root model. sched must be the scheduler the session's
// toast engine was built with, so toast expiry runs on the UI loop.
func New(s *session.Session, sched *TickScheduler) Model {
	km := keys.DefaultKeyMap()

	return Model{
		currentView:  ViewPlan,
		detailReturn: ViewRecipes,
		sess:         s,
		sched:        sched,
		keys:         km,
		planView:     planview.New(s, km, 80, 24),
		recipeList:   recipelist.New(s, km, 80, 24),
		recipeDetail: recipedetail.New(s, km, 80, 24),
		shoppingList: shoppinglist.New(s, km, 80, 24),
		confirmView:  confirm.New(80, 24),
		helpView:     helpview.New(km, 80, 24),
		commandView:  command.New(80, 24, paletteCommands),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update handles messages and dispatches to the active view. Any toast
// expiries scheduled while handling msg are turned into tick commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, m.sched.Drain())
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.planView.SetSize(contentWidth, contentHeight)
		m.recipeList.SetSize(contentWidth, contentHeight)
		m.recipeDetail.SetSize(contentWidth, contentHeight)
		m.shoppingList.SetSize(contentWidth, contentHeight)
		m.confirmView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case toastExpiredMsg:
		msg.fire()
		return m, nil

	case planview.OpenRecipeMsg:
		m.openRecipe(msg.RecipeID)
		return m, nil

	case recipelist.SelectedRecipeMsg:
		m.openRecipe(msg.RecipeID)
		return m, nil

	case recipedetail.BackMsg:
		m.currentView = m.detailReturn
		return m, nil

	case planview.AddWeekMsg:
		return m, m.requestAddWeek()

	case shoppinglist.ClearRequestMsg:
		return m, m.requestClearList()

	case confirm.AddWeekDecisionMsg:
		m.sess.ResolveAddWeek(msg.Decision)
		m.currentView = m.previousView
		return m, nil

	case confirm.ClearListMsg:
		if msg.Confirmed {
			m.sess.ClearShoppingList()
		}
		m.currentView = m.previousView
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case tea.KeyMsg:
		m.statusMsg = ""

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The dialog owns every key until it is answered.
		if m.currentView == ViewConfirm {
			return m.updateActiveView(msg)
		}

		if m.currentView == ViewCommand && msg.String() == "esc" {
			m.currentView = m.previousView
			return m, nil
		}

		// Do not intercept while a text input has focus
		if m.inputFocused() {
			return m.updateActiveView(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "?":
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case ":":
			m.previousView = m.currentView
			m.currentView = ViewCommand
			return m, m.commandView.Focus()

		case "esc":
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}

		case "x":
			if toasts := m.sess.Toasts(); len(toasts) > 0 {
				m.sess.DismissToast(toasts[len(toasts)-1].ID)
			}
			return m, nil

		case "1":
			m.currentView = ViewPlan
			return m, nil

		case "2":
			m.currentView = ViewRecipes
			return m, nil

		case "3":
			m.currentView = ViewShopping
			return m, nil
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewPlan:
		m.planView, cmd = m.planView.Update(msg)
	case ViewRecipes:
		m.recipeList, cmd = m.recipeList.Update(msg)
	case ViewRecipeDetail:
		m.recipeDetail, cmd = m.recipeDetail.Update(msg)
	case ViewShopping:
		m.shoppingList, cmd = m.shoppingList.Update(msg)
	case ViewConfirm:
		m.confirmView, cmd = m.confirmView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// inputFocused reports whether the active view is collecting text.
func (m Model) inputFocused() bool {
	switch m.currentView {
	case ViewCommand:
		return true
	case ViewRecipes:
		return m.recipeList.Searching()
	case ViewShopping:
		return m.shoppingList.Filtering()
	}
	return false
}

// openRecipe shows the detail view and remembers where to return.
func (m *Model) openRecipe(recipeID string) {
	m.detailReturn = m.currentView
	m.recipeDetail.SetRecipe(recipeID)
	m.currentView = ViewRecipeDetail
}

// requestAddWeek starts the add-week flow and opens the dialog when the
// session asks for a decision.
func (m *Model) requestAddWeek() tea.Cmd {
	m.sess.RequestAddWeek()
	if m.sess.AddWeekState() != session.DecisionPending {
		return nil
	}
	m.previousView = m.currentView
	m.currentView = ViewConfirm
	return m.confirmView.StartAddWeek(m.sess.ConfirmPrompt())
}

// requestClearList opens the clear-list confirmation.
func (m *Model) requestClearList() tea.Cmd {
	if m.sess.ItemCount() == 0 {
		return nil
	}
	m.previousView = m.currentView
	m.currentView = ViewConfirm
	return m.confirmView.StartClearList(m.sess.ItemCount())
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Meal Planner", ui.RenderTabs(tabNames, m.activeTab()), m.listStatus())
	content := m.renderContent()
	toasts := m.layout.RenderToasts(m.sess.Toasts())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, toasts, statusBar)
}

// activeTab maps the current view to a navigation tab.
func (m Model) activeTab() int {
	v := m.currentView
	switch v {
	case ViewConfirm, ViewHelp, ViewCommand:
		v = m.previousView
	}
	if v == ViewRecipeDetail {
		v = m.detailReturn
	}

	switch v {
	case ViewRecipes:
		return 1
	case ViewShopping:
		return 2
	default:
		return 0
	}
}

// listStatus summarises the shopping list for the header.
func (m Model) listStatus() string {
	return fmt.Sprintf("%d items · %d checked", m.sess.ItemCount(), m.sess.CheckedCount())
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewPlan:
		return m.planView.View()
	case ViewRecipes:
		return m.recipeList.View()
	case ViewRecipeDetail:
		return m.recipeDetail.View()
	case ViewShopping:
		return m.shoppingList.View()
	case ViewConfirm:
		return m.confirmView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | esc back"
	case ViewConfirm:
		return "↑/↓ choose | enter confirm | esc cancel"
	case ViewRecipes:
		if m.recipeList.Searching() {
			return "enter keep search | esc clear"
		}
		return "enter open | / search | q quit | ? help"
	case ViewRecipeDetail:
		return "a add to list | space check | d remove | j/k move | esc back"
	case ViewShopping:
		if m.shoppingList.Filtering() {
			return "enter keep filter | esc clear"
		}
		return "space check | d delete | D delete recipe | C clear | tab view | / filter"
	default:
		return "g new plan | h/l day | j/k meal | r reroll | c add meal | A add week | enter open | ? help"
	}
}
