package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/mealplanner/internal/catalog"
	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/toast"
	"github.com/nhle/mealplanner/internal/ui/confirm"
	"github.com/nhle/mealplanner/internal/ui/planview"
	"github.com/nhle/mealplanner/internal/ui/recipedetail"
	"github.com/nhle/mealplanner/internal/ui/recipelist"
)

func testRecipes() []model.Recipe {
	return []model.Recipe{
		{ID: "greek-yogurt-parfait", Title: "Greek Yogurt Parfait", Category: model.CategoryBreakfast,
			Ingredients: []string{"yogurt", "granola"}},
		{ID: "chicken-fajita-salad", Title: "Chicken Fajita Salad", Category: model.CategoryLunch,
			Ingredients: []string{"chicken", "peppers"}},
		{ID: "salmon-asparagus", Title: "Salmon with tomato and asparagus", Category: model.CategoryDinner,
			Ingredients: []string{"salmon", "asparagus"}},
	}
}

func newTestModel(t *testing.T) (Model, *session.Session, *TickScheduler) {
	t.Helper()

	sched := NewTickScheduler()
	today := time.Date(2026, time.November, 23, 9, 0, 0, 0, time.UTC)
	sess := session.New(
		catalog.New(testRecipes()),
		session.WithClock(func() time.Time { return today }),
		session.WithToastEngine(toast.New(toast.WithScheduler(sched))),
	)

	m := New(sess, sched)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, sess, sched
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Expected app.Model, got %T", next)
	}
	return out
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickScheduler(t *testing.T) {
	t.Run("drain with nothing queued returns nil", func(t *testing.T) {
		s := NewTickScheduler()
		if cmd := s.Drain(); cmd != nil {
			t.Error("Expected nil command")
		}
	})

	t.Run("queued callback arrives as expiry message", func(t *testing.T) {
		s := NewTickScheduler()
		fired := false
		s.AfterFunc(time.Millisecond, func() { fired = true })

		cmd := s.Drain()
		if cmd == nil {
			t.Fatal("Expected a command")
		}
		if s.Drain() != nil {
			t.Error("Expected queue to be empty after drain")
		}

		var msgs []tea.Msg
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				msgs = append(msgs, c())
			}
		} else {
			msgs = append(msgs, msg)
		}

		if len(msgs) != 1 {
			t.Fatalf("Expected 1 message, got %d", len(msgs))
		}
		expired, ok := msgs[0].(toastExpiredMsg)
		if !ok {
			t.Fatalf("Expected toastExpiredMsg, got %T", msgs[0])
		}
		expired.fire()
		if !fired {
			t.Error("Expected callback to run")
		}
	})
}

func TestToastExpiryRunsInUpdate(t *testing.T) {
	m, sess, sched := newTestModel(t)

	m = update(t, m, keyPress("g"))
	if got := len(sess.Toasts()); got != 1 {
		t.Fatalf("Expected 1 toast, got %d", got)
	}
	if sched.Drain() != nil {
		t.Error("Expected Update to drain the scheduler")
	}

	id := sess.Toasts()[0].ID
	update(t, m, toastExpiredMsg{fire: func() { sess.DismissToast(id) }})
	if got := len(sess.Toasts()); got != 0 {
		t.Errorf("Expected toast to expire, got %d", got)
	}
}

func TestAddWeekRouting(t *testing.T) {
	t.Run("empty list merges without asking", func(t *testing.T) {
		m, sess, _ := newTestModel(t)

		m = update(t, m, planview.AddWeekMsg{})
		if m.currentView != ViewPlan {
			t.Errorf("Expected plan view, got %d", m.currentView)
		}
		if sess.LastAddWeekOutcome() != session.Merged {
			t.Errorf("Expected Merged, got %s", sess.LastAddWeekOutcome())
		}
		if sess.ItemCount() == 0 {
			t.Error("Expected items on the list")
		}
	})

	t.Run("non-empty list opens dialog", func(t *testing.T) {
		m, sess, _ := newTestModel(t)
		sess.AddRecipeToShoppingList("salmon-asparagus")

		m = update(t, m, planview.AddWeekMsg{})
		if m.currentView != ViewConfirm {
			t.Fatalf("Expected confirm view, got %d", m.currentView)
		}
		if m.confirmView.Kind() != confirm.KindAddWeek {
			t.Errorf("Expected add-week dialog, got %d", m.confirmView.Kind())
		}

		m = update(t, m, confirm.AddWeekDecisionMsg{Decision: session.DecideReplace})
		if m.currentView != ViewPlan {
			t.Errorf("Expected return to plan view, got %d", m.currentView)
		}
		if sess.LastAddWeekOutcome() != session.Replaced {
			t.Errorf("Expected Replaced, got %s", sess.LastAddWeekOutcome())
		}
		if sess.AddWeekState() != session.Idle {
			t.Errorf("Expected Idle, got %s", sess.AddWeekState())
		}
	})

	t.Run("cancel leaves list untouched", func(t *testing.T) {
		m, sess, _ := newTestModel(t)
		sess.AddRecipeToShoppingList("salmon-asparagus")
		before := sess.ItemCount()

		m = update(t, m, planview.AddWeekMsg{})
		update(t, m, confirm.AddWeekDecisionMsg{Decision: session.DecideCancel})

		if sess.ItemCount() != before {
			t.Errorf("Expected %d items, got %d", before, sess.ItemCount())
		}
		if sess.LastAddWeekOutcome() != session.Cancelled {
			t.Errorf("Expected Cancelled, got %s", sess.LastAddWeekOutcome())
		}
	})
}

func TestEscCancelsAddWeekDialog(t *testing.T) {
	m, sess, _ := newTestModel(t)
	sess.AddRecipeToShoppingList("salmon-asparagus")
	before := sess.ItemCount()

	m = update(t, m, planview.AddWeekMsg{})
	if m.currentView != ViewConfirm {
		t.Fatalf("Expected confirm view, got %d", m.currentView)
	}

	m, cmd := m.update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected the dialog to answer")
	}
	msg, ok := cmd().(confirm.AddWeekDecisionMsg)
	if !ok {
		t.Fatal("Expected AddWeekDecisionMsg")
	}
	if msg.Decision != session.DecideCancel {
		t.Errorf("Expected %v, got %v", session.DecideCancel, msg.Decision)
	}

	m = update(t, m, msg)
	if m.currentView != ViewPlan {
		t.Errorf("Expected plan view, got %d", m.currentView)
	}
	if sess.LastAddWeekOutcome() != session.Cancelled {
		t.Errorf("Expected Cancelled, got %s", sess.LastAddWeekOutcome())
	}
	if sess.ItemCount() != before {
		t.Errorf("Expected %d items, got %d", before, sess.ItemCount())
	}
}

func TestClearListRouting(t *testing.T) {
	m, sess, _ := newTestModel(t)
	sess.AddRecipeToShoppingList("salmon-asparagus")

	m = update(t, m, keyPress("3"))
	m.requestClearList()
	if m.currentView != ViewConfirm {
		t.Fatalf("Expected confirm view, got %d", m.currentView)
	}

	m = update(t, m, confirm.ClearListMsg{Confirmed: true})
	if m.currentView != ViewShopping {
		t.Errorf("Expected shopping view, got %d", m.currentView)
	}
	if sess.ItemCount() != 0 {
		t.Errorf("Expected empty list, got %d items", sess.ItemCount())
	}
}

func TestNavigation(t *testing.T) {
	t.Run("number keys switch tabs", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m = update(t, m, keyPress("2"))
		if m.currentView != ViewRecipes {
			t.Errorf("Expected recipes view, got %d", m.currentView)
		}
		m = update(t, m, keyPress("3"))
		if m.currentView != ViewShopping {
			t.Errorf("Expected shopping view, got %d", m.currentView)
		}
		m = update(t, m, keyPress("1"))
		if m.currentView != ViewPlan {
			t.Errorf("Expected plan view, got %d", m.currentView)
		}
	})

	t.Run("help toggles back to previous view", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		m = update(t, m, keyPress("2"))

		m = update(t, m, keyPress("?"))
		if m.currentView != ViewHelp {
			t.Fatalf("Expected help view, got %d", m.currentView)
		}
		m = update(t, m, keyPress("?"))
		if m.currentView != ViewRecipes {
			t.Errorf("Expected recipes view, got %d", m.currentView)
		}
	})

	t.Run("detail returns to where it was opened", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m = update(t, m, keyPress("2"))
		m = update(t, m, recipelist.SelectedRecipeMsg{RecipeID: "greek-yogurt-parfait"})
		if m.currentView != ViewRecipeDetail {
			t.Fatalf("Expected detail view, got %d", m.currentView)
		}
		m = update(t, m, recipedetail.BackMsg{})
		if m.currentView != ViewRecipes {
			t.Errorf("Expected recipes view, got %d", m.currentView)
		}

		m = update(t, m, keyPress("1"))
		m = update(t, m, planview.OpenRecipeMsg{RecipeID: "salmon-asparagus"})
		if m.recipeDetail.RecipeID() != "salmon-asparagus" {
			t.Errorf("Expected salmon-asparagus, got %q", m.recipeDetail.RecipeID())
		}
		m = update(t, m, recipedetail.BackMsg{})
		if m.currentView != ViewPlan {
			t.Errorf("Expected plan view, got %d", m.currentView)
		}
	})

	t.Run("x dismisses newest toast", func(t *testing.T) {
		m, sess, _ := newTestModel(t)
		sess.GeneratePlan()
		sess.ClearPlan()

		update(t, m, keyPress("x"))
		toasts := sess.Toasts()
		if len(toasts) != 1 {
			t.Fatalf("Expected 1 toast, got %d", len(toasts))
		}
		if toasts[0].Message != "New meal plan generated" {
			t.Errorf("Expected generate toast to remain, got %q", toasts[0].Message)
		}
	})
}

func TestExecuteCommand(t *testing.T) {
	m, sess, _ := newTestModel(t)

	m.executeCommand("recipe view")
	if sess.ShoppingViewMode() != model.ViewModeRecipe {
		t.Errorf("Expected recipe view mode, got %s", sess.ShoppingViewMode())
	}

	m.executeCommand("shopping")
	if m.currentView != ViewShopping {
		t.Errorf("Expected shopping view, got %d", m.currentView)
	}

	m.executeCommand("bogus")
	if !strings.Contains(m.keyHints(), "Unknown command: bogus") {
		t.Errorf("Expected unknown command hint, got %q", m.keyHints())
	}
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "Meal Planner") {
		t.Error("Expected header title in view")
	}
	if !strings.Contains(out, "Plan") {
		t.Error("Expected tabs in view")
	}
}
