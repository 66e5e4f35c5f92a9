// Package session composes the catalog, calendar, meal plan, shopping
// list and toast engines into the state of one running application.
//
// Intents mutate state and return nothing; callers re-read projections
// afterwards. A Session is not safe for concurrent use: the UI loop owns
// it. Only the toast engine tolerates callbacks from other goroutines.
package session

import (
	"fmt"
	"log"
	"time"

	"github.com/nhle/mealplanner/internal/calendar"
	"github.com/nhle/mealplanner/internal/catalog"
	"github.com/nhle/mealplanner/internal/mealplan"
	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/shopping"
	"github.com/nhle/mealplanner/internal/toast"
)

// Session is the application state core.
type Session struct {
	catalog *catalog.Catalog
	plan    *mealplan.Engine
	list    *shopping.List
	toasts  *toast.Engine

	now         func() time.Time
	windowDays  int
	selectedDay string
	viewMode    model.ViewMode

	addWeek     AddWeekState
	lastOutcome AddWeekOutcome
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithWindowDays sets the calendar window size. Values below
// mealplan.PlanLength are raised to it.
func WithWindowDays(n int) Option {
	return func(s *Session) { s.windowDays = max(n, mealplan.PlanLength) }
}

// WithToastEngine sets the toast engine, typically one bound to the UI
// scheduler.
func WithToastEngine(e *toast.Engine) Option {
	return func(s *Session) { s.toasts = e }
}

// WithViewMode sets the initial shopping list display mode.
func WithViewMode(m model.ViewMode) Option {
	return func(s *Session) { s.viewMode = m }
}

// New creates a session over cat, generates the first plan and selects
// today.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:    cat,
		plan:       mealplan.New(),
		list:       shopping.NewList(),
		now:        time.Now,
		windowDays: calendar.DefaultWindow,
		viewMode:   model.ViewModeList,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.toasts == nil {
		s.toasts = toast.New()
	}

	s.selectedDay = calendar.FullDate(s.now())
	s.generate()
	return s
}

func (s *Session) generate() bool {
	days := s.CalendarWindow()[:mealplan.PlanLength]
	if _, err := s.plan.Generate(s.catalog, days); err != nil {
		log.Printf("generating meal plan: %v", err)
		s.toasts.Error("Could not generate a meal plan")
		return false
	}
	return true
}

// --- Meal plan intents ---

// GeneratePlan replaces the plan with a freshly sampled one.
func (s *Session) GeneratePlan() {
	if s.generate() {
		s.toasts.Success("New meal plan generated")
	}
}

// ClearPlan removes the plan.
func (s *Session) ClearPlan() {
	if !s.plan.HasPlan() {
		return
	}
	s.plan.Clear()
	s.toasts.Info("Meal plan cleared")
}

// SelectDay selects a day of the calendar window. Other dates are ignored.
func (s *Session) SelectDay(fullDate string) {
	for _, d := range s.CalendarWindow() {
		if d.FullDate == fullDate {
			s.selectedDay = fullDate
			return
		}
	}
}

// RerollMeal resamples one meal slot of a planned day.
func (s *Session) RerollMeal(fullDate string, mealType model.MealType) {
	s.plan.Reroll(s.catalog, fullDate, mealType)
}

// --- Shopping list intents ---

// AddAllToShoppingList adds the ingredients of every planned meal.
func (s *Session) AddAllToShoppingList(mode shopping.Mode) {
	if !s.plan.HasPlan() {
		s.toasts.Warning("Generate a meal plan first")
		return
	}

	added := s.list.AddAll(shopping.CandidatesFromPlan(s.plan.Plan()), mode)
	switch {
	case mode == shopping.Replace:
		s.toasts.Success(fmt.Sprintf("Shopping list replaced with %d ingredients", added))
	case added == 0:
		s.toasts.Info("This week is already on your list")
	default:
		s.toasts.Success(fmt.Sprintf("Added %d ingredients to your list", added))
	}
}

// AddRecipeToShoppingList merges the ingredients of one recipe.
func (s *Session) AddRecipeToShoppingList(recipeID string) {
	r, ok := s.catalog.ByID(recipeID)
	if !ok {
		s.toasts.Error("Recipe not found")
		return
	}
	s.list.AddAll(shopping.CandidatesFromRecipe(r), shopping.Merge)
	s.toasts.Info(r.Title + " added to list")
}

// AddMealToShoppingList merges the ingredients of a planned meal slot.
func (s *Session) AddMealToShoppingList(fullDate string, mealType model.MealType) {
	day, ok := s.plan.MealsFor(fullDate)
	if !ok {
		return
	}
	if r := day.Meals.Get(mealType); r != nil {
		s.AddRecipeToShoppingList(r.ID)
	}
}

// ToggleIngredient flips the checked state of a list item.
func (s *Session) ToggleIngredient(itemID string) {
	s.list.Toggle(itemID)
}

// ToggleRecipeIngredient flips the checked state of a recipe's
// ingredient, when it is on the list.
func (s *Session) ToggleRecipeIngredient(recipeID string, index int) {
	s.list.Toggle(model.ShoppingItemID(recipeID, index))
}

// DeleteIngredient removes a list item.
func (s *Session) DeleteIngredient(itemID string) {
	s.list.Delete(itemID)
}

// DeleteRecipeGroup removes every item of a recipe.
func (s *Session) DeleteRecipeGroup(recipeID string) {
	name := recipeID
	for _, it := range s.list.Items() {
		if it.RecipeID == recipeID {
			name = it.RecipeName
			break
		}
	}
	if s.list.DeleteByRecipe(recipeID) > 0 {
		s.toasts.Info(name + " removed from list")
	}
}

// ClearShoppingList empties the list.
func (s *Session) ClearShoppingList() {
	if s.list.IsEmpty() {
		return
	}
	s.list.Clear()
	s.toasts.Info("Shopping list cleared")
}

// SetShoppingViewMode switches between the flat and grouped display.
func (s *Session) SetShoppingViewMode(m model.ViewMode) {
	s.viewMode = model.ParseViewMode(string(m))
}

// DismissToast removes a toast immediately.
func (s *Session) DismissToast(id string) {
	s.toasts.Dismiss(id)
}

// --- Projections ---

// Plan returns the active plan, or nil.
func (s *Session) Plan() []model.PlanDay { return s.plan.Plan() }

// HasPlan reports whether a plan exists.
func (s *Session) HasPlan() bool { return s.plan.HasPlan() }

// CalendarWindow returns the rolling calendar starting today.
func (s *Session) CalendarWindow() []model.CalendarDay {
	return calendar.Window(s.now(), s.windowDays)
}

// SelectedDay returns the FullDate key of the selected day.
func (s *Session) SelectedDay() string { return s.selectedDay }

// DayTitle labels the selected day ("Today", "Tomorrow", weekday).
func (s *Session) DayTitle() string {
	return calendar.DayLabel(s.selectedDay, s.now())
}

// PlanRange labels the planned week, or returns "" without a plan.
func (s *Session) PlanRange() string {
	plan := s.plan.Plan()
	if len(plan) == 0 {
		return ""
	}
	return calendar.RangeLabel(plan[0].FullDate, plan[len(plan)-1].FullDate)
}

// MealsForSelectedDay returns the planned meals of the selected day.
func (s *Session) MealsForSelectedDay() (model.PlanDay, bool) {
	return s.plan.MealsFor(s.selectedDay)
}

// ShoppingList returns the flat list in order.
func (s *Session) ShoppingList() []model.ShoppingItem { return s.list.Items() }

// FilteredShoppingList returns the items whose name matches query.
func (s *Session) FilteredShoppingList(query string) []model.ShoppingItem {
	return shopping.Filter(s.list.Items(), query)
}

// GroupedShoppingList returns the items matching query grouped by recipe.
func (s *Session) GroupedShoppingList(query string) []model.RecipeGroup {
	return shopping.GroupByRecipe(s.FilteredShoppingList(query))
}

// ShoppingViewMode returns the current display mode.
func (s *Session) ShoppingViewMode() model.ViewMode { return s.viewMode }

// Toasts returns the visible toasts in creation order.
func (s *Session) Toasts() []model.Toast { return s.toasts.Toasts() }

// RecipeCount returns the number of distinct recipes on the list.
func (s *Session) RecipeCount() int { return s.list.RecipeCount() }

// ItemCount returns the number of list items.
func (s *Session) ItemCount() int { return s.list.Len() }

// CheckedCount returns the number of checked list items.
func (s *Session) CheckedCount() int { return s.list.CheckedCount() }

// Recipes returns the catalog recipes whose title matches query.
func (s *Session) Recipes(query string) []model.Recipe { return s.catalog.Search(query) }

// Recipe looks up a catalog recipe.
func (s *Session) Recipe(id string) (model.Recipe, bool) { return s.catalog.ByID(id) }

// IngredientState describes one ingredient of a recipe relative to the
// shopping list.
type IngredientState struct {
	Index   int
	Name    string
	ItemID  string
	InList  bool
	Checked bool
}

// RecipeIngredients returns the ingredients of a recipe with their list
// state.
func (s *Session) RecipeIngredients(recipeID string) ([]IngredientState, bool) {
	r, ok := s.catalog.ByID(recipeID)
	if !ok {
		return nil, false
	}

	out := make([]IngredientState, len(r.Ingredients))
	for i, name := range r.Ingredients {
		id := model.ShoppingItemID(r.ID, i)
		it, inList := s.list.Item(id)
		out[i] = IngredientState{
			Index:   i,
			Name:    name,
			ItemID:  id,
			InList:  inList,
			Checked: inList && it.Checked,
		}
	}
	return out, true
}
