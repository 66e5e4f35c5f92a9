package session

import (
	"fmt"

	"github.com/nhle/mealplanner/internal/shopping"
)

// AddWeekState is the state of the "add week to shopping list" flow.
type AddWeekState int

const (
	Idle AddWeekState = iota
	// DecisionPending waits for the user to replace, merge or cancel.
	DecisionPending
)

func (s AddWeekState) String() string {
	switch s {
	case Idle:
		return "idle"
	case DecisionPending:
		return "decision pending"
	}
	return fmt.Sprintf("AddWeekState(%d)", int(s))
}

// AddWeekOutcome records how the last add-week flow ended.
type AddWeekOutcome int

const (
	NoOutcome AddWeekOutcome = iota
	Replaced
	Merged
	Cancelled
)

func (o AddWeekOutcome) String() string {
	switch o {
	case NoOutcome:
		return "none"
	case Replaced:
		return "replaced"
	case Merged:
		return "merged"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("AddWeekOutcome(%d)", int(o))
}

// Decision is the user's answer to the replace-or-merge prompt.
type Decision int

const (
	DecideReplace Decision = iota
	DecideMerge
	DecideCancel
)

// RequestAddWeek starts the add-week flow. An empty list is merged into
// directly; otherwise the session waits for ResolveAddWeek.
func (s *Session) RequestAddWeek() {
	if s.addWeek == DecisionPending {
		return
	}
	if !s.plan.HasPlan() {
		s.toasts.Warning("Generate a meal plan first")
		return
	}
	if s.list.IsEmpty() {
		s.AddAllToShoppingList(shopping.Merge)
		s.lastOutcome = Merged
		return
	}
	s.addWeek = DecisionPending
}

// ResolveAddWeek applies the user's decision. It does nothing unless a
// decision is pending, and always returns the flow to Idle.
func (s *Session) ResolveAddWeek(d Decision) {
	if s.addWeek != DecisionPending {
		return
	}
	s.addWeek = Idle

	switch d {
	case DecideReplace:
		s.AddAllToShoppingList(shopping.Replace)
		s.lastOutcome = Replaced
	case DecideMerge:
		s.AddAllToShoppingList(shopping.Merge)
		s.lastOutcome = Merged
	default:
		s.lastOutcome = Cancelled
	}
}

// AddWeekState returns the current state of the add-week flow.
func (s *Session) AddWeekState() AddWeekState { return s.addWeek }

// LastAddWeekOutcome returns how the most recent add-week flow ended.
func (s *Session) LastAddWeekOutcome() AddWeekOutcome { return s.lastOutcome }

// ConfirmPrompt phrases the replace-or-merge question.
func (s *Session) ConfirmPrompt() string {
	n := s.list.RecipeCount()
	noun := "recipes"
	if n == 1 {
		noun = "recipe"
	}
	return fmt.Sprintf("Your shopping list already has ingredients from %d %s. Replace them with this week's ingredients, or merge?", n, noun)
}
