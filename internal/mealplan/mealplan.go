// Package mealplan builds and holds the rolling seven-day meal plan.
package mealplan

import (
	"errors"
	"fmt"
	"time"

	"github.com/nhle/mealplanner/internal/calendar"
	"github.com/nhle/mealplanner/internal/model"
)

// PlanLength is the number of days in a plan.
const PlanLength = 7

// ErrPlanLength is returned when Generate is given the wrong number of days.
var ErrPlanLength = errors.New("meal plan needs exactly 7 days")

// Sampler supplies random recipes of a category. *catalog.Catalog
// satisfies it.
type Sampler interface {
	SampleByCategory(category model.Category, count int) []model.Recipe
}

// Engine holds the active plan. A nil plan means none has been generated.
type Engine struct {
	plan []model.PlanDay
}

// New returns an engine with no plan.
func New() *Engine {
	return &Engine{}
}

// Generate builds a fresh plan over days, one sampled recipe per meal
// slot, and installs it in place of any existing plan.
func (e *Engine) Generate(s Sampler, days []model.CalendarDay) ([]model.PlanDay, error) {
	if len(days) != PlanLength {
		return nil, fmt.Errorf("generating plan from %d days: %w", len(days), ErrPlanLength)
	}

	plan := make([]model.PlanDay, len(days))
	for i, d := range days {
		plan[i] = model.PlanDay{
			FullDate: d.FullDate,
			Day:      weekdayName(d.FullDate),
		}
		for _, t := range model.MealTypes {
			plan[i].Meals.Set(t, sampleOne(s, t))
		}
	}

	e.install(plan)
	return e.Plan(), nil
}

// Clear removes the plan.
func (e *Engine) Clear() {
	e.install(nil)
}

// HasPlan reports whether a plan has been generated.
func (e *Engine) HasPlan() bool {
	return len(e.plan) > 0
}

// Plan returns a copy of the active plan, or nil.
func (e *Engine) Plan() []model.PlanDay {
	if e.plan == nil {
		return nil
	}
	return append([]model.PlanDay(nil), e.plan...)
}

// MealsFor returns the plan entry for fullDate.
func (e *Engine) MealsFor(fullDate string) (model.PlanDay, bool) {
	for _, d := range e.plan {
		if d.FullDate == fullDate {
			return d, true
		}
	}
	return model.PlanDay{}, false
}

// Reroll resamples a single meal slot of the planned day. It returns
// false when fullDate is not part of the plan.
func (e *Engine) Reroll(s Sampler, fullDate string, mealType model.MealType) bool {
	for i := range e.plan {
		if e.plan[i].FullDate != fullDate {
			continue
		}
		// Copy before writing so earlier Plan() results are not affected.
		plan := append([]model.PlanDay(nil), e.plan...)
		plan[i].Meals.Set(mealType, sampleOne(s, mealType))
		e.install(plan)
		return true
	}
	return false
}

func (e *Engine) install(plan []model.PlanDay) {
	if n := len(plan); n != 0 && n != PlanLength {
		panic(fmt.Sprintf("mealplan: installing plan with %d days", n))
	}
	e.plan = plan
}

func sampleOne(s Sampler, category model.Category) *model.Recipe {
	picked := s.SampleByCategory(category, 1)
	if len(picked) == 0 {
		return nil
	}
	r := picked[0].Clone()
	return &r
}

func weekdayName(fullDate string) string {
	d, err := calendar.Parse(fullDate, time.UTC)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}
