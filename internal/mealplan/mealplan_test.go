package mealplan

import (
	"errors"
	"testing"
	"time"

	"github.com/nhle/mealplanner/internal/calendar"
	"github.com/nhle/mealplanner/internal/model"
)

// fakeSampler hands out recipes of each category round-robin.
type fakeSampler struct {
	recipes map[model.Category][]model.Recipe
	next    map[model.Category]int
}

func newFakeSampler(recipes ...model.Recipe) *fakeSampler {
	s := &fakeSampler{
		recipes: make(map[model.Category][]model.Recipe),
		next:    make(map[model.Category]int),
	}
	for _, r := range recipes {
		s.recipes[r.Category] = append(s.recipes[r.Category], r)
	}
	return s
}

func (s *fakeSampler) SampleByCategory(category model.Category, count int) []model.Recipe {
	pool := s.recipes[category]
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	r := pool[s.next[category]%len(pool)]
	s.next[category]++
	return []model.Recipe{r}
}

func week() []model.CalendarDay {
	return calendar.Window(time.Date(2026, time.November, 23, 8, 0, 0, 0, time.UTC), PlanLength)
}

func TestGenerate(t *testing.T) {
	s := newFakeSampler(
		model.Recipe{ID: "parfait", Category: model.CategoryBreakfast},
		model.Recipe{ID: "salad", Category: model.CategoryLunch},
		model.Recipe{ID: "curry", Category: model.CategoryDinner},
		model.Recipe{ID: "tacos", Category: model.CategoryDinner},
	)
	e := New()
	days := week()

	plan, err := e.Generate(s, days)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(plan) != PlanLength {
		t.Fatalf("Expected %d days, got %d", PlanLength, len(plan))
	}
	for i, d := range plan {
		if d.FullDate != days[i].FullDate {
			t.Errorf("Expected day %d to be %s, got %s", i, days[i].FullDate, d.FullDate)
		}
		if d.Meals.Breakfast == nil || d.Meals.Lunch == nil || d.Meals.Dinner == nil {
			t.Errorf("Expected every slot filled on %s", d.FullDate)
		}
	}
	if plan[0].Day != "Monday" {
		t.Errorf("Expected Monday, got %s", plan[0].Day)
	}
	if plan[0].Meals.Dinner.ID != "curry" || plan[1].Meals.Dinner.ID != "tacos" {
		t.Errorf("Expected dinners to be sampled per day")
	}
	if !e.HasPlan() {
		t.Error("Expected HasPlan after Generate")
	}
}

func TestGenerateMissingCategory(t *testing.T) {
	s := newFakeSampler(model.Recipe{ID: "curry", Category: model.CategoryDinner})
	e := New()

	plan, err := e.Generate(s, week())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, d := range plan {
		if d.Meals.Breakfast != nil || d.Meals.Lunch != nil {
			t.Errorf("Expected empty breakfast and lunch on %s", d.FullDate)
		}
		if d.Meals.Dinner == nil {
			t.Errorf("Expected dinner on %s", d.FullDate)
		}
	}
}

func TestGenerateWrongLength(t *testing.T) {
	e := New()

	_, err := e.Generate(newFakeSampler(), week()[:3])
	if !errors.Is(err, ErrPlanLength) {
		t.Fatalf("Expected ErrPlanLength, got %v", err)
	}
	if e.HasPlan() {
		t.Error("Expected no plan after a failed Generate")
	}
}

func TestGenerateReplacesPlan(t *testing.T) {
	e := New()
	first := newFakeSampler(model.Recipe{ID: "curry", Category: model.CategoryDinner})
	second := newFakeSampler(model.Recipe{ID: "tacos", Category: model.CategoryDinner})

	if _, err := e.Generate(first, week()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := e.Generate(second, week()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, d := range e.Plan() {
		if d.Meals.Dinner.ID != "tacos" {
			t.Errorf("Expected tacos on %s, got %s", d.FullDate, d.Meals.Dinner.ID)
		}
	}
}

func TestPlanHoldsSnapshots(t *testing.T) {
	r := model.Recipe{ID: "curry", Category: model.CategoryDinner, Ingredients: []string{"paste"}}
	s := newFakeSampler(r)
	e := New()

	if _, err := e.Generate(s, week()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s.recipes[model.CategoryDinner][0].Ingredients[0] = "changed"

	if got := e.Plan()[0].Meals.Dinner.Ingredients[0]; got != "paste" {
		t.Errorf("Expected snapshot to keep %q, got %q", "paste", got)
	}
}

func TestClear(t *testing.T) {
	e := New()
	if _, err := e.Generate(newFakeSampler(), week()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	e.Clear()

	if e.HasPlan() {
		t.Error("Expected no plan after Clear")
	}
	if e.Plan() != nil {
		t.Error("Expected nil plan after Clear")
	}
}

func TestMealsFor(t *testing.T) {
	e := New()

	if _, ok := e.MealsFor("2026-11-23"); ok {
		t.Error("Expected not-found without a plan")
	}

	s := newFakeSampler(model.Recipe{ID: "salad", Category: model.CategoryLunch})
	if _, err := e.Generate(s, week()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	d, ok := e.MealsFor("2026-11-25")
	if !ok {
		t.Fatal("Expected 2026-11-25 to be planned")
	}
	if d.Meals.Lunch == nil || d.Meals.Lunch.ID != "salad" {
		t.Error("Expected salad for lunch")
	}

	if _, ok := e.MealsFor("2026-12-25"); ok {
		t.Error("Expected not-found outside the plan range")
	}
}

func TestReroll(t *testing.T) {
	s := newFakeSampler(
		model.Recipe{ID: "curry", Category: model.CategoryDinner},
		model.Recipe{ID: "tacos", Category: model.CategoryDinner},
		model.Recipe{ID: "salmon", Category: model.CategoryDinner},
	)
	e := New()
	if _, err := e.Generate(s, week()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	before := e.Plan()

	// Seven samples consumed; the next dinner is index 7 % 3 == 1.
	if !e.Reroll(s, "2026-11-23", model.CategoryDinner) {
		t.Fatal("Expected Reroll to succeed")
	}

	d, _ := e.MealsFor("2026-11-23")
	if d.Meals.Dinner.ID != "tacos" {
		t.Errorf("Expected tacos, got %s", d.Meals.Dinner.ID)
	}
	if before[0].Meals.Dinner.ID != "curry" {
		t.Errorf("Expected earlier copy to be unaffected, got %s", before[0].Meals.Dinner.ID)
	}

	if e.Reroll(s, "2030-01-01", model.CategoryDinner) {
		t.Error("Expected Reroll to fail outside the plan")
	}
}

func TestInstallPanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a 3-day plan")
		}
	}()

	e := New()
	e.install(make([]model.PlanDay, 3))
}
