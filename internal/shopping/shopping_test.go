package shopping

import (
	"reflect"
	"testing"

	"github.com/nhle/mealplanner/internal/model"
)

var (
	salmon = model.Recipe{
		ID:          "salmon-asparagus",
		Title:       "Salmon with tomato and asparagus",
		Category:    model.CategoryDinner,
		Ingredients: []string{"salmon", "asparagus", "tomatoes"},
	}
	fajita = model.Recipe{
		ID:          "chicken-fajita-salad",
		Title:       "Chicken Fajita Salad",
		Category:    model.CategoryLunch,
		Ingredients: []string{"chicken", "Olive oil"},
	}
	quinoa = model.Recipe{
		ID:          "quinoa-bowl",
		Title:       "Mediterranean Quinoa Bowl",
		Category:    model.CategoryLunch,
		Ingredients: []string{"quinoa", "Olive oil"},
	}
)

func ids(items []model.ShoppingItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCandidatesFromRecipe(t *testing.T) {
	got := CandidatesFromRecipe(salmon)

	want := []string{"salmon-asparagus-0", "salmon-asparagus-1", "salmon-asparagus-2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("Expected %v, got %v", want, ids(got))
	}
	if got[1].Name != "asparagus" || got[1].RecipeName != salmon.Title || got[1].Checked {
		t.Errorf("Unexpected candidate %+v", got[1])
	}
}

func TestCandidatesFromPlan(t *testing.T) {
	plan := []model.PlanDay{
		{FullDate: "2026-11-23", Meals: model.Meals{Lunch: &fajita, Dinner: &salmon}},
		{FullDate: "2026-11-24", Meals: model.Meals{Lunch: &quinoa, Dinner: &salmon}},
	}

	got := CandidatesFromPlan(plan)

	want := []string{
		"chicken-fajita-salad-0", "chicken-fajita-salad-1",
		"salmon-asparagus-0", "salmon-asparagus-1", "salmon-asparagus-2",
		"quinoa-bowl-0", "quinoa-bowl-1",
	}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Expected %v, got %v", want, ids(got))
	}

	if got := CandidatesFromPlan(nil); len(got) != 0 {
		t.Errorf("Expected no candidates for an empty plan, got %d", len(got))
	}
}

func TestAddAllMergeIsIdempotent(t *testing.T) {
	l := NewList()
	candidates := CandidatesFromRecipe(salmon)

	if n := l.AddAll(candidates, Merge); n != 3 {
		t.Errorf("Expected 3 added, got %d", n)
	}
	once := l.Items()

	if n := l.AddAll(candidates, Merge); n != 0 {
		t.Errorf("Expected 0 added on second merge, got %d", n)
	}
	if !reflect.DeepEqual(l.Items(), once) {
		t.Errorf("Expected merge to be idempotent, got %v", ids(l.Items()))
	}
}

func TestAddAllMergeKeepsExisting(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(salmon), Merge)
	l.Toggle("salmon-asparagus-1")

	l.AddAll(append(CandidatesFromRecipe(fajita), CandidatesFromRecipe(salmon)...), Merge)

	want := []string{
		"salmon-asparagus-0", "salmon-asparagus-1", "salmon-asparagus-2",
		"chicken-fajita-salad-0", "chicken-fajita-salad-1",
	}
	if !reflect.DeepEqual(ids(l.Items()), want) {
		t.Fatalf("Expected %v, got %v", want, ids(l.Items()))
	}
	if it, _ := l.Item("salmon-asparagus-1"); !it.Checked {
		t.Error("Expected checked state to survive a merge")
	}
}

func TestAddAllReplace(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(salmon), Merge)
	l.Toggle("salmon-asparagus-0")

	candidates := CandidatesFromRecipe(fajita)
	l.AddAll(candidates, Replace)

	if !reflect.DeepEqual(l.Items(), candidates) {
		t.Errorf("Expected list to equal candidates, got %v", ids(l.Items()))
	}
}

func TestAddAllReplaceNormalisesDuplicates(t *testing.T) {
	l := NewList()
	candidates := append(CandidatesFromRecipe(salmon), CandidatesFromRecipe(salmon)...)

	if n := l.AddAll(candidates, Replace); n != 3 {
		t.Errorf("Expected 3 added, got %d", n)
	}
}

func TestToggle(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(salmon), Merge)

	l.Toggle("salmon-asparagus-2")
	if l.CheckedCount() != 1 {
		t.Errorf("Expected 1 checked, got %d", l.CheckedCount())
	}

	l.Toggle("salmon-asparagus-2")
	if l.CheckedCount() != 0 {
		t.Errorf("Expected 0 checked, got %d", l.CheckedCount())
	}

	l.Toggle("missing")
	if l.Len() != 3 || l.CheckedCount() != 0 {
		t.Error("Expected toggling an unknown id to be a no-op")
	}
}

func TestDelete(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(salmon), Merge)
	snapshot := l.Items()

	l.Delete("salmon-asparagus-1")
	l.Delete("missing")

	want := []string{"salmon-asparagus-0", "salmon-asparagus-2"}
	if !reflect.DeepEqual(ids(l.Items()), want) {
		t.Errorf("Expected %v, got %v", want, ids(l.Items()))
	}
	if len(snapshot) != 3 || snapshot[1].ID != "salmon-asparagus-1" {
		t.Error("Expected earlier Items() copy to be unaffected")
	}
}

func TestDeleteByRecipe(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(fajita), Merge)
	l.AddAll(CandidatesFromRecipe(quinoa), Merge)
	l.AddAll(CandidatesFromRecipe(salmon), Merge)

	if n := l.DeleteByRecipe("chicken-fajita-salad"); n != 2 {
		t.Errorf("Expected 2 removed, got %d", n)
	}

	for _, it := range l.Items() {
		if it.RecipeID == "chicken-fajita-salad" {
			t.Errorf("Expected %s to be removed", it.ID)
		}
	}
	if it, ok := l.Item("quinoa-bowl-1"); !ok || it.Name != "Olive oil" {
		t.Error("Expected same-named ingredient of another recipe to stay")
	}
	if l.Len() != 5 {
		t.Errorf("Expected 5 items, got %d", l.Len())
	}

	if n := l.DeleteByRecipe("missing"); n != 0 {
		t.Errorf("Expected 0 removed, got %d", n)
	}
}

func TestClearAndCounts(t *testing.T) {
	l := NewList()
	if !l.IsEmpty() {
		t.Fatal("Expected a new list to be empty")
	}

	l.AddAll(CandidatesFromRecipe(fajita), Merge)
	l.AddAll(CandidatesFromRecipe(salmon), Merge)
	if l.RecipeCount() != 2 {
		t.Errorf("Expected 2 recipes, got %d", l.RecipeCount())
	}

	l.Clear()
	if !l.IsEmpty() || l.RecipeCount() != 0 {
		t.Error("Expected Clear to empty the list")
	}
}

func TestIDsStayUnique(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(salmon), Merge)
	l.AddAll(CandidatesFromRecipe(fajita), Replace)
	l.AddAll(CandidatesFromRecipe(salmon), Merge)
	l.AddAll(CandidatesFromRecipe(fajita), Merge)
	l.Delete("salmon-asparagus-0")
	l.AddAll(CandidatesFromRecipe(salmon), Merge)

	seen := make(map[string]bool)
	for _, it := range l.Items() {
		if seen[it.ID] {
			t.Errorf("Duplicate id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestAssertUniquePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic on duplicate ids")
		}
	}()

	l := &List{items: []model.ShoppingItem{{ID: "a-0"}, {ID: "a-0"}}}
	l.assertUnique()
}

func TestGroupByRecipe(t *testing.T) {
	items := []model.ShoppingItem{
		{ID: "b-0", RecipeID: "b", RecipeName: "B"},
		{ID: "a-0", RecipeID: "a", RecipeName: "A"},
		{ID: "b-1", RecipeID: "b", RecipeName: "B"},
		{ID: "c-0", RecipeID: "c", RecipeName: "C"},
		{ID: "a-1", RecipeID: "a", RecipeName: "A"},
	}

	groups := GroupByRecipe(items)

	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}

	var flat []string
	var order []string
	for _, g := range groups {
		order = append(order, g.RecipeID)
		for _, it := range g.Items {
			if it.RecipeID != g.RecipeID {
				t.Errorf("Item %s in wrong group %s", it.ID, g.RecipeID)
			}
			flat = append(flat, it.ID)
		}
	}

	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("Expected group order %v, got %v", want, order)
	}
	if want := []string{"b-0", "b-1", "a-0", "a-1", "c-0"}; !reflect.DeepEqual(flat, want) {
		t.Errorf("Expected %v, got %v", want, flat)
	}
	if items[1].ID != "a-0" {
		t.Error("Expected source items to be untouched")
	}
}

func TestFilter(t *testing.T) {
	l := NewList()
	l.AddAll(CandidatesFromRecipe(fajita), Merge)
	l.AddAll(CandidatesFromRecipe(quinoa), Merge)

	got := Filter(l.Items(), "OLIVE")
	if want := []string{"chicken-fajita-salad-1", "quinoa-bowl-1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Expected %v, got %v", want, ids(got))
	}

	if got := Filter(l.Items(), ""); len(got) != 4 {
		t.Errorf("Expected empty query to keep 4 items, got %d", len(got))
	}
	if l.Len() != 4 {
		t.Error("Expected Filter not to mutate the list")
	}
}
