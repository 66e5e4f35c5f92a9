// Package shopping derives shopping list items from recipes and keeps the
// ordered list with per-item check and delete.
package shopping

import (
	"fmt"

	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/textmatch"
)

// Mode selects how AddAll combines candidates with the current list.
type Mode int

const (
	// Merge appends candidates whose id is not already listed.
	Merge Mode = iota
	// Replace discards the list and installs the candidates.
	Replace
)

func (m Mode) String() string {
	switch m {
	case Merge:
		return "merge"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// CandidatesFromRecipe returns one unchecked item per ingredient of r.
func CandidatesFromRecipe(r model.Recipe) []model.ShoppingItem {
	items := make([]model.ShoppingItem, len(r.Ingredients))
	for i, name := range r.Ingredients {
		items[i] = model.ShoppingItem{
			ID:         model.ShoppingItemID(r.ID, i),
			Name:       name,
			RecipeID:   r.ID,
			RecipeName: r.Title,
		}
	}
	return items
}

// CandidatesFromPlan flattens every planned meal into items, day by day
// then breakfast, lunch, dinner. A recipe planned on several days yields
// its ingredients once, at its first occurrence.
func CandidatesFromPlan(plan []model.PlanDay) []model.ShoppingItem {
	var items []model.ShoppingItem
	seen := make(map[string]bool)
	for _, day := range plan {
		for _, t := range model.MealTypes {
			r := day.Meals.Get(t)
			if r == nil || seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			items = append(items, CandidatesFromRecipe(*r)...)
		}
	}
	return items
}

// List is the ordered shopping list. Item ids are unique.
type List struct {
	items []model.ShoppingItem
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// AddAll combines candidates with the list according to mode and returns
// how many items were added.
func (l *List) AddAll(candidates []model.ShoppingItem, mode Mode) int {
	if mode == Replace {
		l.items = l.items[:0:0]
	}

	seen := make(map[string]bool, len(l.items)+len(candidates))
	for _, it := range l.items {
		seen[it.ID] = true
	}

	added := 0
	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		l.items = append(l.items, c)
		added++
	}

	l.assertUnique()
	return added
}

// Toggle flips the checked state of the item. Unknown ids are ignored.
func (l *List) Toggle(id string) {
	if i := l.index(id); i >= 0 {
		l.items[i].Checked = !l.items[i].Checked
	}
}

// Delete removes the item. Unknown ids are ignored.
func (l *List) Delete(id string) {
	if i := l.index(id); i >= 0 {
		l.items = append(l.items[:i:i], l.items[i+1:]...)
	}
}

// DeleteByRecipe removes every item of the recipe and returns how many
// were removed.
func (l *List) DeleteByRecipe(recipeID string) int {
	kept := make([]model.ShoppingItem, 0, len(l.items))
	for _, it := range l.items {
		if it.RecipeID != recipeID {
			kept = append(kept, it)
		}
	}
	removed := len(l.items) - len(kept)
	l.items = kept
	return removed
}

// Clear empties the list.
func (l *List) Clear() {
	l.items = nil
}

// Items returns a copy of the list in order.
func (l *List) Items() []model.ShoppingItem {
	return append([]model.ShoppingItem(nil), l.items...)
}

// Item returns the item with the given id.
func (l *List) Item(id string) (model.ShoppingItem, bool) {
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	return model.ShoppingItem{}, false
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no items.
func (l *List) IsEmpty() bool {
	return len(l.items) == 0
}

// RecipeCount returns the number of distinct recipes in the list.
func (l *List) RecipeCount() int {
	recipes := make(map[string]struct{})
	for _, it := range l.items {
		recipes[it.RecipeID] = struct{}{}
	}
	return len(recipes)
}

// CheckedCount returns the number of checked items.
func (l *List) CheckedCount() int {
	n := 0
	for _, it := range l.items {
		if it.Checked {
			n++
		}
	}
	return n
}

func (l *List) index(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) assertUnique() {
	seen := make(map[string]struct{}, len(l.items))
	for _, it := range l.items {
		if _, dup := seen[it.ID]; dup {
			panic(fmt.Sprintf("shopping: duplicate item id %q", it.ID))
		}
		seen[it.ID] = struct{}{}
	}
}

// GroupByRecipe partitions items by recipe in first-seen recipe order.
func GroupByRecipe(items []model.ShoppingItem) []model.RecipeGroup {
	var groups []model.RecipeGroup
	pos := make(map[string]int)
	for _, it := range items {
		i, ok := pos[it.RecipeID]
		if !ok {
			i = len(groups)
			pos[it.RecipeID] = i
			groups = append(groups, model.RecipeGroup{RecipeID: it.RecipeID, RecipeName: it.RecipeName})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Filter returns the items whose name contains query, ignoring case.
func Filter(items []model.ShoppingItem, query string) []model.ShoppingItem {
	var out []model.ShoppingItem
	for _, it := range items {
		if textmatch.Contains(it.Name, query) {
			out = append(out, it)
		}
	}
	return out
}
