package testutil

import (
	"context"
	"testing"

	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/store"
)

// NewTestStore returns an in-memory catalog seeded with the built-in recipes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	return OpenStore(t, ":memory:")
}

// OpenStore opens the catalog at path and closes it when the test ends.
func OpenStore(t *testing.T, path string) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("opening catalog %s: %v", path, err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing catalog %s: %v", path, err)
		}
	})
	return s
}

// LoadRecipes reads every recipe from s, failing the test on error.
func LoadRecipes(t *testing.T, s store.RecipeStore) []model.Recipe {
	t.Helper()

	recipes, err := s.LoadRecipes(context.Background())
	if err != nil {
		t.Fatalf("loading recipes: %v", err)
	}
	return recipes
}
