package store

import (
	"context"

	"github.com/nhle/mealplanner/internal/model"
)

// RecipeStore is the read/write interface of the recipe catalog store.
// The catalog itself is loaded once at startup and kept in memory.
type RecipeStore interface {
	// LoadRecipes returns every recipe with its ingredients and directions,
	// in catalog order.
	LoadRecipes(ctx context.Context) ([]model.Recipe, error)

	// UpsertRecipes inserts or replaces recipes, keeping the given order.
	UpsertRecipes(ctx context.Context, recipes []model.Recipe) error

	// CountRecipes returns the number of stored recipes.
	CountRecipes(ctx context.Context) (int, error)
}
