package model

import "fmt"

// ShoppingItem is one ingredient line tied to a recipe.
type ShoppingItem struct {
	// ID is the composite key "<recipeID>-<ingredientIndex>".
	ID         string `json:"id"`
	Name       string `json:"name"`
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Checked    bool   `json:"checked"`
}

// ShoppingItemID builds the composite identity of a recipe ingredient.
func ShoppingItemID(recipeID string, index int) string {
	return fmt.Sprintf("%s-%d", recipeID, index)
}

// RecipeGroup is the recipe-grouped projection of the shopping list.
type RecipeGroup struct {
	RecipeID   string         `json:"recipe_id"`
	RecipeName string         `json:"recipe_name"`
	Items      []ShoppingItem `json:"items"`
}

// ViewMode selects how the shopping list is displayed.
type ViewMode string

const (
	ViewModeList   ViewMode = "list"
	ViewModeRecipe ViewMode = "recipe"
)

// ParseViewMode converts a string into a ViewMode, falling back to the
// flat list for unknown values.
func ParseViewMode(s string) ViewMode {
	if ViewMode(s) == ViewModeRecipe {
		return ViewModeRecipe
	}
	return ViewModeList
}
