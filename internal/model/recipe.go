package model

// Category identifies the meal slot a recipe is meant for.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
)

// Categories lists every category in meal order.
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner:
		return true
	}
	return false
}

// Recipe is an immutable catalog entry.
type Recipe struct {
	// ID is the unique, stable identifier (e.g. "salmon-asparagus").
	ID string `json:"id" db:"id"`

	// Title is the human-readable recipe name.
	Title string `json:"title" db:"title"`

	// Thumbnail is a small preview image URL.
	Thumbnail string `json:"thumbnail" db:"thumbnail"`

	// Image is the full-size image URL.
	Image string `json:"image" db:"image"`

	// Category is the meal slot this recipe fills.
	Category Category `json:"category" db:"category"`

	// Ingredients are shown in insertion order. The index of an
	// ingredient is part of its shopping item identity.
	Ingredients []string `json:"ingredients" db:"-"`

	// Directions are the ordered cooking steps.
	Directions []string `json:"directions" db:"-"`
}

// Clone returns a deep copy so callers can hold a snapshot that does not
// share slices with the catalog.
func (r Recipe) Clone() Recipe {
	c := r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Directions = append([]string(nil), r.Directions...)
	return c
}
