package model

// MealType names a slot within a planned day. Its values match Category.
type MealType = Category

// MealTypes lists the slots of a day in display order.
var MealTypes = Categories

// CalendarDay is a derived descriptor for one day of the calendar window.
type CalendarDay struct {
	// Date is the day of the month, for display.
	Date int `json:"date"`

	// Weekday is a two-letter label such as "Mo".
	Weekday string `json:"weekday"`

	// FullDate is the canonical ISO date key (YYYY-MM-DD).
	FullDate string `json:"full_date"`

	// IsPast is true when the day is strictly before today.
	IsPast bool `json:"is_past"`
}

// Meals holds the recipes planned for one day. A nil slot means no
// recipe was available for that category.
type Meals struct {
	Breakfast *Recipe `json:"breakfast,omitempty"`
	Lunch     *Recipe `json:"lunch,omitempty"`
	Dinner    *Recipe `json:"dinner,omitempty"`
}

// Get returns the recipe in the given slot, or nil.
func (m Meals) Get(t MealType) *Recipe {
	switch t {
	case CategoryBreakfast:
		return m.Breakfast
	case CategoryLunch:
		return m.Lunch
	case CategoryDinner:
		return m.Dinner
	}
	return nil
}

// Set stores r in the given slot. Unknown meal types are ignored.
func (m *Meals) Set(t MealType, r *Recipe) {
	switch t {
	case CategoryBreakfast:
		m.Breakfast = r
	case CategoryLunch:
		m.Lunch = r
	case CategoryDinner:
		m.Dinner = r
	}
}

// PlanDay is one entry of the active meal plan.
type PlanDay struct {
	FullDate string `json:"full_date"`
	Day      string `json:"day"`
	Meals    Meals  `json:"meals"`
}
