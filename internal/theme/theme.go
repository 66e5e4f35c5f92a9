package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorGreen).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps the recipe detail and confirmation content.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorGreen).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorGreen)

// CheckedItemStyle renders ticked-off shopping items.
var CheckedItemStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// DimStyle is used for secondary text such as recipe names and past days.
var DimStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// SectionStyle titles a block inside a view ("Breakfast", "Ingredients").
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorOrange)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// TabStyle returns the style of a navigation tab.
func TabStyle(active bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return base.Bold(true).Foreground(ColorWhite).Background(ColorBlue)
	}
	return base.Foreground(ColorGray)
}

// DayStyle returns the style of a calendar strip cell.
func DayStyle(selected, planned, past bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)

	switch {
	case selected:
		return base.Bold(true).Foreground(ColorWhite).Background(ColorGreen)
	case past:
		return base.Foreground(ColorSubtle)
	case planned:
		return base.Foreground(ColorWhite)
	default:
		return base.Foreground(ColorGray)
	}
}

// CategoryStyle returns a color-coded style for a recipe category.
func CategoryStyle(c model.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch c {
	case model.CategoryBreakfast:
		return base.Foreground(ColorYellow)
	case model.CategoryLunch:
		return base.Foreground(ColorBlue)
	case model.CategoryDinner:
		return base.Foreground(ColorMagenta)
	default:
		return base.Foreground(ColorGray)
	}
}

// ToastStyle returns the boxed style for a toast variant.
func ToastStyle(v model.Variant) lipgloss.Style {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	switch v {
	case model.VariantSuccess:
		return base.BorderForeground(ColorGreen).Foreground(ColorGreen)
	case model.VariantError:
		return base.BorderForeground(ColorRed).Foreground(ColorRed)
	case model.VariantWarning:
		return base.BorderForeground(ColorOrange).Foreground(ColorOrange)
	default:
		return base.BorderForeground(ColorBlue).Foreground(ColorBlue)
	}
}

// ToastIcon returns the glyph shown before a toast message.
func ToastIcon(v model.Variant) string {
	switch v {
	case model.VariantSuccess:
		return "✓"
	case model.VariantError:
		return "✗"
	case model.VariantWarning:
		return "!"
	default:
		return "i"
	}
}
