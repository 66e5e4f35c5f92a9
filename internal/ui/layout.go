package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/theme"
)

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with the title, the navigation
// tabs and a right-aligned status.
func (l Layout) RenderHeader(title, tabs, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(tabs) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		tabs,
		filler,
		statusRendered,
	)
}

// RenderTabs renders the navigation tabs, highlighting active.
func RenderTabs(names []string, active int) string {
	tabs := make([]string, len(names))
	for i, name := range names {
		tabs[i] = theme.TabStyle(i == active).Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderToasts stacks the visible toasts, oldest first, right-aligned.
// It returns "" when there are none.
func (l Layout) RenderToasts(toasts []model.Toast) string {
	if len(toasts) == 0 {
		return ""
	}

	rows := make([]string, len(toasts))
	for i, t := range toasts {
		rows[i] = theme.ToastStyle(t.Variant).Render(theme.ToastIcon(t.Variant) + " " + t.Message)
	}
	return lipgloss.PlaceHorizontal(l.Width, lipgloss.Right,
		lipgloss.JoinVertical(lipgloss.Right, rows...))
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, toasts and status bar. The content is cut so
// the status bar stays on the last line.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	toasts string,
	statusBar string,
) string {
	height := l.ContentHeight()
	if toasts != "" {
		height -= lipgloss.Height(toasts)
	}
	content = fitHeight(content, max(height, 0))

	parts := []string{header, content}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fitHeight pads or truncates s to exactly n lines.
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
