package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEnterEmitsCommand(t *testing.T) {
	m := New(80, 24, []string{"generate", "clear list"})

	for _, r := range "  Generate " {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	if got := cmd(); got != CommandMsg("generate") {
		t.Errorf("Expected generate, got %v", got)
	}
	if m.input.Value() != "" {
		t.Error("Expected input reset after enter")
	}
}

func TestEnterOnEmptyInput(t *testing.T) {
	m := New(80, 24, nil)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Expected no command for empty input")
	}
}
