package ui_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"smart-task-input/internal/smartinput"
	"smart-task-input/internal/smartinput/usecase"
	"smart-task-input/internal/ui"
	"smart-task-input/pkg/log"
)

// Wednesday, January 15, 2025.
var ref = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newModel(t *testing.T) tea.Model {
	t.Helper()
	uc, err := usecase.New(log.NewNop(), usecase.Options{Notes: true})
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return ui.NewSmartInputModel(uc, func(text string) smartinput.ParseInput {
		return smartinput.ParseInput{Text: text, ReferenceTime: ref}
	})
}

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func press(m tea.Model, key tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: key})
}

func TestSmartInputModel_LivePreview(t *testing.T) {
	m := newModel(t)
	if strings.Contains(m.View(), "title") {
		t.Fatalf("empty input should show no fields:\n%s", m.View())
	}

	m = typeText(m, "Standup 9am #work p2")
	view := m.View()
	for _, want := range []string{"Standup", "2025-01-15 (today)", "09:00", "#work", "p2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q:\n%s", want, view)
		}
	}

	// Deleting the time re-parses on the same keystroke.
	for i := 0; i < len(" 9am #work p2"); i++ {
		m, _ = press(m, tea.KeyBackspace)
	}
	view = m.View()
	if strings.Contains(view, "09:00") {
		t.Errorf("time still shown after deleting it:\n%s", view)
	}
}

func TestSmartInputModel_SubmitDraft(t *testing.T) {
	m := newModel(t)
	m = typeText(m, "Pay rent friday #home")
	m, _ = press(m, tea.KeyEnter)

	view := m.View()
	if !strings.Contains(view, "Drafted") || !strings.Contains(view, "Pay rent  Fri Jan 17  #home") {
		t.Errorf("draft missing from history:\n%s", view)
	}
	if strings.Contains(view, "friday #home") {
		t.Errorf("input should be cleared after a draft:\n%s", view)
	}
}

func TestSmartInputModel_RejectsFieldsOnly(t *testing.T) {
	m := newModel(t)
	m = typeText(m, "tomorrow p1")
	m, _ = press(m, tea.KeyEnter)

	view := m.View()
	if !strings.Contains(view, "Add a few words for the title.") {
		t.Errorf("expected title hint:\n%s", view)
	}
	if strings.Contains(view, "Drafted") {
		t.Errorf("fields-only line should not be drafted:\n%s", view)
	}
}

func TestSmartInputModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newModel(t)
		_, cmd := press(m, key)
		if cmd == nil {
			t.Fatalf("key %v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v: expected tea.QuitMsg", key)
		}
	}
}
