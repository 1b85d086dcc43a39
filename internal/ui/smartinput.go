// Package ui holds the terminal front ends of the smartinput CLI.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"smart-task-input/internal/model"
	"smart-task-input/internal/smartinput"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

const maxHistory = 5

var (
	kindStyles = map[pkgSmartinput.Kind]lipgloss.Style{
		pkgSmartinput.KindDate:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		pkgSmartinput.KindTime:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		pkgSmartinput.KindProject:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		pkgSmartinput.KindLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		pkgSmartinput.KindPriority: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		pkgSmartinput.KindNotes:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Input supplies the reference instant for every parse. Returning the zero
// time lets the use case read its own clock.
type Input func(text string) smartinput.ParseInput

type smartInputModel struct {
	uc      smartinput.UseCase
	input   Input
	text    textinput.Model
	out     smartinput.ParseOutput
	err     error
	history []model.TaskDraft
	width   int
}

// NewSmartInputModel returns a Bubble Tea model that re-parses the line on
// every keystroke and turns it into a draft on enter.
func NewSmartInputModel(uc smartinput.UseCase, input Input) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "Fix bug tomorrow 3pm #backend @urgent p1"
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Focus()

	return &smartInputModel{
		uc:    uc,
		input: input,
		text:  ti,
		width: 80,
	}
}

func (m *smartInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *smartInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.text.Width = msg.Width - 4
		}
		return m, nil
	}

	before := m.text.Value()
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	if m.text.Value() != before {
		m.reparse()
	}
	return m, cmd
}

func (m *smartInputModel) reparse() {
	m.out, m.err = m.uc.Parse(context.Background(), m.input(m.text.Value()))
}

func (m *smartInputModel) submit() {
	if strings.TrimSpace(m.text.Value()) == "" {
		return
	}
	out, err := m.uc.Draft(context.Background(), m.input(m.text.Value()))
	if err != nil {
		m.err = err
		return
	}

	m.history = append([]model.TaskDraft{out.Draft}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
	m.text.Reset()
	m.out, m.err = smartinput.ParseOutput{}, nil
}

func (m *smartInputModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New task"))
	b.WriteString("\n\n")
	b.WriteString(m.text.View())
	b.WriteString("\n")

	if preview := m.preview(); preview != "" {
		b.WriteString("  ")
		b.WriteString(preview)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case errors.Is(m.err, smartinput.ErrMissingTitle):
		b.WriteString(errorStyle.Render("Add a few words for the title."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	for _, line := range m.fields() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Drafted"))
		b.WriteString("\n")
		for _, d := range m.history {
			b.WriteString("  • ")
			b.WriteString(truncate(describeDraft(d), m.width-4))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: draft task • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// preview renders the current line with every consumed span styled.
func (m *smartInputModel) preview() string {
	if !hasClassified(m.out.Segments) {
		return ""
	}
	var b strings.Builder
	for _, seg := range m.out.Segments {
		if style, ok := kindStyles[seg.Kind]; ok {
			b.WriteString(style.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func (m *smartInputModel) fields() []string {
	res := m.out.Result
	if res.Title == "" && res.Empty() {
		return nil
	}

	var lines []string
	add := func(name string, kind pkgSmartinput.Kind, value string) {
		style, ok := kindStyles[kind]
		if ok {
			value = style.Render(value)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", fieldStyle.Render(runewidth.FillRight(name, 9)), value))
	}

	add("title", "", res.Title)
	if res.Date != nil {
		date := res.Date.String()
		if res.DateDefaulted {
			date += " (today)"
		}
		add("date", pkgSmartinput.KindDate, date)
	}
	if res.Time != nil {
		add("time", pkgSmartinput.KindTime, res.Time.String())
	}
	if res.Project != "" {
		add("project", pkgSmartinput.KindProject, "#"+res.Project)
	}
	if res.Label != "" {
		add("label", pkgSmartinput.KindLabel, "@"+res.Label)
	}
	if res.Priority > 0 {
		add("priority", pkgSmartinput.KindPriority, fmt.Sprintf("p%d", res.Priority))
	}
	if res.Notes != "" {
		add("notes", pkgSmartinput.KindNotes, res.Notes)
	}
	return lines
}

func hasClassified(segments []pkgSmartinput.Segment) bool {
	for _, seg := range segments {
		if seg.Classified() {
			return true
		}
	}
	return false
}

func describeDraft(d model.TaskDraft) string {
	parts := []string{d.Title}
	if d.HasDue() {
		if d.AllDay {
			parts = append(parts, d.Due.Format("Mon Jan 2"))
		} else {
			parts = append(parts, d.Due.Format("Mon Jan 2 15:04"))
		}
	}
	if d.Project != "" {
		parts = append(parts, "#"+d.Project)
	}
	if d.Label != "" {
		parts = append(parts, "@"+d.Label)
	}
	if d.Priority > 0 {
		parts = append(parts, fmt.Sprintf("p%d", d.Priority))
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	return runewidth.Truncate(s, width, "…")
}
