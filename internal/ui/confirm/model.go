// Package confirm implements the yes/no prompt that gates destructive
// bulk operations.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"taskloom/internal/theme"
)

// ResultMsg carries the user's decision. Declining (or aborting with esc)
// means the gated operation must not run.
type ResultMsg struct {
	Confirmed bool
}

// Model is the Bubble Tea model for a confirmation prompt.
type Model struct {
	form *huh.Form

	// confirmed lives on the heap so huh's Value pointer survives
	// Bubble Tea model copies.
	confirmed *bool

	width  int
	height int
}

// New creates a new confirmation prompt model.
func New(width, height int) Model {
	v := false
	return Model{
		confirmed: &v,
		width:     width,
		height:    height,
	}
}

// Start initializes the prompt with the given question.
func (m *Model) Start(question string) tea.Cmd {
	*m.confirmed = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Clear").
				Negative("Keep").
				Value(m.confirmed),
		),
	).WithWidth(60)
	return m.form.Init()
}

// Update handles messages for the prompt.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		confirmed := *m.confirmed
		return m, func() tea.Msg { return ResultMsg{Confirmed: confirmed} }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return ResultMsg{Confirmed: false} }
	}

	return m, cmd
}

// View renders the prompt centered in the content area.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	panel := theme.BorderStyle.Padding(1, 2).Render(m.form.View())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}

// SetSize updates the prompt dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
