package tasklist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskloom/internal/keys"
	"taskloom/internal/model"
	"taskloom/internal/theme"
	"taskloom/internal/view"
)

// Model is the main task list view component. It holds the full collection
// plus the transient filter and search state, and reprojects the displayed
// items whenever either changes.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	all         []model.Task
	filter      model.Filter
	query       string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new task list model.
func New(k *keys.KeyMap, dateFormat string, width, height int) Model {
	delegate := ItemDelegate{DateFormat: dateFormat}
	l := list.New([]list.Item{}, delegate, width, height-2)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search your tasks..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		filter:      model.FilterAll,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetTasks replaces the backing collection and reprojects the display.
func (m *Model) SetTasks(tasks []model.Task) tea.Cmd {
	m.all = tasks
	return m.reproject()
}

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// InSearchMode reports whether the search input currently owns key events.
func (m Model) InSearchMode() bool {
	return m.searchMode
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(keyMsg)
		}
		return m.handleNormalKeys(keyMsg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while the search bar is focused.
// The projection updates live on every keystroke.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.query = ""
		cmd := m.reproject()
		return m, cmd
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query = m.searchInput.Value()
	reprojectCmd := m.reproject()
	return m, tea.Batch(cmd, reprojectCmd)
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CycleFilter):
		return m.setFilter(m.filter.Next())

	case key.Matches(msg, m.keys.FilterAll):
		return m.setFilter(model.FilterAll)

	case key.Matches(msg, m.keys.FilterOpen):
		return m.setFilter(model.FilterActive)

	case key.Matches(msg, m.keys.FilterDone):
		return m.setFilter(model.FilterCompleted)
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) setFilter(f model.Filter) (Model, tea.Cmd) {
	m.filter = f
	cmd := m.reproject()
	return m, cmd
}

// FilterSummary describes the active filter and search state for the
// status bar, or "" when nothing is narrowed.
func (m Model) FilterSummary() string {
	var parts []string
	if m.filter != model.FilterAll {
		parts = append(parts, "filter: "+string(m.filter))
	}
	if m.query != "" {
		parts = append(parts, "search: "+m.query)
	}
	return strings.Join(parts, " | ")
}

// reproject recomputes the displayed items from the collection and the
// current filter/search state.
func (m *Model) reproject() tea.Cmd {
	projected := view.Project(m.all, m.filter, m.query)
	items := make([]list.Item, len(projected))
	for i, task := range projected {
		items[i] = TaskItem{Task: task}
	}
	return m.list.SetItems(items)
}

// View renders the task list view.
func (m Model) View() string {
	filterBar := m.renderFilterBar()

	var content string
	if len(m.list.Items()) == 0 {
		content = m.renderEmptyState()
	} else {
		content = m.list.View()
	}

	if m.searchMode || m.query != "" {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, filterBar, searchBar, content)
	}

	return lipgloss.JoinVertical(lipgloss.Left, filterBar, content)
}

// renderFilterBar shows the three status filters with the active one
// highlighted.
func (m Model) renderFilterBar() string {
	parts := make([]string, len(model.Filters))
	for i, f := range model.Filters {
		parts[i] = theme.FilterStyle(f == m.filter).Render(string(f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderEmptyState shows guidance text when no tasks are visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.query != "" || m.filter != model.FilterAll {
		return style.Render("No matching tasks.\nTry adjusting your filter or search.")
	}

	return style.Render(
		"Your list is empty.\n\n" +
			"Press n to create your first task.",
	)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
