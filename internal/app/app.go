// Package app wires the task collection, the view projector, and the
// terminal views into a single Bubble Tea program.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskloom/internal/keys"
	"taskloom/internal/model"
	"taskloom/internal/tasks"
	"taskloom/internal/ui"
	"taskloom/internal/ui/confirm"
	helpview "taskloom/internal/ui/help"
	"taskloom/internal/ui/taskform"
	"taskloom/internal/ui/tasklist"
	"taskloom/internal/view"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewTaskCreate
	ViewTaskEdit
	ViewConfirmClear
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and the task collection. Every mutation runs synchronously inside
// Update; there is no background work.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	list         *tasks.List
	keys         *keys.KeyMap
	taskList     tasklist.Model
	formView     taskform.Model
	confirmView  confirm.Model
	helpView     helpview.Model
	ready        bool
}

// New creates the root application model around a loaded task collection.
func New(l *tasks.List, dateFormat string) Model {
	k := keys.DefaultKeyMap()

	return Model{
		currentView: ViewList,
		list:        l,
		keys:        k,
		taskList:    tasklist.New(k, dateFormat, 80, 24),
		formView:    taskform.New(80, 24),
		confirmView: confirm.New(80, 24),
		helpView:    helpview.New(k, 80, 24),
	}
}

// tasksReloadedMsg carries a fresh snapshot of the collection to the
// task list view.
type tasksReloadedMsg struct {
	tasks []model.Task
}

// reloadTasks returns a command that snapshots the collection for the
// task list to reproject.
func (m Model) reloadTasks() tea.Cmd {
	l := m.list
	return func() tea.Msg {
		return tasksReloadedMsg{tasks: l.Tasks()}
	}
}

// Init seeds the task list with the rehydrated collection.
func (m Model) Init() tea.Cmd {
	return m.reloadTasks()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksReloadedMsg:
		cmd := m.taskList.SetTasks(msg.tasks)
		return m, cmd

	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.taskList.SetSize(contentWidth, contentHeight)
		m.formView.SetSize(contentWidth, contentHeight)
		m.confirmView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can recalculate layout.
		return m.updateActiveView(msg)

	case taskform.SubmitCreateMsg:
		m.currentView = ViewList
		m.list.Create(msg.Title, msg.Date, msg.Time)
		return m, m.reloadTasks()

	case taskform.SubmitUpdateMsg:
		m.currentView = ViewList
		// A task deleted while its edit form was open falls through as a
		// silent no-op here.
		m.list.Update(msg.ID, msg.Title, msg.Date, msg.Time)
		return m, m.reloadTasks()

	case taskform.CancelMsg:
		m.currentView = ViewList
		return m, nil

	case confirm.ResultMsg:
		m.currentView = ViewList
		if msg.Confirmed {
			m.list.ClearCompleted()
			return m, m.reloadTasks()
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that act on the whole application.
// Returns handled=false when the key should fall through to the active view.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	// The search input owns every key while focused.
	if m.currentView == ViewList && m.taskList.InSearchMode() {
		return nil, false
	}

	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewList {
			return tea.Quit, true
		}

	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return nil, true
		}
		if m.currentView == ViewList {
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return nil, true
		}

	case key.Matches(msg, m.keys.Back):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return nil, true
		}

	case key.Matches(msg, m.keys.New):
		if m.currentView == ViewList {
			m.previousView = m.currentView
			m.currentView = ViewTaskCreate
			return m.formView.StartCreate(), true
		}

	case key.Matches(msg, m.keys.Edit):
		if m.currentView == ViewList {
			task, ok := m.taskList.SelectedTask()
			if ok {
				m.previousView = m.currentView
				m.currentView = ViewTaskEdit
				return m.formView.StartEdit(task), true
			}
			return nil, true
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.currentView == ViewList {
			if task, ok := m.taskList.SelectedTask(); ok {
				m.list.ToggleCompleted(task.ID)
				return m.reloadTasks(), true
			}
			return nil, true
		}

	case key.Matches(msg, m.keys.Delete):
		if m.currentView == ViewList {
			if task, ok := m.taskList.SelectedTask(); ok {
				m.list.Delete(task.ID)
				return m.reloadTasks(), true
			}
			return nil, true
		}

	case key.Matches(msg, m.keys.Clear):
		if m.currentView == ViewList {
			if view.Summarize(m.list.Tasks()).Completed == 0 {
				return nil, true
			}
			m.previousView = m.currentView
			m.currentView = ViewConfirmClear
			return m.confirmView.Start("Clear all completed tasks?"), true
		}
	}

	return nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewTaskCreate, ViewTaskEdit:
		m.formView, cmd = m.formView.Update(msg)
	case ViewConfirmClear:
		m.confirmView, cmd = m.confirmView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("TaskLoom", m.dashboard())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.taskList.View()
	case ViewTaskCreate, ViewTaskEdit:
		return m.formView.View()
	case ViewConfirmClear:
		return m.confirmView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// dashboard renders the four aggregate counters for the header. They are
// always computed over the unfiltered collection.
func (m Model) dashboard() string {
	stats := view.Summarize(m.list.Tasks())
	return fmt.Sprintf(
		"%d tasks · %d active · %d done · %d%%",
		stats.Total, stats.Active, stats.Completed, stats.Efficiency,
	)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewTaskCreate, ViewTaskEdit:
		return "enter submit | esc cancel"
	case ViewConfirmClear:
		return "←/→ choose | enter confirm | esc keep"
	default:
		if summary := m.taskList.FilterSummary(); summary != "" {
			return summary + " | 1 show all"
		}
		return "q quit | ? help | n new | e edit | x done | d delete | / search | C clear done"
	}
}
