package tasklist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"taskloom/internal/model"
	"taskloom/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	if i.Task.Date == "" {
		return ""
	}
	if i.Task.Time != "" {
		return i.Task.Date + " @ " + i.Task.Time
	}
	return i.Task.Date
}

// ItemDelegate implements list.ItemDelegate, drawing each task on one line.
type ItemDelegate struct {
	// DateFormat is the Go layout for the due-date fragment.
	DateFormat string
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task line: completion prefix, title, due fragment,
// and a due-status badge computed fresh from the wall clock.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}

	task := ti.Task
	isSelected := index == m.Index()

	var prefix string
	if task.Completed {
		prefix = "✓"
	} else {
		prefix = "○"
	}

	title := task.Title
	if task.Completed {
		title = theme.DimmedStyle.Render(title)
	}

	dueStr := ""
	if task.Date != "" {
		fragment := d.formatDue(task)
		dueStr = theme.DueDateStyle.Render("  " + fragment)
	}

	badge := ""
	switch task.DueStatus(time.Now()) {
	case model.DueStatusOverdue:
		badge = theme.OverdueStyle.Render("  OVERDUE")
	case model.DueStatusSoon:
		badge = theme.SoonStyle.Render("  SOON")
	}

	line := fmt.Sprintf("%s %s%s%s", prefix, title, dueStr, badge)

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// formatDue renders the due date (and time, when set) for display.
func (d ItemDelegate) formatDue(task model.Task) string {
	layout := d.DateFormat
	if layout == "" {
		layout = "Jan 02"
	}

	dateStr := task.Date
	if parsed, err := time.Parse(model.DateLayout, task.Date); err == nil {
		dateStr = parsed.Format(layout)
	}

	if task.Time != "" {
		return dateStr + " @ " + task.Time
	}
	return dateStr
}
