package model

import "time"

// Date and time layouts used in the persisted representation.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Task is a single user-created work item.
//
// CreatedAt is an epoch-millisecond timestamp assigned by the store at
// creation. It is never shown to the user and only breaks sort ties.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}

// DueInstant returns the task's due date combined with its time, with the
// time defaulting to start-of-day when absent. The second return value is
// false when the task has no date (an undated task has no due instant and
// sorts after every dated one).
func (t Task) DueInstant() (time.Time, bool) {
	return t.dueAt("00:00")
}

func (t Task) dueAt(defaultTime string) (time.Time, bool) {
	if t.Date == "" {
		return time.Time{}, false
	}
	clock := t.Time
	if clock == "" {
		clock = defaultTime
	}
	due, err := time.ParseInLocation(
		DateLayout+"T"+TimeLayout, t.Date+"T"+clock, time.Local,
	)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// DueStatus values computed at render time.
const (
	DueStatusNone    = ""
	DueStatusOverdue = "overdue"
	DueStatusSoon    = "soon"
)

// soonWindow is how far ahead a due instant may be to still count as "soon".
const soonWindow = 24 * time.Hour

// DueStatus classifies the task against the given wall-clock instant.
// Completed and undated tasks have no due status. For status purposes an
// absent time means end-of-day, so a task due "today" with no time is not
// overdue until the day is over.
func (t Task) DueStatus(now time.Time) string {
	if t.Completed {
		return DueStatusNone
	}
	due, ok := t.dueAt("23:59")
	if !ok {
		return DueStatusNone
	}
	switch d := due.Sub(now); {
	case d < 0:
		return DueStatusOverdue
	case d < soonWindow:
		return DueStatusSoon
	default:
		return DueStatusNone
	}
}
