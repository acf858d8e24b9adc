// Package tasks owns the canonical in-memory task collection and its
// persistence round-trip. Every mutation rewrites the full collection
// through the storage slot.
package tasks

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskloom/internal/model"
	"taskloom/internal/store"
)

// List is the mutable, ordered task collection. Insertion order is
// newest-first; display order is up to the view layer. All operations are
// synchronous and run on the single UI event loop, so no locking is needed.
type List struct {
	storage store.Storage
	items   []model.Task

	// lastCreatedAt keeps CreatedAt strictly increasing within the process
	// even when two tasks land on the same millisecond.
	lastCreatedAt int64
}

// NewList rehydrates a List from the given storage slot. A missing or
// unreadable stored payload starts the list empty.
func NewList(st store.Storage) (*List, error) {
	items, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &List{storage: st, items: items}, nil
}

// Tasks returns a copy of the collection in insertion order.
func (l *List) Tasks() []model.Task {
	out := make([]model.Task, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of tasks in the collection.
func (l *List) Len() int {
	return len(l.items)
}

// Get looks up a task by ID.
func (l *List) Get(id string) (model.Task, bool) {
	for _, t := range l.items {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Create adds a new task to the front of the collection and persists.
// A whitespace-only title makes the call a no-op; ok reports whether a
// task was added.
func (l *List) Create(title, date, clock string) (task model.Task, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false
	}

	task = model.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Date:      date,
		Time:      clock,
		CreatedAt: l.nextCreatedAt(),
	}
	l.items = append([]model.Task{task}, l.items...)
	l.persist()
	return task, true
}

// Update replaces title, date and time on the task with the given ID,
// leaving its position, completion state and CreatedAt untouched.
// An unknown ID or a whitespace-only title makes the call a no-op.
func (l *List) Update(id, title, date, clock string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Title = title
			l.items[i].Date = date
			l.items[i].Time = clock
			l.persist()
			return true
		}
	}
	return false
}

// ToggleCompleted flips the completed flag on the task with the given ID.
// An unknown ID is a no-op.
func (l *List) ToggleCompleted(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			l.persist()
			return true
		}
	}
	return false
}

// Delete removes the task with the given ID. An unknown ID is a no-op.
func (l *List) Delete(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persist()
			return true
		}
	}
	return false
}

// ClearCompleted removes every completed task and returns how many were
// removed. The caller is responsible for confirming with the user first.
func (l *List) ClearCompleted() int {
	kept := l.items[:0]
	removed := 0
	for _, t := range l.items {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.items = kept
	if removed > 0 {
		l.persist()
	}
	return removed
}

// persist writes the full collection to storage. A write failure leaves
// the in-memory state authoritative and is only logged.
func (l *List) persist() {
	if err := l.storage.Save(l.items); err != nil {
		log.Printf("tasks: persisting collection: %v", err)
	}
}

func (l *List) nextCreatedAt() int64 {
	now := time.Now().UnixMilli()
	if now <= l.lastCreatedAt {
		now = l.lastCreatedAt + 1
	}
	l.lastCreatedAt = now
	return now
}
