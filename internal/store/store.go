package store

import "taskloom/internal/model"

// StateKey is the key under which the serialized task collection lives.
const StateKey = "taskloom_data"

// Storage is the durable local key-value slot behind the task collection.
// Load returns an empty collection when nothing usable is stored; it never
// fails on a missing or structurally incompatible payload. Save overwrites
// the slot with the full collection.
type Storage interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
	Close() error
}
