package view

import (
	"testing"

	"taskloom/internal/model"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		tasks []model.Task
		want  Stats
	}{
		{
			name: "empty collection",
			want: Stats{},
		},
		{
			name: "one of four completed",
			tasks: []model.Task{
				{ID: "a", Completed: true},
				{ID: "b"},
				{ID: "c"},
				{ID: "d"},
			},
			want: Stats{Total: 4, Active: 3, Completed: 1, Efficiency: 25},
		},
		{
			name: "rounding half up",
			tasks: []model.Task{
				{ID: "a", Completed: true},
				{ID: "b"},
				{ID: "c"},
			},
			want: Stats{Total: 3, Active: 2, Completed: 1, Efficiency: 33},
		},
		{
			name: "all completed",
			tasks: []model.Task{
				{ID: "a", Completed: true},
				{ID: "b", Completed: true},
			},
			want: Stats{Total: 2, Active: 0, Completed: 2, Efficiency: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.tasks); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProjectSortOrder(t *testing.T) {
	// A: incomplete, undated. B: incomplete, dated. C: completed, dated.
	a := model.Task{ID: "A", Title: "undated", CreatedAt: 3}
	b := model.Task{ID: "B", Title: "dated", Date: "2024-01-01", Time: "09:00", CreatedAt: 2}
	c := model.Task{ID: "C", Title: "done", Date: "2023-01-01", Completed: true, CreatedAt: 1}

	got := Project([]model.Task{a, b, c}, model.FilterAll, "")

	wantOrder := []string{"B", "A", "C"}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d tasks, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestProjectDatedOrdering(t *testing.T) {
	early := model.Task{ID: "early", Title: "x", Date: "2024-01-01", CreatedAt: 1}
	late := model.Task{ID: "late", Title: "x", Date: "2024-01-01", Time: "08:00", CreatedAt: 2}

	// Missing time defaults to start-of-day, so "early" sorts first.
	got := Project([]model.Task{late, early}, model.FilterAll, "")
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Errorf("expected [early late], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestProjectNewestWinsTieBreak(t *testing.T) {
	old := model.Task{ID: "old", Title: "x", CreatedAt: 1}
	recent := model.Task{ID: "recent", Title: "x", CreatedAt: 2}

	got := Project([]model.Task{old, recent}, model.FilterAll, "")
	if got[0].ID != "recent" {
		t.Errorf("expected newest first among equals, got %s", got[0].ID)
	}
}

func TestProjectStatusFilter(t *testing.T) {
	open := model.Task{ID: "open", Title: "open task", CreatedAt: 2}
	done := model.Task{ID: "done", Title: "done task", Completed: true, CreatedAt: 1}
	all := []model.Task{open, done}

	if got := Project(all, model.FilterActive, ""); len(got) != 1 || got[0].ID != "open" {
		t.Errorf("active filter: got %+v", got)
	}
	if got := Project(all, model.FilterCompleted, ""); len(got) != 1 || got[0].ID != "done" {
		t.Errorf("completed filter: got %+v", got)
	}
	if got := Project(all, model.FilterAll, ""); len(got) != 2 {
		t.Errorf("all filter: got %d tasks", len(got))
	}
}

func TestProjectSearch(t *testing.T) {
	milk := model.Task{ID: "milk", Title: "Buy milk", CreatedAt: 2}
	dog := model.Task{ID: "dog", Title: "Walk dog", CreatedAt: 1}
	all := []model.Task{milk, dog}

	for _, query := range []string{"milk", "MILK", "Milk", "ilk"} {
		got := Project(all, model.FilterAll, query)
		if len(got) != 1 || got[0].ID != "milk" {
			t.Errorf("query %q: got %+v", query, got)
		}
	}

	// Search applies on top of the status filter.
	if got := Project(all, model.FilterCompleted, "milk"); len(got) != 0 {
		t.Errorf("expected no completed matches, got %+v", got)
	}

	// Empty query matches everything.
	if got := Project(all, model.FilterAll, ""); len(got) != 2 {
		t.Errorf("empty query: got %d tasks", len(got))
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Title: "x", CreatedAt: 1},
		{ID: "b", Title: "x", CreatedAt: 2},
	}

	Project(tasks, model.FilterAll, "")

	if tasks[0].ID != "a" || tasks[1].ID != "b" {
		t.Error("Project reordered its input slice")
	}
}
