package tasks_test

import (
	"reflect"
	"testing"

	"taskloom/internal/tasks"
	"taskloom/tests/testutil"
)

func newTestList(t *testing.T) *tasks.List {
	t.Helper()

	l, err := tasks.NewList(testutil.NewTestStorage(t))
	if err != nil {
		t.Fatalf("creating list: %v", err)
	}
	return l
}

func TestCreateAddsTask(t *testing.T) {
	l := newTestList(t)

	task, ok := l.Create("Buy milk", "2024-03-01", "09:00")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", l.Len())
	}
	if task.ID == "" {
		t.Error("expected a generated ID")
	}
	if task.Completed {
		t.Error("new task must start incomplete")
	}
	if task.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}
}

func TestCreateTrimsTitle(t *testing.T) {
	l := newTestList(t)

	task, ok := l.Create("  Walk dog  ", "", "")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	if task.Title != "Walk dog" {
		t.Errorf("expected trimmed title, got %q", task.Title)
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	l := newTestList(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, ok := l.Create(title, "", ""); ok {
			t.Errorf("create(%q) should be a no-op", title)
		}
	}
	if l.Len() != 0 {
		t.Errorf("expected collection unchanged, got %d tasks", l.Len())
	}
}

func TestCreatePrependsNewest(t *testing.T) {
	l := newTestList(t)

	l.Create("first", "", "")
	l.Create("second", "", "")

	got := l.Tasks()
	if got[0].Title != "second" || got[1].Title != "first" {
		t.Errorf("expected newest-first insertion order, got %q then %q",
			got[0].Title, got[1].Title)
	}
	if got[0].CreatedAt <= got[1].CreatedAt {
		t.Error("CreatedAt must be strictly increasing per process")
	}
}

func TestUpdateReplacesFieldsInPlace(t *testing.T) {
	l := newTestList(t)

	l.Create("first", "", "")
	task, _ := l.Create("second", "2024-01-01", "10:00")

	if !l.Update(task.ID, "second (renamed)", "2024-02-02", "") {
		t.Fatal("expected update to succeed")
	}

	got, ok := l.Get(task.ID)
	if !ok {
		t.Fatal("task vanished after update")
	}
	if got.Title != "second (renamed)" || got.Date != "2024-02-02" || got.Time != "" {
		t.Errorf("unexpected task after update: %+v", got)
	}
	if got.CreatedAt != task.CreatedAt {
		t.Error("update must not touch CreatedAt")
	}
	if got.Completed != task.Completed {
		t.Error("update must not touch Completed")
	}
	// Position is preserved.
	if l.Tasks()[0].ID != task.ID {
		t.Error("update must not move the task")
	}
}

func TestUpdateNoOps(t *testing.T) {
	l := newTestList(t)
	task, _ := l.Create("keep me", "", "")

	if l.Update("missing-id", "title", "", "") {
		t.Error("update of unknown id should be a no-op")
	}
	if l.Update(task.ID, "   ", "", "") {
		t.Error("update with blank title should be a no-op")
	}

	got, _ := l.Get(task.ID)
	if got.Title != "keep me" {
		t.Errorf("task mutated by no-op update: %+v", got)
	}
}

func TestToggleCompletedRoundTrip(t *testing.T) {
	l := newTestList(t)
	task, _ := l.Create("flip me", "", "")

	l.ToggleCompleted(task.ID)
	got, _ := l.Get(task.ID)
	if !got.Completed {
		t.Fatal("expected task completed after one toggle")
	}

	l.ToggleCompleted(task.ID)
	got, _ = l.Get(task.ID)
	if got.Completed {
		t.Error("two toggles must restore the original state")
	}
}

func TestOperationsAfterDeleteAreNoOps(t *testing.T) {
	l := newTestList(t)
	task, _ := l.Create("short-lived", "", "")

	if !l.Delete(task.ID) {
		t.Fatal("expected delete to succeed")
	}

	if l.Delete(task.ID) {
		t.Error("second delete should be a no-op")
	}
	if l.ToggleCompleted(task.ID) {
		t.Error("toggle after delete should be a no-op")
	}
	if l.Update(task.ID, "ghost", "", "") {
		t.Error("update after delete should be a no-op")
	}
	if l.Len() != 0 {
		t.Errorf("expected empty collection, got %d tasks", l.Len())
	}
}

func TestClearCompleted(t *testing.T) {
	l := newTestList(t)

	a, _ := l.Create("done 1", "", "")
	l.Create("open 1", "", "")
	b, _ := l.Create("done 2", "", "")
	l.Create("open 2", "", "")
	l.ToggleCompleted(a.ID)
	l.ToggleCompleted(b.ID)

	if removed := l.ClearCompleted(); removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}

	for _, task := range l.Tasks() {
		if task.Completed {
			t.Errorf("completed task survived clear: %+v", task)
		}
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 remaining tasks, got %d", l.Len())
	}

	if removed := l.ClearCompleted(); removed != 0 {
		t.Errorf("clear with nothing completed should remove 0, got %d", removed)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := testutil.NewTestStorage(t)

	l, err := tasks.NewList(storage)
	if err != nil {
		t.Fatalf("creating list: %v", err)
	}

	l.Create("first", "2024-03-01", "")
	task, _ := l.Create("second", "", "")
	l.ToggleCompleted(task.ID)
	l.Create("third", "2024-04-01", "18:30")

	reloaded, err := tasks.NewList(storage)
	if err != nil {
		t.Fatalf("reloading list: %v", err)
	}

	if !reflect.DeepEqual(reloaded.Tasks(), l.Tasks()) {
		t.Errorf("reloaded collection differs:\ngot  %+v\nwant %+v",
			reloaded.Tasks(), l.Tasks())
	}
}
