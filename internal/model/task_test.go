package model

import "testing"

func TestTaskListAddAssignsUniqueIDs(t *testing.T) {
	l := NewTaskList()
	first, ok := l.Add("write report")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	second, _ := l.Add("review notes")
	if first.ID == second.ID {
		t.Fatalf("expected unique ids, both are %d", first.ID)
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", l.Len())
	}
	if l.Tasks()[0].Text != "write report" {
		t.Fatal("expected insertion order preserved")
	}
}

func TestTaskListAddRejectsBlankText(t *testing.T) {
	l := NewTaskList()
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, ok := l.Add(text); ok {
			t.Fatalf("expected blank text %q rejected", text)
		}
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d tasks", l.Len())
	}
}

func TestTaskListAddTrimsText(t *testing.T) {
	l := NewTaskList()
	task, _ := l.Add("  call dentist  ")
	if task.Text != "call dentist" {
		t.Fatalf("expected trimmed text, got %q", task.Text)
	}
}

func TestTaskListToggle(t *testing.T) {
	l := NewTaskList()
	task, _ := l.Add("water plants")

	completed, ok := l.Toggle(task.ID)
	if !ok || !completed {
		t.Fatalf("expected toggle to complete, got completed=%v ok=%v", completed, ok)
	}
	completed, ok = l.Toggle(task.ID)
	if !ok || completed {
		t.Fatalf("expected toggle back to open, got completed=%v ok=%v", completed, ok)
	}

	if _, ok := l.Toggle(999); ok {
		t.Fatal("expected unknown id to report not found")
	}
}

func TestTaskListDeleteUnknownIDIsNoOp(t *testing.T) {
	l := NewTaskList()
	l.Add("a")
	if l.Delete(42) {
		t.Fatal("expected delete of unknown id to report false")
	}
	if l.Len() != 1 {
		t.Fatalf("expected list untouched, got %d", l.Len())
	}
}

func TestTaskListIDsNotReusedAfterDelete(t *testing.T) {
	l := NewTaskList()
	first, _ := l.Add("a")
	l.Delete(first.ID)
	second, _ := l.Add("b")
	if second.ID == first.ID {
		t.Fatalf("id %d was reused", first.ID)
	}
}

func TestTaskListSnapshotIsIndependent(t *testing.T) {
	l := NewTaskList()
	task, _ := l.Add("original")
	snap := l.Snapshot()

	l.Toggle(task.ID)
	l.Add("later")
	if snap[0].Completed {
		t.Fatal("snapshot was mutated by toggle on the live list")
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot grew with the live list: %d", len(snap))
	}
}

func TestRestoreTaskListSeedsIDCounter(t *testing.T) {
	l := RestoreTaskList([]Task{{ID: 7, Text: "restored"}})
	task, _ := l.Add("new")
	if task.ID <= 7 {
		t.Fatalf("expected fresh id above 7, got %d", task.ID)
	}
}

func TestTaskListCompletedCount(t *testing.T) {
	l := NewTaskList()
	a, _ := l.Add("a")
	l.Add("b")
	l.Toggle(a.ID)
	if got := l.CompletedCount(); got != 1 {
		t.Fatalf("expected 1 completed, got %d", got)
	}
}
