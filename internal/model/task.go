package model

import "strings"

type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskList is the active task set. IDs are assigned from an internal
// counter so they stay unique for the life of the list, including across
// deletes and a reload from a persisted snapshot.
type TaskList struct {
	tasks  []Task
	nextID int64
}

func NewTaskList() *TaskList {
	return &TaskList{nextID: 1}
}

// RestoreTaskList rebuilds a list from persisted tasks, seeding the ID
// counter past the highest existing ID.
func RestoreTaskList(tasks []Task) *TaskList {
	l := NewTaskList()
	for _, t := range tasks {
		l.tasks = append(l.tasks, t)
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}
	return l
}

// Add appends a new task. Empty or whitespace-only text is ignored and
// reported with ok=false rather than an error.
func (l *TaskList) Add(text string) (Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, false
	}
	task := Task{ID: l.nextID, Text: trimmed}
	l.nextID++
	l.tasks = append(l.tasks, task)
	return task, true
}

// Toggle flips the completed flag of the task with the given ID. The
// return values are the new completed value and whether the ID was found.
// Unknown IDs are a silent no-op.
func (l *TaskList) Toggle(id int64) (bool, bool) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return l.tasks[i].Completed, true
		}
	}
	return false, false
}

// Delete removes the task with the given ID; unknown IDs are a no-op.
func (l *TaskList) Delete(id int64) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (l *TaskList) Clear() {
	l.tasks = nil
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns the live backing slice in insertion order. Callers that
// need an independent copy use Snapshot.
func (l *TaskList) Tasks() []Task {
	return l.tasks
}

// Snapshot returns a deep copy of the current tasks, safe to archive.
func (l *TaskList) Snapshot() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) CompletedCount() int {
	n := 0
	for _, t := range l.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
