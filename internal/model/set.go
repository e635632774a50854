package model

import (
	"fmt"
	"strings"
	"time"
)

// PomodoroSet is an archived set of sessions. Records are frozen once
// archived; the only mutation history supports is deletion by ID.
type PomodoroSet struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Date              time.Time `json:"date"`
	CompletedSessions int       `json:"completedSessions"`
	Tasks             []Task    `json:"tasks"`
}

// History holds archived sets most-recent-first.
type History struct {
	sets   []PomodoroSet
	nextID int64
}

func NewHistory() *History {
	return &History{nextID: 1}
}

func RestoreHistory(sets []PomodoroSet) *History {
	h := NewHistory()
	for _, s := range sets {
		h.sets = append(h.sets, s)
		if s.ID >= h.nextID {
			h.nextID = s.ID + 1
		}
	}
	return h
}

// Archive freezes the given progress into a new record and prepends it.
// A blank name defaults to "Set N" where N counts this record. The tasks
// slice is copied so later mutation of the active list cannot leak in.
func (h *History) Archive(name string, date time.Time, completedSessions int, tasks []Task) PomodoroSet {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = fmt.Sprintf("Set %d", len(h.sets)+1)
	}
	frozen := make([]Task, len(tasks))
	copy(frozen, tasks)
	set := PomodoroSet{
		ID:                h.nextID,
		Name:              trimmed,
		Date:              date,
		CompletedSessions: completedSessions,
		Tasks:             frozen,
	}
	h.nextID++
	h.sets = append([]PomodoroSet{set}, h.sets...)
	return set
}

// Delete removes the record with the given ID; unknown IDs are a no-op.
func (h *History) Delete(id int64) bool {
	for i := range h.sets {
		if h.sets[i].ID == id {
			h.sets = append(h.sets[:i], h.sets[i+1:]...)
			return true
		}
	}
	return false
}

func (h *History) Len() int {
	return len(h.sets)
}

// Sets returns the records most-recent-first.
func (h *History) Sets() []PomodoroSet {
	return h.sets
}

// TotalSessions sums completed sessions across all archived sets.
func (h *History) TotalSessions() int {
	n := 0
	for _, s := range h.sets {
		n += s.CompletedSessions
	}
	return n
}

// TotalCompletedTasks sums completed tasks across all archived sets.
func (h *History) TotalCompletedTasks() int {
	n := 0
	for _, s := range h.sets {
		for _, t := range s.Tasks {
			if t.Completed {
				n++
			}
		}
	}
	return n
}
