package achievements

import (
	"time"

	"github.com/sandeepkv93/focusd/internal/model"
)

// EvalState is the immutable view of application state the rule
// predicates run against. Predicates are pure: wall-clock time enters
// only through Now, stamped by the caller at completion time.
type EvalState struct {
	CompletedSessions int
	TotalBreaks       int
	JustCompleted     model.Mode
	Tasks             []model.Task
	History           []model.PomodoroSet
	Now               time.Time
}

func (s EvalState) totalSessions() int {
	n := s.CompletedSessions
	for _, set := range s.History {
		n += set.CompletedSessions
	}
	return n
}

func (s EvalState) completedTasks() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	for _, set := range s.History {
		for _, t := range set.Tasks {
			if t.Completed {
				n++
			}
		}
	}
	return n
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    bool
	UnlockedAt  *time.Time
}

// UnlockRecord is the persisted unlock state of a single achievement,
// reconciled into the static table by ID on load.
type UnlockRecord struct {
	ID         string
	Unlocked   bool
	UnlockedAt *time.Time
}

type rule struct {
	def   Achievement
	holds func(EvalState) bool
}

// The rule table order is fixed: evaluation scans it top to bottom and
// the first newly-unlocked entry of a pass is the one that surfaces as a
// notification.
var rules = []rule{
	{
		def: Achievement{ID: "first_session", Name: "First Focus", Description: "Complete your first work session.", Icon: "🌱"},
		holds: func(s EvalState) bool {
			return s.totalSessions() >= 1
		},
	},
	{
		def: Achievement{ID: "marathon_set", Name: "Marathon", Description: "Finish a set with 8 or more sessions.", Icon: "🏃"},
		holds: func(s EvalState) bool {
			for _, set := range s.History {
				if set.CompletedSessions >= 8 {
					return true
				}
			}
			return false
		},
	},
	{
		def: Achievement{ID: "consistent", Name: "Creature of Habit", Description: "Archive 3 sets.", Icon: "📅"},
		holds: func(s EvalState) bool {
			return len(s.History) >= 3
		},
	},
	{
		def: Achievement{ID: "night_owl", Name: "Night Owl", Description: "Complete a work session after 10pm.", Icon: "🦉"},
		holds: func(s EvalState) bool {
			return s.JustCompleted == model.ModeWork && s.Now.Hour() >= 22
		},
	},
	{
		def: Achievement{ID: "early_bird", Name: "Early Bird", Description: "Complete a work session before 6am.", Icon: "🐦"},
		holds: func(s EvalState) bool {
			return s.JustCompleted == model.ModeWork && s.Now.Hour() < 6
		},
	},
	{
		def: Achievement{ID: "task_finisher", Name: "Task Finisher", Description: "Complete 10 tasks in total.", Icon: "✅"},
		holds: func(s EvalState) bool {
			return s.completedTasks() >= 10
		},
	},
	{
		def: Achievement{ID: "break_champion", Name: "Break Champion", Description: "Take 20 breaks.", Icon: "☕"},
		holds: func(s EvalState) bool {
			return s.TotalBreaks >= 20
		},
	},
	{
		def: Achievement{ID: "century", Name: "Century", Description: "Complete 100 work sessions in total.", Icon: "💯"},
		holds: func(s EvalState) bool {
			return s.totalSessions() >= 100
		},
	},
}

// NewTable returns a fresh all-locked copy of the rule table.
func NewTable() []Achievement {
	out := make([]Achievement, len(rules))
	for i, r := range rules {
		out[i] = r.def
	}
	return out
}

// Reconcile copies persisted unlock flags into a fresh table, matching on
// ID. Rule definitions are never overwritten and unknown IDs are ignored,
// so stale or tampered records cannot invent achievements. Unlocks are
// one-way: a persisted locked flag never re-locks anything.
func Reconcile(records []UnlockRecord) []Achievement {
	table := NewTable()
	byID := make(map[string]UnlockRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	for i := range table {
		rec, ok := byID[table[i].ID]
		if !ok || !rec.Unlocked {
			continue
		}
		table[i].Unlocked = true
		if rec.UnlockedAt != nil {
			at := *rec.UnlockedAt
			table[i].UnlockedAt = &at
		}
	}
	return table
}

// Evaluate runs every still-locked rule against the state, unlocks those
// whose predicate holds and stamps them with now. The newly unlocked
// achievements are returned in table order; the caller surfaces only the
// first one as a notification, the rest show up in the log view.
func Evaluate(table []Achievement, state EvalState, now time.Time) []Achievement {
	var newly []Achievement
	for i := range table {
		if table[i].Unlocked {
			continue
		}
		r := ruleByID(table[i].ID)
		if r == nil || !r.holds(state) {
			continue
		}
		at := now
		table[i].Unlocked = true
		table[i].UnlockedAt = &at
		newly = append(newly, table[i])
	}
	return newly
}

// UnlockedCount reports how many achievements in the table are unlocked.
func UnlockedCount(table []Achievement) int {
	n := 0
	for _, a := range table {
		if a.Unlocked {
			n++
		}
	}
	return n
}

func ruleByID(id string) *rule {
	for i := range rules {
		if rules[i].def.ID == id {
			return &rules[i]
		}
	}
	return nil
}
