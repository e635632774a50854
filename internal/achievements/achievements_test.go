package achievements

import (
	"testing"
	"time"

	"github.com/sandeepkv93/focusd/internal/model"
)

func TestNewTableStartsLocked(t *testing.T) {
	table := NewTable()
	if len(table) == 0 {
		t.Fatal("expected a non-empty rule table")
	}
	for _, a := range table {
		if a.Unlocked || a.UnlockedAt != nil {
			t.Fatalf("achievement %q starts unlocked", a.ID)
		}
	}
}

func TestEvaluateUnlocksFirstSession(t *testing.T) {
	table := NewTable()
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	newly := Evaluate(table, EvalState{
		CompletedSessions: 1,
		JustCompleted:     model.ModeWork,
		Now:               now,
	}, now)

	if len(newly) != 1 || newly[0].ID != "first_session" {
		t.Fatalf("expected first_session unlock, got %+v", newly)
	}
	if !table[0].Unlocked || table[0].UnlockedAt == nil || !table[0].UnlockedAt.Equal(now) {
		t.Fatalf("table not stamped: %+v", table[0])
	}
}

func TestEvaluateReturnsMultipleInTableOrder(t *testing.T) {
	table := NewTable()
	now := time.Date(2026, 2, 9, 23, 30, 0, 0, time.UTC)
	history := []model.PomodoroSet{
		{ID: 1, CompletedSessions: 8},
		{ID: 2, CompletedSessions: 1},
		{ID: 3, CompletedSessions: 1},
	}
	newly := Evaluate(table, EvalState{
		CompletedSessions: 1,
		JustCompleted:     model.ModeWork,
		History:           history,
		Now:               now,
	}, now)

	want := []string{"first_session", "marathon_set", "consistent", "night_owl"}
	if len(newly) != len(want) {
		t.Fatalf("expected %d unlocks, got %+v", len(want), newly)
	}
	for i, id := range want {
		if newly[i].ID != id {
			t.Fatalf("unlock %d is %q, want %q", i, newly[i].ID, id)
		}
	}
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	table := NewTable()
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	state := EvalState{CompletedSessions: 1, JustCompleted: model.ModeWork, Now: now}

	if newly := Evaluate(table, state, now); len(newly) != 1 {
		t.Fatalf("expected one unlock on first pass, got %+v", newly)
	}
	if newly := Evaluate(table, state, now.Add(time.Hour)); len(newly) != 0 {
		t.Fatalf("expected nothing new on second pass, got %+v", newly)
	}
	if !table[0].UnlockedAt.Equal(now) {
		t.Fatal("second pass re-stamped the unlock date")
	}
}

func TestNightOwlRequiresWorkCompletionAtLateHour(t *testing.T) {
	late := time.Date(2026, 2, 9, 22, 5, 0, 0, time.UTC)
	early := time.Date(2026, 2, 9, 21, 59, 0, 0, time.UTC)

	table := NewTable()
	newly := Evaluate(table, EvalState{CompletedSessions: 1, JustCompleted: model.ModeShortBreak, Now: late}, late)
	for _, a := range newly {
		if a.ID == "night_owl" {
			t.Fatal("night_owl unlocked by a break completion")
		}
	}

	table = NewTable()
	newly = Evaluate(table, EvalState{CompletedSessions: 1, JustCompleted: model.ModeWork, Now: early}, early)
	for _, a := range newly {
		if a.ID == "night_owl" {
			t.Fatal("night_owl unlocked before 10pm")
		}
	}

	table = NewTable()
	newly = Evaluate(table, EvalState{CompletedSessions: 1, JustCompleted: model.ModeWork, Now: late}, late)
	found := false
	for _, a := range newly {
		if a.ID == "night_owl" {
			found = true
		}
	}
	if !found {
		t.Fatal("night_owl not unlocked by a late work completion")
	}
}

func TestTaskFinisherCountsAcrossHistoryAndCurrent(t *testing.T) {
	table := NewTable()
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	history := []model.PomodoroSet{
		{ID: 1, Tasks: []model.Task{
			{ID: 1, Completed: true}, {ID: 2, Completed: true}, {ID: 3, Completed: true},
			{ID: 4, Completed: true}, {ID: 5, Completed: true}, {ID: 6, Completed: true},
		}},
	}
	current := []model.Task{
		{ID: 1, Completed: true}, {ID: 2, Completed: true},
		{ID: 3, Completed: true}, {ID: 4, Completed: true},
		{ID: 5, Completed: false},
	}
	newly := Evaluate(table, EvalState{Tasks: current, History: history, Now: now}, now)
	found := false
	for _, a := range newly {
		if a.ID == "task_finisher" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected task_finisher at 10 completed tasks")
	}
}

func TestBreakChampion(t *testing.T) {
	table := NewTable()
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	newly := Evaluate(table, EvalState{TotalBreaks: 20, JustCompleted: model.ModeShortBreak, Now: now}, now)
	found := false
	for _, a := range newly {
		if a.ID == "break_champion" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected break_champion at 20 breaks")
	}
}

func TestReconcileRestoresFlagsOnly(t *testing.T) {
	at := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	table := Reconcile([]UnlockRecord{
		{ID: "first_session", Unlocked: true, UnlockedAt: &at},
		{ID: "does_not_exist", Unlocked: true, UnlockedAt: &at},
		{ID: "marathon_set", Unlocked: false},
	})

	if !table[0].Unlocked || table[0].UnlockedAt == nil || !table[0].UnlockedAt.Equal(at) {
		t.Fatalf("first_session not restored: %+v", table[0])
	}
	if table[0].Name != "First Focus" {
		t.Fatalf("rule definition overwritten: %+v", table[0])
	}
	for _, a := range table[1:] {
		if a.Unlocked {
			t.Fatalf("achievement %q unlocked without a matching record", a.ID)
		}
	}
	if len(table) != len(NewTable()) {
		t.Fatal("unknown record changed the table size")
	}
}

func TestUnlockIsMonotonic(t *testing.T) {
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	table := NewTable()
	Evaluate(table, EvalState{CompletedSessions: 1, JustCompleted: model.ModeWork, Now: now}, now)

	// Evaluating against a state where the predicate no longer holds
	// must not re-lock anything.
	Evaluate(table, EvalState{CompletedSessions: 0, Now: now.Add(time.Hour)}, now.Add(time.Hour))
	if !table[0].Unlocked {
		t.Fatal("first_session re-locked by a later evaluation")
	}
}

func TestUnlockedCount(t *testing.T) {
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)
	table := NewTable()
	if UnlockedCount(table) != 0 {
		t.Fatal("expected 0 unlocked in fresh table")
	}
	Evaluate(table, EvalState{CompletedSessions: 1, JustCompleted: model.ModeWork, Now: now}, now)
	if UnlockedCount(table) != 1 {
		t.Fatalf("expected 1 unlocked, got %d", UnlockedCount(table))
	}
}
