package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TimerEvent{ID: "later", Kind: KindMilestone, TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(TimerEvent{ID: "sooner", Kind: KindModeSwitch, TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineCancelSuppressesDelivery(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TimerEvent{ID: "switch", Kind: KindModeSwitch, TriggerAt: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule switch: %v", err)
	}
	if err := engine.Schedule(TimerEvent{ID: "keep", Kind: KindMilestone, TriggerAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule keep: %v", err)
	}
	if !engine.Cancel("switch") {
		t.Fatal("expected cancel to report a pending event")
	}

	got := waitEvent(t, engine.C(), time.Second)
	if got.ID != "keep" {
		t.Fatalf("expected canceled event to be skipped, got %s", got.ID)
	}
}

func TestEngineCancelUnknownID(t *testing.T) {
	engine := NewEngine(1)
	if engine.Cancel("missing") {
		t.Fatal("expected cancel of unknown id to report false")
	}
}

func TestEngineRescheduleClearsCancel(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(TimerEvent{ID: "evt", TriggerAt: now.Add(30 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	engine.Cancel("evt")
	if err := engine.Schedule(TimerEvent{ID: "evt", Generation: 2, TriggerAt: now.Add(50 * time.Millisecond)}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	got := waitEvent(t, engine.C(), time.Second)
	if got.ID != "evt" || got.Generation != 2 {
		t.Fatalf("expected rescheduled event, got %+v", got)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(TimerEvent{
			ID:        "evt",
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(TimerEvent{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan TimerEvent, timeout time.Duration) TimerEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return TimerEvent{}
	}
}
