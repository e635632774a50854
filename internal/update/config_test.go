package update

import (
	"testing"
	"time"

	"github.com/sandeepkv93/focusd/internal/model"
)

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("FOCUSD_WORK_MINUTES", "50")
	t.Setenv("FOCUSD_SHORT_BREAK_MINUTES", "10")
	t.Setenv("FOCUSD_DB_PATH", "/tmp/custom.db")
	t.Setenv("FOCUSD_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("FOCUSD_TIMER_BUFFER", "32")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.WorkMinutes != 50 {
		t.Fatalf("expected 50 work minutes, got %d", cfg.WorkMinutes)
	}
	if cfg.ShortBreakMinutes != 10 {
		t.Fatalf("expected 10 short break minutes, got %d", cfg.ShortBreakMinutes)
	}
	if cfg.LongBreakMinutes != 15 {
		t.Fatalf("expected long break default kept, got %d", cfg.LongBreakMinutes)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications enabled")
	}
	if cfg.TimerBuffer != 32 {
		t.Fatalf("expected buffer 32, got %d", cfg.TimerBuffer)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("FOCUSD_WORK_MINUTES", "banana")
	t.Setenv("FOCUSD_SHORT_BREAK_MINUTES", "-3")
	t.Setenv("FOCUSD_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.WorkMinutes != 25 || cfg.ShortBreakMinutes != 5 {
		t.Fatalf("invalid values overrode defaults: %d/%d", cfg.WorkMinutes, cfg.ShortBreakMinutes)
	}
	if cfg.DesktopNotifications {
		t.Fatal("unparseable bool enabled notifications")
	}
}

func TestRuntimeConfigModeTable(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.WorkMinutes = 40
	table := cfg.ModeTable()

	if table[model.ModeWork].Duration != 40*time.Minute {
		t.Fatalf("expected 40m work duration, got %v", table[model.ModeWork].Duration)
	}
	if table[model.ModeShortBreak].Duration != 5*time.Minute {
		t.Fatalf("expected short break default, got %v", table[model.ModeShortBreak].Duration)
	}
	if table[model.ModeWork].Label == "" {
		t.Fatal("expected completion label kept")
	}
}
