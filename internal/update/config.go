package update

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/focusd/internal/model"
)

type RuntimeConfig struct {
	WorkMinutes          int
	ShortBreakMinutes    int
	LongBreakMinutes     int
	DBPath               string
	DesktopNotifications bool
	TimerBuffer          int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		WorkMinutes:          25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		DBPath:               "focusd.db",
		DesktopNotifications: false,
		TimerBuffer:          16,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("FOCUSD_WORK_MINUTES"); ok && v > 0 {
		cfg.WorkMinutes = v
	}
	if v, ok := getEnvInt("FOCUSD_SHORT_BREAK_MINUTES"); ok && v > 0 {
		cfg.ShortBreakMinutes = v
	}
	if v, ok := getEnvInt("FOCUSD_LONG_BREAK_MINUTES"); ok && v > 0 {
		cfg.LongBreakMinutes = v
	}
	if v := strings.TrimSpace(os.Getenv("FOCUSD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("FOCUSD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("FOCUSD_TIMER_BUFFER"); ok && v > 0 {
		cfg.TimerBuffer = v
	}
	return cfg
}

// ModeTable builds the immutable per-mode configuration from the
// configured minutes, keeping the default completion labels.
func (cfg RuntimeConfig) ModeTable() model.ModeTable {
	table := model.DefaultModeTable()
	if cfg.WorkMinutes > 0 {
		table[model.ModeWork] = model.ModeSpec{
			Duration: time.Duration(cfg.WorkMinutes) * time.Minute,
			Label:    table[model.ModeWork].Label,
		}
	}
	if cfg.ShortBreakMinutes > 0 {
		table[model.ModeShortBreak] = model.ModeSpec{
			Duration: time.Duration(cfg.ShortBreakMinutes) * time.Minute,
			Label:    table[model.ModeShortBreak].Label,
		}
	}
	if cfg.LongBreakMinutes > 0 {
		table[model.ModeLongBreak] = model.ModeSpec{
			Duration: time.Duration(cfg.LongBreakMinutes) * time.Minute,
			Label:    table[model.ModeLongBreak].Label,
		}
	}
	return table
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
