package model

import "time"

type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

type ModeSpec struct {
	Duration time.Duration
	Label    string
}

// ModeTable holds the fixed per-mode configuration. It is built once at
// startup and never mutated afterwards.
type ModeTable map[Mode]ModeSpec

func DefaultModeTable() ModeTable {
	return ModeTable{
		ModeWork:       {Duration: 25 * time.Minute, Label: "Work session complete!"},
		ModeShortBreak: {Duration: 5 * time.Minute, Label: "Break is over!"},
		ModeLongBreak:  {Duration: 15 * time.Minute, Label: "Long break is over!"},
	}
}

// DurationSec returns the configured duration of a mode in whole seconds.
// Unknown modes report zero.
func (t ModeTable) DurationSec(m Mode) int {
	spec, ok := t[m]
	if !ok {
		return 0
	}
	return int(spec.Duration / time.Second)
}

func (t ModeTable) Label(m Mode) string {
	return t[m].Label
}
