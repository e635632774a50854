package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/focusd/internal/model"
)

// ErrFormat marks a snapshot blob the codec refuses to load. Callers
// treat it as "reject the whole update": import aborts with a message and
// startup falls back to a fresh snapshot.
var ErrFormat = errors.New("storage: malformed snapshot")

const snapshotVersion = 1

type AchievementState struct {
	ID           string     `json:"id"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlockedDate,omitempty"`
}

// Snapshot is the full persisted aggregate. It is rewritten after every
// state-changing operation, so the shape stays flat and cheap to encode.
type Snapshot struct {
	Version           int                 `json:"version"`
	CurrentMode       model.Mode          `json:"currentMode"`
	TimeLeft          int                 `json:"timeLeft"`
	CompletedSessions int                 `json:"completedSessions"`
	TotalBreaks       int                 `json:"totalBreaks"`
	Tasks             []model.Task        `json:"tasks"`
	History           []model.PomodoroSet `json:"history"`
	Achievements      []AchievementState  `json:"achievements"`
	IsDark            bool                `json:"isDark"`
}

// NewSnapshot returns the first-run snapshot for the given mode table.
func NewSnapshot(modes model.ModeTable) Snapshot {
	return Snapshot{
		Version:     snapshotVersion,
		CurrentMode: model.ModeWork,
		TimeLeft:    modes.DurationSec(model.ModeWork),
		Tasks:       []model.Task{},
		History:     []model.PomodoroSet{},
	}
}

func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	snap.Version = snapshotVersion
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// EncodeSnapshotIndent is EncodeSnapshot with human-readable indentation,
// used for export files.
func EncodeSnapshotIndent(snap Snapshot) ([]byte, error) {
	snap.Version = snapshotVersion
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted or imported blob. Missing optional
// fields get their documented defaults in one place here; anything
// structurally off (bad JSON, unknown mode, negative counters, a version
// from the future) fails with ErrFormat and the caller keeps its current
// state.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := validateSnapshot(snap); err != nil {
		return Snapshot{}, err
	}
	return applyDefaults(snap), nil
}

func validateSnapshot(snap Snapshot) error {
	if snap.Version > snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrFormat, snap.Version)
	}
	if snap.CurrentMode != "" && !snap.CurrentMode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrFormat, snap.CurrentMode)
	}
	if snap.TimeLeft < 0 {
		return fmt.Errorf("%w: negative timeLeft", ErrFormat)
	}
	if snap.CompletedSessions < 0 {
		return fmt.Errorf("%w: negative completedSessions", ErrFormat)
	}
	if snap.TotalBreaks < 0 {
		return fmt.Errorf("%w: negative totalBreaks", ErrFormat)
	}
	for _, t := range snap.Tasks {
		if t.ID <= 0 {
			return fmt.Errorf("%w: task without id", ErrFormat)
		}
	}
	for _, s := range snap.History {
		if s.ID <= 0 {
			return fmt.Errorf("%w: history record without id", ErrFormat)
		}
		if s.CompletedSessions < 0 {
			return fmt.Errorf("%w: negative sessions in history record %d", ErrFormat, s.ID)
		}
	}
	for _, a := range snap.Achievements {
		if a.ID == "" {
			return fmt.Errorf("%w: achievement record without id", ErrFormat)
		}
	}
	return nil
}

// applyDefaults is the single place pre-versioned and partial snapshots
// are upgraded: version 0 blobs are treated as version 1, absent lists
// become empty and absent counters stay zero.
func applyDefaults(snap Snapshot) Snapshot {
	if snap.Version == 0 {
		snap.Version = snapshotVersion
	}
	if snap.CurrentMode == "" {
		snap.CurrentMode = model.ModeWork
	}
	if snap.Tasks == nil {
		snap.Tasks = []model.Task{}
	}
	if snap.History == nil {
		snap.History = []model.PomodoroSet{}
	}
	return snap
}
