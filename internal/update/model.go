package update

import (
	"fmt"
	"math/rand"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/focusd/internal/achievements"
	"github.com/sandeepkv93/focusd/internal/model"
	"github.com/sandeepkv93/focusd/internal/scheduler"
	"github.com/sandeepkv93/focusd/internal/session"
	"github.com/sandeepkv93/focusd/internal/storage"
)

type Panel string

const (
	PanelTimer        Panel = "Timer"
	PanelTasks        Panel = "Tasks"
	PanelHistory      Panel = "History"
	PanelAchievements Panel = "Achievements"
)

var panelOrder = []Panel{PanelTimer, PanelTasks, PanelHistory, PanelAchievements}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	NextPanel string
	Theme     string
	Export    string
	Import    string
	Help      string
	Quit      string
}

type ImportStage string

const (
	ImportStageNone    ImportStage = ""
	ImportStagePath    ImportStage = "path"
	ImportStageConfirm ImportStage = "confirm"
)

type ImportState struct {
	Stage   ImportStage
	Path    string
	Pending storage.Snapshot
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	ActivePanel Panel
	Machine     *session.Machine
	Modes       model.ModeTable
	Tasks       *model.TaskList
	History     *model.History
	Unlocks     []achievements.Achievement
	IsDark      bool

	TaskCursor        int
	HistoryCursor     int
	AchievementCursor int
	TaskInputOpen     bool
	SetInputOpen      bool
	Import            ImportState

	Timers         *scheduler.Engine
	Status         StatusBar
	Keys           GlobalKeyMap
	CharacterLine  string
	HelpVisible    bool
	Quitting       bool
	LastError      error
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	store          storage.Store
	now            func() time.Time
	rng            *rand.Rand

	// Bubble components used for rich TUI controls
	taskInput     textinput.Model
	setNameInput  textinput.Model
	importInput   textinput.Model
	timerProgress progress.Model
	helpModel     help.Model
}

type TickMsg struct{}

type TimerDueMsg struct {
	Event scheduler.TimerEvent
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SwitchPanelMsg struct {
	Panel Panel
}

func NewModel() Model {
	return NewModelWithConfig(nil, storage.NewMemoryStore(), NoopDesktopNotifier{}, DefaultRuntimeConfig())
}

func NewModelWithConfig(engine *scheduler.Engine, store storage.Store, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	modes := cfg.ModeTable()
	m := Model{
		ActivePanel:    PanelTimer,
		Machine:        session.NewMachine(modes),
		Modes:          modes,
		Tasks:          model.NewTaskList(),
		History:        model.NewHistory(),
		Unlocks:        achievements.NewTable(),
		Timers:         engine,
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		store:          store,
		now:            time.Now,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		Keys: GlobalKeyMap{
			NextPanel: "tab",
			Theme:     "t",
			Export:    "e",
			Import:    "i",
			Help:      "?",
			Quit:      "q",
		},
	}
	if notifier != nil {
		m.notifier = notifier
	}
	if store == nil {
		m.store = storage.NewMemoryStore()
	}
	m.initBubbleComponents()
	m.loadState()
	return m
}

// SetNowFunc overrides the wall clock. Tests pin it with fixed dates.
func (m *Model) SetNowFunc(now func() time.Time) {
	if now == nil {
		m.now = time.Now
		return
	}
	m.now = now
}

// SetRandSeed makes character message selection deterministic.
func (m *Model) SetRandSeed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "task> "
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 42

	m.setNameInput = textinput.New()
	m.setNameInput.Prompt = ""
	m.setNameInput.CharLimit = 64
	m.setNameInput.Width = 32

	m.importInput = textinput.New()
	m.importInput.Prompt = ""
	m.importInput.CharLimit = 512
	m.importInput.Width = 48

	m.timerProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			// Best effort only: platform notification failures never
			// reach the timer logic.
			m.LastError = err
		}
	}
}

func nextPanel(p Panel) Panel {
	for i, candidate := range panelOrder {
		if candidate == p {
			return panelOrder[(i+1)%len(panelOrder)]
		}
	}
	return PanelTimer
}

func isKnownPanel(p Panel) bool {
	for _, candidate := range panelOrder {
		if candidate == p {
			return true
		}
	}
	return false
}
