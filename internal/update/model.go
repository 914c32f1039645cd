package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/zenflow/internal/insight"
	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/schedule"
	"github.com/sandeepkv93/zenflow/internal/storage"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewRoutines  View = "Routines"
	ViewTimetable View = "Timetable"
	ViewCalendar  View = "Calendar"
	ViewEvents    View = "Events"
	ViewCoach     View = "Coach"
	ViewSettings  View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Routines  string
	Timetable string
	Calendar  string
	Events    string
	Coach     string
	Settings  string
	Help      string
	Quit      string
}

// Analyzer produces schedule insight; satisfied by insight.Client.
type Analyzer interface {
	Analyze(ctx context.Context, routines []model.Routine, events []model.Event) (*insight.Analysis, error)
}

type Model struct {
	CurrentView    View
	Routines       []model.Routine
	Events         []model.Event
	Theme          string
	RoutinesCursor int
	EventsCursor   int
	RoutineForm    RoutineFormState
	EventForm      EventFormState
	Calendar       CalendarState
	Coach          CoachState
	SettingsCursor int
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Engine         *schedule.Engine
	Store          storage.Store
	Analyzer       Analyzer
	clock          func() time.Time
	// Bubble components used for rich TUI controls
	commandInput  textinput.Model
	agendaTable   table.Model
	todayProgress progress.Model
	coachSpinner  spinner.Model
	helpModel     help.Model
}

type CalendarState struct {
	Year   int
	Month  time.Month
	Cursor int
}

type CoachState struct {
	Loading bool
	Result  *insight.Analysis
	Err     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	ID      string
	Message string
	Level   string
	At      time.Time
}

type DesktopNotifier interface {
	Send(title, body string) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(title, body string) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TickResultMsg struct {
	Result schedule.TickResult
}

type DismissNotificationMsg struct {
	ID string
}

type AnalysisMsg struct {
	Result *insight.Analysis
	Err    error
}

// Runtime bundles the external pieces the app runs against. Any field may be
// nil or zero; the model degrades to an in-memory session.
type Runtime struct {
	Store          storage.Store
	Engine         *schedule.Engine
	Analyzer       Analyzer
	Notifier       DesktopNotifier
	DesktopEnabled bool
	Clock          func() time.Time
}

func NewModel() Model {
	m := Model{
		CurrentView:    ViewDashboard,
		Theme:          storage.ThemeDark,
		DesktopEnabled: false,
		notifier:       NoopDesktopNotifier{},
		clock:          time.Now,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Routines:  "2",
			Timetable: "3",
			Calendar:  "4",
			Events:    "5",
			Coach:     "6",
			Settings:  "7",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	m.ensureCalendarState()
	return m
}

func NewModelWithRuntime(rt Runtime) Model {
	m := NewModel()
	m.Store = rt.Store
	m.Engine = rt.Engine
	m.Analyzer = rt.Analyzer
	m.DesktopEnabled = rt.DesktopEnabled
	if rt.Notifier != nil {
		m.notifier = rt.Notifier
	}
	if rt.Clock != nil {
		m.clock = rt.Clock
	}
	m.loadPersistedState()
	m.syncEngine()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 7},
		{Title: "Title", Width: 28},
	}
	m.agendaTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(8))

	m.todayProgress = progress.New(progress.WithDefaultGradient())
	m.todayProgress.Width = 20

	m.coachSpinner = spinner.New()
	m.coachSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()

	m.RoutineForm = newRoutineFormState()
	m.EventForm = newEventFormState()
}

func (m Model) today() time.Time {
	if m.clock == nil {
		return time.Now()
	}
	return m.clock()
}
