package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Engine != nil {
		return waitForTickCmd(m.Engine.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureCalendarState()

		if m.Palette.Active {
			// Every printable rune belongs to the command text, "?" included.
			return m.handlePaletteKey(typed)
		}
		if m.RoutineForm.Active {
			return m.handleRoutineFormKey(typed), nil
		}
		if m.EventForm.Active {
			return m.handleEventFormKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Routines:
			m.CurrentView = ViewRoutines
			return m, nil
		case m.Keys.Timetable:
			m.CurrentView = ViewTimetable
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			m.syncAgendaTable()
			return m, nil
		case m.Keys.Events:
			m.CurrentView = ViewEvents
			return m, nil
		case m.Keys.Coach:
			m.CurrentView = ViewCoach
			return m, nil
		case m.Keys.Settings:
			m.CurrentView = ViewSettings
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "x":
			m.dismissNewestNotification()
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			if m.Engine != nil {
				m.Engine.Stop()
			}
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewRoutines:
			return m.handleRoutinesKey(typed), nil
		case ViewEvents:
			return m.handleEventsKey(typed), nil
		case ViewCalendar:
			next := m.handleCalendarKey(typed)
			next.syncAgendaTable()
			return next, nil
		case ViewCoach:
			return m.handleCoachKey(typed)
		case ViewSettings:
			return m.handleSettingsKey(typed), nil
		}
	case spinner.TickMsg:
		if m.Coach.Loading {
			var cmd tea.Cmd
			m.coachSpinner, cmd = m.coachSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewCalendar {
				m.ensureCalendarState()
				m.syncAgendaTable()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case TickResultMsg:
		cmds := m.applyTickResult(typed.Result)
		if m.Engine != nil {
			cmds = append(cmds, waitForTickCmd(m.Engine.C()))
		}
		return m, tea.Batch(cmds...)
	case DismissNotificationMsg:
		m.dismissNotification(typed.ID)
		return m, nil
	case AnalysisMsg:
		m.Coach.Loading = false
		if typed.Err != nil {
			m.Coach.Result = nil
			m.Coach.Err = typed.Err.Error()
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			return m, nil
		}
		m.Coach.Result = typed.Result
		m.Status = StatusBar{Text: "analysis complete", IsError: false}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
	case ViewRoutines:
		leftPane = m.renderRoutinesView()
	case ViewTimetable:
		leftPane = m.renderTimetableView()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
	case ViewEvents:
		leftPane = m.renderEventsView()
	case ViewCoach:
		leftPane = m.renderCoachView()
	case ViewSettings:
		leftPane = m.renderSettingsView()
	}
	rightPane := m.renderCommandPalette() + m.renderHelpIfVisible()

	notifications := make([]views.NotificationData, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		notifications = append(notifications, views.NotificationData{Message: n.Message, Level: n.Level})
	}

	return views.RenderApp(views.AppData{
		Theme:         m.Theme,
		Header:        fmt.Sprintf("zenflow | view: %s | theme: %s", m.CurrentView, m.Theme),
		LeftPane:      leftPane,
		RightPane:     rightPane,
		StatusLine:    status,
		Footer:        fmt.Sprintf("keys: %s dash | %s routines | %s timetable | %s cal | %s events | %s coach | %s settings | / cmd | %s help | %s quit", m.Keys.Dashboard, m.Keys.Routines, m.Keys.Timetable, m.Keys.Calendar, m.Keys.Events, m.Keys.Coach, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
		Notifications: notifications,
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewRoutines, ViewTimetable, ViewCalendar, ViewEvents, ViewCoach, ViewSettings:
		return true
	default:
		return false
	}
}
