package update

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/views"
)

// Navigable calendar range.
const (
	calendarMinYear = 2020
	calendarMaxYear = 2030
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftCalendarMonth(-1)
	case "l", "right":
		m.shiftCalendarMonth(1)
	case "H":
		m.shiftCalendarYear(-1)
	case "L":
		m.shiftCalendarYear(1)
	case "t":
		now := m.today()
		m.Calendar.Year = now.Year()
		m.Calendar.Month = now.Month()
		m.Status = StatusBar{Text: "calendar: back to current month", IsError: false}
	case "up", "k":
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
	case "down", "j":
		if m.Calendar.Cursor < len(m.monthEvents())-1 {
			m.Calendar.Cursor++
		}
	}
	return m
}

func (m *Model) ensureCalendarState() {
	if m.Calendar.Year == 0 {
		now := m.today()
		m.Calendar.Year = now.Year()
		m.Calendar.Month = now.Month()
	}
	if m.Calendar.Cursor < 0 {
		m.Calendar.Cursor = 0
	}
}

func (m *Model) shiftCalendarMonth(delta int) {
	anchor := time.Date(m.Calendar.Year, m.Calendar.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	if anchor.Year() < calendarMinYear || anchor.Year() > calendarMaxYear {
		m.Status = StatusBar{Text: fmt.Sprintf("calendar range is %d-%d", calendarMinYear, calendarMaxYear), IsError: false}
		return
	}
	m.Calendar.Year = anchor.Year()
	m.Calendar.Month = anchor.Month()
	m.Calendar.Cursor = 0
}

func (m *Model) shiftCalendarYear(delta int) {
	year := m.Calendar.Year + delta
	if year < calendarMinYear || year > calendarMaxYear {
		m.Status = StatusBar{Text: fmt.Sprintf("calendar range is %d-%d", calendarMinYear, calendarMaxYear), IsError: false}
		return
	}
	m.Calendar.Year = year
	m.Calendar.Cursor = 0
}

// calendarWeeks lays the focused month out as Sunday-first rows; leading and
// trailing blanks carry Day zero.
func (m Model) calendarWeeks() [][]views.CalendarCellData {
	first := time.Date(m.Calendar.Year, m.Calendar.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(m.Calendar.Year, m.Calendar.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	todayStr := model.DateString(m.today())

	var weeks [][]views.CalendarCellData
	week := make([]views.CalendarCellData, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, views.CalendarCellData{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(m.Calendar.Year, m.Calendar.Month, day, 0, 0, 0, 0, time.UTC)
		dateStr := model.DateString(date)
		cell := views.CalendarCellData{Day: day, IsToday: dateStr == todayStr}
		for _, r := range m.Routines {
			if r.Frequency.ActiveOn(date) {
				cell.Routines++
			}
		}
		for _, e := range m.Events {
			if e.Date == dateStr {
				cell.Events++
			}
		}
		week = append(week, cell)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]views.CalendarCellData, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, views.CalendarCellData{})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// monthEvents returns the focused month's events ordered by date then start.
func (m Model) monthEvents() []model.Event {
	prefix := fmt.Sprintf("%04d-%02d-", m.Calendar.Year, int(m.Calendar.Month))
	out := make([]model.Event, 0)
	for _, e := range m.Events {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (m *Model) syncAgendaTable() {
	monthEvents := m.monthEvents()
	rows := make([]table.Row, 0, len(monthEvents))
	for _, e := range monthEvents {
		rows = append(rows, table.Row{e.Date, e.StartTime, e.Title})
	}
	m.agendaTable.SetRows(rows)
	if m.Calendar.Cursor >= len(rows) && len(rows) > 0 {
		m.Calendar.Cursor = len(rows) - 1
	}
	if len(rows) > 0 {
		m.agendaTable.SetCursor(m.Calendar.Cursor)
	}
}

func (m Model) renderCalendarView() string {
	anchor := time.Date(m.Calendar.Year, m.Calendar.Month, 1, 0, 0, 0, 0, time.UTC)
	agenda := ""
	if len(m.monthEvents()) > 0 {
		agenda = "agenda:\n" + m.agendaTable.View()
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		MonthLabel: anchor.Format("January 2006"),
		Weeks:      m.calendarWeeks(),
		AgendaView: agenda,
	})
}
