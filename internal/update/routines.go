package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/views"
)

func (m Model) handleRoutinesKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "a":
		m.openRoutineForm(nil)
		m.Status = StatusBar{Text: "adding routine", IsError: false}
	case "e":
		if r, ok := m.currentRoutine(); ok {
			m.openRoutineForm(&r)
			m.Status = StatusBar{Text: fmt.Sprintf("editing routine: %s", r.Title), IsError: false}
		}
	case "up", "k":
		if m.RoutinesCursor > 0 {
			m.RoutinesCursor--
		}
	case "down", "j":
		if m.RoutinesCursor < len(m.Routines)-1 {
			m.RoutinesCursor++
		}
	case "enter", " ":
		m.toggleRoutineAtCursor()
	case "d":
		m.deleteRoutineAtCursor()
	}
	return m
}

func (m Model) currentRoutine() (model.Routine, bool) {
	if len(m.Routines) == 0 || m.RoutinesCursor < 0 || m.RoutinesCursor >= len(m.Routines) {
		return model.Routine{}, false
	}
	return m.Routines[m.RoutinesCursor], true
}

func (m *Model) toggleRoutineAtCursor() {
	if m.RoutinesCursor < 0 || m.RoutinesCursor >= len(m.Routines) {
		return
	}
	today := model.DateString(m.today())
	m.Routines[m.RoutinesCursor].ToggleCompleted(today)
	r := m.Routines[m.RoutinesCursor]
	if r.CompletedOn(today) {
		m.Status = StatusBar{Text: fmt.Sprintf("completed today: %s", r.Title), IsError: false}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("unmarked today: %s", r.Title), IsError: false}
	}
	m.persistRoutines()
}

func (m *Model) toggleRoutineByTitle(title string) bool {
	today := model.DateString(m.today())
	for i := range m.Routines {
		if strings.EqualFold(m.Routines[i].Title, title) {
			m.Routines[i].ToggleCompleted(today)
			m.persistRoutines()
			return true
		}
	}
	return false
}

func (m *Model) deleteRoutineAtCursor() {
	if m.RoutinesCursor < 0 || m.RoutinesCursor >= len(m.Routines) {
		return
	}
	removed := m.Routines[m.RoutinesCursor]
	m.Routines = append(m.Routines[:m.RoutinesCursor], m.Routines[m.RoutinesCursor+1:]...)
	if m.RoutinesCursor >= len(m.Routines) && m.RoutinesCursor > 0 {
		m.RoutinesCursor--
	}
	m.Status = StatusBar{Text: fmt.Sprintf("routine deleted: %s", removed.Title), IsError: false}
	m.persistRoutines()
	m.syncEngine()
}

func (m *Model) deleteRoutineByTitle(title string) bool {
	for i := range m.Routines {
		if strings.EqualFold(m.Routines[i].Title, title) {
			m.Routines = append(m.Routines[:i], m.Routines[i+1:]...)
			if m.RoutinesCursor >= len(m.Routines) && m.RoutinesCursor > 0 {
				m.RoutinesCursor--
			}
			m.persistRoutines()
			m.syncEngine()
			return true
		}
	}
	return false
}

// addRoutineQuick covers palette adds: defaults for everything but the title.
// A blank title is a silent no-op.
func (m *Model) addRoutineQuick(title string) {
	prev := len(m.Routines)
	f := newRoutineFormState()
	f.Title.SetValue(title)
	f.Time.SetValue("08:00")
	f.Notify.SetValue("10")
	m.RoutineForm = f
	m.submitRoutineForm()
	if len(m.Routines) > prev {
		m.RoutinesCursor = len(m.Routines) - 1
	}
}

func (m Model) renderRoutinesView() string {
	today := model.DateString(m.today())
	now := m.today()
	items := make([]views.RoutineItemData, 0, len(m.Routines))
	for i, r := range m.Routines {
		items = append(items, views.RoutineItemData{
			Title:     r.Title,
			Time:      r.Time,
			Frequency: string(r.Frequency),
			DoneToday: r.CompletedOn(today),
			Streak:    r.Streak(now),
			Selected:  i == m.RoutinesCursor,
		})
	}
	return views.RenderRoutinesPanel(views.RoutinesPanelData{
		Items:    items,
		FormView: m.renderRoutineFormView(),
	})
}
