package update

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/views"
)

// sortEvents keeps the collection in date-then-start order so the list,
// cursor, and persisted payload agree.
func (m *Model) sortEvents() {
	sort.SliceStable(m.Events, func(i, j int) bool {
		if m.Events[i].Date != m.Events[j].Date {
			return m.Events[i].Date < m.Events[j].Date
		}
		return m.Events[i].StartTime < m.Events[j].StartTime
	})
}

func (m Model) handleEventsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "a":
		m.openEventForm(nil)
		m.Status = StatusBar{Text: "adding event", IsError: false}
	case "e":
		if ev, ok := m.currentEvent(); ok {
			m.openEventForm(&ev)
			m.Status = StatusBar{Text: fmt.Sprintf("editing event: %s", ev.Title), IsError: false}
		}
	case "up", "k":
		if m.EventsCursor > 0 {
			m.EventsCursor--
		}
	case "down", "j":
		if m.EventsCursor < len(m.Events)-1 {
			m.EventsCursor++
		}
	case "d":
		m.deleteEventAtCursor()
	}
	return m
}

func (m Model) currentEvent() (model.Event, bool) {
	if len(m.Events) == 0 || m.EventsCursor < 0 || m.EventsCursor >= len(m.Events) {
		return model.Event{}, false
	}
	return m.Events[m.EventsCursor], true
}

func (m *Model) deleteEventAtCursor() {
	if m.EventsCursor < 0 || m.EventsCursor >= len(m.Events) {
		return
	}
	removed := m.Events[m.EventsCursor]
	m.Events = append(m.Events[:m.EventsCursor], m.Events[m.EventsCursor+1:]...)
	if m.EventsCursor >= len(m.Events) && m.EventsCursor > 0 {
		m.EventsCursor--
	}
	m.Status = StatusBar{Text: fmt.Sprintf("event deleted: %s", removed.Title), IsError: false}
	m.persistEvents()
	m.syncEngine()
}

func (m *Model) deleteEventByTitle(title string) bool {
	for i := range m.Events {
		if strings.EqualFold(m.Events[i].Title, title) {
			m.Events = append(m.Events[:i], m.Events[i+1:]...)
			if m.EventsCursor >= len(m.Events) && m.EventsCursor > 0 {
				m.EventsCursor--
			}
			m.persistEvents()
			m.syncEngine()
			return true
		}
	}
	return false
}

func (m *Model) addEventQuick(title string) {
	prev := len(m.Events)
	f := newEventFormState()
	f.Title.SetValue(title)
	f.Date.SetValue(model.DateString(m.today()))
	f.Start.SetValue("09:00")
	f.End.SetValue("10:00")
	f.Notify.SetValue("30")
	m.EventForm = f
	m.submitEventForm()
	if len(m.Events) > prev {
		m.EventsCursor = len(m.Events) - 1
	}
}

func (m Model) renderEventsView() string {
	items := make([]views.EventItemData, 0, len(m.Events))
	for i, e := range m.Events {
		items = append(items, views.EventItemData{
			Title:    e.Title,
			Date:     e.Date,
			Start:    e.StartTime,
			End:      e.EndTime,
			Selected: i == m.EventsCursor,
		})
	}
	return views.RenderEventsPanel(views.EventsPanelData{
		Items:    items,
		FormView: m.renderEventFormView(),
	})
}
