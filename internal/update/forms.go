package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sandeepkv93/zenflow/internal/model"
)

const (
	routineFieldTitle = iota
	routineFieldTime
	routineFieldFrequency
	routineFieldNotify
	routineFieldColor
	routineFieldCount
)

const (
	eventFieldTitle = iota
	eventFieldDate
	eventFieldStart
	eventFieldEnd
	eventFieldNotify
	eventFieldCount
)

type RoutineFormState struct {
	Active    bool
	EditingID string
	Focus     int
	Title     textinput.Model
	Time      textinput.Model
	Frequency model.Frequency
	Notify    textinput.Model
	Color     textinput.Model
}

type EventFormState struct {
	Active    bool
	EditingID string
	Focus     int
	Title     textinput.Model
	Date      textinput.Model
	Start     textinput.Model
	End       textinput.Model
	Notify    textinput.Model
}

func newFormInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Width = 32
	return in
}

func newRoutineFormState() RoutineFormState {
	return RoutineFormState{
		Title:     newFormInput("title> ", "Morning run"),
		Time:      newFormInput("time> ", "07:30"),
		Frequency: model.FrequencyDaily,
		Notify:    newFormInput("notify> ", "10"),
		Color:     newFormInput("color> ", "#4ade80"),
	}
}

func newEventFormState() EventFormState {
	return EventFormState{
		Title:  newFormInput("title> ", "Dentist"),
		Date:   newFormInput("date> ", "2026-09-01"),
		Start:  newFormInput("start> ", "14:00"),
		End:    newFormInput("end> ", "15:00"),
		Notify: newFormInput("notify> ", "30"),
	}
}

func (m *Model) openRoutineForm(editing *model.Routine) {
	f := newRoutineFormState()
	f.Active = true
	if editing != nil {
		f.EditingID = editing.ID
		f.Title.SetValue(editing.Title)
		f.Time.SetValue(editing.Time)
		f.Frequency = editing.Frequency
		f.Notify.SetValue(strconv.Itoa(editing.NotifyBefore))
		f.Color.SetValue(editing.Color)
	} else {
		f.Time.SetValue("08:00")
		f.Notify.SetValue("10")
	}
	f.Title.Focus()
	m.RoutineForm = f
}

func (m *Model) openEventForm(editing *model.Event) {
	f := newEventFormState()
	f.Active = true
	if editing != nil {
		f.EditingID = editing.ID
		f.Title.SetValue(editing.Title)
		f.Date.SetValue(editing.Date)
		f.Start.SetValue(editing.StartTime)
		f.End.SetValue(editing.EndTime)
		f.Notify.SetValue(strconv.Itoa(editing.NotifyBefore))
	} else {
		f.Date.SetValue(model.DateString(m.today()))
		f.Start.SetValue("09:00")
		f.End.SetValue("10:00")
		f.Notify.SetValue("30")
	}
	f.Title.Focus()
	m.EventForm = f
}

func (m Model) handleRoutineFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.RoutineForm.Active = false
		m.Status = StatusBar{Text: "routine form closed", IsError: false}
		return m
	case "enter":
		m.submitRoutineForm()
		return m
	case "tab", "down":
		m.RoutineForm.Focus = (m.RoutineForm.Focus + 1) % routineFieldCount
		m.focusRoutineField()
		return m
	case "shift+tab", "up":
		m.RoutineForm.Focus = (m.RoutineForm.Focus + routineFieldCount - 1) % routineFieldCount
		m.focusRoutineField()
		return m
	case "left", "right":
		if m.RoutineForm.Focus == routineFieldFrequency {
			m.RoutineForm.Frequency = cycleFrequency(m.RoutineForm.Frequency, msg.String() == "right")
			return m
		}
	}
	var cmd tea.Cmd
	switch m.RoutineForm.Focus {
	case routineFieldTitle:
		m.RoutineForm.Title, cmd = m.RoutineForm.Title.Update(msg)
	case routineFieldTime:
		m.RoutineForm.Time, cmd = m.RoutineForm.Time.Update(msg)
	case routineFieldNotify:
		m.RoutineForm.Notify, cmd = m.RoutineForm.Notify.Update(msg)
	case routineFieldColor:
		m.RoutineForm.Color, cmd = m.RoutineForm.Color.Update(msg)
	}
	_ = cmd
	return m
}

func (m *Model) focusRoutineField() {
	m.RoutineForm.Title.Blur()
	m.RoutineForm.Time.Blur()
	m.RoutineForm.Notify.Blur()
	m.RoutineForm.Color.Blur()
	switch m.RoutineForm.Focus {
	case routineFieldTitle:
		m.RoutineForm.Title.Focus()
	case routineFieldTime:
		m.RoutineForm.Time.Focus()
	case routineFieldNotify:
		m.RoutineForm.Notify.Focus()
	case routineFieldColor:
		m.RoutineForm.Color.Focus()
	}
}

func cycleFrequency(f model.Frequency, forward bool) model.Frequency {
	order := []model.Frequency{model.FrequencyDaily, model.FrequencyWeekdays, model.FrequencyWeekly}
	idx := 0
	for i, cand := range order {
		if cand == f {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx + len(order) - 1) % len(order)
	}
	return order[idx]
}

// submitRoutineForm applies the form. A blank title closes the form without
// touching the collection; any other validation failure keeps the form open.
func (m *Model) submitRoutineForm() {
	f := &m.RoutineForm
	title := strings.TrimSpace(f.Title.Value())
	if title == "" {
		f.Active = false
		return
	}
	notify, err := strconv.Atoi(strings.TrimSpace(f.Notify.Value()))
	if err != nil {
		m.Status = StatusBar{Text: "notify-before must be a number of minutes", IsError: true}
		return
	}
	r := model.Routine{
		ID:             f.EditingID,
		Title:          title,
		Time:           strings.TrimSpace(f.Time.Value()),
		Frequency:      f.Frequency,
		CompletedDates: []string{},
		NotifyBefore:   notify,
		Color:          strings.TrimSpace(f.Color.Value()),
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if f.EditingID != "" {
		for _, existing := range m.Routines {
			if existing.ID == f.EditingID {
				r.CompletedDates = existing.CompletedDates
			}
		}
	}
	if err := r.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if f.EditingID != "" {
		for i := range m.Routines {
			if m.Routines[i].ID == f.EditingID {
				m.Routines[i] = r
			}
		}
		m.Status = StatusBar{Text: fmt.Sprintf("routine updated: %s", r.Title), IsError: false}
	} else {
		m.Routines = append(m.Routines, r)
		m.RoutinesCursor = len(m.Routines) - 1
		m.Status = StatusBar{Text: fmt.Sprintf("routine added: %s", r.Title), IsError: false}
	}
	f.Active = false
	m.persistRoutines()
	m.syncEngine()
}

func (m Model) handleEventFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.EventForm.Active = false
		m.Status = StatusBar{Text: "event form closed", IsError: false}
		return m
	case "enter":
		m.submitEventForm()
		return m
	case "tab", "down":
		m.EventForm.Focus = (m.EventForm.Focus + 1) % eventFieldCount
		m.focusEventField()
		return m
	case "shift+tab", "up":
		m.EventForm.Focus = (m.EventForm.Focus + eventFieldCount - 1) % eventFieldCount
		m.focusEventField()
		return m
	}
	var cmd tea.Cmd
	switch m.EventForm.Focus {
	case eventFieldTitle:
		m.EventForm.Title, cmd = m.EventForm.Title.Update(msg)
	case eventFieldDate:
		m.EventForm.Date, cmd = m.EventForm.Date.Update(msg)
	case eventFieldStart:
		m.EventForm.Start, cmd = m.EventForm.Start.Update(msg)
	case eventFieldEnd:
		m.EventForm.End, cmd = m.EventForm.End.Update(msg)
	case eventFieldNotify:
		m.EventForm.Notify, cmd = m.EventForm.Notify.Update(msg)
	}
	_ = cmd
	return m
}

func (m *Model) focusEventField() {
	m.EventForm.Title.Blur()
	m.EventForm.Date.Blur()
	m.EventForm.Start.Blur()
	m.EventForm.End.Blur()
	m.EventForm.Notify.Blur()
	switch m.EventForm.Focus {
	case eventFieldTitle:
		m.EventForm.Title.Focus()
	case eventFieldDate:
		m.EventForm.Date.Focus()
	case eventFieldStart:
		m.EventForm.Start.Focus()
	case eventFieldEnd:
		m.EventForm.End.Focus()
	case eventFieldNotify:
		m.EventForm.Notify.Focus()
	}
}

func (m *Model) submitEventForm() {
	f := &m.EventForm
	title := strings.TrimSpace(f.Title.Value())
	if title == "" {
		f.Active = false
		return
	}
	notify, err := strconv.Atoi(strings.TrimSpace(f.Notify.Value()))
	if err != nil {
		m.Status = StatusBar{Text: "notify-before must be a number of minutes", IsError: true}
		return
	}
	e := model.Event{
		ID:           f.EditingID,
		Title:        title,
		Date:         strings.TrimSpace(f.Date.Value()),
		StartTime:    strings.TrimSpace(f.Start.Value()),
		EndTime:      strings.TrimSpace(f.End.Value()),
		NotifyBefore: notify,
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := e.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if f.EditingID != "" {
		for i := range m.Events {
			if m.Events[i].ID == f.EditingID {
				m.Events[i] = e
			}
		}
		m.Status = StatusBar{Text: fmt.Sprintf("event updated: %s", e.Title), IsError: false}
	} else {
		m.Events = append(m.Events, e)
		m.Status = StatusBar{Text: fmt.Sprintf("event added: %s", e.Title), IsError: false}
	}
	f.Active = false
	m.sortEvents()
	for i := range m.Events {
		if m.Events[i].ID == e.ID {
			m.EventsCursor = i
		}
	}
	m.persistEvents()
	m.syncEngine()
}

func (m Model) renderRoutineFormView() string {
	if !m.RoutineForm.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("-- new routine (enter save, esc cancel, tab next) --\n")
	b.WriteString(m.RoutineForm.Title.View() + "\n")
	b.WriteString(m.RoutineForm.Time.View() + "\n")
	freqCursor := "  "
	if m.RoutineForm.Focus == routineFieldFrequency {
		freqCursor = "> "
	}
	fmt.Fprintf(&b, "%sfrequency: < %s >\n", freqCursor, m.RoutineForm.Frequency)
	b.WriteString(m.RoutineForm.Notify.View() + "\n")
	b.WriteString(m.RoutineForm.Color.View())
	return b.String()
}

func (m Model) renderEventFormView() string {
	if !m.EventForm.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("-- new event (enter save, esc cancel, tab next) --\n")
	b.WriteString(m.EventForm.Title.View() + "\n")
	b.WriteString(m.EventForm.Date.View() + "\n")
	b.WriteString(m.EventForm.Start.View() + "\n")
	b.WriteString(m.EventForm.End.View() + "\n")
	b.WriteString(m.EventForm.Notify.View())
	return b.String()
}
