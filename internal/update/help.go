package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/zenflow/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	body := strings.Join(plain, "\n")
	helpLine := m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	})
	return views.RenderHelpPanel(string(m.CurrentView), body+"\n"+helpLine)
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "dashboard"},
		{Key: m.Keys.Routines, Action: "routines"},
		{Key: m.Keys.Timetable, Action: "timetable"},
		{Key: m.Keys.Calendar, Action: "calendar"},
		{Key: m.Keys.Events, Action: "events"},
		{Key: m.Keys.Coach, Action: "coach"},
		{Key: m.Keys.Settings, Action: "settings"},
		{Key: "/", Action: "command palette"},
		{Key: "x", Action: "dismiss reminder"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewRoutines:
		return []KeyBinding{
			{Key: "a/e", Action: "add / edit routine"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter/space", Action: "toggle done today"},
			{Key: "d", Action: "delete routine"},
		}
	case ViewEvents:
		return []KeyBinding{
			{Key: "a/e", Action: "add / edit event"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "d", Action: "delete event"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "H/L", Action: "previous/next year"},
			{Key: "t", Action: "jump to today"},
			{Key: "j/k", Action: "move agenda cursor"},
		}
	case ViewCoach:
		return []KeyBinding{
			{Key: "enter", Action: "analyze schedule"},
		}
	case ViewSettings:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter/space", Action: "toggle setting"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
