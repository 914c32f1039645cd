package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/commands"
	"github.com/sandeepkv93/zenflow/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var followUp tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			switch a.Kind {
			case "routine":
				m.CurrentView = ViewRoutines
				m.addRoutineQuick(a.Title)
			case "event":
				m.CurrentView = ViewEvents
				m.addEventQuick(a.Title)
			}
			return commands.Result{Message: fmt.Sprintf("added %s: %s", a.Kind, a.Title)}, nil
		},
		Toggle: func(t commands.ToggleArgs) (commands.Result, error) {
			if !m.toggleRoutineByTitle(t.Title) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no routine titled %q", t.Title)}
			}
			return commands.Result{Message: fmt.Sprintf("toggled today: %s", t.Title)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			ok := false
			switch d.Kind {
			case "routine":
				ok = m.deleteRoutineByTitle(d.Title)
			case "event":
				ok = m.deleteEventByTitle(d.Title)
			}
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no %s titled %q", d.Kind, d.Title)}
			}
			return commands.Result{Message: fmt.Sprintf("deleted %s: %s", d.Kind, d.Title)}, nil
		},
		View: func(v commands.ViewArgs) (commands.Result, error) {
			target, ok := viewByName(v.Name)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view %q", v.Name)}
			}
			m.CurrentView = target
			return commands.Result{Message: fmt.Sprintf("view: %s", target)}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			m.setTheme(t.Name)
			return commands.Result{Message: fmt.Sprintf("theme: %s", t.Name)}, nil
		},
		Analyze: func() (commands.Result, error) {
			m.CurrentView = ViewCoach
			next, cmd := m.startAnalysis()
			m = next
			followUp = cmd
			return commands.Result{Message: "analyzing schedule"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else if res.Message != "" {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}
	return m, followUp
}

func viewByName(name string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dashboard":
		return ViewDashboard, true
	case "routines":
		return ViewRoutines, true
	case "timetable":
		return ViewTimetable, true
	case "calendar":
		return ViewCalendar, true
	case "events":
		return ViewEvents, true
	case "coach":
		return ViewCoach, true
	case "settings":
		return ViewSettings, true
	default:
		return "", false
	}
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
