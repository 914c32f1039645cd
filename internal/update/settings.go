package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/storage"
	"github.com/sandeepkv93/zenflow/internal/views"
)

const settingsRowCount = 2

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.SettingsCursor > 0 {
			m.SettingsCursor--
		}
	case "down", "j":
		if m.SettingsCursor < settingsRowCount-1 {
			m.SettingsCursor++
		}
	case "enter", " ":
		switch m.SettingsCursor {
		case 0:
			m.toggleTheme()
		case 1:
			m.DesktopEnabled = !m.DesktopEnabled
			m.Status = StatusBar{Text: fmt.Sprintf("desktop notifications: %v", m.DesktopEnabled), IsError: false}
		}
	}
	return m
}

func (m *Model) toggleTheme() {
	if m.Theme == storage.ThemeDark {
		m.Theme = storage.ThemeLight
	} else {
		m.Theme = storage.ThemeDark
	}
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.Theme), IsError: false}
	m.persistTheme()
}

func (m *Model) setTheme(name string) {
	if name != storage.ThemeLight && name != storage.ThemeDark {
		return
	}
	m.Theme = name
	m.persistTheme()
}

func (m Model) renderSettingsView() string {
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Theme:          m.Theme,
		DesktopEnabled: m.DesktopEnabled,
		Cursor:         m.SettingsCursor,
	})
}
