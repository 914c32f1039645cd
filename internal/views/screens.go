package views

import (
	"fmt"
	"strings"
)

type DailyStatData struct {
	Label      string
	Completed  int
	Total      int
	Percentage int
}

type StreakData struct {
	Title string
	Days  int
}

type DashboardPanelData struct {
	Stats          []DailyStatData
	ProgressView   string
	TodayPercent   int
	TotalRoutines  int
	UpcomingEvents int
	Streaks        []StreakData
}

type RoutineItemData struct {
	Title     string
	Time      string
	Frequency string
	DoneToday bool
	Streak    int
	Selected  bool
}

type RoutinesPanelData struct {
	Items    []RoutineItemData
	FormView string
}

type TimetableItemData struct {
	Title string
	Time  string
	Kind  string
}

type TimetableRowData struct {
	Hour  string
	Items []TimetableItemData
}

type TimetablePanelData struct {
	DateLabel string
	Rows      []TimetableRowData
}

type CalendarCellData struct {
	Day      int
	IsToday  bool
	Routines int
	Events   int
}

type CalendarPanelData struct {
	MonthLabel string
	Weeks      [][]CalendarCellData
	AgendaView string
}

type EventItemData struct {
	Title    string
	Date     string
	Start    string
	End      string
	Selected bool
}

type EventsPanelData struct {
	Items    []EventItemData
	FormView string
}

type CoachPanelData struct {
	Loading     bool
	SpinnerView string
	HasResult   bool
	Conflicts   []string
	Suggestions []string
	InsightView string
}

type SettingsPanelData struct {
	Theme          string
	DesktopEnabled bool
	Cursor         int
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	fmt.Fprintf(&b, "routines: %d | upcoming events: %d\n", data.TotalRoutines, data.UpcomingEvents)
	fmt.Fprintf(&b, "today: %d%% %s\n", data.TodayPercent, data.ProgressView)
	b.WriteString("last 7 days:\n")
	for _, s := range data.Stats {
		fmt.Fprintf(&b, "  %s %2d/%-2d %s %d%%\n", s.Label, s.Completed, s.Total, miniBar(s.Percentage), s.Percentage)
	}
	if len(data.Streaks) > 0 {
		b.WriteString("streaks:\n")
		for _, s := range data.Streaks {
			fmt.Fprintf(&b, "  %s: %d day(s)\n", s.Title, s.Days)
		}
	}
	return strings.TrimSpace(b.String())
}

func miniBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct / 10
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + "]"
}

func RenderRoutinesPanel(data RoutinesPanelData) string {
	var b strings.Builder
	b.WriteString("routines:\n")
	b.WriteString("actions: [a]add [enter/space]toggle today [d]delete [j/k]move\n")
	if data.FormView != "" {
		b.WriteString(data.FormView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no routines yet; press a to add one)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.Selected {
			cursor = "> "
		}
		check := "[ ]"
		if item.DoneToday {
			check = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s %s (%s)", cursor, check, item.Time, item.Title, item.Frequency)
		if item.Streak > 0 {
			fmt.Fprintf(&b, " streak:%d", item.Streak)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTimetablePanel(data TimetablePanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "timetable: %s\n", data.DateLabel)
	for _, row := range data.Rows {
		if len(row.Items) == 0 {
			fmt.Fprintf(&b, "%s |\n", row.Hour)
			continue
		}
		parts := make([]string, 0, len(row.Items))
		for _, item := range row.Items {
			parts = append(parts, fmt.Sprintf("%s %s [%s]", item.Time, item.Title, item.Kind))
		}
		fmt.Fprintf(&b, "%s | %s\n", row.Hour, strings.Join(parts, " ; "))
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "calendar: %s\n", data.MonthLabel)
	b.WriteString("actions: [h/l]month [H/L]year [j/k]agenda\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for _, week := range data.Weeks {
		for _, cell := range week {
			if cell.Day == 0 {
				b.WriteString("    ")
				continue
			}
			marker := " "
			switch {
			case cell.IsToday:
				marker = "*"
			case cell.Events > 0:
				marker = "e"
			case cell.Routines > 0:
				marker = "r"
			}
			fmt.Fprintf(&b, "%2d%s ", cell.Day, marker)
		}
		b.WriteString("\n")
	}
	if data.AgendaView != "" {
		b.WriteString(data.AgendaView)
	}
	return strings.TrimSpace(b.String())
}

func RenderEventsPanel(data EventsPanelData) string {
	var b strings.Builder
	b.WriteString("events:\n")
	b.WriteString("actions: [a]add [d]delete [j/k]move\n")
	if data.FormView != "" {
		b.WriteString(data.FormView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no upcoming events)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.Selected {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s %s-%s %s\n", cursor, item.Date, item.Start, item.End, item.Title)
	}
	return strings.TrimSpace(b.String())
}

func RenderCoachPanel(data CoachPanelData) string {
	var b strings.Builder
	b.WriteString("coach:\n")
	if data.Loading {
		fmt.Fprintf(&b, "%s analyzing your schedule...\n", data.SpinnerView)
		return strings.TrimSpace(b.String())
	}
	if !data.HasResult {
		b.WriteString("press [enter] to analyze your routines and events\n")
		b.WriteString("(no insight available)")
		return strings.TrimSpace(b.String())
	}
	b.WriteString("conflicts:\n")
	if len(data.Conflicts) == 0 {
		b.WriteString("  none detected\n")
	}
	for _, c := range data.Conflicts {
		fmt.Fprintf(&b, "  ! %s\n", c)
	}
	b.WriteString("suggestions:\n")
	for _, s := range data.Suggestions {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	if data.InsightView != "" {
		b.WriteString("insight:\n")
		b.WriteString(data.InsightView)
	}
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("actions: [j/k]move [enter/space]toggle\n")
	rows := []string{
		fmt.Sprintf("theme: %s", data.Theme),
		fmt.Sprintf("desktop notifications: %v", data.DesktopEnabled),
	}
	for i, row := range rows {
		cursor := "  "
		if i == data.Cursor {
			cursor = "> "
		}
		b.WriteString(cursor + row + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView + "\n(commands: add, toggle, delete, view, theme, analyze)"
}

func RenderHelpPanel(currentView, helpView string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "help (%s):\n", currentView)
	b.WriteString(helpView)
	return strings.TrimSpace(b.String())
}
