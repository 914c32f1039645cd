package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Theme         string
	Header        string
	LeftPane      string
	RightPane     string
	StatusLine    string
	Footer        string
	Notifications []NotificationData
}

type NotificationData struct {
	Message string
	Level   string
}

type styleSet struct {
	header       lipgloss.Style
	status       lipgloss.Style
	errorText    lipgloss.Style
	panel        lipgloss.Style
	footer       lipgloss.Style
	notification lipgloss.Style
}

var (
	darkStyles = styleSet{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		notification: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1),
	}
	lightStyles = styleSet{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		errorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		notification: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1),
	}
)

func stylesFor(theme string) styleSet {
	if theme == "light" {
		return lightStyles
	}
	return darkStyles
}

func RenderApp(data AppData) string {
	st := stylesFor(data.Theme)
	left := st.panel.Width(58).Render(data.LeftPane)
	right := st.panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := st.status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = st.errorText.Render(data.StatusLine)
	}

	lines := []string{
		st.header.Render(data.Header),
		row,
		status,
	}
	if stack := renderNotificationStack(st, data.Notifications); stack != "" {
		lines = append(lines, stack)
	}
	if data.Footer != "" {
		lines = append(lines, st.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func renderNotificationStack(st styleSet, items []NotificationData) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for _, n := range items {
		prefix := "reminder"
		if n.Level == "error" {
			prefix = "error"
		}
		lines = append(lines, prefix+": "+n.Message)
	}
	return st.notification.Render(strings.Join(lines, "\n"))
}

// RenderMarkdown renders the AI insight text through glamour using the active
// theme; on failure the raw text is shown instead.
func RenderMarkdown(theme, md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if theme == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
