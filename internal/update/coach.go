package update

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/views"
)

const analyzeTimeout = 30 * time.Second

func (m Model) handleCoachKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.Coach.Loading {
			return m, nil
		}
		return m.startAnalysis()
	}
	return m, nil
}

func (m Model) startAnalysis() (Model, tea.Cmd) {
	m.Coach.Loading = true
	m.Coach.Err = ""
	m.Status = StatusBar{Text: "analyzing schedule", IsError: false}
	return m, tea.Batch(m.coachSpinner.Tick, analyzeCmd(m.Analyzer, m.Routines, m.Events))
}

func analyzeCmd(analyzer Analyzer, routines []model.Routine, events []model.Event) tea.Cmd {
	return func() tea.Msg {
		if analyzer == nil {
			return AnalysisMsg{Err: errors.New("coach: no analyzer configured; set a Gemini API key")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
		defer cancel()
		res, err := analyzer.Analyze(ctx, routines, events)
		return AnalysisMsg{Result: res, Err: err}
	}
}

func (m Model) renderCoachView() string {
	data := views.CoachPanelData{
		Loading:     m.Coach.Loading,
		SpinnerView: m.coachSpinner.View(),
	}
	if m.Coach.Result != nil {
		data.HasResult = true
		data.Conflicts = m.Coach.Result.Conflicts
		data.Suggestions = m.Coach.Result.Suggestions
		data.InsightView = views.RenderMarkdown(m.Theme, m.Coach.Result.Insight)
	}
	return views.RenderCoachPanel(data)
}
