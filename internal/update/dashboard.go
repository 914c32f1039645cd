package update

import (
	"time"

	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/views"
)

type dailyStat struct {
	Date      time.Time
	Completed int
	Total     int
}

func (s dailyStat) percentage() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}

// weeklyStats computes per-day completion over the trailing seven days
// (oldest first, ending today). Total counts routines active on the day,
// completed counts those marked done on it.
func weeklyStats(routines []model.Routine, today time.Time) []dailyStat {
	out := make([]dailyStat, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		dateStr := model.DateString(day)
		stat := dailyStat{Date: day}
		for _, r := range routines {
			if !r.Frequency.ActiveOn(day) {
				continue
			}
			stat.Total++
			if r.CompletedOn(dateStr) {
				stat.Completed++
			}
		}
		out = append(out, stat)
	}
	return out
}

func (m Model) renderDashboardView() string {
	today := m.today()
	stats := weeklyStats(m.Routines, today)

	statData := make([]views.DailyStatData, 0, len(stats))
	for _, s := range stats {
		statData = append(statData, views.DailyStatData{
			Label:      s.Date.Format("Mon"),
			Completed:  s.Completed,
			Total:      s.Total,
			Percentage: s.percentage(),
		})
	}

	todayStat := stats[len(stats)-1]
	pct := todayStat.percentage()

	streaks := make([]views.StreakData, 0, len(m.Routines))
	for _, r := range m.Routines {
		if days := r.Streak(today); days > 0 {
			streaks = append(streaks, views.StreakData{Title: r.Title, Days: days})
		}
	}

	return views.RenderDashboardPanel(views.DashboardPanelData{
		Stats:          statData,
		ProgressView:   m.todayProgress.ViewAs(float64(pct) / 100),
		TodayPercent:   pct,
		TotalRoutines:  len(m.Routines),
		UpcomingEvents: len(m.Events),
		Streaks:        streaks,
	})
}
