package update

import (
	"fmt"

	"github.com/sandeepkv93/zenflow/internal/model"
	"github.com/sandeepkv93/zenflow/internal/views"
)

// timetableRows buckets a day's occurrences into 24 hour slots. Items with an
// unparsable time are left out; per-hour order follows projection order.
func timetableRows(occ []model.Occurrence) []views.TimetableRowData {
	rows := make([]views.TimetableRowData, 24)
	for h := 0; h < 24; h++ {
		rows[h] = views.TimetableRowData{Hour: fmt.Sprintf("%02d:00", h)}
	}
	for _, o := range occ {
		minute, err := model.MinuteOfDay(o.OccursAt)
		if err != nil {
			continue
		}
		rows[minute/60].Items = append(rows[minute/60].Items, views.TimetableItemData{
			Title: o.Title,
			Time:  o.OccursAt,
			Kind:  string(o.SourceKind),
		})
	}
	return rows
}

func (m Model) renderTimetableView() string {
	today := m.today()
	occ := model.ProjectForDate(m.Routines, m.Events, today)
	return views.RenderTimetablePanel(views.TimetablePanelData{
		DateLabel: today.Format("Mon 2006-01-02"),
		Rows:      timetableRows(occ),
	})
}
