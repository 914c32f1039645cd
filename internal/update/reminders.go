package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sandeepkv93/zenflow/internal/schedule"
)

const (
	notificationTTL  = 10 * time.Second
	maxNotifications = 40
)

// waitForTickCmd blocks on the scheduler channel and resurfaces each tick as a
// bubbletea message. Re-armed after every TickResultMsg.
func waitForTickCmd(ch <-chan schedule.TickResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return TickResultMsg{Result: res}
	}
}

// applyTickResult pushes each due reminder onto the notification stack and
// sweeps expired events out of the collection. Returned commands carry the
// per-notification dismissal timers.
func (m *Model) applyTickResult(res schedule.TickResult) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range res.Reminders {
		cmds = append(cmds, m.pushNotification(r.Message, "info"))
	}
	if len(res.ExpiredEventIDs) > 0 {
		removed := m.removeEventsByID(res.ExpiredEventIDs)
		if removed > 0 {
			m.Status = StatusBar{Text: fmt.Sprintf("removed %d expired event(s)", removed), IsError: false}
			m.persistEvents()
			m.syncEngine()
		}
	}
	return cmds
}

func (m *Model) pushNotification(message, level string) tea.Cmd {
	if strings.TrimSpace(message) == "" {
		return nil
	}
	n := Notification{
		ID:      uuid.NewString(),
		Message: message,
		Level:   level,
		At:      m.today(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send("ZenFlow Alert", message)
	}
	id := n.ID
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return DismissNotificationMsg{ID: id}
	})
}

func (m *Model) dismissNotification(id string) {
	for i, n := range m.Notifications {
		if n.ID == id {
			m.Notifications = append(m.Notifications[:i], m.Notifications[i+1:]...)
			return
		}
	}
}

func (m *Model) dismissNewestNotification() {
	if len(m.Notifications) == 0 {
		return
	}
	m.Notifications = m.Notifications[:len(m.Notifications)-1]
}

func (m *Model) removeEventsByID(ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.Events[:0]
	removed := 0
	for _, e := range m.Events {
		if drop[e.ID] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.Events = kept
	if m.EventsCursor >= len(m.Events) && m.EventsCursor > 0 {
		m.EventsCursor = len(m.Events) - 1
	}
	return removed
}
