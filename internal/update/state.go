package update

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/zenflow/internal/storage"
)

const persistTimeout = 5 * time.Second

func (m *Model) loadPersistedState() {
	if m.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	// Each key loads independently: a failing key degrades only its own
	// collection, never the others.
	if routines, err := m.Store.LoadRoutines(ctx); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("load routines failed: %v", err), IsError: true}
	} else {
		m.Routines = routines
	}

	if events, err := m.Store.LoadEvents(ctx); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("load events failed: %v", err), IsError: true}
	} else {
		m.Events = events
		m.sortEvents()
	}

	theme, err := m.Store.LoadTheme(ctx)
	if err != nil {
		theme = storage.ThemeDark
	}
	m.Theme = theme
}

func (m *Model) persistRoutines() {
	if m.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.Store.SaveRoutines(ctx, m.Routines); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save routines failed: %v", err), IsError: true}
	}
}

func (m *Model) persistEvents() {
	if m.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.Store.SaveEvents(ctx, m.Events); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save events failed: %v", err), IsError: true}
	}
}

func (m *Model) persistTheme() {
	if m.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.Store.SaveTheme(ctx, m.Theme); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save theme failed: %v", err), IsError: true}
	}
}

// syncEngine pushes the current collections to the scheduler so the next tick
// evaluates against what the user sees.
func (m *Model) syncEngine() {
	if m.Engine == nil {
		return
	}
	m.Engine.SetSchedule(m.Routines, m.Events)
}
