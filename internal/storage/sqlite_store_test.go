package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/zenflow/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "zenflow-test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRoutinesRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	routines := []model.Routine{
		{
			ID:             "rtn-1",
			Title:          "Morning Run",
			Time:           "07:00",
			Frequency:      model.FrequencyDaily,
			CompletedDates: []string{"2026-02-08", "2026-02-09"},
			NotifyBefore:   15,
			Color:          "#4f46e5",
		},
		{
			ID:           "rtn-2",
			Title:        "Weekly Review",
			Time:         "18:00",
			Frequency:    model.FrequencyWeekly,
			NotifyBefore: 30,
		},
	}
	if err := store.SaveRoutines(ctx, routines); err != nil {
		t.Fatalf("save routines: %v", err)
	}

	got, err := store.LoadRoutines(ctx)
	if err != nil {
		t.Fatalf("load routines: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 routines, got %d", len(got))
	}
	if got[0].Title != "Morning Run" || len(got[0].CompletedDates) != 2 {
		t.Fatalf("unexpected first routine: %+v", got[0])
	}
	if got[1].Frequency != model.FrequencyWeekly {
		t.Fatalf("unexpected frequency: %q", got[1].Frequency)
	}
}

func TestEventsRoundTripAndReplace(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	events := []model.Event{
		{ID: "evt-1", Title: "Dentist", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00", NotifyBefore: 30},
	}
	if err := store.SaveEvents(ctx, events); err != nil {
		t.Fatalf("save events: %v", err)
	}

	// Whole-collection replace: a save with the item removed removes it.
	if err := store.SaveEvents(ctx, []model.Event{}); err != nil {
		t.Fatalf("save empty events: %v", err)
	}
	got, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 events after replace, got %d", len(got))
	}
}

func TestLoadAbsentKeysYieldEmptyCollections(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	routines, err := store.LoadRoutines(ctx)
	if err != nil {
		t.Fatalf("load routines: %v", err)
	}
	if routines == nil || len(routines) != 0 {
		t.Fatalf("expected empty routine slice, got %#v", routines)
	}

	events, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty event slice, got %#v", events)
	}
}

func TestLoadMalformedPayloadYieldsEmptyCollection(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.putValue(ctx, keyRoutines, "{not json"); err != nil {
		t.Fatalf("seed malformed payload: %v", err)
	}
	routines, err := store.LoadRoutines(ctx)
	if err != nil {
		t.Fatalf("load routines: %v", err)
	}
	if len(routines) != 0 {
		t.Fatalf("expected empty slice for malformed payload, got %d", len(routines))
	}
}

func TestThemePersistenceAndDefault(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	theme, err := store.LoadTheme(ctx)
	if err != nil {
		t.Fatalf("load default theme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("expected default theme %q, got %q", ThemeDark, theme)
	}

	if err := store.SaveTheme(ctx, ThemeLight); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	theme, err = store.LoadTheme(ctx)
	if err != nil {
		t.Fatalf("load theme: %v", err)
	}
	if theme != ThemeLight {
		t.Fatalf("expected %q, got %q", ThemeLight, theme)
	}

	// Unknown persisted values fall back to the default.
	if err := store.putValue(ctx, keyTheme, "sepia"); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	theme, err = store.LoadTheme(ctx)
	if err != nil {
		t.Fatalf("load theme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("expected fallback to %q, got %q", ThemeDark, theme)
	}
}

func TestMigrateRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.SaveTheme(context.Background(), ThemeLight); err != nil {
		t.Fatalf("save after roundtrip failed: %v", err)
	}
}
