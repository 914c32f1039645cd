package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/zenflow/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Themes persisted under the theme key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store persists the whole routine and event collections as single values, so
// every mutation is a whole-collection replace. Absent or malformed persisted
// state loads as an empty collection rather than an error; there is no
// versioning or migration of the payloads themselves.
type Store interface {
	LoadRoutines(ctx context.Context) ([]model.Routine, error)
	SaveRoutines(ctx context.Context, routines []model.Routine) error

	LoadEvents(ctx context.Context) ([]model.Event, error)
	SaveEvents(ctx context.Context, events []model.Event) error

	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}
