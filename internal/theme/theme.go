// Package theme persists the dark-mode preference. It owns the "darkMode"
// storage key; the task store never touches it.
package theme

import (
	"context"

	"task-manager/internal/storage"
	"task-manager/internal/storage/sqlite"

	"go.uber.org/zap"
)

// DarkModeKey is the durable storage key holding the dark-mode flag.
const DarkModeKey = "darkMode"

// Preference wraps the persisted dark-mode flag. Light mode is the default
// for a fresh or unreadable store.
type Preference struct {
	cell *storage.Cell[bool]
}

// NewPreference creates the theme preference backed by the given KV engine.
func NewPreference(kv *sqlite.KV, log *zap.Logger) *Preference {
	return &Preference{
		cell: storage.NewCell(kv, DarkModeKey, false, log),
	}
}

// IsDark reports whether dark mode is enabled.
func (p *Preference) IsDark(ctx context.Context) bool {
	return p.cell.Read(ctx)
}

// Toggle flips the preference and returns the new value.
func (p *Preference) Toggle(ctx context.Context) bool {
	return p.cell.Update(ctx, func(dark bool) bool { return !dark })
}

// Set stores an explicit preference.
func (p *Preference) Set(ctx context.Context, dark bool) error {
	return p.cell.Write(ctx, dark)
}
