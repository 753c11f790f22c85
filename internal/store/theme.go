package store

import (
	"context"
	"log/slog"

	"financas/internal/core"
)

// ThemeStore persists the light/dark preference independently of the
// transaction collection.
type ThemeStore struct {
	kv KV
}

func NewThemeStore(kv KV) *ThemeStore {
	return &ThemeStore{kv: kv}
}

// Load returns the stored theme; absent or unrecognized values mean dark.
func (s *ThemeStore) Load(ctx context.Context) core.Theme {
	raw, found, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		slog.WarnContext(ctx, "Theme load failed, defaulting to dark", "error", err)
		return core.ThemeDark
	}
	if !found {
		return core.ThemeDark
	}
	return core.ParseTheme(raw)
}

// Save persists the preference immediately.
func (s *ThemeStore) Save(ctx context.Context, theme core.Theme) {
	if err := s.kv.Put(ctx, ThemeKey, string(theme)); err != nil {
		slog.WarnContext(ctx, "Theme persist failed", "error", err, "theme", theme)
	}
}
