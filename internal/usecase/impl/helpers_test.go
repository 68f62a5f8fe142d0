package impl

import (
	"io"
	"log/slog"
	"time"

	"agenda/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			TTL:             ttl,
			CookieName:      "agenda_session",
			CleanupInterval: time.Hour,
		},
	}
}
