package navigation

import (
	"context"
	"log/slog"
)

// LogObserver returns an Observer that records each stack change on logger.
// A nil logger yields an observer that does nothing.
func LogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return func(Snapshot) {}
	}
	return func(s Snapshot) {
		attrs := []any{
			"version", s.Version(),
			"depth", s.Len(),
			"stack", s.String(),
		}
		if top, ok := s.Top(); ok {
			attrs = append(attrs, "top", top.String())
		}
		logger.Log(context.Background(), slog.LevelDebug, "nav_stack_changed", attrs...)
	}
}
