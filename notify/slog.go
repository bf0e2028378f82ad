package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier logs notifications instead of displaying them. Used in
// one-shot mode and as the default when no UI is attached.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a SlogNotifier over the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (s *SlogNotifier) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	if n.Kind == KindError {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, n.Title,
		slog.String("message", n.Message),
		slog.String("kind", string(n.Kind)),
	)
}
