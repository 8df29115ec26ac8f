package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// NoopSender logs messages instead of delivering them. Used when email is
// disabled in config.
type NoopSender struct {
	log *slog.Logger
}

// NewNoopSender creates a NoopSender.
func NewNoopSender(logger *slog.Logger) *NoopSender {
	return &NoopSender{log: logger.With("adapter", "noop_email")}
}

// Send logs msg and returns a synthetic message ID.
func (s *NoopSender) Send(ctx context.Context, msg Message) (string, error) {
	id := "noop-" + uuid.NewString()
	s.log.DebugContext(ctx, "email suppressed",
		slog.String("message_id", id),
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
	)
	return id, nil
}
