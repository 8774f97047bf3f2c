package broker

import (
	"context"
	"log/slog"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	p.logger.Debug("booking event dropped, no broker configured",
		"type", event.Type,
		"booking_id", event.BookingID)

	return nil
}
