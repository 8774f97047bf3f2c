package booking

import (
	"context"
	"errors"
	"time"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	created   metric.Int64Counter
	rejected  metric.Int64Counter
	cancelled metric.Int64Counter
	lockWait  metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	created, err := meter.Int64Counter("bookings.created",
		metric.WithDescription("Number of confirmed bookings"))
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter("bookings.rejected",
		metric.WithDescription("Number of rejected booking attempts by reason"))
	if err != nil {
		return nil, err
	}

	cancelled, err := meter.Int64Counter("bookings.cancelled",
		metric.WithDescription("Number of cancelled bookings"))
	if err != nil {
		return nil, err
	}

	lockWait, err := meter.Float64Histogram("bookings.lock_wait",
		metric.WithDescription("Time spent waiting for a showtime lock"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &metrics{
		created:   created,
		rejected:  rejected,
		cancelled: cancelled,
		lockWait:  lockWait,
	}, nil
}

func (m *metrics) recordCreated(ctx context.Context, seats int) {
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.Int("seats", seats)))
}

func (m *metrics) recordRejected(ctx context.Context, err error) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", rejectionReason(err))))
}

func (m *metrics) recordCancelled(ctx context.Context) {
	m.cancelled.Add(ctx, 1)
}

func (m *metrics) recordLockWait(ctx context.Context, d time.Duration) {
	m.lockWait.Record(ctx, float64(d.Microseconds())/1000)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientCapacity):
		return "insufficient_capacity"
	case errors.Is(err, domain.ErrSeatConflict):
		return "seat_conflict"
	case errors.Is(err, domain.ErrBusy):
		return "busy"
	case errors.Is(err, domain.ErrCapacityUpdateFailed):
		return "capacity_update_failed"
	default:
		return "internal"
	}
}
