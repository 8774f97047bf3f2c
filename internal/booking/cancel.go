package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (e *Engine) CancelBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	ctx, span := e.tracer.Start(ctx, "booking.cancel", trace.WithAttributes(
		attribute.String("booking.id", bookingID),
	))
	defer span.End()

	booking, err := e.cancelBooking(ctx, bookingID, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancellation rejected")

		return nil, err
	}

	e.metrics.recordCancelled(ctx)
	e.publish(ctx, domain.BookingEventCancelled, booking)

	return booking, nil
}

func (e *Engine) cancelBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	booking, err := e.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	if booking.IsCancelled() {
		return nil, domain.ErrAlreadyCancelled
	}

	unlock, err := e.lockShowtime(ctx, booking.ShowtimeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// a concurrent cancel may have won the lock first
	booking, err = e.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		return nil, domain.ErrAlreadyCancelled
	}

	inventory, err := e.inventory.GetInventory(ctx, booking.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	if err := booking.Cancel(e.now()); err != nil {
		return nil, err
	}

	if err := e.bookings.UpdateBookingStatus(ctx, booking, domain.BookingStatusConfirmed); err != nil {
		if errors.Is(err, domain.ErrEditConflict) {
			return nil, domain.ErrAlreadyCancelled
		}

		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err := e.restoreSeats(ctx, inventory, booking); err != nil {
		return nil, e.rollbackCancel(ctx, booking, err)
	}

	return booking, nil
}

func (e *Engine) restoreSeats(ctx context.Context, inventory *domain.Inventory, booking *domain.Booking) error {
	n := booking.NumberOfSeats()

	if headroom := inventory.Headroom(); n > headroom {
		e.logger.Error("inventory has less headroom than the cancelled booking holds",
			"showtime_id", booking.ShowtimeID,
			"booking_id", booking.ID,
			"seats", n,
			"headroom", headroom)
		n = headroom
	}

	if n == 0 {
		return nil
	}

	if err := inventory.Increment(n); err != nil {
		return err
	}

	return e.inventory.UpdateInventory(ctx, inventory)
}

// rollbackCancel puts a booking back to confirmed after its seats could not
// be returned to the inventory.
func (e *Engine) rollbackCancel(ctx context.Context, booking *domain.Booking, cause error) error {
	logger := e.logger.With("booking_id", booking.ID, "showtime_id", booking.ShowtimeID)

	restored := *booking
	restored.Status = domain.BookingStatusConfirmed
	restored.CancelledAt = nil

	err := e.bookings.UpdateBookingStatus(context.WithoutCancel(ctx), &restored, domain.BookingStatusCancelled)
	if err != nil {
		joined := errors.Join(cause, err)
		logger.Error("failed to restore booking after inventory update failure", "error", joined)

		return fmt.Errorf("%w: %w", domain.ErrCapacityUpdateFailed, joined)
	}

	logger.Warn("restored booking after inventory update failure", "error", cause)

	return fmt.Errorf("%w: %w", domain.ErrCapacityUpdateFailed, cause)
}
