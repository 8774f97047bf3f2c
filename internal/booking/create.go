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

func (e *Engine) CreateBooking(ctx context.Context, params CreateBookingParams) (*domain.Booking, error) {
	ctx, span := e.tracer.Start(ctx, "booking.create", trace.WithAttributes(
		attribute.String("showtime.id", params.ShowtimeID),
		attribute.Int("booking.seats", len(params.Seats)),
	))
	defer span.End()

	booking, err := e.createBooking(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking rejected")
		e.metrics.recordRejected(ctx, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("booking.id", booking.ID))
	e.metrics.recordCreated(ctx, booking.NumberOfSeats())
	e.publish(ctx, domain.BookingEventCreated, booking)

	return booking, nil
}

func (e *Engine) createBooking(ctx context.Context, params CreateBookingParams) (*domain.Booking, error) {
	seats, err := validateCreateParams(params)
	if err != nil {
		return nil, err
	}

	showtime, err := e.catalog.GetShowtime(ctx, params.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime %s: %w", params.ShowtimeID, err)
	}

	layout, err := e.catalog.GetTheatreLayout(ctx, showtime.TheatreID)
	if err != nil {
		return nil, fmt.Errorf("theatre %s: %w", showtime.TheatreID, err)
	}

	for _, seat := range seats {
		if !layout.Contains(seat) {
			return nil, fmt.Errorf("%w: seat %s does not exist in theatre %s",
				domain.ErrInvalidInput, seat.Identifier(), layout.Name)
		}
	}

	unlock, err := e.lockShowtime(ctx, showtime.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	inventory, err := e.loadOrOpenInventory(ctx, showtime)
	if err != nil {
		return nil, err
	}

	if inventory.AvailableCount < len(seats) {
		return nil, fmt.Errorf("%w: requested %d, available %d",
			domain.ErrInsufficientCapacity, len(seats), inventory.AvailableCount)
	}

	committed, err := e.bookings.ListCommittedSeats(ctx, showtime.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load committed seats: %w", err)
	}

	if err := domain.CheckSeatConflicts(seats, committed); err != nil {
		return nil, err
	}

	booking := domain.NewBooking(e.newID(), params.UserID, showtime.ID, seats, params.TotalAmount, e.now())

	if err := e.bookings.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSeatConflict) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	err = inventory.Decrement(booking.NumberOfSeats())
	if err == nil {
		err = e.inventory.UpdateInventory(ctx, inventory)
	}

	if err != nil {
		return nil, e.rollbackCreate(ctx, booking, err)
	}

	return booking, nil
}

// rollbackCreate removes a booking whose inventory update failed. It runs
// even if the caller has gone away.
func (e *Engine) rollbackCreate(ctx context.Context, booking *domain.Booking, cause error) error {
	logger := e.logger.With("booking_id", booking.ID, "showtime_id", booking.ShowtimeID)

	if err := e.bookings.DeleteBooking(context.WithoutCancel(ctx), booking.ID); err != nil {
		joined := errors.Join(cause, err)
		logger.Error("failed to roll back booking after inventory update failure", "error", joined)

		return fmt.Errorf("%w: %w", domain.ErrCapacityUpdateFailed, joined)
	}

	logger.Warn("rolled back booking after inventory update failure", "error", cause)

	return fmt.Errorf("%w: %w", domain.ErrCapacityUpdateFailed, cause)
}

// loadOrOpenInventory returns the showtime's inventory, creating it from the
// catalog capacity if the showtime was never opened. Callers hold the lock.
func (e *Engine) loadOrOpenInventory(ctx context.Context, showtime *domain.Showtime) (*domain.Inventory, error) {
	inventory, err := e.inventory.GetInventory(ctx, showtime.ID)
	if err == nil {
		return inventory, nil
	}

	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	inventory, err = domain.NewInventory(showtime.ID, showtime.TheatreID, showtime.TotalCapacity)
	if err != nil {
		return nil, err
	}

	err = e.inventory.CreateInventory(ctx, inventory)
	switch {
	case err == nil:
		e.logger.Info("opened showtime inventory",
			"showtime_id", showtime.ID,
			"total_capacity", inventory.TotalCapacity)
		return inventory, nil
	case errors.Is(err, domain.ErrInventoryExists):
		return e.inventory.GetInventory(ctx, showtime.ID)
	default:
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
}

func validateCreateParams(params CreateBookingParams) ([]domain.Seat, error) {
	if params.ShowtimeID == "" {
		return nil, fmt.Errorf("%w: showtime id is required", domain.ErrInvalidInput)
	}

	if params.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	if len(params.Seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat must be selected", domain.ErrInvalidInput)
	}

	if len(params.Seats) > MaxSeatsPerBooking {
		return nil, fmt.Errorf("%w: at most %d seats can be booked at once", domain.ErrInvalidInput, MaxSeatsPerBooking)
	}

	if !params.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", domain.ErrInvalidInput)
	}

	seats := make([]domain.Seat, 0, len(params.Seats))
	for _, s := range params.Seats {
		seat := domain.NewSeat(s.Row, s.Number)
		if err := seat.Validate(); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	if dup, ok := domain.FindDuplicateSeat(seats); ok {
		return nil, fmt.Errorf("%w: seat %s is selected more than once", domain.ErrInvalidInput, dup.Identifier())
	}

	return seats, nil
}
