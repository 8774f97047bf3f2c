package booking

import (
	"context"
	"fmt"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

func (e *Engine) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return e.bookings.GetBooking(ctx, bookingID)
}

// GetUserBookings returns every booking of the user, newest first. Cancelled
// bookings are included.
func (e *Engine) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	return e.bookings.ListBookingsByUser(ctx, userID)
}

// GetSeatMap reads without taking the showtime lock. Counts and seat states
// come from a single snapshot so they always agree with each other.
func (e *Engine) GetSeatMap(ctx context.Context, showtimeID string) (*domain.SeatMap, error) {
	showtime, err := e.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	layout, err := e.catalog.GetTheatreLayout(ctx, showtime.TheatreID)
	if err != nil {
		return nil, err
	}

	snapshot, err := e.snapshots.Snapshot(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to read showtime snapshot: %w", err)
	}

	seatMap := &domain.SeatMap{
		Showtime:       *showtime,
		Theatre:        *layout,
		TotalCapacity:  showtime.TotalCapacity,
		AvailableCount: showtime.TotalCapacity,
		Seats:          domain.BuildSeatMap(*layout, snapshot.CommittedSeats),
	}

	if snapshot.Inventory != nil {
		seatMap.TotalCapacity = snapshot.Inventory.TotalCapacity
		seatMap.AvailableCount = snapshot.Inventory.AvailableCount
	}

	return seatMap, nil
}

// OpenShowtime creates the showtime's inventory from its catalog capacity.
// Opening an already open showtime returns the current inventory.
func (e *Engine) OpenShowtime(ctx context.Context, showtimeID string) (*domain.Inventory, error) {
	showtime, err := e.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	unlock, err := e.lockShowtime(ctx, showtime.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return e.loadOrOpenInventory(ctx, showtime)
}
