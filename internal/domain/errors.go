package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientCapacity = errors.New("not enough available seats for this showtime")
	ErrSeatConflict         = errors.New("seat is already booked")
	ErrForbidden            = errors.New("you can only manage your own bookings")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrCapacityUpdateFailed = errors.New("failed to update seat availability")
	ErrInvalidAdjustment    = errors.New("inventory adjustment out of range")
	ErrInventoryExists      = errors.New("inventory already exists for showtime")
	ErrBusy                 = errors.New("showtime is busy, please retry")
)

// SeatConflictError reports the first requested seat that could not be booked.
type SeatConflictError struct {
	Seat Seat
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s is already booked", e.Seat.Identifier())
}

func (e *SeatConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}
