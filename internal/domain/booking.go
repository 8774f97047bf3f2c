package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          string
	UserID      string
	ShowtimeID  string
	Seats       []Seat
	TotalAmount decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
}

func NewBooking(id, userID, showtimeID string, seats []Seat, totalAmount decimal.Decimal, now time.Time) *Booking {
	booked := make([]Seat, len(seats))
	for i, seat := range seats {
		booked[i] = Seat{Row: seat.Row, Number: seat.Number, Status: SeatStatusBooked}
	}

	return &Booking{
		ID:          id,
		UserID:      userID,
		ShowtimeID:  showtimeID,
		Seats:       booked,
		TotalAmount: totalAmount,
		Status:      BookingStatusConfirmed,
		CreatedAt:   now,
	}
}

func (b *Booking) NumberOfSeats() int {
	return len(b.Seats)
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

func (b *Booking) OwnedBy(userID string) bool {
	return b.UserID == userID
}

// Cancel moves a confirmed booking to cancelled. The transition is one-way.
func (b *Booking) Cancel(now time.Time) error {
	if b.IsCancelled() {
		return ErrAlreadyCancelled
	}

	b.Status = BookingStatusCancelled
	b.CancelledAt = &now

	return nil
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	// DeleteBooking is reserved for compensating a booking whose inventory
	// update failed right after creation.
	DeleteBooking(ctx context.Context, id string) error
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
	// ListCommittedSeats returns the union of seats of all confirmed bookings
	// of a showtime.
	ListCommittedSeats(ctx context.Context, showtimeID string) ([]Seat, error)
	// UpdateBookingStatus writes booking.Status and booking.CancelledAt only if
	// the stored status equals from; otherwise it returns ErrEditConflict.
	UpdateBookingStatus(ctx context.Context, booking *Booking, from BookingStatus) error
}
