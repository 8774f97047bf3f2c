package domain

import (
	"context"
	"time"
)

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "booking.created"
	BookingEventCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is published after a booking change is committed so that
// downstream consumers can react without querying the booking store.
type BookingEvent struct {
	Type        BookingEventType `json:"type"`
	BookingID   string           `json:"booking_id"`
	UserID      string           `json:"user_id"`
	ShowtimeID  string           `json:"showtime_id"`
	Seats       []string         `json:"seats"`
	TotalAmount string           `json:"total_amount"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

func NewBookingEvent(eventType BookingEventType, booking *Booking, now time.Time) BookingEvent {
	seats := make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		seats[i] = seat.Identifier()
	}

	return BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ShowtimeID:  booking.ShowtimeID,
		Seats:       seats,
		TotalAmount: booking.TotalAmount.StringFixed(2),
		OccurredAt:  now,
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
