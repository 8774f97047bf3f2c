package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID            string
	MovieID       string
	TheatreID     string
	ShowDate      time.Time
	Price         decimal.Decimal
	TotalCapacity int
}

type TheatreLayout struct {
	TheatreID   string
	Name        string
	Location    string
	Rows        int
	SeatsPerRow int
}

func (t TheatreLayout) TotalSeats() int {
	return t.Rows * t.SeatsPerRow
}

// Contains reports whether the seat exists in the theatre geometry.
func (t TheatreLayout) Contains(seat Seat) bool {
	row, ok := RowIndex(seat.Row)
	if !ok {
		return false
	}

	return row < t.Rows && seat.Number >= 1 && seat.Number <= t.SeatsPerRow
}

// ShowtimeCatalog is the read-only view of the catalog service.
type ShowtimeCatalog interface {
	GetShowtime(ctx context.Context, id string) (*Showtime, error)
	GetTheatreLayout(ctx context.Context, theatreID string) (*TheatreLayout, error)
}

// ShowtimeSnapshot is a point-in-time view of a showtime's inventory and its
// committed seats. Inventory is nil when the showtime was never opened.
type ShowtimeSnapshot struct {
	Inventory      *Inventory
	CommittedSeats []Seat
}

type SnapshotReader interface {
	Snapshot(ctx context.Context, showtimeID string) (*ShowtimeSnapshot, error)
}

// ShowtimeLocker serializes mutating operations of one showtime. Lock waits
// for a bounded time and returns ErrBusy when it gives up.
type ShowtimeLocker interface {
	Lock(ctx context.Context, showtimeID string) (unlock func(), err error)
}
