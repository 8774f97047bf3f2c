package domain

import (
	"context"
	"fmt"
	"time"
)

// Inventory is the authoritative remaining-capacity counter of a showtime.
// Version is bumped by the store on every successful write and used for
// compare-and-swap updates.
type Inventory struct {
	ShowtimeID     string
	TheatreID      string
	TotalCapacity  int
	AvailableCount int
	Version        int
	UpdatedAt      time.Time
}

func NewInventory(showtimeID, theatreID string, totalCapacity int) (*Inventory, error) {
	if totalCapacity < 1 {
		return nil, fmt.Errorf("%w: total capacity must be positive, got %d", ErrInvalidInput, totalCapacity)
	}

	return &Inventory{
		ShowtimeID:     showtimeID,
		TheatreID:      theatreID,
		TotalCapacity:  totalCapacity,
		AvailableCount: totalCapacity,
	}, nil
}

func (i *Inventory) Decrement(n int) error {
	return i.adjust(-n, n)
}

func (i *Inventory) Increment(n int) error {
	return i.adjust(n, n)
}

func (i *Inventory) adjust(delta, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: adjustment must be positive, got %d", ErrInvalidAdjustment, n)
	}

	next := i.AvailableCount + delta
	if next < 0 || next > i.TotalCapacity {
		return fmt.Errorf(
			"%w: available %d %+d outside [0, %d]",
			ErrInvalidAdjustment,
			i.AvailableCount,
			delta,
			i.TotalCapacity,
		)
	}

	i.AvailableCount = next

	return nil
}

// Headroom is how many seats can be returned before reaching total capacity.
func (i *Inventory) Headroom() int {
	return i.TotalCapacity - i.AvailableCount
}

type InventoryRepository interface {
	CreateInventory(ctx context.Context, inventory *Inventory) error
	GetInventory(ctx context.Context, showtimeID string) (*Inventory, error)
	// UpdateInventory persists AvailableCount only if the stored version still
	// equals inventory.Version, then bumps inventory.Version.
	UpdateInventory(ctx context.Context, inventory *Inventory) error
}
