package repository

import (
	"context"
	"sync"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

// MemoryCatalog is a ShowtimeCatalog backed by maps. It is used when the
// service runs without Postgres and in tests.
type MemoryCatalog struct {
	mu        sync.RWMutex
	showtimes map[string]domain.Showtime
	theatres  map[string]domain.TheatreLayout
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		showtimes: make(map[string]domain.Showtime),
		theatres:  make(map[string]domain.TheatreLayout),
	}
}

func (c *MemoryCatalog) AddTheatre(layout domain.TheatreLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.theatres[layout.TheatreID] = layout
}

func (c *MemoryCatalog) AddShowtime(showtime domain.Showtime) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showtimes[showtime.ID] = showtime
}

func (c *MemoryCatalog) GetShowtime(ctx context.Context, id string) (*domain.Showtime, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	showtime, ok := c.showtimes[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &showtime, nil
}

func (c *MemoryCatalog) GetTheatreLayout(ctx context.Context, theatreID string) (*domain.TheatreLayout, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	layout, ok := c.theatres[theatreID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &layout, nil
}
