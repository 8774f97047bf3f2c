package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

// MemoryStore keeps bookings and inventories in process memory. It applies
// the same uniqueness and versioning rules as the Postgres schema and hands
// out copies so callers never share state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	bookings    map[string]*storedBooking
	committed   map[string]map[domain.SeatKey]string
	inventories map[string]*domain.Inventory
	seq         int64
	now         func() time.Time
}

type storedBooking struct {
	booking domain.Booking
	seq     int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings:    make(map[string]*storedBooking),
		committed:   make(map[string]map[domain.SeatKey]string),
		inventories: make(map[string]*domain.Inventory),
		now:         time.Now,
	}
}

func (m *MemoryStore) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookings[booking.ID]; ok {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}

	if booking.IsConfirmed() {
		if err := m.commitSeatsLocked(booking); err != nil {
			return err
		}
	}

	m.seq++
	m.bookings[booking.ID] = &storedBooking{booking: copyBooking(booking), seq: m.seq}

	return nil
}

func (m *MemoryStore) DeleteBooking(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.bookings[id]
	if !ok {
		return domain.ErrRecordNotFound
	}

	if stored.booking.IsConfirmed() {
		m.releaseSeatsLocked(&stored.booking)
	}
	delete(m.bookings, id)

	return nil
}

func (m *MemoryStore) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	booking := copyBooking(&stored.booking)

	return &booking, nil
}

func (m *MemoryStore) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]*storedBooking, 0)
	for _, stored := range m.bookings {
		if stored.booking.UserID == userID {
			matches = append(matches, stored)
		}
	}

	slices.SortFunc(matches, func(a, b *storedBooking) int {
		if c := b.booking.CreatedAt.Compare(a.booking.CreatedAt); c != 0 {
			return c
		}
		return int(b.seq - a.seq)
	})

	bookings := make([]domain.Booking, 0, len(matches))
	for _, stored := range matches {
		bookings = append(bookings, copyBooking(&stored.booking))
	}

	return bookings, nil
}

func (m *MemoryStore) ListCommittedSeats(ctx context.Context, showtimeID string) ([]domain.Seat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.committedSeatsLocked(showtimeID), nil
}

func (m *MemoryStore) UpdateBookingStatus(ctx context.Context, booking *domain.Booking, from domain.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.bookings[booking.ID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	if stored.booking.Status != from {
		return domain.ErrEditConflict
	}

	switch {
	case from == domain.BookingStatusConfirmed && booking.IsCancelled():
		m.releaseSeatsLocked(&stored.booking)
	case from == domain.BookingStatusCancelled && booking.IsConfirmed():
		if err := m.commitSeatsLocked(&stored.booking); err != nil {
			return err
		}
	}

	stored.booking.Status = booking.Status
	stored.booking.CancelledAt = copyTime(booking.CancelledAt)

	return nil
}

func (m *MemoryStore) CreateInventory(ctx context.Context, inventory *domain.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventories[inventory.ShowtimeID]; ok {
		return domain.ErrInventoryExists
	}

	inventory.Version = 1
	inventory.UpdatedAt = m.now()

	stored := *inventory
	m.inventories[inventory.ShowtimeID] = &stored

	return nil
}

func (m *MemoryStore) GetInventory(ctx context.Context, showtimeID string) (*domain.Inventory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.inventories[showtimeID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	inventory := *stored

	return &inventory, nil
}

func (m *MemoryStore) UpdateInventory(ctx context.Context, inventory *domain.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.inventories[inventory.ShowtimeID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	if stored.Version != inventory.Version {
		return domain.ErrEditConflict
	}

	if inventory.AvailableCount < 0 || inventory.AvailableCount > stored.TotalCapacity {
		return fmt.Errorf("%w: available count %d outside [0, %d]",
			domain.ErrInvalidAdjustment, inventory.AvailableCount, stored.TotalCapacity)
	}

	stored.AvailableCount = inventory.AvailableCount
	stored.Version++
	stored.UpdatedAt = m.now()

	inventory.Version = stored.Version
	inventory.UpdatedAt = stored.UpdatedAt

	return nil
}

func (m *MemoryStore) Snapshot(ctx context.Context, showtimeID string) (*domain.ShowtimeSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := &domain.ShowtimeSnapshot{
		CommittedSeats: m.committedSeatsLocked(showtimeID),
	}

	if stored, ok := m.inventories[showtimeID]; ok {
		inventory := *stored
		snapshot.Inventory = &inventory
	}

	return snapshot, nil
}

func (m *MemoryStore) commitSeatsLocked(booking *domain.Booking) error {
	if err := domain.CheckSeatConflicts(booking.Seats, m.committedSeatsLocked(booking.ShowtimeID)); err != nil {
		return err
	}

	seats := m.committed[booking.ShowtimeID]
	if seats == nil {
		seats = make(map[domain.SeatKey]string)
		m.committed[booking.ShowtimeID] = seats
	}

	for _, seat := range booking.Seats {
		seats[seat.Key()] = booking.ID
	}

	return nil
}

func (m *MemoryStore) releaseSeatsLocked(booking *domain.Booking) {
	seats := m.committed[booking.ShowtimeID]

	for _, seat := range booking.Seats {
		if seats[seat.Key()] == booking.ID {
			delete(seats, seat.Key())
		}
	}

	if len(seats) == 0 {
		delete(m.committed, booking.ShowtimeID)
	}
}

func (m *MemoryStore) committedSeatsLocked(showtimeID string) []domain.Seat {
	committed := m.committed[showtimeID]

	seats := make([]domain.Seat, 0, len(committed))
	for key := range committed {
		seats = append(seats, domain.Seat{Row: key.Row, Number: key.Number, Status: domain.SeatStatusBooked})
	}

	return seats
}

func copyBooking(b *domain.Booking) domain.Booking {
	c := *b
	c.Seats = slices.Clone(b.Seats)
	c.CancelledAt = copyTime(b.CancelledAt)

	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	c := *t

	return &c
}
