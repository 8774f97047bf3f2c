package mocks

import (
	"context"
	"sync"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

type MockEventPublisher struct {
	mu     sync.Mutex
	events []domain.BookingEvent
	Err    error
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.events = append(m.events, event)

	return nil
}

func (m *MockEventPublisher) Events() []domain.BookingEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.BookingEvent(nil), m.events...)
}
