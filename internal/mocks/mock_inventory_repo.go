package mocks

import (
	"context"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

// MockInventoryRepo forwards every call to Inner unless the matching func
// field is set, so tests can fail a single write against a real store.
type MockInventoryRepo struct {
	Inner domain.InventoryRepository

	CreateInventoryFunc func(ctx context.Context, inventory *domain.Inventory) error
	GetInventoryFunc    func(ctx context.Context, showtimeID string) (*domain.Inventory, error)
	UpdateInventoryFunc func(ctx context.Context, inventory *domain.Inventory) error
}

func (m *MockInventoryRepo) CreateInventory(ctx context.Context, inventory *domain.Inventory) error {
	if m.CreateInventoryFunc != nil {
		return m.CreateInventoryFunc(ctx, inventory)
	}
	return m.Inner.CreateInventory(ctx, inventory)
}

func (m *MockInventoryRepo) GetInventory(ctx context.Context, showtimeID string) (*domain.Inventory, error) {
	if m.GetInventoryFunc != nil {
		return m.GetInventoryFunc(ctx, showtimeID)
	}
	return m.Inner.GetInventory(ctx, showtimeID)
}

func (m *MockInventoryRepo) UpdateInventory(ctx context.Context, inventory *domain.Inventory) error {
	if m.UpdateInventoryFunc != nil {
		return m.UpdateInventoryFunc(ctx, inventory)
	}
	return m.Inner.UpdateInventory(ctx, inventory)
}
