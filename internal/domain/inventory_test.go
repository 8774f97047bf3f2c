package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventory(t *testing.T) {
	inv, err := NewInventory("show-1", "theatre-1", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, inv.TotalCapacity)
	assert.Equal(t, 100, inv.AvailableCount)
	assert.Equal(t, 0, inv.Version)

	_, err = NewInventory("show-1", "theatre-1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInventoryAdjustments(t *testing.T) {
	tests := []struct {
		name          string
		available     int
		adjust        func(*Inventory) error
		wantAvailable int
		wantErr       bool
	}{
		{
			name:          "decrement within range",
			available:     10,
			adjust:        func(i *Inventory) error { return i.Decrement(4) },
			wantAvailable: 6,
		},
		{
			name:          "decrement to zero",
			available:     3,
			adjust:        func(i *Inventory) error { return i.Decrement(3) },
			wantAvailable: 0,
		},
		{
			name:          "decrement below zero",
			available:     2,
			adjust:        func(i *Inventory) error { return i.Decrement(3) },
			wantAvailable: 2,
			wantErr:       true,
		},
		{
			name:          "increment to total",
			available:     7,
			adjust:        func(i *Inventory) error { return i.Increment(3) },
			wantAvailable: 10,
		},
		{
			name:          "increment above total",
			available:     9,
			adjust:        func(i *Inventory) error { return i.Increment(2) },
			wantAvailable: 9,
			wantErr:       true,
		},
		{
			name:          "zero adjustment",
			available:     5,
			adjust:        func(i *Inventory) error { return i.Decrement(0) },
			wantAvailable: 5,
			wantErr:       true,
		},
		{
			name:          "negative adjustment",
			available:     5,
			adjust:        func(i *Inventory) error { return i.Increment(-1) },
			wantAvailable: 5,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Inventory{TotalCapacity: 10, AvailableCount: tt.available}

			err := tt.adjust(inv)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAdjustment)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAvailable, inv.AvailableCount)
		})
	}
}

func TestInventoryDecrementIncrementRoundTrip(t *testing.T) {
	inv := &Inventory{TotalCapacity: 50, AvailableCount: 50}

	require.NoError(t, inv.Decrement(8))
	require.NoError(t, inv.Increment(8))
	assert.Equal(t, 50, inv.AvailableCount)
	assert.Equal(t, 0, inv.Headroom())
}
