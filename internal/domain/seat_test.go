package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{9, "J"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{-1, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RowLabel(tt.index), "RowLabel(%d)", tt.index)
	}
}

func TestRowIndexIsInverseOfRowLabel(t *testing.T) {
	for i := 0; i < 1000; i++ {
		got, ok := RowIndex(RowLabel(i))
		assert.True(t, ok, "RowIndex(RowLabel(%d)) not ok", i)
		assert.Equal(t, i, got)
	}
}

func TestRowIndexRejectsInvalidLabels(t *testing.T) {
	for _, label := range []string{"", "a", "A1", "ÄB", "ABCD", " A"} {
		_, ok := RowIndex(label)
		assert.False(t, ok, "RowIndex(%q) should fail", label)
	}
}

func TestSeatValidate(t *testing.T) {
	tests := []struct {
		name    string
		seat    Seat
		wantErr bool
		wantMsg string
	}{
		{name: "valid seat", seat: NewSeat("a", 1)},
		{name: "valid multi letter row", seat: NewSeat("AB", 12)},
		{name: "empty row", seat: NewSeat("  ", 1), wantErr: true},
		{name: "numeric row", seat: NewSeat("1", 1), wantErr: true},
		{name: "zero number", seat: NewSeat("A", 0), wantErr: true},
		{name: "negative number", seat: NewSeat("A", -3), wantErr: true},
		{name: "row too long", seat: NewSeat("ABCD", 1), wantErr: true, wantMsg: `seat row "ABCD" must be at most 3 letters`},
		{name: "row with digits", seat: NewSeat("A1", 1), wantErr: true, wantMsg: `seat row "A1" must contain only letters`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seat.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				if tt.wantMsg != "" {
					assert.ErrorContains(t, err, tt.wantMsg)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSeatIdentifier(t *testing.T) {
	assert.Equal(t, "A1", NewSeat(" a ", 1).Identifier())
	assert.Equal(t, "AB12", NewSeat("ab", 12).Identifier())
}
