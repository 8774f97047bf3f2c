package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const maxRowLabelLength = 3

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "AVAILABLE"
	SeatStatusSelected  SeatStatus = "SELECTED"
	SeatStatusBooked    SeatStatus = "BOOKED"
)

// Seat is a (row, number) position in a theatre. Its status is derived per
// showtime from the confirmed bookings and is never stored on its own.
type Seat struct {
	Row    string
	Number int
	Status SeatStatus
}

// SeatKey is the identity of a seat within one showtime's seat map.
type SeatKey struct {
	Row    string
	Number int
}

func NewSeat(row string, number int) Seat {
	return Seat{
		Row:    NormalizeRow(row),
		Number: number,
		Status: SeatStatusAvailable,
	}
}

func (s Seat) Key() SeatKey {
	return SeatKey{Row: s.Row, Number: s.Number}
}

// Identifier renders the seat the way it is printed on a ticket, e.g. "A1".
func (s Seat) Identifier() string {
	return s.Row + strconv.Itoa(s.Number)
}

func (s Seat) Validate() error {
	if s.Row == "" {
		return fmt.Errorf("%w: seat row must not be empty", ErrInvalidInput)
	}

	if len(s.Row) > maxRowLabelLength {
		return fmt.Errorf("%w: seat row %q must be at most %d letters", ErrInvalidInput, s.Row, maxRowLabelLength)
	}

	if _, ok := RowIndex(s.Row); !ok {
		return fmt.Errorf("%w: seat row %q must contain only letters", ErrInvalidInput, s.Row)
	}

	if s.Number < 1 {
		return fmt.Errorf("%w: seat number must be positive, got %d", ErrInvalidInput, s.Number)
	}

	return nil
}

func NormalizeRow(row string) string {
	return strings.ToUpper(strings.TrimSpace(row))
}

// RowLabel converts a zero-based row index into its label: A..Z, AA, AB, ...
func RowLabel(index int) string {
	if index < 0 {
		return ""
	}

	var label []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('A' + (n-1)%26)}, label...)
	}

	return string(label)
}

// RowIndex is the inverse of RowLabel.
func RowIndex(label string) (int, bool) {
	if label == "" || len(label) > maxRowLabelLength {
		return 0, false
	}

	n := 0
	for _, ch := range label {
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		n = n*26 + int(ch-'A'+1)
	}

	return n - 1, true
}
