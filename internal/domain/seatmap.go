package domain

type SeatMap struct {
	Showtime       Showtime
	Theatre        TheatreLayout
	TotalCapacity  int
	AvailableCount int
	Seats          []Seat
}

// BuildSeatMap projects the theatre grid in row-major order, marking every
// committed seat as booked.
func BuildSeatMap(layout TheatreLayout, committed []Seat) []Seat {
	booked := make(map[SeatKey]struct{}, len(committed))
	for _, seat := range committed {
		booked[seat.Key()] = struct{}{}
	}

	seats := make([]Seat, 0, layout.TotalSeats())

	for i := 0; i < layout.Rows; i++ {
		row := RowLabel(i)

		for number := 1; number <= layout.SeatsPerRow; number++ {
			seat := Seat{Row: row, Number: number, Status: SeatStatusAvailable}
			if _, ok := booked[seat.Key()]; ok {
				seat.Status = SeatStatusBooked
			}

			seats = append(seats, seat)
		}
	}

	return seats
}
