package domain

// CheckSeatConflicts accepts the requested seats only if none of them is
// already committed and none is requested twice. The first offending seat in
// the caller's order is reported so that failures are reproducible.
func CheckSeatConflicts(requested, committed []Seat) error {
	taken := make(map[SeatKey]struct{}, len(committed)+len(requested))
	for _, seat := range committed {
		taken[seat.Key()] = struct{}{}
	}

	for _, seat := range requested {
		key := seat.Key()
		if _, ok := taken[key]; ok {
			return &SeatConflictError{Seat: seat}
		}

		taken[key] = struct{}{}
	}

	return nil
}

// FindDuplicateSeat returns the first seat that appears twice in seats.
func FindDuplicateSeat(seats []Seat) (Seat, bool) {
	seen := make(map[SeatKey]struct{}, len(seats))

	for _, seat := range seats {
		if _, ok := seen[seat.Key()]; ok {
			return seat, true
		}
		seen[seat.Key()] = struct{}{}
	}

	return Seat{}, false
}
