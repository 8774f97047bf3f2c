package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/seat-reservation-engine/api"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request, showtimeId api.ShowtimeId) {
	seatMap, err := app.bookings.GetSeatMap(r.Context(), showtimeId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.contextGetLogger(r).Warn("seat map not found for showtime", "showtime_id", showtimeId)
		}

		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(seatMap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(seatMap *domain.SeatMap) api.SeatMapResponse {
	return api.SeatMapResponse{
		ShowtimeId:     seatMap.Showtime.ID,
		MovieId:        seatMap.Showtime.MovieID,
		ShowDate:       seatMap.Showtime.ShowDate,
		Price:          seatMap.Showtime.Price,
		TheatreId:      seatMap.Theatre.TheatreID,
		TheatreName:    seatMap.Theatre.Name,
		Location:       seatMap.Theatre.Location,
		TotalCapacity:  seatMap.TotalCapacity,
		AvailableCount: seatMap.AvailableCount,
		SeatRows:       toSeatRows(seatMap.Seats),
	}
}

func toSeatRows(seats []domain.Seat) []api.SeatRow {
	// Seats come in row-major order, so rows can be cut in a single pass.
	seatRows := []api.SeatRow{}
	if len(seats) == 0 {
		return seatRows
	}

	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, api.Seat{
			Row:    v.Row,
			Number: v.Number,
			Status: api.SeatStatus(v.Status),
		})
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}
