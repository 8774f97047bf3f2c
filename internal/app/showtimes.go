package app

import (
	"net/http"

	"github.com/metinatakli/seat-reservation-engine/api"
)

// OpenShowtimeHandler creates the inventory of a showtime. Repeating the call
// returns the current inventory unchanged.
func (app *Application) OpenShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeId api.ShowtimeId) {
	inventory, err := app.bookings.OpenShowtime(r.Context(), showtimeId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.InventoryResponse{
		ShowtimeId:     inventory.ShowtimeID,
		TheatreId:      inventory.TheatreID,
		TotalCapacity:  inventory.TotalCapacity,
		AvailableCount: inventory.AvailableCount,
		Version:        inventory.Version,
		UpdatedAt:      inventory.UpdatedAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
