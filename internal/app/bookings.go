package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/seat-reservation-engine/api"
	"github.com/metinatakli/seat-reservation-engine/internal/booking"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)

	seats := make([]domain.Seat, len(input.Seats))
	for i, s := range input.Seats {
		seats[i] = domain.NewSeat(s.Row, s.Number)
	}

	created, err := app.bookings.CreateBooking(r.Context(), booking.CreateBookingParams{
		ShowtimeID:  input.ShowtimeId,
		UserID:      user.UserID,
		Seats:       seats,
		TotalAmount: input.TotalAmount,
	})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("booking created",
		"booking_id", created.ID, "showtime_id", created.ShowtimeID, "seats", created.NumberOfSeats())

	err = app.writeJSON(w, http.StatusCreated, api.BookingResponse{Booking: toBookingResponse(created)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfUserHandler(w http.ResponseWriter, r *http.Request, params api.GetBookingsOfUserHandlerParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{Page: DefaultPage, PageSize: DefaultPageSize}
	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	user := app.contextGetUser(r)

	bookings, err := app.bookings.GetUserBookings(r.Context(), user.UserID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	page := domain.PageOf(bookings, pagination)
	metadata := domain.NewMetadata(len(bookings), pagination.Page, pagination.PageSize)

	resp := api.BookingsResponse{
		Bookings: make([]api.Booking, len(page)),
		Metadata: api.Metadata{
			CurrentPage:  metadata.CurrentPage,
			FirstPage:    metadata.FirstPage,
			LastPage:     metadata.LastPage,
			PageSize:     metadata.PageSize,
			TotalRecords: metadata.TotalRecords,
		},
	}

	for i := range page {
		resp.Bookings[i] = toBookingResponse(&page[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHandler(w http.ResponseWriter, r *http.Request, bookingId api.BookingId) {
	user := app.contextGetUser(r)

	found, err := app.bookings.GetBooking(r.Context(), bookingId.String())
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	// other users' bookings are indistinguishable from missing ones
	if !found.OwnedBy(user.UserID) && !user.IsAdmin() {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BookingResponse{Booking: toBookingResponse(found)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request, bookingId api.BookingId) {
	user := app.contextGetUser(r)

	cancelled, err := app.bookings.CancelBooking(r.Context(), bookingId.String(), user.UserID)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("booking cancelled",
		"booking_id", cancelled.ID, "showtime_id", cancelled.ShowtimeID)

	err = app.writeJSON(w, http.StatusOK, api.BookingResponse{Booking: toBookingResponse(cancelled)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// bookingErrorResponse translates engine failures into HTTP responses.
func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var seatConflict *domain.SeatConflictError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrInvalidInput):
		app.badRequestResponse(w, r, err)
	case errors.As(err, &seatConflict):
		app.editConflictResponseWithErr(w, r, seatConflict)
	case errors.Is(err, domain.ErrSeatConflict):
		app.editConflictResponseWithErr(w, r, domain.ErrSeatConflict)
	case errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrAlreadyCancelled):
		app.editConflictResponseWithErr(w, r, err)
	case errors.Is(err, domain.ErrForbidden):
		app.forbiddenResponse(w, r, err.Error())
	case errors.Is(err, domain.ErrBusy):
		app.busyResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(b *domain.Booking) api.Booking {
	return api.Booking{
		Id:          b.ID,
		UserId:      b.UserID,
		ShowtimeId:  b.ShowtimeID,
		Seats:       toSeatResponses(b.Seats),
		TotalAmount: b.TotalAmount,
		Status:      api.BookingStatus(b.Status),
		CreatedAt:   b.CreatedAt,
		CancelledAt: b.CancelledAt,
	}
}

func toSeatResponses(seats []domain.Seat) []api.Seat {
	resp := make([]api.Seat, len(seats))
	for i, s := range seats {
		resp[i] = api.Seat{Row: s.Row, Number: s.Number, Status: api.SeatStatus(s.Status)}
	}

	return resp
}
