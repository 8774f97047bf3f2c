package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/metinatakli/seat-reservation-engine/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSpecDescribesRoutes(t *testing.T) {
	swagger, err := api.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	operations := map[string]string{}
	for path, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			operations[method+" "+path] = op.OperationID
		}
	}

	assert.Equal(t, map[string]string{
		"GET /healthcheck":                      "GetHealth",
		"GET /openapi.json":                     "GetOpenAPISpec",
		"GET /showtimes/{showtimeId}/seats":     "GetSeatMapByShowtime",
		"PUT /showtimes/{showtimeId}/inventory": "OpenShowtimeHandler",
		"POST /bookings":                        "CreateBookingHandler",
		"GET /bookings":                         "GetBookingsOfUserHandler",
		"GET /bookings/{bookingId}":             "GetBookingHandler",
		"DELETE /bookings/{bookingId}":          "CancelBookingHandler",
	}, operations)

	openShowtime := swagger.Paths.Find("/showtimes/{showtimeId}/inventory").Put
	require.NotNil(t, openShowtime.Security)
	assert.Equal(t, openapi3.SecurityRequirements{{"bearerAuth": {RoleAdmin}}}, *openShowtime.Security)
}

func TestGetOpenAPISpec(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/openapi.json", nil)
	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	loaded, err := openapi3.NewLoader().LoadFromData(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Seat Reservation Engine API", loaded.Info.Title)
	assert.NotNil(t, loaded.Paths.Find("/bookings/{bookingId}"))
}
