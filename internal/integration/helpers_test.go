package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/seat-reservation-engine/internal/app"
	"github.com/stretchr/testify/require"
)

const (
	TestUserId      = "user-1"
	TestOtherUserId = "user-2"
	TestAdminId     = "admin-1"

	TestTheatreId   = "theatre-1"
	TestShowtimeId  = "show-1"
	TestSmallShowId = "show-small"
	TestMovieId     = "movie-1"

	TestRows        = 3
	TestSeatsPerRow = 4
	TestSmallCap    = 2
)

var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"createdAt":   {},
	"cancelledAt": {},
	"updatedAt":   {},
	"showDate":    {},
	"id":          {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch v := m[k].(type) {
		case map[string]any:
			cleanMap(v)
		case []any:
			for _, item := range v {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func bearer(t testing.TB, userID, role string) map[string]string {
	t.Helper()

	claims := app.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + token}
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func truncateTables(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(), `
		TRUNCATE TABLE booking_seats, bookings, showtime_inventory, showtimes, theatres CASCADE`)
	require.NoError(t, err)
}

func seedCatalog(t testing.TB, app *TestApp) {
	t.Helper()

	ctx := context.Background()
	showDate := time.Now().Add(48 * time.Hour).Truncate(time.Hour)

	_, err := app.DB.Exec(ctx, `
		INSERT INTO theatres (id, name, location, seat_rows, seats_per_row)
		VALUES ($1, 'Grand Cinema', 'Downtown', $2, $3)`,
		TestTheatreId, TestRows, TestSeatsPerRow)
	require.NoError(t, err)

	_, err = app.DB.Exec(ctx, `
		INSERT INTO showtimes (id, movie_id, theatre_id, show_date, price, total_capacity)
		VALUES ($1, $2, $3, $4, 12.50, $5), ($6, $2, $3, $4, 9.00, $7)`,
		TestShowtimeId, TestMovieId, TestTheatreId, showDate, TestRows*TestSeatsPerRow,
		TestSmallShowId, TestSmallCap)
	require.NoError(t, err)
}

func availableCount(t testing.TB, app *TestApp, showtimeID string) int {
	t.Helper()

	var available int
	err := app.DB.QueryRow(context.Background(),
		`SELECT available_count FROM showtime_inventory WHERE showtime_id = $1`, showtimeID).Scan(&available)
	require.NoError(t, err)

	return available
}

func confirmedSeatCount(t testing.TB, app *TestApp, showtimeID string) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM booking_seats WHERE showtime_id = $1 AND status = 'confirmed'`, showtimeID).Scan(&count)
	require.NoError(t, err)

	return count
}
