//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"voltshare-booking/internal/handler/dto/request"
	"voltshare-booking/internal/handler/dto/response"
	"voltshare-booking/tests/common/dbtest"
	"voltshare-booking/tests/common/httptest"
	"voltshare-booking/tests/e2e"
	"voltshare-booking/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL     = "/api/bookings/checkout"
	confirmURL      = "/api/bookings/confirm"
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/stations/%s/availability?day=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwtHelper *helper.JWTTestHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = helper.NewJWTTestHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// tomorrowAt avoids past-bucket rejections regardless of when the suite runs.
func tomorrowAt(hour int) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local)
}

func checkoutRequest(stationID uuid.UUID, carID *uuid.UUID, startHour, endHour int) request.CheckoutRequest {
	return request.CheckoutRequest{
		StationID: stationID,
		CarID:     carID,
		StartTime: tomorrowAt(startHour),
		EndTime:   tomorrowAt(endHour),
	}
}

// =============================================================================
// TestCheckoutAndConfirm - Booking flow API tests
// =============================================================================

func (s *BookingSuite) TestCheckoutAndConfirm() {
	s.Run("Normal case: checkout then confirm creates a reservation", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Hauptbahnhof Charger 3", 500)
		userID := dbtest.CreateTestUser(t, s.DB, "rider@example.com")
		carID := dbtest.CreateTestCar(t, s.DB, userID)
		token := s.jwtHelper.GenerateToken(t, userID)

		// 10:00-12:00 inclusive means three chargeable hours: (500+70)*3
		// rounded up to the next euro.
		reqBody := checkoutRequest(stationID, &carID, 10, 12)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)

		var checkout response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &checkout)
		require.NotEmpty(t, checkout.SessionID)
		require.NotEmpty(t, checkout.SessionURL)
		require.Equal(t, int64(1800), checkout.PriceCents)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			map[string]any{"outcome": "success"}, token)

		var result response.BookingResultResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &result)
		require.Equal(t, "success", result.Outcome)
		require.NotNil(t, result.ReservationID)
		require.Equal(t, int64(1800), result.PriceCents)

		// The reservation shows up in the rider's list.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var list []response.ReservationListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, "Hauptbahnhof Charger 3", list[0].StationName)
		require.Equal(t, int64(1800), list[0].PriceCents)

		// The booked hours flip to taken on the availability grid.
		day := tomorrowAt(0).Format("2006-01-02")
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, stationID, day), nil, "")
		var grid response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &grid)
		require.Len(t, grid.Buckets, 24)
		for hour := 10; hour <= 12; hour++ {
			require.Equal(t, "taken", grid.Buckets[hour].Status, "hour %d should be taken", hour)
		}
		require.Equal(t, "available", grid.Buckets[9].Status)
		require.Equal(t, "available", grid.Buckets[13].Status)
	})

	s.Run("Normal case: first car is used when none is specified", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Ostbahnhof Charger 1", 500)
		userID := dbtest.CreateTestUser(t, s.DB, "onecar@example.com")
		dbtest.CreateTestCar(t, s.DB, userID)
		token := s.jwtHelper.GenerateToken(t, userID)

		reqBody := checkoutRequest(stationID, nil, 8, 8)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			map[string]any{"outcome": "success"}, token)

		var result response.BookingResultResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &result)
		require.Equal(t, "success", result.Outcome)
		// Single bucket is one chargeable hour: (500+70)*1 rounded up.
		require.Equal(t, int64(600), result.PriceCents)
	})

	s.Run("Normal case: cancelled payment leaves no reservation", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Westkreuz Charger 2", 500)
		userID := dbtest.CreateTestUser(t, s.DB, "canceller@example.com")
		carID := dbtest.CreateTestCar(t, s.DB, userID)
		token := s.jwtHelper.GenerateToken(t, userID)

		reqBody := checkoutRequest(stationID, &carID, 14, 15)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			map[string]any{"outcome": "cancel"}, token)

		var result response.BookingResultResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &result)
		require.Equal(t, "cancelled", result.Outcome)
		require.Nil(t, result.ReservationID)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var list []response.ReservationListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Empty(t, list)
	})

	s.Run("Error case: overlapping window is rejected at checkout", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Sudkreuz Charger 5", 500)
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com")
		ownerCarID := dbtest.CreateTestCar(t, s.DB, ownerID)
		dbtest.CreateTestReservation(t, s.DB, stationID, ownerID, ownerCarID,
			tomorrowAt(11), tomorrowAt(13))

		riderID := dbtest.CreateTestUser(t, s.DB, "late-rider@example.com")
		riderCarID := dbtest.CreateTestCar(t, s.DB, riderID)
		token := s.jwtHelper.GenerateToken(t, riderID)

		reqBody := checkoutRequest(stationID, &riderCarID, 10, 12)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: second rider loses the race at confirm time", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Tegel Charger 7", 500)

		firstID := dbtest.CreateTestUser(t, s.DB, "first@example.com")
		firstCarID := dbtest.CreateTestCar(t, s.DB, firstID)
		firstToken := s.jwtHelper.GenerateToken(t, firstID)

		secondID := dbtest.CreateTestUser(t, s.DB, "second@example.com")
		secondCarID := dbtest.CreateTestCar(t, s.DB, secondID)
		secondToken := s.jwtHelper.GenerateToken(t, secondID)

		// Both riders stage the same window before either pays.
		reqBody := checkoutRequest(stationID, &firstCarID, 16, 17)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, firstToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		reqBody2 := checkoutRequest(stationID, &secondCarID, 16, 17)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody2, secondToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())

		c1 := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			map[string]any{"outcome": "success"}, firstToken)
		require.Equal(t, http.StatusOK, c1.Code, c1.Body.String())

		// The fresh overlap re-check catches the stale staged intent.
		c2 := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			map[string]any{"outcome": "success"}, secondToken)
		require.Equal(t, http.StatusConflict, c2.Code, c2.Body.String())
	})

	s.Run("Error case: confirm without a staged intent returns 422", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "nostage@example.com")
		token := s.jwtHelper.GenerateToken(t, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			map[string]any{"outcome": "success"}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown station returns 404", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "ghost@example.com")
		carID := dbtest.CreateTestCar(t, s.DB, userID)
		token := s.jwtHelper.GenerateToken(t, userID)

		reqBody := checkoutRequest(uuid.New(), &carID, 10, 11)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: past window returns 400", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Altstadt Charger 1", 500)
		userID := dbtest.CreateTestUser(t, s.DB, "timetravel@example.com")
		carID := dbtest.CreateTestCar(t, s.DB, userID)
		token := s.jwtHelper.GenerateToken(t, userID)

		yesterday := time.Now().AddDate(0, 0, -1)
		reqBody := request.CheckoutRequest{
			StationID: stationID,
			CarID:     &carID,
			StartTime: time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 10, 0, 0, 0, time.Local),
			EndTime:   time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 12, 0, 0, 0, time.Local),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized without a token", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Anon Charger", 500)
		reqBody := checkoutRequest(stationID, nil, 10, 11)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test - Expired token is rejected", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Anon Charger 2", 500)
		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com")
		token := s.jwtHelper.CreateExpiredToken(t, userID)

		reqBody := checkoutRequest(stationID, nil, 10, 11)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestAvailability - Availability grid API tests
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: reserved hours render as taken, the rest available", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Grid Station", 500)
		userID := dbtest.CreateTestUser(t, s.DB, "gridrider@example.com")
		carID := dbtest.CreateTestCar(t, s.DB, userID)
		dbtest.CreateTestReservation(t, s.DB, stationID, userID, carID,
			tomorrowAt(10), tomorrowAt(13))

		day := tomorrowAt(0).Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, stationID, day), nil, "")

		var grid response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		require.Equal(t, day, grid.Day)
		require.Len(t, grid.Buckets, 24)
		for hour, bucket := range grid.Buckets {
			if hour >= 10 && hour < 13 {
				require.Equal(t, "taken", bucket.Status, "hour %d", hour)
			} else {
				require.Equal(t, "available", bucket.Status, "hour %d", hour)
			}
		}
	})

	s.Run("Normal case: elapsed hours of today render as past", func() {
		t := s.T()

		// Skip near midnight where no hour of today has fully elapsed yet.
		if time.Now().Hour() == 0 {
			t.Skip("no elapsed hours this early in the day")
		}

		stationID := dbtest.CreateTestStation(t, s.DB, "Past Station", 500)
		day := time.Now().Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, stationID, day), nil, "")

		var grid response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		require.Equal(t, "past", grid.Buckets[0].Status)
	})

	s.Run("Error case: unknown station returns 404", func() {
		t := s.T()

		day := tomorrowAt(0).Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, uuid.New(), day), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: malformed day returns 400", func() {
		t := s.T()

		stationID := dbtest.CreateTestStation(t, s.DB, "Format Station", 500)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, stationID, "28-08-2026"), nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
