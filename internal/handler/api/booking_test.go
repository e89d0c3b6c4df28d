//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"voltshare-booking/internal/handler/api"
	resdto "voltshare-booking/internal/handler/dto/response"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/tests/common/builder"
	"voltshare-booking/tests/common/httptest"
	"voltshare-booking/tests/common/testutil"
	commandsmock "voltshare-booking/tests/mock/commands"
	queriesmock "voltshare-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings/checkout", authMiddleware, s.handler.BeginCheckout)
	s.router.POST("/bookings/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// BeginCheckout
// ================================================================================

func (s *BookingHandlerTestSuite) TestBeginCheckout() {
	url := "/bookings/checkout"
	reqBody := builder.NewBookingBuilder().BuildCheckoutRequestDTO()

	s.Run("success: returns 201 with the payment session", func() {
		intent := &commands.CheckoutIntent{
			SessionID:  "cs_test_123",
			SessionURL: "https://checkout.stripe.com/c/pay/cs_test_123",
			PriceCents: 1800,
		}
		s.mockCommands.EXPECT().BeginCheckout(gomock.Any(), gomock.Any()).
			Return(intent, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("cs_test_123", resp.SessionID)
		s.Equal(int64(1800), resp.PriceCents)
	})

	s.Run("validation: missing fields return 400", func() {
		cases := []struct {
			name  string
			field string
		}{
			{name: "missing station_id", field: "station_id"},
			{name: "missing start_time", field: "start_time"},
			{name: "missing end_time", field: "end_time"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "station not found -> 404", err: commands.ErrStationNotFound, expectCode: http.StatusNotFound},
			{name: "validation -> 400", err: commands.ErrValidation, expectCode: http.StatusBadRequest},
			{name: "slot conflict -> 409", err: commands.ErrSlotConflict, expectCode: http.StatusConflict},
			{name: "incomplete data -> 422", err: commands.ErrIncompleteBookingData, expectCode: http.StatusUnprocessableEntity},
			{name: "payment session -> 502", err: commands.ErrPaymentSession, expectCode: http.StatusBadGateway},
			{name: "staging failure -> 500", err: commands.ErrStagingFailed, expectCode: http.StatusInternalServerError},
			{name: "unknown -> 500", err: errors.New("boom"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BeginCheckout(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("unauthorized: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// ConfirmBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	url := "/bookings/confirm"

	s.Run("success: returns 200 with the booking result", func() {
		reservationID := uuid.New()
		result := &commands.BookingResult{
			Outcome:       commands.BookingSucceeded,
			ReservationID: reservationID,
			PriceCents:    1800,
		}
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), gomock.Any(), commands.OutcomeSuccess).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"outcome": "success"}, "bearer-token")

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("success", resp.Outcome)
		s.Require().NotNil(resp.ReservationID)
		s.Equal(reservationID, *resp.ReservationID)
	})

	s.Run("cancel: returns 200 with cancelled outcome and no reservation", func() {
		result := &commands.BookingResult{Outcome: commands.BookingCancelled}
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), gomock.Any(), commands.OutcomeCancel).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"outcome": "cancel"}, "bearer-token")

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Outcome)
		s.Nil(resp.ReservationID)
	})

	s.Run("validation: unknown outcome returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"outcome": "paid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "slot conflict -> 409", err: commands.ErrSlotConflict, expectCode: http.StatusConflict},
			{name: "incomplete data -> 422", err: commands.ErrIncompleteBookingData, expectCode: http.StatusUnprocessableEntity},
			{name: "persist failure -> 500", err: commands.ErrReservationPersist, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"outcome": "success"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// GetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	url := "/bookings"

	s.Run("success: returns the user's bookings", func() {
		b := builder.NewBookingBuilder()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any()).
			Return(b.BuildReservationList(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal(b.StationName, resp[0].StationName)
	})

	s.Run("error: repository failure returns 500", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
