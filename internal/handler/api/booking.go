package api

import (
	"errors"
	"net/http"

	reqdto "voltshare-booking/internal/handler/dto/request"
	resdto "voltshare-booking/internal/handler/dto/response"
	"voltshare-booking/internal/handler/middleware"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Begin booking checkout
// @Description Price the selected range, stage the intent and open a payment session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/checkout [post]
func (h *BookingHandler) BeginCheckout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	intent, err := h.bookingCommands.BeginCheckout(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking selection",
			})
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already reserved",
			})
		case errors.Is(err, commands.ErrIncompleteBookingData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Incomplete booking data",
			})
		case errors.Is(err, commands.ErrPaymentSession):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment session could not be created",
			})
		case errors.Is(err, commands.ErrStagingFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to stage booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutIntent(intent))
}

// @Summary Confirm booking
// @Description Consume the staged intent once the payment session resolved
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmRequest true "Payment outcome"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ConfirmRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CompleteBooking(c.Request.Context(), userID, req.ToOutcome())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already reserved",
			})
		case errors.Is(err, commands.ErrIncompleteBookingData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Incomplete booking data",
			})
		case errors.Is(err, commands.ErrReservationPersist):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Reservation could not be persisted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Get user bookings
// @Description Get all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		resp, err := resdto.FromReservationListItem(item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		response[i] = resp
	}

	c.JSON(http.StatusOK, response)
}
