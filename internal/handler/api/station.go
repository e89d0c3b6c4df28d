package api

import (
	"net/http"
	"time"

	resdto "voltshare-booking/internal/handler/dto/response"
	"voltshare-booking/internal/infra"
	"voltshare-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StationHandler struct {
	stationQueries      queries.StationQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewStationHandler(stationQueries queries.StationQueries, availabilityQueries queries.AvailabilityQueries) *StationHandler {
	return &StationHandler{
		stationQueries:      stationQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get station
// @Description Get charging station by ID
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *StationHandler) GetStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	view, err := h.stationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromStationView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get station availability
// @Description Get the hourly availability grid for one calendar day
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Param day query string true "Day in YYYY-MM-DD format"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id}/availability [get]
func (h *StationHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	dayStr := c.Query("day")
	day, err := time.ParseInLocation("2006-01-02", dayStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day format, expected YYYY-MM-DD",
		})
		return
	}

	// Station must exist before resolving its grid; an unknown ID would
	// otherwise come back as a fully available day.
	if _, err := h.stationQueries.GetByID(c.Request.Context(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.availabilityQueries.GetDay(c.Request.Context(), id, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBucketViews(id, day, views))
}
