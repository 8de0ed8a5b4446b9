package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campsite-reservation/internal/handler/dto/response"
	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase"
)

type AvailabilityHandler struct {
	availabilityUC usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUC usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

// GetAvailability godoc
// @Summary      List available dates
// @Description  Lists free dates for a location. Bounds default to the reservable window.
// @Tags         availability
// @Produce      json
// @Param        location_id query string true "Location ID"
// @Param        start_date query string false "Start date (YYYY-MM-DD)"
// @Param        end_date query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} response.AvailabilityResponse
// @Failure      400 {object} httperr.Response
// @Router       /api/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	locationID := c.Query("location_id")
	if locationID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing location_id query parameter"), "location_id is required")
		return
	}

	start, ok := parseOptionalDate(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseOptionalDate(c, "end_date")
	if !ok {
		return
	}

	dates, err := h.availabilityUC.GetAvailability(c.Request.Context(), locationID, start, end)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, response.FromAvailableDates(locationID, dates))
}

func parseOptionalDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format, expected YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}
