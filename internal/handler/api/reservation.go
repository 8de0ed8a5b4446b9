package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/handler/dto/request"
	"campsite-reservation/internal/handler/dto/response"
	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/usecase"
)

type ReservationHandler struct {
	reservationUC usecase.ReservationUseCase
}

func NewReservationHandler(reservationUC usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{reservationUC: reservationUC}
}

// CreateReservation godoc
// @Summary      Create a reservation
// @Description  Reserves the requested dates at a location for the given guest
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request body request.ReservationRequest true "Reservation details"
// @Success      201 {object} response.ReservationResponse
// @Failure      400 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Failure      409 {object} httperr.Response
// @Router       /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req request.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format")
		return
	}

	res, err := h.reservationUC.CreateReservation(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromReservation(res))
}

// GetReservation godoc
// @Summary      Retrieve a reservation
// @Description  Returns a confirmed reservation by id
// @Tags         reservations
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Success      200 {object} response.ReservationResponse
// @Failure      400 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Router       /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	res, err := h.reservationUC.GetReservation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(res))
}

// UpdateReservation godoc
// @Summary      Update a reservation
// @Description  Replaces guest details and stay dates of a confirmed reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Param        request body request.ReservationRequest true "New reservation details"
// @Success      200 {object} response.ReservationResponse
// @Failure      400 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Failure      409 {object} httperr.Response
// @Router       /api/reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	var req request.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format")
		return
	}

	res, err := h.reservationUC.UpdateReservation(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(res))
}

// CancelReservation godoc
// @Summary      Cancel a reservation
// @Description  Cancels a reservation and frees its dates. Safe to repeat.
// @Tags         reservations
// @Produce      json
// @Param        id path string true "Reservation ID"
// @Success      200 {object} response.ReservationResponse
// @Failure      400 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	res, err := h.reservationUC.CancelReservation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(res))
}

func (h *ReservationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidReservation):
		var verr *reservation.ValidationError
		if errors.As(err, &verr) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation", verr.Violations...)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation")
	case errors.Is(err, usecase.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, usecase.ErrLocationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found")
	case errors.Is(err, usecase.ErrSlotsUnavailable):
		var uerr *usecase.SlotsUnavailableError
		if errors.As(err, &uerr) {
			httperr.AbortWithError(c, http.StatusConflict, err, uerr.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested dates are not available")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func parseReservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID")
		return uuid.Nil, false
	}
	return id, true
}
