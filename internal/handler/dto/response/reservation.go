package response

import (
	"time"

	"campsite-reservation/internal/domain/reservation"
)

type ReservationResponse struct {
	ReservationID string    `json:"reservationId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	LocationID    string    `json:"locationId"`
	Arrival       string    `json:"arrival"`
	Departure     string    `json:"departure"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: res.ID().String(),
		FirstName:     res.Guest().FirstName(),
		LastName:      res.Guest().LastName(),
		Email:         res.Guest().Email(),
		LocationID:    res.LocationID(),
		Arrival:       res.Stay().Arrival().Format(time.DateOnly),
		Departure:     res.Stay().Departure().Format(time.DateOnly),
		Status:        res.Status().String(),
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}
}
