package request

import (
	"time"

	"campsite-reservation/internal/usecase"
)

// ReservationRequest is the wire form for create and update. Dates are
// calendar dates in YYYY-MM-DD; range rules are enforced by the domain, not
// the binding layer.
type ReservationRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	LocationID string `json:"locationId" binding:"required"`
	Arrival    string `json:"arrival" binding:"required,datetime=2006-01-02"`
	Departure  string `json:"departure" binding:"required,datetime=2006-01-02"`
}

func (r ReservationRequest) ToInput() (usecase.ReservationInput, error) {
	arrival, err := time.Parse(time.DateOnly, r.Arrival)
	if err != nil {
		return usecase.ReservationInput{}, err
	}
	departure, err := time.Parse(time.DateOnly, r.Departure)
	if err != nil {
		return usecase.ReservationInput{}, err
	}

	return usecase.ReservationInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		LocationID: r.LocationID,
		Arrival:    arrival,
		Departure:  departure,
	}, nil
}
