package reservation

import (
	"fmt"
	"strings"
	"time"

	"campsite-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	// MaxStayDays caps the day difference between arrival and departure. A
	// difference of MaxStayDays or more is rejected, so the longest stay
	// covers exactly MaxStayDays calendar dates.
	MaxStayDays = 3

	// HorizonDays is how far ahead of today a stay may reach.
	HorizonDays = 30
)

// ValidationError carries every violated booking rule, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid reservation: " + strings.Join(e.Violations, "; ")
}

type Reservation struct {
	id         uuid.UUID
	guest      Guest
	locationID string
	stay       StayRange
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation validates the stay against the booking rules and returns a
// CONFIRMED reservation with a fresh identifier. The identifier is immutable
// for the reservation's lifetime.
func NewReservation(now time.Time, guest Guest, locationID string, stay StayRange) (*Reservation, error) {
	if err := validateStay(clock.DateOf(now), stay); err != nil {
		return nil, err
	}

	return &Reservation{
		id:         uuid.New(),
		guest:      guest,
		locationID: locationID,
		stay:       stay,
		status:     StatusConfirmed,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	guest Guest,
	locationID string,
	stay StayRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		guest:      guest,
		locationID: locationID,
		stay:       stay,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Amend validates the replacement details and returns a new reservation value
// keeping the original identifier and creation time. The status stays
// CONFIRMED; cancelled reservations cannot be amended.
func (r *Reservation) Amend(now time.Time, guest Guest, locationID string, stay StayRange) (*Reservation, error) {
	if err := validateStay(clock.DateOf(now), stay); err != nil {
		return nil, err
	}

	return &Reservation{
		id:         r.id,
		guest:      guest,
		locationID: locationID,
		stay:       stay,
		status:     StatusConfirmed,
		createdAt:  r.createdAt,
		updatedAt:  now,
	}, nil
}

// Cancelled returns a copy of the reservation in the terminal CANCELLED state.
func (r *Reservation) Cancelled(now time.Time) *Reservation {
	return &Reservation{
		id:         r.id,
		guest:      r.guest,
		locationID: r.locationID,
		stay:       r.stay,
		status:     StatusCancelled,
		createdAt:  r.createdAt,
		updatedAt:  now,
	}
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Guest() Guest         { return r.guest }
func (r *Reservation) LocationID() string   { return r.locationID }
func (r *Reservation) Stay() StayRange      { return r.stay }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func validateStay(today time.Time, stay StayRange) error {
	tomorrow := today.AddDate(0, 0, 1)
	lastReservableDate := today.AddDate(0, 0, HorizonDays)

	var violations []string
	if stay.Arrival().Before(tomorrow) {
		violations = append(violations, "Arrival date must be after today")
	}
	if stay.Departure().Before(tomorrow) {
		violations = append(violations, "Departure date must be after today")
	}
	if stay.Arrival().After(lastReservableDate) {
		violations = append(violations, fmt.Sprintf(
			"Arrival date must be before or on the last reservable date (%s)",
			lastReservableDate.Format(time.DateOnly)))
	}
	if stay.Departure().After(lastReservableDate) {
		violations = append(violations, fmt.Sprintf(
			"Departure date must be before or on the last reservable date (%s)",
			lastReservableDate.Format(time.DateOnly)))
	}
	if stay.Arrival().After(stay.Departure()) {
		violations = append(violations, "Arrival date must be before or on the departure date")
	}
	if stay.Days() >= MaxStayDays {
		violations = append(violations, fmt.Sprintf(
			"Reservation can only be made for a maximum of %d days", MaxStayDays))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
