package slot

import (
	"time"

	"campsite-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

// Slot is one bookable (location, date) unit of capacity. A slot with a
// reservation id is occupied; without one it is free. Slots are never deleted,
// claiming and releasing replace the value rather than mutating it so copies
// held across goroutines stay consistent.
type Slot struct {
	id            int64
	locationID    string
	date          time.Time
	reservationID *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSlot builds a free slot for one location-day. The date is normalized to
// a UTC calendar date.
func NewSlot(locationID string, date time.Time, now time.Time) Slot {
	return Slot{
		locationID: locationID,
		date:       clock.DateOf(date),
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructSlot(
	id int64,
	locationID string,
	date time.Time,
	reservationID *uuid.UUID,
	createdAt, updatedAt time.Time,
) Slot {
	return Slot{
		id:            id,
		locationID:    locationID,
		date:          clock.DateOf(date),
		reservationID: reservationID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Claimed returns a copy of the slot stamped with the owning reservation.
func (s Slot) Claimed(reservationID uuid.UUID, now time.Time) Slot {
	id := reservationID
	s.reservationID = &id
	s.updatedAt = now
	return s
}

// Released returns a copy of the slot with the claim cleared.
func (s Slot) Released(now time.Time) Slot {
	s.reservationID = nil
	s.updatedAt = now
	return s
}

func (s Slot) IsFree() bool {
	return s.reservationID == nil
}

func (s Slot) ID() int64            { return s.id }
func (s Slot) LocationID() string   { return s.locationID }
func (s Slot) Date() time.Time      { return s.date }
func (s Slot) CreatedAt() time.Time { return s.createdAt }
func (s Slot) UpdatedAt() time.Time { return s.updatedAt }

// ReservationID returns the owning reservation id, or nil for a free slot.
// The back-reference is by identifier only; the reservation itself must be
// looked up separately.
func (s Slot) ReservationID() *uuid.UUID {
	if s.reservationID == nil {
		return nil
	}
	id := *s.reservationID
	return &id
}
