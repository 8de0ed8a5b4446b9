package shared

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/location"
	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn inside one read-write transaction, retrying transient
	// serialization failures. Row locks taken by fn are held until commit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes transaction-scoped repositories. Locks taken through them live
// until the enclosing Within call commits or rolls back.
type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	Locations() LocationRepository
}

type SlotRepository interface {
	LockForUpdate(ctx context.Context, locationID string, dates []time.Time) ([]slot.Slot, error)
	LockFreeForUpdate(ctx context.Context, locationID string, dates []time.Time) ([]slot.Slot, error)
	LockByReservation(ctx context.Context, reservationID uuid.UUID) ([]slot.Slot, error)
	Latest(ctx context.Context, locationID string) (*slot.Slot, error)
	Insert(ctx context.Context, s slot.Slot) error
	Update(ctx context.Context, s slot.Slot) error
}

// SlotReader is the non-locking read surface, safe on a plain pool connection.
type SlotReader interface {
	FreeDatesInRange(ctx context.Context, locationID string, start, end time.Time) ([]time.Time, error)
	Latest(ctx context.Context, locationID string) (*slot.Slot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDAndStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
}

type ReservationReader interface {
	FindByIDAndStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
}

type LocationRepository interface {
	FindAll(ctx context.Context) ([]location.Location, error)
	Exists(ctx context.Context, locationID string) (bool, error)
}

type LocationReader interface {
	FindAll(ctx context.Context) ([]location.Location, error)
}
