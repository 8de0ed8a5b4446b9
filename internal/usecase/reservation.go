package usecase

import (
	"context"
	"errors"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrLocationNotFound    = errors.New("location not found")
	ErrSlotsUnavailable    = errors.New("location not available for the requested dates")
	ErrInvalidReservation  = errors.New("invalid reservation")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationInput struct {
	FirstName  string
	LastName   string
	Email      string
	LocationID string
	Arrival    time.Time
	Departure  time.Time
}

func (i ReservationInput) guest() reservation.Guest {
	return reservation.NewGuest(i.FirstName, i.LastName, i.Email)
}

func (i ReservationInput) stay() reservation.StayRange {
	return reservation.NewStayRange(i.Arrival, i.Departure)
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, input ReservationInput) (*reservation.Reservation, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, input ReservationInput) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow          shared.UnitOfWork
	allocator    *AvailabilityAllocator
	reservations shared.ReservationReader
	clock        clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	allocator *AvailabilityAllocator,
	reservations shared.ReservationReader,
	clk clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:          uow,
		allocator:    allocator,
		reservations: reservations,
		clock:        clk,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(ctx context.Context, input ReservationInput) (*reservation.Reservation, error) {
	entity, err := reservation.NewReservation(r.clock.Now(), input.guest(), input.LocationID, input.stay())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureLocationExists(ctx, tx, entity.LocationID()); err != nil {
			return err
		}

		if _, err := r.allocator.Claim(ctx, tx, entity.LocationID(), entity.Stay().Dates(), entity.ID()); err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// UpdateReservation replaces the reservation's details, reclaiming only the
// slot delta between the old and new stay. Added dates are claimed before
// removed dates are released, all in one transaction: if the claim fails
// nothing has been released and the whole update rolls back.
func (r *reservationUseCaseImpl) UpdateReservation(ctx context.Context, id uuid.UUID, input ReservationInput) (*reservation.Reservation, error) {
	var updated *reservation.Reservation

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reservations().FindByIDAndStatus(ctx, id, reservation.StatusConfirmed)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		next, err := existing.Amend(r.clock.Now(), input.guest(), input.LocationID, input.stay())
		if err != nil {
			return errs.Mark(err, ErrInvalidReservation)
		}

		if err := ensureLocationExists(ctx, tx, next.LocationID()); err != nil {
			return err
		}

		delta := existing.Stay().DeltaTo(next.Stay())

		if _, err := r.allocator.Claim(ctx, tx, next.LocationID(), delta.DatesToAdd, existing.ID()); err != nil {
			return err
		}
		if err := r.allocator.ReleaseDates(ctx, tx, existing.LocationID(), delta.DatesToRemove); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Reservations().Update(ctx, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelReservation is idempotent: cancelling an already cancelled
// reservation returns it unchanged with no slot churn.
func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var result *reservation.Reservation

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if existing.IsCancelled() {
			result = existing
			return nil
		}

		if err := r.allocator.ReleaseReservation(ctx, tx, existing.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cancelled := existing.Cancelled(r.clock.Now())
		if err := tx.Reservations().Update(ctx, cancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = cancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetReservation returns only CONFIRMED reservations; a cancelled reservation
// is not retrievable by id through this path.
func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.reservations.FindByIDAndStatus(ctx, id, reservation.StatusConfirmed)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return res, nil
}

func ensureLocationExists(ctx context.Context, tx shared.Tx, locationID string) error {
	exists, err := tx.Locations().Exists(ctx, locationID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !exists {
		return ErrLocationNotFound
	}
	return nil
}
