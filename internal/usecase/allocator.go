package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campsite-reservation/internal/domain/slot"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotsUnavailableError reports which location and dates could not be claimed.
type SlotsUnavailableError struct {
	LocationID string
	Dates      []time.Time
}

func (e *SlotsUnavailableError) Error() string {
	dates := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		dates[i] = d.Format(time.DateOnly)
	}
	return fmt.Sprintf("location=%s not available for the provided dates=[%s]",
		e.LocationID, strings.Join(dates, ", "))
}

// AvailabilityAllocator claims and releases contiguous slot ranges. Mutating
// operations run against a caller-supplied transaction so the free-for-update
// read and the claim write share one lock scope; reads go through the
// non-locking pool-backed reader.
type AvailabilityAllocator struct {
	slots shared.SlotReader
	clock clock.Clock
}

func NewAvailabilityAllocator(slots shared.SlotReader, clk clock.Clock) *AvailabilityAllocator {
	return &AvailabilityAllocator{
		slots: slots,
		clock: clk,
	}
}

// Claim locks the requested dates as free-for-update and stamps each with the
// reservation id. If any requested date is already occupied or not yet
// materialized, the locked set comes back short and the whole call fails with
// ErrSlotsUnavailable; nothing is left partially claimed because the enclosing
// transaction rolls back.
func (a *AvailabilityAllocator) Claim(ctx context.Context, tx shared.Tx, locationID string, dates []time.Time, reservationID uuid.UUID) ([]slot.Slot, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	free, err := tx.Slots().LockFreeForUpdate(ctx, locationID, dates)
	if err != nil {
		return nil, errs.Wrap(err, "failed to lock free slots")
	}
	if len(free) != len(dates) {
		return nil, errs.Mark(&SlotsUnavailableError{LocationID: locationID, Dates: dates}, ErrSlotsUnavailable)
	}

	now := a.clock.Now()
	claimed := make([]slot.Slot, 0, len(free))
	for _, s := range free {
		c := s.Claimed(reservationID, now)
		if err := tx.Slots().Update(ctx, c); err != nil {
			return nil, errs.Wrap(err, "failed to persist slot claim")
		}
		claimed = append(claimed, c)
	}
	return claimed, nil
}

// ReleaseDates clears the claim on the given dates regardless of owner.
func (a *AvailabilityAllocator) ReleaseDates(ctx context.Context, tx shared.Tx, locationID string, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	held, err := tx.Slots().LockForUpdate(ctx, locationID, dates)
	if err != nil {
		return errs.Wrap(err, "failed to lock slots for release")
	}
	return a.release(ctx, tx, held)
}

// ReleaseReservation clears every slot claimed by the reservation. Releasing
// a reservation that holds nothing is a no-op.
func (a *AvailabilityAllocator) ReleaseReservation(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) error {
	held, err := tx.Slots().LockByReservation(ctx, reservationID)
	if err != nil {
		return errs.Wrap(err, "failed to lock slots for release")
	}
	return a.release(ctx, tx, held)
}

func (a *AvailabilityAllocator) release(ctx context.Context, tx shared.Tx, held []slot.Slot) error {
	now := a.clock.Now()
	for _, s := range held {
		if err := tx.Slots().Update(ctx, s.Released(now)); err != nil {
			return errs.Wrap(err, "failed to persist slot release")
		}
	}
	return nil
}

// FreeDatesInRange lists unclaimed dates ascending without locking.
func (a *AvailabilityAllocator) FreeDatesInRange(ctx context.Context, locationID string, start, end time.Time) ([]time.Time, error) {
	return a.slots.FreeDatesInRange(ctx, locationID, start, end)
}

// LatestDate returns the most distant materialized date for a location, or
// nil when the location has no slots yet.
func (a *AvailabilityAllocator) LatestDate(ctx context.Context, locationID string) (*time.Time, error) {
	latest, err := a.slots.Latest(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}
	d := latest.Date()
	return &d, nil
}
