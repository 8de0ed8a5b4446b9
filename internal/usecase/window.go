package usecase

import (
	"context"
	"log/slog"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/domain/slot"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/shared"
)

// WindowMaintainer keeps one month of future slots materialized per location.
// The host schedules RefreshWindow once at startup and once per day.
type WindowMaintainer struct {
	uow       shared.UnitOfWork
	locations shared.LocationReader
	clock     clock.Clock
}

func NewWindowMaintainer(uow shared.UnitOfWork, locations shared.LocationReader, clk clock.Clock) *WindowMaintainer {
	return &WindowMaintainer{
		uow:       uow,
		locations: locations,
		clock:     clk,
	}
}

// RefreshWindow extends every location's slot horizon through today+30.
// Idempotent: once a location's horizon is filled the call inserts nothing.
// A failing location does not stop the others; the first failure is returned
// after all locations were attempted.
func (m *WindowMaintainer) RefreshWindow(ctx context.Context) error {
	today := clock.Today(m.clock)
	lastReservableDate := today.AddDate(0, 0, reservation.HorizonDays)

	locations, err := m.locations.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to list locations")
	}

	var firstErr error
	for _, loc := range locations {
		if err := m.refreshLocation(ctx, loc.ID(), today, lastReservableDate); err != nil {
			slog.Error("failed to refresh availability window",
				"location_id", loc.ID(),
				"error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m *WindowMaintainer) refreshLocation(ctx context.Context, locationID string, today, lastReservableDate time.Time) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		latest, err := tx.Slots().Latest(ctx, locationID)
		if err != nil {
			return err
		}

		firstNeeded := today.AddDate(0, 0, 1)
		if latest != nil {
			firstNeeded = latest.Date().AddDate(0, 0, 1)
		}
		if firstNeeded.After(lastReservableDate) {
			return nil
		}

		now := m.clock.Now()
		inserted := 0
		for d := firstNeeded; !d.After(lastReservableDate); d = d.AddDate(0, 0, 1) {
			if err := tx.Slots().Insert(ctx, slot.NewSlot(locationID, d, now)); err != nil {
				return err
			}
			inserted++
		}

		slog.Info("extended availability window",
			"location_id", locationID,
			"first_date", firstNeeded.Format(time.DateOnly),
			"last_date", lastReservableDate.Format(time.DateOnly),
			"slots", inserted)
		return nil
	})
}
