package usecase

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/pkg/clock"
)

type AvailabilityUseCase interface {
	// GetAvailability lists free dates for a location ascending. Nil bounds
	// default to the full reservable window [today+1, today+HorizonDays].
	GetAvailability(ctx context.Context, locationID string, start, end *time.Time) ([]time.Time, error)
}

type availabilityUseCaseImpl struct {
	allocator *AvailabilityAllocator
	clock     clock.Clock
}

func NewAvailabilityUseCase(allocator *AvailabilityAllocator, clk clock.Clock) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		allocator: allocator,
		clock:     clk,
	}
}

func (a *availabilityUseCaseImpl) GetAvailability(ctx context.Context, locationID string, start, end *time.Time) ([]time.Time, error) {
	today := clock.Today(a.clock)

	from := today.AddDate(0, 0, 1)
	if start != nil {
		from = clock.DateOf(*start)
	}
	to := today.AddDate(0, 0, reservation.HorizonDays)
	if end != nil {
		to = clock.DateOf(*end)
	}

	return a.allocator.FreeDatesInRange(ctx, locationID, from, to)
}
