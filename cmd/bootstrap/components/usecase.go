package components

import (
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAvailabilityAllocator,
		usecase.NewReservationUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewWindowMaintainer,
	),
)
