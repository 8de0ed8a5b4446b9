package components

import (
	"campsite-reservation/internal/infra/db"
	"campsite-reservation/internal/infra/repository"
	"campsite-reservation/internal/infra/uow"
	"campsite-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Pool-backed repositories serve the read paths outside transactions.
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(shared.SlotReader)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(shared.ReservationReader)),
		),
		fx.Annotate(
			repository.NewLocationRepository,
			fx.As(new(shared.LocationReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
