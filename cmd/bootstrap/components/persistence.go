package components

import (
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/infra/readstore"
	"carwash-booking/internal/infra/uow"
	"carwash-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewCommandReads,
		readstore.NewUserReadStore,
		readstore.NewCarWashReadStore,
		readstore.NewServiceReadStore,
		readstore.NewBookingReadStore,
		readstore.NewAvailabilityReadStore,
		readstore.NewReviewReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewCommandReads exposes the pool-backed snapshot reads used outside of a
// transaction, availability checks for instance.
func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
