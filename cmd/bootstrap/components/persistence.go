package components

import (
	"promo-api/internal/infra"
	"promo-api/internal/infra/cache"
	"promo-api/internal/infra/repository"
	"promo-api/internal/infra/uow"
	"promo-api/internal/pkg/config"
	"promo-api/internal/usecase/queries"
	"promo-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Products and segments get a Redis read-through layer; offers and analytics
// are always read from Postgres so the conflict scan and dashboards never see
// stale documents.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			cache.NewInvalidator,
			fx.As(new(shared.CacheInvalidator)),
		),
		fx.Annotate(
			repository.NewOfferRepository,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			repository.NewAnalyticsRepository,
			fx.As(new(queries.AnalyticsReadStore)),
		),
		NewProductReadStore,
		NewSegmentReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewProductReadStore(db infra.DBTX, client *redis.Client, cfg config.Config) queries.ProductReadStore {
	return cache.NewProductReadStore(repository.NewProductRepository(db), client, cfg.Redis.CacheTTL)
}

func NewSegmentReadStore(db infra.DBTX, client *redis.Client, cfg config.Config) queries.SegmentReadStore {
	return cache.NewSegmentReadStore(repository.NewSegmentRepository(db), client, cfg.Redis.CacheTTL)
}
