package bootstrap

import (
	"promo-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	AuthModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
