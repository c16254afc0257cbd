package components

import (
	"promo-api/internal/pkg/clock"
	"promo-api/internal/usecase"
	"promo-api/internal/usecase/commands"
	"promo-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOfferCommands,
		commands.NewProductCommands,
		commands.NewSegmentCommands,
		commands.NewAnalyticsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewProductQueries,
		queries.NewSegmentQueries,
		queries.NewAnalyticsQueries,
	),
)
