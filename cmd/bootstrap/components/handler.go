package components

import (
	"promo-api/internal/handler"
	"promo-api/internal/handler/api"
	"promo-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewProductHandler,
		api.NewSegmentHandler,
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	offers *api.OfferHandler,
	products *api.ProductHandler,
	segments *api.SegmentHandler,
	analytics *api.AnalyticsHandler,
) handler.Handlers {
	return handler.Handlers{
		Offers:    offers,
		Products:  products,
		Segments:  segments,
		Analytics: analytics,
	}
}
