package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"promo-api/internal/domain/user"
	"promo-api/internal/handler/api"
	"promo-api/internal/handler/middleware"
	"promo-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offers    *api.OfferHandler
	Products  *api.ProductHandler
	Segments  *api.SegmentHandler
	Analytics *api.AnalyticsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	logger := middleware.NewLogger(cfg.Log)
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

// Role policy: reads need any authenticated caller. Offer and segment writes
// need Marketer, deletes need Admin. Every product write needs Admin.
func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/api/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	marketer := authMiddleware.RequireRoleAtLeast(user.RoleMarketer)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Offers.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offers.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Offers.Create, Mw: []gin.HandlerFunc{marketer}},
				{Method: http.MethodPost, Path: "/check-conflicts", Handler: h.Offers.CheckConflicts},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Offers.Update, Mw: []gin.HandlerFunc{marketer}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Offers.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Products.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Products.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Products.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Products.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Products.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		segments := apiGroup.Group("/segments")
		{
			addRoutes(segments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Segments.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Segments.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Segments.Create, Mw: []gin.HandlerFunc{marketer}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Segments.Update, Mw: []gin.HandlerFunc{marketer}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Segments.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		analytics := apiGroup.Group("/analytics")
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Analytics.List},
				{Method: http.MethodGet, Path: "/offer/:id", Handler: h.Analytics.GetByOffer},
				{Method: http.MethodPost, Path: "/offer/:id", Handler: h.Analytics.Upsert, Mw: []gin.HandlerFunc{marketer}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
