package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodshare/internal/handler/api"
	"foodshare/internal/handler/middleware"
	"foodshare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Listings *api.ListingHandler
	Requests *api.RequestHandler
}

type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	Logger      *middleware.Logger
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, logger, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(mw.Metrics.Middleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(mw.Logger.LoggingMiddleware())
	if cfg.RateLimit.Enabled && mw.RateLimiter != nil {
		engine.Use(mw.RateLimiter.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/", root)
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", mw.Metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := mw.Auth.RequireAuth()

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/available-foods", Handler: h.Listings.ListAvailable},
		{Method: http.MethodGet, Path: "/available-foods/:id", Handler: h.Listings.Get},
		{Method: http.MethodGet, Path: "/foods", Handler: h.Listings.ListAll},
		{Method: http.MethodGet, Path: "/foods/:id", Handler: h.Listings.Get},

		{Method: http.MethodPost, Path: "/foods", Handler: h.Listings.Create, Mw: []gin.HandlerFunc{auth}},
		{Method: http.MethodPut, Path: "/foods/:id", Handler: h.Listings.Update, Mw: []gin.HandlerFunc{auth}},
		{Method: http.MethodDelete, Path: "/foods/:id", Handler: h.Listings.Delete, Mw: []gin.HandlerFunc{auth}},
		{Method: http.MethodGet, Path: "/my-foods", Handler: h.Listings.ListMine, Mw: []gin.HandlerFunc{auth}},

		{Method: http.MethodPost, Path: "/food-requests", Handler: h.Requests.Create, Mw: []gin.HandlerFunc{auth}},
		{Method: http.MethodGet, Path: "/my-food-requests", Handler: h.Requests.ListMine, Mw: []gin.HandlerFunc{auth}},
		{Method: http.MethodGet, Path: "/food-requests/:id", Handler: h.Requests.ListForListing, Mw: []gin.HandlerFunc{auth}},
		{Method: http.MethodPut, Path: "/food-requests/:id/accept", Handler: h.Requests.Accept, Mw: []gin.HandlerFunc{auth}},
	})
}

// @Summary Banner
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func root(c *gin.Context) {
	c.String(http.StatusOK, "Food Sharing Server Running")
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
