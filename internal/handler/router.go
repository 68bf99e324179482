package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mercado-tracker/internal/handler/api"
	"mercado-tracker/internal/handler/middleware"
	"mercado-tracker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, trackerHandler *api.TrackerHandler, productHandler *api.ProductHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, trackerHandler, productHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, trackerHandler *api.TrackerHandler, productHandler *api.ProductHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		trackers := apiGroup.Group("/trackers")
		{
			addRoutes(trackers, []route{
				{Method: http.MethodGet, Path: "", Handler: trackerHandler.List},
				{Method: http.MethodPost, Path: "", Handler: trackerHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: trackerHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: trackerHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/resend-code", Handler: trackerHandler.ResendCode},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: productHandler.List},
		})
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
