package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/analyzer"
	"github.com/ghoststack/bizboost/internal/planner"
	"github.com/ghoststack/bizboost/internal/platform/metrics"
	"github.com/ghoststack/bizboost/internal/platform/middleware"
)

const corsMaxAge = 12 * time.Hour

// NewRouter assembles the gin engine: CORS, request IDs, request logging,
// panic recovery, the health and metrics endpoints, and the feature routes.
func NewRouter(
	log *zap.Logger,
	m *metrics.Metrics,
	allowedOrigins []string,
	analyzeTransport *analyzer.Transport,
	planTransport *planner.Transport,
) *gin.Engine {
	router := gin.New()

	// CORS must run before anything that can short-circuit the request.
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"Authorization", "Accept", "Cache-Control", "X-Requested-With", "X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API is running"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	analyzeTransport.RegisterRoutes(router)
	planTransport.RegisterRoutes(router)

	return router
}
