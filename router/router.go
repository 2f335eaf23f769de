// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dev-mohitbeniwal/hazard/api/controller"
	"github.com/dev-mohitbeniwal/hazard/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	redisClient *redis.Client,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(redisClient, rateLimitRequests, rateLimitDuration))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	controllers.Rule.RegisterRoutes(api)
	controllers.Vulnerability.RegisterRoutes(api)
	controllers.Assessment.RegisterRoutes(api)
	controllers.Catalog.RegisterRoutes(api)
	controllers.Audit.RegisterRoutes(api)

	return router
}
