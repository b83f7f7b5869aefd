package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jageocoder-go/app/controllers"
	"github.com/jageocoder-go/helpers/utils"
)

// SetupAPIRoutes wires the §6 Query API plus the admin review workflow.
func SetupAPIRoutes(router *gin.Engine, geocodeController *controllers.GeocodeController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		v1.POST("/geocode", geocodeController.Geocode)
		v1.GET("/geocode/:query", geocodeController.GeocodeByQuery)
		v1.POST("/reverse", geocodeController.Reverse)
		v1.GET("/aza/:code", geocodeController.AzaLookup)
		v1.GET("/health", geocodeController.HealthCheck)

		admin := v1.Group("/admin")
		{
			admin.GET("/reviews", adminController.ListReviews)
			admin.POST("/reviews/approve", adminController.ApproveReview)
			admin.POST("/reviews/reject", adminController.RejectReview)
			admin.GET("/stats", adminController.GetStats)
		}
	}
}

// SetupHealthRoutes registers the root-level health/readiness/liveness
// probes gin operators expect outside any API version prefix.
func SetupHealthRoutes(router *gin.Engine, geocodeController *controllers.GeocodeController) {
	router.GET("/health", geocodeController.HealthCheck)
	router.GET("/ready", geocodeController.HealthCheck)
	router.GET("/live", geocodeController.HealthCheck)
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, geocodeController *controllers.GeocodeController, adminController *controllers.AdminController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, geocodeController)
	SetupAPIRoutes(router, geocodeController, adminController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestID())
}

// requestID stamps every request with a correlation id (reusing the
// gin.Context key the teacher's AddressController read off
// c.GetString("request_id")), so GeocodeController can carry it through
// to the response body. Queued AliasReview documents get their own,
// separate ReviewID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateUUID()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
