package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers a small landing/docs surface ahead of the
// versioned API.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "jageocoder-go",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "jageocoder-go v1",
				"endpoints": map[string]string{
					"geocode":       "POST /v1/geocode",
					"geocode_query": "GET /v1/geocode/:query",
					"reverse":       "POST /v1/reverse",
					"aza":           "GET /v1/aza/:code",
					"health":        "GET /v1/health",
				},
			})
		})
	}
}
