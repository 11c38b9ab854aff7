package api

import (
	"github.com/gin-gonic/gin"

	"enlighten/config"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(news *NewsController) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RateLimit(config.RateLimitRPS, config.RateLimitBurst))

	// Register resource routers
	RegisterNewsRoutes(r, news)
	RegisterHealthRoutes(r)
	return r
}
