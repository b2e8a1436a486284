package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aquamon.dev/aquamon/pkg/metrics"
)

// Routes builds the gin engine with all endpoints wired. Paths match the
// surface the mobile client already calls, trailing slashes included.
func (h *Handlers) Routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(h.MetricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", h.handleHealth)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/register/", h.handleRegister)
		authGroup.POST("/login/", h.handleLogin)
	}

	protected := engine.Group("/", h.RequireAuth())
	{
		protected.GET("/fish/all", h.handleFishAll)
		protected.GET("/cat/all", h.handleCategoriesAll)
		protected.POST("/aqu/creation/", h.handleAquariumCreation)
		protected.POST("/aqu/get", h.handleAquariumGet)
		protected.GET("/chart/aquadata", h.handleChartData)
		protected.GET("/card/aquadata", h.handleCardData)
		protected.GET("/routes/protected/", h.handleProtected)
	}

	return engine
}
