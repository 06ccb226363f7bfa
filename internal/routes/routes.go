package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitskill_backend/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// authLimiter применяется только к группе /auth (login/register
// ограничены жестче остального API).
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authLimiter gin.HandlerFunc,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api, authLimiter)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.GigHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.CategoryHandler.RegisterRoutes(api)
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
