package settings

import (
	"log/slog"

	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"github.com/gin-gonic/gin"
)

// SettingsRoutes sets up settings and admin routes.
func SettingsRoutes(router *gin.RouterGroup, st store.Store, admin Admin, logger *slog.Logger, requireAuth gin.HandlerFunc) {
	settingsController := NewSettingsController(st, admin, logger)

	router.GET("/settings", settingsController.GetSettings)

	authRoutes := router.Group("")
	authRoutes.Use(requireAuth)
	{
		authRoutes.PUT("/settings", settingsController.PutSettings)

		// Admin routes
		authRoutes.POST("/admin/recompute", settingsController.Recompute)
		authRoutes.POST("/admin/wipe", settingsController.Wipe)
	}
}
