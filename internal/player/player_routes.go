package player

import (
	"log/slog"

	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"github.com/DhavalSuthar-24/scorebook/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PlayerRoutes sets up roster routes. Reads are public.
func PlayerRoutes(router *gin.RouterGroup, st store.Store, logger *slog.Logger, requireAuth gin.HandlerFunc) {
	validator.Register()
	playerController := NewPlayerController(st, logger)

	router.GET("/players", playerController.GetPlayers)
	router.GET("/players/:id", playerController.GetPlayerByID)

	authRoutes := router.Group("")
	authRoutes.Use(requireAuth)
	{
		authRoutes.POST("/players", playerController.CreatePlayer)
		authRoutes.PUT("/players", playerController.UpsertPlayers)
		authRoutes.PUT("/players/:id", playerController.UpdatePlayer)
		authRoutes.DELETE("/players/:id", playerController.DeletePlayer)
	}
}
