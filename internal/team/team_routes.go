package team

import (
	"log/slog"

	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"github.com/DhavalSuthar-24/scorebook/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up the standings routes.
func TeamRoutes(router *gin.RouterGroup, st store.Store, logger *slog.Logger, requireAuth gin.HandlerFunc) {
	validator.Register()
	teamController := NewTeamController(st, logger)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)

	authRoutes := router.Group("")
	authRoutes.Use(requireAuth)
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.PUT("/teams", teamController.ReplaceTeams)
		authRoutes.DELETE("/teams/:name", teamController.DeleteTeam)
	}
}
