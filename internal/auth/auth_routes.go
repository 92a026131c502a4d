package auth

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, creds Credentials, logger *slog.Logger, requireAuth gin.HandlerFunc) {
	authController := NewAuthController(creds, logger)

	// Public routes
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/login", authController.Login)
	}

	// Authenticated routes (protected by auth middleware)
	authProtected := router.Group("/auth")
	authProtected.Use(requireAuth)
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
