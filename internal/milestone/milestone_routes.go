package milestone

import "github.com/gin-gonic/gin"

// MilestoneRoutes sets up the milestone display routes.
func MilestoneRoutes(router *gin.RouterGroup, n *Notifier, requireAuth gin.HandlerFunc) {
	milestoneController := NewMilestoneController(n)

	milestones := router.Group("/milestones")
	milestones.GET("/current", milestoneController.GetCurrent)

	authRoutes := milestones.Group("")
	authRoutes.Use(requireAuth)
	{
		authRoutes.POST("/refresh", milestoneController.Refresh)
		authRoutes.POST("/:id/dismiss", milestoneController.Dismiss)
	}
}
