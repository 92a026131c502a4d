package match

import (
	"github.com/DhavalSuthar-24/scorebook/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up all match and scoring routes. Reads are public;
// every mutation goes through requireAuth.
func MatchRoutes(router *gin.RouterGroup, svc *Service, requireAuth gin.HandlerFunc) {
	validator.Register()
	matchController := NewMatchController(svc)

	matches := router.Group("/matches")
	matches.GET("", matchController.GetMatches)
	matches.GET("/:id", matchController.GetMatchByID)
	matches.GET("/:id/scorecard", matchController.GetScorecard)

	authRoutes := matches.Group("")
	authRoutes.Use(requireAuth)
	{
		authRoutes.POST("", matchController.CreateMatch)
		authRoutes.PUT("/:id", matchController.UpdateMatch)
		authRoutes.DELETE("/:id", matchController.DeleteMatch)

		// Match status updates
		authRoutes.POST("/:id/start", matchController.StartMatch)
		authRoutes.POST("/:id/complete", matchController.CompleteMatch)

		// Over ledger
		innings := authRoutes.Group("/:id/innings/:inn")
		innings.POST("/overs", matchController.AddOver)
		innings.PATCH("/overs/:over", matchController.UpdateOver)
		innings.PUT("/overs/:over/balls/:ball", matchController.RecordBall)
		innings.PUT("/overs/:over/balls/:ball/batter", matchController.AssignBatter)
		innings.POST("/overs/:over/slots", matchController.AddBallSlot)
		innings.DELETE("/overs/:over/slots", matchController.RemoveBallSlot)
		innings.POST("/overs/:over/save", matchController.SaveOver)
		innings.POST("/overs/:over/clear", matchController.ClearOver)

		// Batting order
		innings.POST("/batters", matchController.AddBatter)
		innings.PUT("/batters/:name", matchController.OverrideBatter)
		innings.PUT("/batters/:name/dismissal", matchController.SetDismissal)
	}
}
