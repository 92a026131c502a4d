package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/scorebook/config"
	"github.com/DhavalSuthar-24/scorebook/internal/auth"
	"github.com/DhavalSuthar-24/scorebook/internal/match"
	"github.com/DhavalSuthar-24/scorebook/internal/metrics"
	"github.com/DhavalSuthar-24/scorebook/internal/middleware"
	"github.com/DhavalSuthar-24/scorebook/internal/milestone"
	"github.com/DhavalSuthar-24/scorebook/internal/player"
	"github.com/DhavalSuthar-24/scorebook/internal/settings"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"github.com/DhavalSuthar-24/scorebook/internal/team"
)

// Deps are the wired components the HTTP surface serves.
type Deps struct {
	Config   *config.Config
	Store    store.Store
	Matches  *match.Service
	Notifier *milestone.Notifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

func SetupRoutes(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.Config.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Scorebook</title></head>
				<body style="text-align:center; margin-top: 40px;">
				<h1>Scorebook 🏏</h1>
				<div><a href="/swagger/index.html">API docs</a></div>
				</body>
			</html>
		`))
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// API routes
	requireAuth := middleware.AuthMiddleware(d.Config.JWT.AccessTokenSecret)
	api := r.Group("/api")

	auth.RegisterAuthRoutes(api, auth.Credentials{
		Username:      d.Config.Operator.Username,
		PasswordHash:  d.Config.Operator.PasswordHash,
		Secret:        d.Config.JWT.AccessTokenSecret,
		ExpiryMinutes: d.Config.JWT.AccessTokenExpiryMinutes,
	}, d.Logger, requireAuth)
	match.MatchRoutes(api, d.Matches, requireAuth)
	team.TeamRoutes(api, d.Store, d.Logger, requireAuth)
	player.PlayerRoutes(api, d.Store, d.Logger, requireAuth)
	settings.SettingsRoutes(api, d.Store, d.Matches, d.Logger, requireAuth)
	milestone.MilestoneRoutes(api, d.Notifier, requireAuth)

	return r
}
