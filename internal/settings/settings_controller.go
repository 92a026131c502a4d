package settings

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// SettingsController serves the key/value settings and admin actions.
type SettingsController struct {
	store  store.Store
	admin  Admin
	logger *slog.Logger
}

// NewSettingsController creates a new settings controller
func NewSettingsController(st store.Store, admin Admin, logger *slog.Logger) *SettingsController {
	return &SettingsController{store: st, admin: admin, logger: logger}
}

func (sc *SettingsController) fail(c *gin.Context, op string, err error) {
	if !errors.Is(err, scoring.ErrValidation) && !errors.Is(err, scoring.ErrNotFound) && !errors.Is(err, scoring.ErrPersistence) {
		sc.logger.Error("record store failure", "op", op, "error", err)
		err = scoring.Persist(op, err)
	}
	responses.FromError(c, err)
}

// GetSettings godoc
// @Summary      Read settings
// @Tags         Settings
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /settings [get]
func (sc *SettingsController) GetSettings(c *gin.Context) {
	s, err := sc.store.GetSettings(c.Request.Context())
	if err != nil {
		sc.fail(c, "get settings", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, s)
}

// PutSettings godoc
// @Summary      Merge settings
// @Description  Keys in the body overwrite stored values; other keys are kept.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body  PutSettingsRequest  true  "Settings"
// @Success      200 {object} map[string]string
// @Security     BearerAuth
// @Router       /settings [put]
func (sc *SettingsController) PutSettings(c *gin.Context) {
	var req PutSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	s, err := sc.store.PutSettings(c.Request.Context(), models.Settings(req.Settings))
	if err != nil {
		sc.fail(c, "put settings", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Settings saved", "settings": s})
}

// Recompute godoc
// @Summary      Rebuild standings
// @Description  Rebuilds team standings and player careers from every completed match.
// @Tags         Admin
// @Produce      json
// @Success      200 {object} tournament.Report
// @Security     BearerAuth
// @Router       /admin/recompute [post]
func (sc *SettingsController) Recompute(c *gin.Context) {
	report, err := sc.admin.Recompute(c.Request.Context())
	if err != nil {
		sc.fail(c, "recompute", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Standings rebuilt", "report": report})
}

// Wipe godoc
// @Summary      Wipe all data
// @Description  Deletes every match, team and player and restores default settings.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body  WipeRequest  true  "Confirmation"
// @Success      200 {object} map[string]string
// @Security     BearerAuth
// @Router       /admin/wipe [post]
func (sc *SettingsController) Wipe(c *gin.Context) {
	var req WipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if err := sc.admin.Wipe(c.Request.Context()); err != nil {
		sc.fail(c, "wipe", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "All data wiped"})
}
