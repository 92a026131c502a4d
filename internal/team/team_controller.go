package team

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// TeamController serves the season standings table.
type TeamController struct {
	store  store.Store
	logger *slog.Logger
}

// NewTeamController creates a new team controller
func NewTeamController(st store.Store, logger *slog.Logger) *TeamController {
	return &TeamController{store: st, logger: logger}
}

func (tc *TeamController) fail(c *gin.Context, op string, err error) {
	if !errors.Is(err, scoring.ErrValidation) && !errors.Is(err, scoring.ErrNotFound) {
		tc.logger.Error("record store failure", "op", op, "error", err)
		err = scoring.Persist(op, err)
	}
	responses.FromError(c, err)
}

// GetAllTeams godoc
// @Summary      Standings table
// @Description  Teams ordered by points, then won, then net run rate.
// @Tags         Teams
// @Produce      json
// @Success      200 {array} models.TeamRecord
// @Router       /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.store.ListTeams(c.Request.Context())
	if err != nil {
		tc.fail(c, "list teams", err)
		return
	}
	models.SortStandings(teams)
	responses.SuccessResponse(c, http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary      Add a team
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        team  body  CreateTeamRequest  true  "Team"
// @Success      201 {object} models.TeamRecord
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	t := req.toModel()

	ctx := c.Request.Context()
	existing, err := tc.store.ListTeams(ctx)
	if err != nil {
		tc.fail(c, "list teams", err)
		return
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, t.Name) {
			responses.ErrorResponse(c, http.StatusBadRequest, "Team already exists")
			return
		}
	}
	if err := tc.store.CreateTeam(ctx, &t); err != nil {
		tc.fail(c, "create team", err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Team created", "team": t})
}

// ReplaceTeams godoc
// @Summary      Replace the standings table
// @Description  Overwrites every standings row. The next recompute rebuilds everything except NRR.
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        teams  body  ReplaceTeamsRequest  true  "Full table"
// @Success      200 {array} models.TeamRecord
// @Security     BearerAuth
// @Router       /teams [put]
func (tc *TeamController) ReplaceTeams(c *gin.Context) {
	var req ReplaceTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	teams := req.toModels()
	seen := make(map[string]bool, len(teams))
	for _, t := range teams {
		key := strings.ToLower(t.Name)
		if seen[key] {
			responses.ErrorResponse(c, http.StatusBadRequest, "Team names must be unique")
			return
		}
		seen[key] = true
	}

	ctx := c.Request.Context()
	if err := tc.store.ReplaceTeams(ctx, teams); err != nil {
		tc.fail(c, "replace teams", err)
		return
	}
	out, err := tc.store.ListTeams(ctx)
	if err != nil {
		tc.fail(c, "list teams", err)
		return
	}
	models.SortStandings(out)
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Standings replaced", "teams": out})
}

// DeleteTeam godoc
// @Summary      Remove a team
// @Tags         Teams
// @Param        name  path  string  true  "Team name"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /teams/{name} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team name")
		return
	}
	if err := tc.store.DeleteTeam(c.Request.Context(), name); err != nil {
		tc.fail(c, "delete team", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Team deleted"})
}
