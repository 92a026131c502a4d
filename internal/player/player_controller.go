package player

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// PlayerController serves the roster and career statistics.
type PlayerController struct {
	store  store.Store
	logger *slog.Logger
}

// NewPlayerController creates a new player controller
func NewPlayerController(st store.Store, logger *slog.Logger) *PlayerController {
	return &PlayerController{store: st, logger: logger}
}

func (pc *PlayerController) fail(c *gin.Context, op string, err error) {
	if !errors.Is(err, scoring.ErrValidation) && !errors.Is(err, scoring.ErrNotFound) {
		pc.logger.Error("record store failure", "op", op, "error", err)
		err = scoring.Persist(op, err)
	}
	responses.FromError(c, err)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid player ID")
		return 0, false
	}
	return uint(id), true
}

// taken reports whether another player already uses (name, team).
func taken(players []models.PlayerRecord, name, team string, self uint) bool {
	for _, p := range players {
		if p.Name == name && p.Team == team && p.ID != self {
			return true
		}
	}
	return false
}

// GetPlayers godoc
// @Summary      List or search players
// @Description  With q, players are ranked by how closely their name matches.
// @Tags         Players
// @Produce      json
// @Param        q      query  string  false  "Name search"
// @Param        team   query  string  false  "Team filter"
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(20)
// @Success      200 {array} models.PlayerRecord
// @Router       /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if pageNum < 1 {
		pageNum = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	players, err := pc.store.ListPlayers(c.Request.Context())
	if err != nil {
		pc.fail(c, "list players", err)
		return
	}
	players = Search(FilterTeam(players, c.Query("team")), c.Query("q"))
	responses.PaginatedResponse(c, http.StatusOK, page(players, pageNum, limit), pageNum, limit, int64(len(players)))
}

// GetPlayerByID godoc
// @Summary      Get a player
// @Tags         Players
// @Produce      json
// @Param        id  path  int  true  "Player ID"
// @Success      200 {object} models.PlayerRecord
// @Failure      404 {object} map[string]string
// @Router       /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := pc.store.GetPlayer(c.Request.Context(), id)
	if err != nil {
		pc.fail(c, "get player", err)
		return
	}
	if p == nil {
		responses.FromError(c, scoring.Missing("player", id))
		return
	}
	responses.SuccessResponse(c, http.StatusOK, p)
}

// CreatePlayer godoc
// @Summary      Add a player
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        player  body  CreatePlayerRequest  true  "Player"
// @Success      201 {object} models.PlayerRecord
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	p := req.toModel()

	ctx := c.Request.Context()
	existing, err := pc.store.ListPlayers(ctx)
	if err != nil {
		pc.fail(c, "list players", err)
		return
	}
	if taken(existing, p.Name, p.Team, 0) {
		responses.ErrorResponse(c, http.StatusBadRequest, "Player already exists in this team")
		return
	}
	if err := pc.store.CreatePlayer(ctx, &p); err != nil {
		pc.fail(c, "create player", err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Player created", "player": p})
}

// UpdatePlayer godoc
// @Summary      Update a player
// @Description  Renames a player, moves them to another team or changes their role. Career totals are not editable.
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        id      path  int                  true  "Player ID"
// @Param        player  body  UpdatePlayerRequest  true  "Fields to change"
// @Success      200 {object} models.PlayerRecord
// @Security     BearerAuth
// @Router       /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := pc.store.GetPlayer(ctx, id)
	if err != nil {
		pc.fail(c, "get player", err)
		return
	}
	if p == nil {
		responses.FromError(c, scoring.Missing("player", id))
		return
	}
	req.toPatch().Apply(p)

	existing, err := pc.store.ListPlayers(ctx)
	if err != nil {
		pc.fail(c, "list players", err)
		return
	}
	if taken(existing, p.Name, p.Team, p.ID) {
		responses.ErrorResponse(c, http.StatusBadRequest, "Player already exists in this team")
		return
	}
	if err := pc.store.UpdatePlayer(ctx, p); err != nil {
		pc.fail(c, "update player", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Player updated", "player": p})
}

// UpsertPlayers godoc
// @Summary      Bulk roster upload
// @Description  Inserts players keyed by (name, team). Existing players keep their career totals.
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        roster  body  BulkPlayersRequest  true  "Roster"
// @Success      200 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /players [put]
func (pc *PlayerController) UpsertPlayers(c *gin.Context) {
	var req BulkPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	existing, err := pc.store.ListPlayers(ctx)
	if err != nil {
		pc.fail(c, "list players", err)
		return
	}
	rows := MergeRoster(existing, req.Players)
	if err := pc.store.BulkUpsertPlayers(ctx, rows); err != nil {
		pc.fail(c, "upsert players", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Roster saved", "count": len(rows)})
}

// DeletePlayer godoc
// @Summary      Remove a player
// @Tags         Players
// @Param        id  path  int  true  "Player ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.store.DeletePlayer(c.Request.Context(), id); err != nil {
		pc.fail(c, "delete player", err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Player deleted"})
}
