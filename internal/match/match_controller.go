package match

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	svc *Service
}

// NewMatchController creates a new match controller
func NewMatchController(svc *Service) *MatchController {
	return &MatchController{svc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

// parseRef reads :id and :inn.
func parseRef(c *gin.Context) (Ref, bool) {
	id, ok := parseID(c)
	if !ok {
		return Ref{}, false
	}
	inn, err := strconv.Atoi(c.Param("inn"))
	if err != nil || (inn != 1 && inn != 2) {
		responses.ErrorResponse(c, http.StatusBadRequest, "Innings must be 1 or 2")
		return Ref{}, false
	}
	return Ref{MatchID: id, Innings: inn}, true
}

// position reads a 1-based path parameter and returns it as a 0-based index.
func position(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 1 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" number")
		return 0, false
	}
	return n - 1, true
}

// @Summary      List matches
// @Tags         Matches
// @Produce      json
// @Success      200 {array} models.Match
// @Router       /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	matches, err := mc.svc.List(c.Request.Context())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, matches)
}

// @Summary      Get a match
// @Tags         Matches
// @Produce      json
// @Param        id  path  int  true  "Match ID"
// @Success      200 {object} models.Match
// @Failure      404 {object} map[string]string
// @Router       /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := mc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, m)
}

// @Summary      Create a match
// @Description  Creates an upcoming match. A match created as completed is folded into the standings immediately.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        match  body  CreateMatchRequest  true  "Match details"
// @Success      201 {object} models.Match
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, err := mc.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Match created", "match": m})
}

// @Summary      Update a match
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Match ID"
// @Param        match  body  UpdateMatchRequest  true  "Fields to change"
// @Success      200 {object} models.Match
// @Security     BearerAuth
// @Router       /matches/{id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, err := mc.svc.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match updated", "match": m})
}

// @Summary      Delete a match
// @Tags         Matches
// @Param        id  path  int  true  "Match ID"
// @Success      200 {object} map[string]string
// @Security     BearerAuth
// @Router       /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match deleted"})
}

// StartMatch moves an upcoming match to live with the picked squads.
func (mc *MatchController) StartMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req StartMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, err := mc.svc.Start(c.Request.Context(), id, req.Team1Squad, req.Team2Squad)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match started", "match": m})
}

// CompleteMatch finishes a live match and refreshes the standings.
func (mc *MatchController) CompleteMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := mc.svc.Complete(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match completed", "match": m})
}

// @Summary      Match scorecard
// @Description  Both innings, derived scores and the chase projection.
// @Tags         Matches
// @Produce      json
// @Param        id  path  int  true  "Match ID"
// @Success      200 {object} Scorecard
// @Router       /matches/{id}/scorecard [get]
func (mc *MatchController) GetScorecard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	card, err := mc.svc.Scorecard(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, card)
}

// --- Over ledger ---

func (mc *MatchController) AddOver(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	m, err := mc.svc.AddOver(c.Request.Context(), ref)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Over added", "match": m})
}

// @Summary      Record a ball
// @Description  Writes the raw value into the slot. A numeric value answers needs_batter=true until a batter is assigned.
// @Tags         Scoring
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Match ID"
// @Param        inn   path  int                true  "Innings (1 or 2)"
// @Param        over  path  int                true  "Over number (1-based)"
// @Param        ball  path  int                true  "Ball position (1-based)"
// @Param        body  body  RecordBallRequest  true  "Ball value"
// @Security     BearerAuth
// @Router       /matches/{id}/innings/{inn}/overs/{over}/balls/{ball} [put]
func (mc *MatchController) RecordBall(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	over, ok := position(c, "over")
	if !ok {
		return
	}
	ball, ok := position(c, "ball")
	if !ok {
		return
	}
	var req RecordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, needsBatter, err := mc.svc.RecordBall(c.Request.Context(), ref, over, ball, req.Value)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Ball recorded", "needs_batter": needsBatter, "match": m})
}

func (mc *MatchController) AssignBatter(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	over, ok := position(c, "over")
	if !ok {
		return
	}
	ball, ok := position(c, "ball")
	if !ok {
		return
	}
	var req AssignBatterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, err := mc.svc.AssignBatter(c.Request.Context(), ref, over, ball, req.Batter)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Batter assigned", "match": m})
}

func (mc *MatchController) AddBallSlot(c *gin.Context) {
	mc.overAction(c, http.StatusOK, "Ball slot added", mc.svc.AddBallSlot)
}

func (mc *MatchController) RemoveBallSlot(c *gin.Context) {
	mc.overAction(c, http.StatusOK, "Ball slot removed", mc.svc.RemoveBallSlot)
}

// @Summary      Save an over
// @Description  Commits the over to its bowler's figures, unwinding any previous commit first.
// @Tags         Scoring
// @Param        id    path  int  true  "Match ID"
// @Param        inn   path  int  true  "Innings (1 or 2)"
// @Param        over  path  int  true  "Over number (1-based)"
// @Failure      400 {object} map[string]string "bowler not assigned or incomplete over"
// @Security     BearerAuth
// @Router       /matches/{id}/innings/{inn}/overs/{over}/save [post]
func (mc *MatchController) SaveOver(c *gin.Context) {
	mc.overAction(c, http.StatusOK, "Over saved", mc.svc.SaveOver)
}

func (mc *MatchController) ClearOver(c *gin.Context) {
	mc.overAction(c, http.StatusOK, "Over cleared", mc.svc.ClearOver)
}

type overFunc func(ctx context.Context, ref Ref, over int) (*models.Match, error)

func (mc *MatchController) overAction(c *gin.Context, code int, message string, fn overFunc) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	over, ok := position(c, "over")
	if !ok {
		return
	}
	m, err := fn(c.Request.Context(), ref, over)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, code, gin.H{"message": message, "match": m})
}

func (mc *MatchController) UpdateOver(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	over, ok := position(c, "over")
	if !ok {
		return
	}
	var req UpdateOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	patch := scoring.OverPatch{Extras: req.Extras, WicketsDeclared: req.WicketsDeclared, Bowler: req.Bowler}
	m, err := mc.svc.UpdateOver(c.Request.Context(), ref, over, patch)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Over updated", "match": m})
}

// --- Batting order ---

func (mc *MatchController) AddBatter(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	var req AddBatterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, err := mc.svc.AddBatter(c.Request.Context(), ref, req.Name, req.DismissalType)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Batter added", "match": m})
}

func (mc *MatchController) SetDismissal(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	var req DismissalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	m, err := mc.svc.SetDismissal(c.Request.Context(), ref, c.Param("name"), req.DismissalType, req.DismissalBowler, req.DismissalFielder)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Dismissal updated", "match": m})
}

func (mc *MatchController) OverrideBatter(c *gin.Context) {
	ref, ok := parseRef(c)
	if !ok {
		return
	}
	var req OverrideBatterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	figures := scoring.BatterFigures{Runs: req.Runs, Balls: req.Balls, Fours: req.Fours, Sixes: req.Sixes}
	m, err := mc.svc.OverrideBatter(c.Request.Context(), ref, c.Param("name"), figures)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Batter figures overridden", "match": m})
}
