package milestone

import (
	"net/http"

	responses "github.com/DhavalSuthar-24/scorebook/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// MilestoneController exposes the notifier to the scoreboard display.
type MilestoneController struct {
	notifier *Notifier
}

func NewMilestoneController(n *Notifier) *MilestoneController {
	return &MilestoneController{notifier: n}
}

// GetCurrent godoc
// @Summary      Milestone on display
// @Description  Returns the milestone currently shown, or null once it expired or was dismissed.
// @Tags         Milestones
// @Produce      json
// @Success      200 {object} Notification
// @Router       /milestones/current [get]
func (mc *MilestoneController) GetCurrent(c *gin.Context) {
	responses.SuccessResponse(c, http.StatusOK, gin.H{"milestone": mc.notifier.Current()})
}

// Refresh godoc
// @Summary      Evaluate live matches now
// @Tags         Milestones
// @Produce      json
// @Success      200 {object} Notification
// @Security     BearerAuth
// @Router       /milestones/refresh [post]
func (mc *MilestoneController) Refresh(c *gin.Context) {
	n, err := mc.notifier.Refresh(c.Request.Context())
	if err != nil {
		mc.notifier.logger.Error("milestone refresh failed", "error", err)
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"milestone": n})
}

// Dismiss godoc
// @Summary      Dismiss the milestone on display
// @Tags         Milestones
// @Param        id  path  string  true  "Notification ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /milestones/{id}/dismiss [post]
func (mc *MilestoneController) Dismiss(c *gin.Context) {
	if err := mc.notifier.Dismiss(c.Param("id")); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Milestone dismissed"})
}
