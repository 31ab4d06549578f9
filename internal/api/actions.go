package api

import (
	"net/http"
	"strings"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/gin-gonic/gin"
)

type ActionRequest struct {
	ActorID   string `json:"actor_id"`
	AbilityID string `json:"ability_id"`
	// TargetID is optional; an empty value targets a random alive enemy.
	TargetID string `json:"target_id"`
}

// SubmitAction applies one of the player's abilities.
func (h *MatchHandler) SubmitAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	req.ActorID = strings.TrimSpace(req.ActorID)
	req.AbilityID = strings.TrimSpace(req.AbilityID)
	if req.ActorID == "" || req.AbilityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrActionRequiresAbility})
		return
	}

	res, view, err := h.arena.SubmitAction(c.Request.Context(), c.Param(constants.ParamMatchID), req.ActorID, req.AbilityID, strings.TrimSpace(req.TargetID))
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedApplyAction)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":     res.OK,
		"damage": res.Damage,
		"status": res.Status,
		"state":  view,
	})
}

// SkipTurn passes the player's turn when no character can afford an ability.
func (h *MatchHandler) SkipTurn(c *gin.Context) {
	view, err := h.arena.SkipTurn(c.Request.Context(), c.Param(constants.ParamMatchID))
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedApplyAction)
		return
	}
	c.JSON(http.StatusOK, view)
}
