package api

import (
	"net/http"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/gin-gonic/gin"
)

// CreateMatch starts a match for the requested team.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	view, err := h.arena.StartMatch(c.Request.Context(), req.CharacterIDs)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedCreateMatch)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"match_id": view.MatchID, "state": view})
}

// GetMatch returns the current match state. Clients poll it while the
// enemy is taking its turn.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	view, err := h.arena.GetState(c.Request.Context(), c.Param(constants.ParamMatchID))
	if err != nil {
		writeServiceError(c, err, constants.ErrMatchNotFound)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AbandonMatch removes the match; the player returns to the menu.
func (h *MatchHandler) AbandonMatch(c *gin.Context) {
	if err := h.arena.AbandonMatch(c.Request.Context(), c.Param(constants.ParamMatchID)); err != nil {
		writeServiceError(c, err, constants.ErrMatchAbandonFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Match abandoned"})
}
