package api

import (
	"net/http"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/gin-gonic/gin"
)

// TeamRequest carries a team selection in pick order.
type TeamRequest struct {
	CharacterIDs []string `json:"character_ids"`
}

// ListCharacters returns the catalog.
func (h *MatchHandler) ListCharacters(c *gin.Context) {
	chars, err := h.arena.Characters(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchCharacters)
		return
	}
	c.JSON(http.StatusOK, chars)
}

// TeamSummary returns the totals for a partial or complete selection.
func (h *MatchHandler) TeamSummary(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	sum, err := h.arena.TeamSummary(c.Request.Context(), req.CharacterIDs)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedSummarizeTeam)
		return
	}
	c.JSON(http.StatusOK, sum)
}
