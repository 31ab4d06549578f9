package api

import (
	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the arena endpoints under the API prefix.
func RegisterRoutes(router *gin.Engine, h *MatchHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	apiRoutes.Use(noCache())
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteCharacters, h.ListCharacters)
		apiRoutes.POST(constants.RouteTeamSummary, h.TeamSummary)

		apiRoutes.POST(constants.RouteMatches, h.CreateMatch)
		apiRoutes.GET(constants.RouteMatchByID, h.GetMatch)
		apiRoutes.DELETE(constants.RouteMatchByID, h.AbandonMatch)
		apiRoutes.POST(constants.RouteMatchAction, h.SubmitAction)
		apiRoutes.POST(constants.RouteMatchSkip, h.SkipTurn)
	}
}

// noCache stops browsers from caching live match state.
func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
		c.Next()
	}
}
