package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/engine"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
	"github.com/MohcineSafi/Battle-Arena/internal/service"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps service and engine errors to HTTP responses.
// fallback is the message used for unexpected failures.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
	case errors.Is(err, service.ErrTeamSize):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTeamSize})
	case errors.Is(err, service.ErrDuplicateCharacter):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrDuplicateCharacter})
	case errors.Is(err, service.ErrUnknownCharacter):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownCharacter, constants.JSONKeyDetails: err.Error()})
	case errors.Is(err, engine.ErrNotActive):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotActive})
	case errors.Is(err, engine.ErrInvalidAction):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrInvalidActionFmt, err.Error())})
	case errors.Is(err, service.ErrEnemyRoster):
		logging.Error("enemy roster unavailable", err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrEnemyRosterUnavailable})
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
