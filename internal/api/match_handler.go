package api

import (
	"context"

	"github.com/MohcineSafi/Battle-Arena/internal/engine"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/service"
)

// Arena is the service surface the handlers depend on.
type Arena interface {
	Characters(ctx context.Context) ([]game.Character, error)
	TeamSummary(ctx context.Context, characterIDs []string) (game.TeamSummary, error)
	StartMatch(ctx context.Context, characterIDs []string) (service.MatchView, error)
	GetState(ctx context.Context, matchID string) (service.MatchView, error)
	SubmitAction(ctx context.Context, matchID, actorID, abilityID, targetID string) (engine.Result, service.MatchView, error)
	SkipTurn(ctx context.Context, matchID string) (service.MatchView, error)
	AbandonMatch(ctx context.Context, matchID string) error
}

// MatchHandler groups all arena HTTP handlers.
type MatchHandler struct {
	arena Arena
}

func NewMatchHandler(arena Arena) *MatchHandler {
	return &MatchHandler{arena: arena}
}
