package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/engine"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
	"github.com/MohcineSafi/Battle-Arena/internal/storage"
	"github.com/google/uuid"
)

// StartMatch creates a match for the player's three picks against an enemy
// team. The match stays in the preparing state until the prepare delay has
// passed; with no delay it begins at once.
func (s *Service) StartMatch(ctx context.Context, characterIDs []string) (MatchView, error) {
	if len(characterIDs) != game.TeamSize {
		return MatchView{}, ErrTeamSize
	}
	if err := checkDistinct(characterIDs); err != nil {
		return MatchView{}, err
	}
	player, err := s.catalog.Lookup(ctx, characterIDs)
	if err != nil {
		return MatchView{}, catalogError(err)
	}
	enemies, err := s.enemyRoster(ctx, characterIDs)
	if err != nil {
		return MatchView{}, err
	}

	m, err := engine.StartMatch(player, enemies)
	if err != nil {
		return MatchView{}, err
	}
	now := s.clock.Now()
	rec := &matchRecord{
		id:           uuid.New(),
		match:        m,
		rng:          s.newRand(),
		readyAt:      now.Add(s.opts.PrepareDelay),
		lastActivity: now,
	}
	if s.opts.PrepareDelay <= 0 {
		if err := m.Begin(); err != nil {
			return MatchView{}, err
		}
	}
	s.store.put(rec)

	logging.Info("match created", logging.Fields{
		constants.LogFieldMatchID: rec.id.String(),
		constants.LogFieldStatus:  m.Status(),
	})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.view(), nil
}

// enemyRoster returns the configured enemy team or draws TeamSize distinct
// catalog characters, avoiding the player's picks when the catalog is big
// enough.
func (s *Service) enemyRoster(ctx context.Context, playerIDs []string) ([]game.Character, error) {
	if len(s.opts.EnemyTeam) > 0 {
		return asEnemies(game.FreshTeam(s.opts.EnemyTeam)), nil
	}

	all, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	picked := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		picked[id] = struct{}{}
	}
	pool := make([]game.Character, 0, len(all))
	for _, c := range all {
		if _, ok := picked[c.ID]; !ok {
			pool = append(pool, c)
		}
	}
	if len(pool) < game.TeamSize {
		pool = all
	}
	if len(pool) < game.TeamSize {
		return nil, ErrEnemyRoster
	}

	s.seedMu.Lock()
	order := s.seeds.Perm(len(pool))
	s.seedMu.Unlock()

	team := make([]game.Character, 0, game.TeamSize)
	for _, i := range order[:game.TeamSize] {
		team = append(team, pool[i].Fresh())
	}
	return asEnemies(team), nil
}

func asEnemies(team []game.Character) []game.Character {
	for i := range team {
		if !strings.HasPrefix(team[i].ID, enemyIDPrefix) {
			team[i].ID = enemyIDPrefix + team[i].ID
		}
	}
	return team
}

func catalogError(err error) error {
	if errors.Is(err, storage.ErrCharacterNotFound) {
		return fmt.Errorf("%w: %v", ErrUnknownCharacter, err)
	}
	return err
}

func parseMatchID(matchID string) (uuid.UUID, error) {
	id, err := uuid.Parse(matchID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return id, nil
}
