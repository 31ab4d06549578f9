package service

import (
	"context"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
)

// AdvanceDue applies every pacing deadline that has passed at now:
// - preparing matches whose ready time passed become active
// - enemy turns whose delay passed are played
// - matches idle for longer than the match TTL are dropped
// It returns early with the context error when ctx is cancelled.
func (s *Service) AdvanceDue(ctx context.Context, now time.Time) error {
	for _, id := range s.store.ids() {
		if err := ctx.Err(); err != nil {
			return err
		}
		expired := false
		err := s.store.with(id, func(rec *matchRecord) error {
			expired = s.handleDueMatch(rec, now)
			return nil
		})
		if err != nil {
			// abandoned while scanning
			continue
		}
		if expired && s.store.remove(id) {
			logging.Info("match expired", logging.Fields{constants.LogFieldMatchID: id.String()})
		}
	}
	return nil
}

// handleDueMatch advances a single match. It reports whether the match
// should be dropped. Must be called with rec.mu held.
func (s *Service) handleDueMatch(rec *matchRecord, now time.Time) bool {
	if s.opts.MatchTTL > 0 && now.Sub(rec.lastActivity) >= s.opts.MatchTTL {
		return true
	}
	m := rec.match
	switch m.Status() {
	case game.StatusPreparing:
		if now.Before(rec.readyAt) {
			return false
		}
		if err := m.Begin(); err != nil {
			logging.Error("failed to begin match", err, logging.Fields{constants.LogFieldMatchID: rec.id.String()})
			return false
		}
		logging.Info("match started", logging.Fields{constants.LogFieldMatchID: rec.id.String()})
	case game.StatusActive:
		if m.TurnOwner() != game.SideEnemy {
			return false
		}
		if rec.enemyActAt.IsZero() {
			rec.enemyActAt = now.Add(s.opts.EnemyTurnDelay)
			return false
		}
		if now.Before(rec.enemyActAt) {
			return false
		}
		s.playEnemyTurn(rec, now)
	}
	return false
}

func (s *Service) playEnemyTurn(rec *matchRecord, now time.Time) {
	at, err := rec.match.TakeAutoTurn(rec.rng)
	if err != nil {
		logging.Error("enemy turn failed", err, logging.Fields{constants.LogFieldMatchID: rec.id.String()})
		rec.enemyActAt = time.Time{}
		return
	}
	rec.lastEnemyTurn = &at
	s.scheduleEnemy(rec, now)
	logging.Debug("enemy turn played", logging.Fields{
		constants.LogFieldMatchID:   rec.id.String(),
		constants.LogFieldSide:      at.Side,
		constants.LogFieldActorID:   at.ActorID,
		constants.LogFieldAbilityID: at.AbilityID,
		constants.LogFieldTargetID:  at.TargetID,
		constants.LogFieldDamage:    at.Result.Damage,
		constants.LogFieldStatus:    at.Result.Status,
		"skipped":                   at.Skipped,
	})
	if rec.match.Status().Terminal() {
		logging.Info("match finished", logging.Fields{
			constants.LogFieldMatchID: rec.id.String(),
			constants.LogFieldStatus:  rec.match.Status(),
		})
	}
}

// GetState returns the current view of a match.
func (s *Service) GetState(ctx context.Context, matchID string) (MatchView, error) {
	id, err := parseMatchID(matchID)
	if err != nil {
		return MatchView{}, err
	}
	var view MatchView
	err = s.store.with(id, func(rec *matchRecord) error {
		view = rec.view()
		return nil
	})
	return view, err
}

// AbandonMatch drops a match in any state.
func (s *Service) AbandonMatch(ctx context.Context, matchID string) error {
	id, err := parseMatchID(matchID)
	if err != nil {
		return err
	}
	if !s.store.remove(id) {
		return ErrMatchNotFound
	}
	logging.Info("match abandoned", logging.Fields{constants.LogFieldMatchID: id.String()})
	return nil
}
