package service

import (
	"context"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/engine"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
)

// SubmitAction applies the player's chosen ability. An empty targetID picks
// a random alive enemy. When the turn passes to the enemy its reply is
// scheduled after the enemy turn delay.
func (s *Service) SubmitAction(ctx context.Context, matchID, actorID, abilityID, targetID string) (engine.Result, MatchView, error) {
	id, err := parseMatchID(matchID)
	if err != nil {
		return engine.Result{}, MatchView{}, err
	}
	var (
		res  engine.Result
		view MatchView
	)
	err = s.store.with(id, func(rec *matchRecord) error {
		m := rec.match
		if m.Status() != game.StatusActive {
			return engine.ErrNotActive
		}
		if m.TurnOwner() != game.SidePlayer {
			return engine.ErrWrongTurn
		}
		if targetID == "" {
			var ok bool
			if targetID, ok = m.RandomTarget(game.SidePlayer, rec.rng); !ok {
				return engine.ErrTargetDowned
			}
		}
		r, err := m.ApplyAbility(actorID, abilityID, targetID, rec.rng)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		rec.lastActivity = now
		s.scheduleEnemy(rec, now)
		res = r
		view = rec.view()
		return nil
	})
	if err != nil {
		logging.Debug("action rejected", logging.Fields{
			constants.LogFieldMatchID:   matchID,
			constants.LogFieldActorID:   actorID,
			constants.LogFieldAbilityID: abilityID,
			"reason":                    err.Error(),
		})
		return engine.Result{}, MatchView{}, err
	}
	logging.Debug("action applied", logging.Fields{
		constants.LogFieldMatchID:   matchID,
		constants.LogFieldActorID:   actorID,
		constants.LogFieldAbilityID: abilityID,
		constants.LogFieldTargetID:  targetID,
		constants.LogFieldDamage:    res.Damage,
		constants.LogFieldStatus:    res.Status,
	})
	return res, view, nil
}

// SkipTurn passes the player's turn. It is only accepted when no alive
// player character can afford any of its abilities.
func (s *Service) SkipTurn(ctx context.Context, matchID string) (MatchView, error) {
	id, err := parseMatchID(matchID)
	if err != nil {
		return MatchView{}, err
	}
	var view MatchView
	err = s.store.with(id, func(rec *matchRecord) error {
		m := rec.match
		if m.Status() != game.StatusActive {
			return engine.ErrNotActive
		}
		if m.TurnOwner() != game.SidePlayer {
			return engine.ErrWrongTurn
		}
		if err := m.SkipTurn(); err != nil {
			return err
		}
		now := s.clock.Now()
		rec.lastActivity = now
		s.scheduleEnemy(rec, now)
		view = rec.view()
		return nil
	})
	return view, err
}

// scheduleEnemy arms or clears the enemy deadline after a transition.
func (s *Service) scheduleEnemy(rec *matchRecord, now time.Time) {
	if rec.match.Status() == game.StatusActive && rec.match.TurnOwner() == game.SideEnemy {
		rec.enemyActAt = now.Add(s.opts.EnemyTurnDelay)
		return
	}
	rec.enemyActAt = time.Time{}
}
