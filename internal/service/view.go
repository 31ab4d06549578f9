package service

import (
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/engine"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
)

// MatchView is what clients render: the engine snapshot plus pacing data.
type MatchView struct {
	MatchID string `json:"match_id"`
	engine.Snapshot
	// PlayerCanAct is false when every alive player character is out of
	// energy for all of its abilities; the client should offer a skip.
	PlayerCanAct  bool             `json:"player_can_act"`
	ReadyAt       *time.Time       `json:"ready_at,omitempty"`
	EnemyActAt    *time.Time       `json:"enemy_act_at,omitempty"`
	LastEnemyTurn *engine.AutoTurn `json:"last_enemy_turn,omitempty"`
}

// view must be called with rec.mu held.
func (rec *matchRecord) view() MatchView {
	v := MatchView{
		MatchID:      rec.id.String(),
		Snapshot:     rec.match.State(),
		PlayerCanAct: rec.match.Status() == game.StatusActive && rec.match.CanAct(game.SidePlayer),
	}
	if rec.match.Status() == game.StatusPreparing {
		t := rec.readyAt
		v.ReadyAt = &t
	}
	if !rec.enemyActAt.IsZero() {
		t := rec.enemyActAt
		v.EnemyActAt = &t
	}
	if rec.lastEnemyTurn != nil {
		at := *rec.lastEnemyTurn
		v.LastEnemyTurn = &at
	}
	return v
}
