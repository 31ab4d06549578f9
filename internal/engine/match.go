package engine

import (
	"fmt"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
)

// Match is one battle between a player team and an enemy team. It is not
// safe for concurrent use; callers serialize access per match.
type Match struct {
	status game.Status
	turn   game.Side
	player []game.Character
	enemy  []game.Character
	log    battleLog
}

// Snapshot is a read-only deep copy of a match for rendering.
type Snapshot struct {
	Status     game.Status      `json:"status"`
	TurnOwner  game.Side        `json:"turn_owner"`
	PlayerTeam []game.Character `json:"player_team"`
	EnemyTeam  []game.Character `json:"enemy_team"`
	Log        []string         `json:"log"`
}

// StartMatch validates both rosters and creates a match in the preparing
// state. Every character starts at full health and energy regardless of the
// values passed in; the inputs are never retained.
func StartMatch(playerRoster, enemyRoster []game.Character) (*Match, error) {
	if err := game.ValidateTeam(playerRoster); err != nil {
		return nil, fmt.Errorf("player roster: %w", err)
	}
	if err := game.ValidateTeam(enemyRoster); err != nil {
		return nil, fmt.Errorf("enemy roster: %w", err)
	}
	for i := range playerRoster {
		for j := range enemyRoster {
			if playerRoster[i].ID == enemyRoster[j].ID {
				return nil, fmt.Errorf("%w: character %q is on both teams", game.ErrInvalidRoster, playerRoster[i].ID)
			}
		}
	}
	return &Match{
		status: game.StatusPreparing,
		turn:   game.SidePlayer,
		player: game.FreshTeam(playerRoster),
		enemy:  game.FreshTeam(enemyRoster),
	}, nil
}

// Begin moves a preparing match to active with the player to act first.
func (m *Match) Begin() error {
	if m.status != game.StatusPreparing {
		return ErrNotPreparing
	}
	m.status = game.StatusActive
	m.turn = game.SidePlayer
	return nil
}

func (m *Match) Status() game.Status { return m.status }

func (m *Match) TurnOwner() game.Side { return m.turn }

// State returns a deep snapshot of the match.
func (m *Match) State() Snapshot {
	return Snapshot{
		Status:     m.status,
		TurnOwner:  m.turn,
		PlayerTeam: game.CloneTeam(m.player),
		EnemyTeam:  game.CloneTeam(m.enemy),
		Log:        m.log.lines(),
	}
}

// CanAct reports whether side has an alive member able to afford at least
// one of its abilities.
func (m *Match) CanAct(side game.Side) bool {
	team := m.team(side)
	for i := range team {
		if !team[i].Downed() && team[i].CanAfford() {
			return true
		}
	}
	return false
}
