package engine

import "github.com/MohcineSafi/Battle-Arena/internal/game"

// Rand is the random source the engine draws from. *math/rand.Rand
// satisfies it; tests pass scripted sources.
type Rand interface {
	Intn(n int) int
}

// team returns the roster for side.
func (m *Match) team(side game.Side) []game.Character {
	if side == game.SidePlayer {
		return m.player
	}
	return m.enemy
}

// member finds a character by id on either side.
func (m *Match) member(id string) (*game.Character, game.Side) {
	for i := range m.player {
		if m.player[i].ID == id {
			return &m.player[i], game.SidePlayer
		}
	}
	for i := range m.enemy {
		if m.enemy[i].ID == id {
			return &m.enemy[i], game.SideEnemy
		}
	}
	return nil, ""
}

func sideLabel(side game.Side) string {
	if side == game.SidePlayer {
		return "Your team"
	}
	return "The enemy team"
}
