package engine

import (
	"fmt"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
)

// AutoTurn describes what the automated side did on its turn.
type AutoTurn struct {
	Side      game.Side `json:"side"`
	ActorID   string    `json:"actor_id"`
	AbilityID string    `json:"ability_id"`
	TargetID  string    `json:"target_id"`
	Skipped   bool      `json:"skipped"`
	Result    Result    `json:"result"`
}

// RandomActor picks uniformly among the alive members of side.
func (m *Match) RandomActor(side game.Side, rng Rand) (string, bool) {
	alive := game.Alive(m.team(side))
	if len(alive) == 0 {
		return "", false
	}
	return alive[rng.Intn(len(alive))].ID, true
}

// RandomTarget picks uniformly among the alive members of the side opposing
// attacker. It has no preference for wounded or dangerous characters.
func (m *Match) RandomTarget(attacker game.Side, rng Rand) (string, bool) {
	return m.RandomActor(attacker.Opponent(), rng)
}

// RandomAbility picks uniformly among the abilities of characterID without
// looking at cost or cooldown.
func (m *Match) RandomAbility(characterID string, rng Rand) (string, bool) {
	c, _ := m.member(characterID)
	if c == nil || len(c.Abilities) == 0 {
		return "", false
	}
	return c.Abilities[rng.Intn(len(c.Abilities))].ID, true
}

// TakeAutoTurn plays the current turn with uniform random choices: an alive
// actor, then an alive opposing target, then one of the actor's abilities.
// When the drawn ability is not affordable the side loses the turn instead
// of stalling the match.
func (m *Match) TakeAutoTurn(rng Rand) (AutoTurn, error) {
	if m.status != game.StatusActive {
		return AutoTurn{}, ErrNotActive
	}
	side := m.turn
	at := AutoTurn{Side: side}

	actorID, ok := m.RandomActor(side, rng)
	if !ok {
		return at, fmt.Errorf("%w: %s side has no alive member", ErrActorDowned, side)
	}
	targetID, ok := m.RandomTarget(side, rng)
	if !ok {
		return at, fmt.Errorf("%w: no alive target", ErrTargetDowned)
	}
	abilityID, _ := m.RandomAbility(actorID, rng)
	at.ActorID, at.TargetID, at.AbilityID = actorID, targetID, abilityID

	actor, _ := m.member(actorID)
	ability := actor.Ability(abilityID)
	if actor.Energy < ability.EnergyCost {
		m.skip(fmt.Sprintf("%s lacks the energy for %s and loses the turn.", actor.Name, ability.Name))
		at.Skipped = true
		at.Result = Result{Status: m.status, TurnOwner: m.turn}
		return at, nil
	}

	res, err := m.ApplyAbility(actorID, abilityID, targetID, rng)
	at.Result = res
	return at, err
}

// SkipTurn passes the turn for a side that has no affordable ability left.
func (m *Match) SkipTurn() error {
	if m.status != game.StatusActive {
		return ErrNotActive
	}
	if m.CanAct(m.turn) {
		return ErrActionAvailable
	}
	m.skip(sideLabel(m.turn) + " has no usable ability and passes.")
	return nil
}

// skip logs msg and hands the turn over. When neither side can act any more
// the match is decided on remaining health.
func (m *Match) skip(msg string) {
	m.log.add(msg)
	if m.CanAct(game.SidePlayer) || m.CanAct(game.SideEnemy) {
		m.turn = m.turn.Opponent()
		return
	}
	m.log.add("Both teams are out of energy.")
	if game.TotalHealth(m.player) > game.TotalHealth(m.enemy) {
		m.status = game.StatusVictory
	} else {
		m.status = game.StatusDefeat
	}
}
