package engine

import (
	"fmt"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
)

const (
	// damageSpread is the number of distinct offsets added to base damage.
	damageSpread = 10
	// damageOffsetMin is the lowest offset; offsets span [-5, +4].
	damageOffsetMin = -5
)

// Result reports the outcome of an action.
type Result struct {
	OK        bool        `json:"ok"`
	Damage    int         `json:"damage,omitempty"`
	Status    game.Status `json:"status"`
	TurnOwner game.Side   `json:"turn_owner"`
}

// ApplyAbility resolves actorID using abilityID against targetID. When any
// precondition fails the match is left unchanged, no random number is drawn
// and the returned error wraps ErrInvalidAction. On success the energy cost
// is paid, damage is dealt, the log is appended and the match either ends or
// passes the turn to the other side.
func (m *Match) ApplyAbility(actorID, abilityID, targetID string, rng Rand) (Result, error) {
	rejected := Result{Status: m.status, TurnOwner: m.turn}
	if m.status != game.StatusActive {
		return rejected, ErrNotActive
	}
	actor, actorSide := m.member(actorID)
	if actor == nil {
		return rejected, fmt.Errorf("%w: actor %q", ErrUnknownCharacter, actorID)
	}
	if actorSide != m.turn {
		return rejected, fmt.Errorf("%w: %s belongs to the %s side", ErrWrongTurn, actor.Name, actorSide)
	}
	if actor.Downed() {
		return rejected, fmt.Errorf("%w: %s", ErrActorDowned, actor.Name)
	}
	target, targetSide := m.member(targetID)
	if target == nil {
		return rejected, fmt.Errorf("%w: target %q", ErrUnknownCharacter, targetID)
	}
	if targetSide != actorSide.Opponent() {
		return rejected, fmt.Errorf("%w: %s", ErrTargetNotOpponent, target.Name)
	}
	if target.Downed() {
		return rejected, fmt.Errorf("%w: %s", ErrTargetDowned, target.Name)
	}
	ability := actor.Ability(abilityID)
	if ability == nil {
		return rejected, fmt.Errorf("%w: %s has no ability %q", ErrUnknownAbility, actor.Name, abilityID)
	}
	if actor.Energy < ability.EnergyCost {
		return rejected, fmt.Errorf("%w: %s has %d, %s costs %d", ErrInsufficientEnergy, actor.Name, actor.Energy, ability.Name, ability.EnergyCost)
	}

	actor.Energy -= ability.EnergyCost
	dmg := rollDamage(ability.Damage, rng)
	target.Health -= dmg
	if target.Health < 0 {
		target.Health = 0
	}
	m.log.add(fmt.Sprintf("%s used %s on %s for %d damage!", actor.Name, ability.Name, target.Name, dmg))
	m.mustHoldInvariants()
	m.settle()

	return Result{OK: true, Damage: dmg, Status: m.status, TurnOwner: m.turn}, nil
}

// rollDamage perturbs base by a uniform offset in [-5, +4] and never returns
// less than 1.
func rollDamage(base int, rng Rand) int {
	dmg := base + rng.Intn(damageSpread) + damageOffsetMin
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// settle evaluates the match after an effect. A downed player team is
// checked first so a mutual wipe counts as a defeat.
func (m *Match) settle() {
	switch {
	case game.AllDowned(m.player):
		m.status = game.StatusDefeat
	case game.AllDowned(m.enemy):
		m.status = game.StatusVictory
	default:
		m.turn = m.turn.Opponent()
	}
}

func (m *Match) mustHoldInvariants() {
	for _, team := range [][]game.Character{m.player, m.enemy} {
		for i := range team {
			c := &team[i]
			if c.Health < 0 || c.Health > c.MaxHealth || c.Energy < 0 || c.Energy > c.MaxEnergy {
				panic(InvariantViolation{
					CharacterID: c.ID,
					Health:      c.Health,
					MaxHealth:   c.MaxHealth,
					Energy:      c.Energy,
					MaxEnergy:   c.MaxEnergy,
				})
			}
		}
	}
}
