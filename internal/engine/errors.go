package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is the root of every rejected action. A rejected action
// leaves the match untouched and the caller must not advance the turn.
var ErrInvalidAction = errors.New("invalid action")

var (
	ErrNotActive          = fmt.Errorf("%w: match is not active", ErrInvalidAction)
	ErrNotPreparing       = fmt.Errorf("%w: match is not preparing", ErrInvalidAction)
	ErrWrongTurn          = fmt.Errorf("%w: not this side's turn", ErrInvalidAction)
	ErrUnknownCharacter   = fmt.Errorf("%w: unknown character", ErrInvalidAction)
	ErrUnknownAbility     = fmt.Errorf("%w: unknown ability", ErrInvalidAction)
	ErrActorDowned        = fmt.Errorf("%w: actor is downed", ErrInvalidAction)
	ErrTargetDowned       = fmt.Errorf("%w: target is downed", ErrInvalidAction)
	ErrTargetNotOpponent  = fmt.Errorf("%w: target is not on the opposing side", ErrInvalidAction)
	ErrInsufficientEnergy = fmt.Errorf("%w: insufficient energy", ErrInvalidAction)
	ErrActionAvailable    = fmt.Errorf("%w: side still has a usable ability", ErrInvalidAction)
)

// InvariantViolation is raised with panic when a character's health or
// energy leaves [0, max]. It marks a bug in the engine, never a game
// condition.
type InvariantViolation struct {
	CharacterID string
	Health      int
	MaxHealth   int
	Energy      int
	MaxEnergy   int
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("engine invariant violated for %s: health %d/%d, energy %d/%d",
		v.CharacterID, v.Health, v.MaxHealth, v.Energy, v.MaxEnergy)
}
