package game

import (
	"errors"
	"fmt"
)

// TeamSize is the number of characters each side brings into a match.
const TeamSize = 3

var ErrInvalidRoster = errors.New("invalid roster")

// Validate checks the static shape of a character definition. Health and
// energy are not checked here because matches reset them to the maxima.
func (c *Character) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: character missing id", ErrInvalidRoster)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: character %q missing name", ErrInvalidRoster, c.ID)
	}
	if _, ok := ParseElement(string(c.Element)); !ok {
		return fmt.Errorf("%w: character %q has unknown element %q", ErrInvalidRoster, c.ID, c.Element)
	}
	if c.Rarity != "" {
		if _, ok := ParseRarity(string(c.Rarity)); !ok {
			return fmt.Errorf("%w: character %q has unknown rarity %q", ErrInvalidRoster, c.ID, c.Rarity)
		}
	}
	if c.MaxHealth <= 0 || c.MaxEnergy <= 0 {
		return fmt.Errorf("%w: character %q needs positive max health and energy", ErrInvalidRoster, c.ID)
	}
	if len(c.Abilities) == 0 {
		return fmt.Errorf("%w: character %q has no abilities", ErrInvalidRoster, c.ID)
	}
	seen := make(map[string]struct{}, len(c.Abilities))
	for _, a := range c.Abilities {
		if a.ID == "" {
			return fmt.Errorf("%w: character %q has an ability without id", ErrInvalidRoster, c.ID)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: character %q repeats ability %q", ErrInvalidRoster, c.ID, a.ID)
		}
		seen[a.ID] = struct{}{}
		if a.Damage < 0 || a.EnergyCost < 0 || a.Cooldown < 0 {
			return fmt.Errorf("%w: ability %q of %q has a negative value", ErrInvalidRoster, a.ID, c.ID)
		}
	}
	return nil
}

// ValidateTeam checks that team has exactly TeamSize valid characters with
// distinct ids.
func ValidateTeam(team []Character) error {
	if len(team) != TeamSize {
		return fmt.Errorf("%w: team must have %d characters, got %d", ErrInvalidRoster, TeamSize, len(team))
	}
	seen := make(map[string]struct{}, len(team))
	for i := range team {
		if err := team[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[team[i].ID]; dup {
			return fmt.Errorf("%w: duplicate character %q", ErrInvalidRoster, team[i].ID)
		}
		seen[team[i].ID] = struct{}{}
	}
	return nil
}

// CloneTeam deep-copies a team.
func CloneTeam(team []Character) []Character {
	out := make([]Character, len(team))
	for i := range team {
		out[i] = team[i].Clone()
	}
	return out
}

// FreshTeam deep-copies a team with every member at full health and energy.
func FreshTeam(team []Character) []Character {
	out := make([]Character, len(team))
	for i := range team {
		out[i] = team[i].Fresh()
	}
	return out
}

// Alive returns pointers to the members of team that are not downed, in
// team order.
func Alive(team []Character) []*Character {
	out := make([]*Character, 0, len(team))
	for i := range team {
		if !team[i].Downed() {
			out = append(out, &team[i])
		}
	}
	return out
}

// AllDowned reports whether every member of team is at zero health.
func AllDowned(team []Character) bool {
	for i := range team {
		if !team[i].Downed() {
			return false
		}
	}
	return true
}

// TotalHealth sums current health over team.
func TotalHealth(team []Character) int {
	total := 0
	for i := range team {
		total += team[i].Health
	}
	return total
}
