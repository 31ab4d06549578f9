package game

// Ability is a single move a character can use in battle. Damage of zero
// marks a utility ability; the engine still resolves it as a hit.
// Cooldown is declared by the catalog but not enforced: any ability can be
// used on every turn.
type Ability struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Damage      int     `json:"damage"`
	EnergyCost  int     `json:"energy_cost"`
	Cooldown    int     `json:"cooldown"`
	Element     Element `json:"element"`
	Description string  `json:"description"`
}

// Character is a combatant. Health and energy are mutated in place while a
// match is running; the maxima never change.
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Element   Element   `json:"element"`
	Species   string    `json:"species"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"max_health"`
	Energy    int       `json:"energy"`
	MaxEnergy int       `json:"max_energy"`
	Rarity    Rarity    `json:"rarity"`
	Image     string    `json:"image,omitempty"`
	Abilities []Ability `json:"abilities"`
}

// Downed reports whether the character is out of the fight.
func (c *Character) Downed() bool { return c.Health <= 0 }

// Ability returns the ability with the given id, or nil.
func (c *Character) Ability(id string) *Ability {
	for i := range c.Abilities {
		if c.Abilities[i].ID == id {
			return &c.Abilities[i]
		}
	}
	return nil
}

// CanAfford reports whether the character has energy for at least one of
// its abilities.
func (c *Character) CanAfford() bool {
	for i := range c.Abilities {
		if c.Energy >= c.Abilities[i].EnergyCost {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the character.
func (c Character) Clone() Character {
	out := c
	out.Abilities = make([]Ability, len(c.Abilities))
	copy(out.Abilities, c.Abilities)
	return out
}

// Fresh returns a deep copy restored to full health and energy.
func (c Character) Fresh() Character {
	out := c.Clone()
	out.Health = out.MaxHealth
	out.Energy = out.MaxEnergy
	return out
}

// Side identifies one half of a match.
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// Status is the match lifecycle state. It only moves forward:
// preparing -> active -> victory | defeat.
type Status string

const (
	StatusPreparing Status = "preparing"
	StatusActive    Status = "active"
	StatusVictory   Status = "victory"
	StatusDefeat    Status = "defeat"
)

// Terminal reports whether no further action can change the match.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusDefeat
}
