package game

import (
	"sort"
	"time"
)

// CharacterTemplate is the persisted catalog definition of a character. It
// stores only maxima; matches start every character at full health and
// energy.
type CharacterTemplate struct {
	ID        string            `json:"id" gorm:"primaryKey;size:64"`
	Name      string            `json:"name" gorm:"size:64;not null"`
	Element   Element           `json:"element" gorm:"size:16;not null"`
	Species   string            `json:"species" gorm:"size:64"`
	MaxHealth int               `json:"max_health"`
	MaxEnergy int               `json:"max_energy"`
	Rarity    Rarity            `json:"rarity" gorm:"size:16"`
	Image     string            `json:"image"`
	SortOrder int               `json:"-" gorm:"index"`
	Abilities []AbilityTemplate `json:"abilities" gorm:"foreignKey:CharacterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time         `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

// TableName keeps the catalog tables grouped under a common prefix.
func (CharacterTemplate) TableName() string { return "character_templates" }

// AbilityTemplate is one ability row of a catalog character. Position keeps
// the declared ability order.
type AbilityTemplate struct {
	CharacterID string  `json:"-" gorm:"primaryKey;size:64"`
	Position    int     `json:"-" gorm:"primaryKey"`
	AbilityID   string  `json:"id" gorm:"size:64;not null"`
	Name        string  `json:"name" gorm:"size:64"`
	Damage      int     `json:"damage"`
	EnergyCost  int     `json:"energy_cost"`
	Cooldown    int     `json:"cooldown"`
	Element     Element `json:"element" gorm:"size:16"`
	Description string  `json:"description"`
}

func (AbilityTemplate) TableName() string { return "ability_templates" }

// ToCharacter converts the template into a full-health Character.
func (t CharacterTemplate) ToCharacter() Character {
	abilities := make([]AbilityTemplate, len(t.Abilities))
	copy(abilities, t.Abilities)
	sort.SliceStable(abilities, func(i, j int) bool { return abilities[i].Position < abilities[j].Position })

	c := Character{
		ID:        t.ID,
		Name:      t.Name,
		Element:   t.Element,
		Species:   t.Species,
		Health:    t.MaxHealth,
		MaxHealth: t.MaxHealth,
		Energy:    t.MaxEnergy,
		MaxEnergy: t.MaxEnergy,
		Rarity:    t.Rarity,
		Image:     t.Image,
		Abilities: make([]Ability, 0, len(abilities)),
	}
	for _, a := range abilities {
		c.Abilities = append(c.Abilities, Ability{
			ID:          a.AbilityID,
			Name:        a.Name,
			Damage:      a.Damage,
			EnergyCost:  a.EnergyCost,
			Cooldown:    a.Cooldown,
			Element:     a.Element,
			Description: a.Description,
		})
	}
	return c
}

// TemplateFromCharacter builds the catalog row for c. order is the position
// of the character in the catalog listing.
func TemplateFromCharacter(c Character, order int) CharacterTemplate {
	t := CharacterTemplate{
		ID:        c.ID,
		Name:      c.Name,
		Element:   c.Element,
		Species:   c.Species,
		MaxHealth: c.MaxHealth,
		MaxEnergy: c.MaxEnergy,
		Rarity:    c.Rarity,
		Image:     c.Image,
		SortOrder: order,
		Abilities: make([]AbilityTemplate, 0, len(c.Abilities)),
	}
	for i, a := range c.Abilities {
		t.Abilities = append(t.Abilities, AbilityTemplate{
			CharacterID: c.ID,
			Position:    i,
			AbilityID:   a.ID,
			Name:        a.Name,
			Damage:      a.Damage,
			EnergyCost:  a.EnergyCost,
			Cooldown:    a.Cooldown,
			Element:     a.Element,
			Description: a.Description,
		})
	}
	return t
}
