package game

import "strings"

// Element is the elemental affinity of a character or ability.
type Element string

const (
	ElementFire   Element = "fire"
	ElementWater  Element = "water"
	ElementEarth  Element = "earth"
	ElementAir    Element = "air"
	ElementIce    Element = "ice"
	ElementNature Element = "nature"
)

// Elements lists every valid element in display order.
var Elements = []Element{ElementFire, ElementWater, ElementEarth, ElementAir, ElementIce, ElementNature}

// ParseElement normalizes s and reports whether it names a known element.
func ParseElement(s string) (Element, bool) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Elements {
		if e == known {
			return e, true
		}
	}
	return "", false
}

// Rarity is a cosmetic tier with no effect on battle.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

func ParseRarity(s string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Rarities {
		if r == known {
			return r, true
		}
	}
	return "", false
}
