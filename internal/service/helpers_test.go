package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/storage"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type fakeCatalog struct {
	chars []game.Character
}

func (f *fakeCatalog) List(ctx context.Context) ([]game.Character, error) {
	return game.CloneTeam(f.chars), nil
}

func (f *fakeCatalog) Lookup(ctx context.Context, ids []string) ([]game.Character, error) {
	out := make([]game.Character, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, c := range f.chars {
			if c.ID == id {
				out = append(out, c.Fresh())
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", storage.ErrCharacterNotFound, id)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Summary(ctx context.Context, ids []string) (game.TeamSummary, error) {
	team, err := f.Lookup(ctx, ids)
	if err != nil {
		return game.TeamSummary{}, err
	}
	return game.Summarize(team), nil
}

func character(id, name string, element game.Element, hp, energy int, abilities ...game.Ability) game.Character {
	return game.Character{
		ID: id, Name: name, Element: element,
		Health: hp, MaxHealth: hp, Energy: energy, MaxEnergy: energy,
		Abilities: abilities,
	}
}

func ability(id, name string, damage, cost int) game.Ability {
	return game.Ability{ID: id, Name: name, Damage: damage, EnergyCost: cost}
}

func arenaCatalog() *fakeCatalog {
	return &fakeCatalog{chars: []game.Character{
		character("fire-fox", "Blaze", game.ElementFire, 100, 100, ability("fireball", "Fireball", 30, 20), ability("flame-dash", "Flame Dash", 20, 15)),
		character("water-turtle", "Neptune", game.ElementWater, 150, 80, ability("tidal-wave", "Tidal Wave", 25, 25), ability("healing-spring", "Healing Spring", 0, 30)),
		character("lightning-eagle", "Thunder", game.ElementAir, 80, 120, ability("lightning-strike", "Lightning Strike", 40, 35), ability("wind-gust", "Wind Gust", 15, 10)),
		character("earth-bear", "Boulder", game.ElementEarth, 180, 60, ability("earthquake", "Earthquake", 35, 40), ability("rock-shield", "Rock Shield", 0, 20)),
		character("ice-wolf", "Frost", game.ElementIce, 90, 110, ability("ice-shard", "Ice Shard", 28, 18), ability("frost-bite", "Frost Bite", 22, 15)),
		character("nature-deer", "Gaia", game.ElementNature, 120, 90, ability("vine-whip", "Vine Whip", 20, 15), ability("nature-heal", "Nature Heal", 0, 25)),
	}}
}

var playerPicks = []string{"fire-fox", "water-turtle", "lightning-eagle"}

const (
	prepareDelay   = 2 * time.Second
	enemyTurnDelay = 1500 * time.Millisecond
	matchTTL       = 10 * time.Minute
)

func newTestService(clock *fakeClock, mutate ...func(*Options)) *Service {
	opts := Options{
		PrepareDelay:   prepareDelay,
		EnemyTurnDelay: enemyTurnDelay,
		MatchTTL:       matchTTL,
		Seed:           42,
		Clock:          clock,
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	return New(arenaCatalog(), opts)
}
