package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Pacing defaults match the timings the arena UI was designed around.
const (
	DefaultPrepareDelay   = 2 * time.Second
	DefaultEnemyTurnDelay = 1500 * time.Millisecond
	DefaultMatchTTL       = 30 * time.Minute
	DefaultTick           = 250 * time.Millisecond
)

type abilityEntry struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Damage      int    `json:"damage" yaml:"damage"`
	EnergyCost  int    `json:"energy_cost" yaml:"energy_cost"`
	Cooldown    int    `json:"cooldown" yaml:"cooldown"`
	Element     string `json:"element" yaml:"element"`
	Description string `json:"description" yaml:"description"`
}

type characterEntry struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Element   string         `json:"element" yaml:"element"`
	Species   string         `json:"species" yaml:"species"`
	MaxHealth int            `json:"max_health" yaml:"max_health"`
	MaxEnergy int            `json:"max_energy" yaml:"max_energy"`
	Rarity    string         `json:"rarity" yaml:"rarity"`
	Image     string         `json:"image" yaml:"image"`
	Abilities []abilityEntry `json:"abilities" yaml:"abilities"`
}

type battleEntry struct {
	PrepareDelay   string `json:"prepare_delay" yaml:"prepare_delay"`
	EnemyTurnDelay string `json:"enemy_turn_delay" yaml:"enemy_turn_delay"`
	MatchTTL       string `json:"match_ttl" yaml:"match_ttl"`
	Tick           string `json:"tick" yaml:"tick"`
	Seed           int64  `json:"seed" yaml:"seed"`
}

type rawConfig struct {
	CharacterList []characterEntry `json:"character_list" yaml:"character_list"`
	// Optional fixed enemy roster. When empty, enemies are drawn from the
	// catalog for every match.
	EnemyTeam []characterEntry `json:"enemy_team" yaml:"enemy_team"`
	Server    *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
	Battle *battleEntry `json:"battle" yaml:"battle"`
}

// Battle holds the pacing settings of the match scheduler.
type Battle struct {
	PrepareDelay   time.Duration
	EnemyTurnDelay time.Duration
	MatchTTL       time.Duration
	Tick           time.Duration
	// Seed makes every match reproducible when non-zero.
	Seed int64
}

// LoadedConfig contains the catalog to seed, the optional enemy roster, the
// server address and the battle pacing.
type LoadedConfig struct {
	Characters    []game.Character
	EnemyTeam     []game.Character
	ServerAddress string
	Battle        Battle
}

// Env is the process environment read at startup.
type Env struct {
	ConfigPath string `env:"ARENA_CONFIG" envDefault:"./arena_config.yaml"`
	DBPath     string `env:"ARENA_DB" envDefault:"./data/arena.db"`
	Addr       string `env:"ARENA_ADDR"`
	Seed       int64  `env:"ARENA_SEED"`
	LogLevel   string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply overlays non-empty environment values on cfg.
func (e Env) Apply(cfg *LoadedConfig) {
	if e.Addr != "" {
		cfg.ServerAddress = e.Addr
	}
	if e.Seed != 0 {
		cfg.Battle.Seed = e.Seed
	}
}

// LoadConfig reads the configuration file at path and returns the catalog,
// enemy roster, server address and pacing. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON. It requires the key
// `character_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rc)
	default:
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CharacterList) == 0 {
		return nil, fmt.Errorf("config file %s: character_list is empty (provide 'character_list' array)", path)
	}
	characters, err := convertEntries(path, "character_list", rc.CharacterList)
	if err != nil {
		return nil, err
	}
	if len(characters) < game.TeamSize {
		return nil, fmt.Errorf("config file %s: character_list needs at least %d characters", path, game.TeamSize)
	}

	var enemies []game.Character
	if len(rc.EnemyTeam) > 0 {
		enemies, err = convertEntries(path, "enemy_team", rc.EnemyTeam)
		if err != nil {
			return nil, err
		}
		if err := game.ValidateTeam(enemies); err != nil {
			return nil, fmt.Errorf("config file %s: enemy_team: %w", path, err)
		}
	}

	addr := constants.DefaultAddr
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	battle, err := parseBattle(path, rc.Battle)
	if err != nil {
		return nil, err
	}

	return &LoadedConfig{
		Characters:    characters,
		EnemyTeam:     enemies,
		ServerAddress: addr,
		Battle:        battle,
	}, nil
}

func convertEntries(path, key string, entries []characterEntry) ([]game.Character, error) {
	out := make([]game.Character, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		id := strings.TrimSpace(e.ID)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("config file %s: %s: duplicate character id '%s'", path, key, id)
		}
		seen[id] = struct{}{}

		element, ok := game.ParseElement(e.Element)
		if !ok {
			return nil, fmt.Errorf("config file %s: %s: character '%s' has unknown element '%s'", path, key, id, e.Element)
		}
		rarity := game.Rarity("")
		if strings.TrimSpace(e.Rarity) != "" {
			if rarity, ok = game.ParseRarity(e.Rarity); !ok {
				return nil, fmt.Errorf("config file %s: %s: character '%s' has unknown rarity '%s'", path, key, id, e.Rarity)
			}
		}

		c := game.Character{
			ID:        id,
			Name:      strings.TrimSpace(e.Name),
			Element:   element,
			Species:   e.Species,
			Health:    e.MaxHealth,
			MaxHealth: e.MaxHealth,
			Energy:    e.MaxEnergy,
			MaxEnergy: e.MaxEnergy,
			Rarity:    rarity,
			Image:     e.Image,
			Abilities: make([]game.Ability, 0, len(e.Abilities)),
		}
		for _, a := range e.Abilities {
			// An ability without its own element shares the character's.
			abilityElement := element
			if strings.TrimSpace(a.Element) != "" {
				if abilityElement, ok = game.ParseElement(a.Element); !ok {
					return nil, fmt.Errorf("config file %s: %s: ability '%s' of '%s' has unknown element '%s'", path, key, a.ID, id, a.Element)
				}
			}
			c.Abilities = append(c.Abilities, game.Ability{
				ID:          strings.TrimSpace(a.ID),
				Name:        a.Name,
				Damage:      a.Damage,
				EnergyCost:  a.EnergyCost,
				Cooldown:    a.Cooldown,
				Element:     abilityElement,
				Description: a.Description,
			})
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("config file %s: %s: %w", path, key, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseBattle(path string, b *battleEntry) (Battle, error) {
	out := Battle{
		PrepareDelay:   DefaultPrepareDelay,
		EnemyTurnDelay: DefaultEnemyTurnDelay,
		MatchTTL:       DefaultMatchTTL,
		Tick:           DefaultTick,
	}
	if b == nil {
		return out, nil
	}
	out.Seed = b.Seed
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"prepare_delay", b.PrepareDelay, &out.PrepareDelay},
		{"enemy_turn_delay", b.EnemyTurnDelay, &out.EnemyTurnDelay},
		{"match_ttl", b.MatchTTL, &out.MatchTTL},
		{"tick", b.Tick, &out.Tick},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(f.raw))
		if err != nil {
			return Battle{}, fmt.Errorf("config file %s: battle.%s: %w", path, f.name, err)
		}
		if d < 0 {
			return Battle{}, fmt.Errorf("config file %s: battle.%s must not be negative", path, f.name)
		}
		*f.dst = d
	}
	if out.Tick == 0 {
		out.Tick = DefaultTick
	}
	return out, nil
}
