package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/dedupe"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/keys"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
	"github.com/MohcineSafi/Battle-Arena/internal/storage"
)

const listKey = "catalog"

// Catalog is a read-through cache over the character repository. The
// catalog is static for the life of the process, so the first successful
// load is kept until Invalidate is called.
type Catalog struct {
	repo storage.Repository

	mu         sync.RWMutex
	characters []game.Character
	byID       map[string]int
	summaries  map[string]game.TeamSummary
}

func New(repo storage.Repository) *Catalog {
	return &Catalog{repo: repo, summaries: map[string]game.TeamSummary{}}
}

// List returns a copy of every catalog character at full health.
func (c *Catalog) List(ctx context.Context) ([]game.Character, error) {
	chars, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return game.CloneTeam(chars), nil
}

// Lookup returns the characters with the given ids in the requested order.
// Unknown ids yield storage.ErrCharacterNotFound.
func (c *Catalog) Lookup(ctx context.Context, ids []string) ([]game.Character, error) {
	chars, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	byID := c.byID
	c.mu.RUnlock()

	out := make([]game.Character, 0, len(ids))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", storage.ErrCharacterNotFound, id)
		}
		out = append(out, chars[i].Fresh())
	}
	return out, nil
}

// Summary returns the aggregate numbers for the team made of ids. Results
// are memoized per team regardless of pick order.
func (c *Catalog) Summary(ctx context.Context, ids []string) (game.TeamSummary, error) {
	key := keys.TeamKey(ids)
	c.mu.RLock()
	s, ok := c.summaries[key]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, err, _ := dedupe.CatalogGroup.Do("summary:"+key, func() (interface{}, error) {
		team, err := c.Lookup(ctx, ids)
		if err != nil {
			return nil, err
		}
		s := game.Summarize(team)
		c.mu.Lock()
		c.summaries[key] = s
		c.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return game.TeamSummary{}, err
	}
	return v.(game.TeamSummary), nil
}

// Invalidate drops the cached listing and summaries.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.characters = nil
	c.byID = nil
	c.summaries = map[string]game.TeamSummary{}
	c.mu.Unlock()
}

func (c *Catalog) load(ctx context.Context) ([]game.Character, error) {
	c.mu.RLock()
	chars := c.characters
	c.mu.RUnlock()
	if chars != nil {
		return chars, nil
	}

	v, err, shared := dedupe.CatalogGroup.Do(listKey, func() (interface{}, error) {
		// The query must outlive any single caller that joined the flight.
		loaded, err := c.repo.GetCharacters(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		idx := make(map[string]int, len(loaded))
		for i := range loaded {
			idx[loaded[i].ID] = i
		}
		c.mu.Lock()
		c.characters = loaded
		c.byID = idx
		c.mu.Unlock()
		logging.Debug("catalog loaded", logging.Fields{constants.LogFieldCount: len(loaded)})
		return loaded, nil
	})
	if err != nil {
		logging.Error("failed to load catalog", err, logging.Fields{"shared": shared})
		return nil, err
	}
	return v.([]game.Character), nil
}
