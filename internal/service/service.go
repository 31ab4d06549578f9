package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrTeamSize           = errors.New("a team needs exactly 3 characters")
	ErrDuplicateCharacter = errors.New("a character can only be picked once")
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrEnemyRoster        = errors.New("not enough characters for an enemy team")
)

// enemyIDPrefix keeps enemy ids distinct from the player's picks when both
// teams are drawn from the same catalog.
const enemyIDPrefix = "enemy-"

// Catalog is the read side of the character catalog.
type Catalog interface {
	List(ctx context.Context) ([]game.Character, error)
	Lookup(ctx context.Context, ids []string) ([]game.Character, error)
	Summary(ctx context.Context, ids []string) (game.TeamSummary, error)
}

// Clock abstracts time so pacing can be driven by tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// Options configures match pacing and rosters.
type Options struct {
	PrepareDelay   time.Duration
	EnemyTurnDelay time.Duration
	// MatchTTL drops matches without player activity for this long. Zero
	// keeps matches until they are abandoned.
	MatchTTL time.Duration
	// Seed makes rosters and battles reproducible when non-zero.
	Seed int64
	// EnemyTeam, when set, is used for every match instead of a random
	// draw from the catalog.
	EnemyTeam []game.Character
	Clock     Clock
}

// Service runs matches for a single local player against an automated
// enemy team.
type Service struct {
	catalog Catalog
	store   *matchStore
	clock   Clock
	opts    Options

	seedMu sync.Mutex
	seeds  *rand.Rand
}

func New(catalog Catalog, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		catalog: catalog,
		store:   newMatchStore(),
		clock:   opts.Clock,
		opts:    opts,
		seeds:   rand.New(rand.NewSource(seed)),
	}
}

// MatchCount returns the number of live matches.
func (s *Service) MatchCount() int { return s.store.len() }

// Characters lists the catalog.
func (s *Service) Characters(ctx context.Context) ([]game.Character, error) {
	return s.catalog.List(ctx)
}

// TeamSummary returns the totals for a partial or complete team selection.
func (s *Service) TeamSummary(ctx context.Context, characterIDs []string) (game.TeamSummary, error) {
	if len(characterIDs) > game.TeamSize {
		return game.TeamSummary{}, ErrTeamSize
	}
	if err := checkDistinct(characterIDs); err != nil {
		return game.TeamSummary{}, err
	}
	sum, err := s.catalog.Summary(ctx, characterIDs)
	if err != nil {
		return game.TeamSummary{}, catalogError(err)
	}
	return sum, nil
}

func (s *Service) newRand() *rand.Rand {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return rand.New(rand.NewSource(s.seeds.Int63()))
}

func checkDistinct(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return ErrDuplicateCharacter
		}
		seen[id] = struct{}{}
	}
	return nil
}
