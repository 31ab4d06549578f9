package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	calls   int32
	release chan struct{}
	err     error
	chars   []game.Character
}

func (m *mockRepo) GetCharacters(ctx context.Context) ([]game.Character, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.release != nil {
		<-m.release
	}
	if m.err != nil {
		return nil, m.err
	}
	return game.CloneTeam(m.chars), nil
}

func (m *mockRepo) GetCharactersByIDs(ctx context.Context, ids []string) ([]game.Character, error) {
	return nil, errors.New("not used")
}

func sample() []game.Character {
	mk := func(id string, hp, dmg int) game.Character {
		return game.Character{
			ID: id, Name: id, Element: game.ElementFire,
			Health: hp, MaxHealth: hp, Energy: 50, MaxEnergy: 50,
			Abilities: []game.Ability{{ID: id + "-hit", Damage: dmg, EnergyCost: 10}},
		}
	}
	return []game.Character{mk("a", 100, 20), mk("b", 120, 30), mk("c", 80, 40), mk("d", 90, 10)}
}

func TestListCachesFirstLoad(t *testing.T) {
	repo := &mockRepo{chars: sample()}
	c := New(repo)
	ctx := context.Background()

	first, err := c.List(ctx)
	require.NoError(t, err)
	first[0].Health = 1

	second, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, second[0].Health, "callers get copies")
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.calls))

	c.Invalidate()
	_, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&repo.calls))
}

func TestConcurrentFirstLoadsCollapse(t *testing.T) {
	repo := &mockRepo{chars: sample(), release: make(chan struct{})}
	c := New(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.List(context.Background())
			assert.NoError(t, err)
			assert.Len(t, got, 4)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.calls))
}

func TestLoadErrorIsNotCached(t *testing.T) {
	repo := &mockRepo{err: errors.New("db down")}
	c := New(repo)
	_, err := c.List(context.Background())
	require.Error(t, err)

	repo.err = nil
	repo.chars = sample()
	got, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestLookupKeepsRequestOrder(t *testing.T) {
	c := New(&mockRepo{chars: sample()})
	got, err := c.Lookup(context.Background(), []string{"c", "a"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	_, err = c.Lookup(context.Background(), []string{"a", "zz"})
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}

func TestSummaryIsOrderIndependent(t *testing.T) {
	repo := &mockRepo{chars: sample()}
	c := New(repo)
	ctx := context.Background()

	s, err := c.Summary(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, game.TeamSummary{Size: 3, TotalHealth: 300, TotalEnergy: 150, AverageDamage: 30}, s)

	again, err := c.Summary(ctx, []string{"c", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, s, again)

	_, err = c.Summary(ctx, []string{"a", "nope"})
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}
