package service

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartMatchRejectsBadPicks(t *testing.T) {
	svc := newTestService(newFakeClock())
	ctx := context.Background()

	cases := []struct {
		name string
		ids  []string
		want error
	}{
		{"too few", []string{"fire-fox", "ice-wolf"}, ErrTeamSize},
		{"too many", []string{"fire-fox", "ice-wolf", "earth-bear", "nature-deer"}, ErrTeamSize},
		{"duplicate", []string{"fire-fox", "fire-fox", "ice-wolf"}, ErrDuplicateCharacter},
		{"unknown", []string{"fire-fox", "ice-wolf", "sea-serpent"}, ErrUnknownCharacter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.StartMatch(ctx, tc.ids)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Zero(t, svc.MatchCount())
}

func TestStartMatchDrawsEnemiesFromTheRestOfTheCatalog(t *testing.T) {
	svc := newTestService(newFakeClock())

	view, err := svc.StartMatch(context.Background(), playerPicks)
	require.NoError(t, err)

	assert.Equal(t, game.StatusPreparing, view.Status)
	assert.Equal(t, game.SidePlayer, view.TurnOwner)
	require.NotNil(t, view.ReadyAt)
	assert.Len(t, view.PlayerTeam, game.TeamSize)

	ids := make([]string, 0, len(view.EnemyTeam))
	for _, c := range view.EnemyTeam {
		assert.True(t, strings.HasPrefix(c.ID, enemyIDPrefix), c.ID)
		assert.Equal(t, c.MaxHealth, c.Health)
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)
	assert.Equal(t, []string{"enemy-earth-bear", "enemy-ice-wolf", "enemy-nature-deer"}, ids)
}

func TestStartMatchFallsBackToWholeCatalog(t *testing.T) {
	cat := &fakeCatalog{chars: arenaCatalog().chars[:4]}
	svc := New(cat, Options{Seed: 3, Clock: newFakeClock()})

	view, err := svc.StartMatch(context.Background(), playerPicks)
	require.NoError(t, err)
	assert.Len(t, view.EnemyTeam, game.TeamSize)

	tiny := New(&fakeCatalog{chars: arenaCatalog().chars[:3]}, Options{Seed: 3, Clock: newFakeClock()})
	view, err = tiny.StartMatch(context.Background(), playerPicks)
	require.NoError(t, err, "a three character catalog mirrors the player team")
	assert.Len(t, view.EnemyTeam, game.TeamSize)
}

func TestStartMatchUsesConfiguredEnemyTeam(t *testing.T) {
	enemies := []game.Character{
		character("enemy-shadow-panther", "Shadow", game.ElementFire, 85, 95, ability("shadow-strike", "Shadow Strike", 32, 22)),
		character("crystal-serpent", "Crystal", game.ElementIce, 110, 85, ability("crystal-blast", "Crystal Blast", 28, 20)),
		character("enemy-storm-hawk", "Storm", game.ElementAir, 75, 115, ability("storm-dive", "Storm Dive", 38, 30)),
	}
	enemies[0].Health = 1
	svc := newTestService(newFakeClock(), func(o *Options) { o.EnemyTeam = enemies })

	view, err := svc.StartMatch(context.Background(), playerPicks)
	require.NoError(t, err)
	require.Len(t, view.EnemyTeam, 3)
	assert.Equal(t, "enemy-shadow-panther", view.EnemyTeam[0].ID)
	assert.Equal(t, "enemy-crystal-serpent", view.EnemyTeam[1].ID)
	assert.Equal(t, 85, view.EnemyTeam[0].Health)
	assert.Equal(t, "crystal-serpent", enemies[1].ID, "configured roster is not modified")
}

func TestStartMatchWithoutPrepareDelayBeginsAtOnce(t *testing.T) {
	svc := newTestService(newFakeClock(), func(o *Options) { o.PrepareDelay = 0 })
	view, err := svc.StartMatch(context.Background(), playerPicks)
	require.NoError(t, err)
	assert.Equal(t, game.StatusActive, view.Status)
	assert.Nil(t, view.ReadyAt)
	assert.True(t, view.PlayerCanAct)
}

func TestTeamSummary(t *testing.T) {
	svc := newTestService(newFakeClock())
	ctx := context.Background()

	s, err := svc.TeamSummary(ctx, []string{"fire-fox", "water-turtle"})
	require.NoError(t, err)
	assert.Equal(t, game.TeamSummary{Size: 2, TotalHealth: 250, TotalEnergy: 180, AverageDamage: 19}, s)

	empty, err := svc.TeamSummary(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Size)

	_, err = svc.TeamSummary(ctx, []string{"fire-fox", "ice-wolf", "earth-bear", "nature-deer"})
	assert.ErrorIs(t, err, ErrTeamSize)
	_, err = svc.TeamSummary(ctx, []string{"ice-wolf", "ice-wolf"})
	assert.ErrorIs(t, err, ErrDuplicateCharacter)
	_, err = svc.TeamSummary(ctx, []string{"kraken"})
	assert.ErrorIs(t, err, ErrUnknownCharacter)
}

func TestCharacters(t *testing.T) {
	svc := newTestService(newFakeClock())
	chars, err := svc.Characters(context.Background())
	require.NoError(t, err)
	assert.Len(t, chars, 6)
}
