package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogCharacter(id string, abilities ...string) game.Character {
	c := game.Character{
		ID:        id,
		Name:      id,
		Element:   game.ElementFire,
		MaxHealth: 100,
		MaxEnergy: 50,
		Rarity:    game.RarityCommon,
	}
	for i, a := range abilities {
		c.Abilities = append(c.Abilities, game.Ability{ID: a, Name: a, Damage: 10 + i, EnergyCost: 5})
	}
	return c
}

func openRepo(t *testing.T, path string, characters []game.Character) Repository {
	t.Helper()
	db, err := OpenAndMigrate(path, characters)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewSQLiteRepository(db)
}

func TestGetCharactersKeepsConfigOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.db")
	repo := openRepo(t, path, []game.Character{
		catalogCharacter("zeta", "z1", "z2"),
		catalogCharacter("alpha", "a1"),
		catalogCharacter("mid", "m1", "m2", "m3"),
	})

	got, err := repo.GetCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, []string{got[0].ID, got[1].ID, got[2].ID})

	mid := got[2]
	require.Len(t, mid.Abilities, 3)
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{mid.Abilities[0].ID, mid.Abilities[1].ID, mid.Abilities[2].ID})
	assert.Equal(t, 12, mid.Abilities[2].Damage)
	assert.Equal(t, mid.MaxHealth, mid.Health)
	assert.Equal(t, mid.MaxEnergy, mid.Energy)
}

func TestGetCharactersByIDs(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "arena.db"), []game.Character{
		catalogCharacter("a", "x"),
		catalogCharacter("b", "x"),
		catalogCharacter("c", "x"),
	})
	ctx := context.Background()

	got, err := repo.GetCharactersByIDs(ctx, []string{"c", "a"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	_, err = repo.GetCharactersByIDs(ctx, []string{"a", "ghost"})
	assert.ErrorIs(t, err, ErrCharacterNotFound)

	none, err := repo.GetCharactersByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReseedFollowsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.db")
	first := openRepo(t, path, []game.Character{
		catalogCharacter("a", "x", "y"),
		catalogCharacter("b", "x"),
	})
	got, err := first.GetCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	renamed := catalogCharacter("a", "x")
	renamed.Name = "Alpha"
	renamed.MaxHealth = 180
	second := openRepo(t, path, []game.Character{renamed, catalogCharacter("c", "q")})

	got, err = second.GetCharacters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, 180, got[0].MaxHealth)
	assert.Len(t, got[0].Abilities, 1, "abilities dropped from config are removed")
	assert.Equal(t, "c", got[1].ID)
}
