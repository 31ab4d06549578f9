package storage

import (
	"context"
	"fmt"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetCharacters(ctx context.Context) ([]game.Character, error) {
	var rows []game.CharacterTemplate
	if err := r.db.WithContext(ctx).Preload("Abilities").Order("sort_order").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]game.Character, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToCharacter())
	}
	return out, nil
}

func (r *sqliteRepository) GetCharactersByIDs(ctx context.Context, ids []string) ([]game.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []game.CharacterTemplate
	if err := r.db.WithContext(ctx).Preload("Abilities").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*game.CharacterTemplate, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	out := make([]game.Character, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
		}
		out = append(out, t.ToCharacter())
	}
	return out, nil
}
