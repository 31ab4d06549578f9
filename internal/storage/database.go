package storage

import (
	"fmt"

	"github.com/MohcineSafi/Battle-Arena/internal/constants"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the catalog database, migrates the schema and syncs
// the character templates with the configured characters.
func OpenAndMigrate(dataSourceName string, charactersFromConfig []game.Character) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.CharacterTemplate{}, &game.AbilityTemplate{}); err != nil {
		return nil, err
	}
	if err := seedCharacters(db, charactersFromConfig); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return db, nil
}

// seedCharacters upserts every configured character and removes rows the
// config no longer lists. The config file is the single source of truth for
// stats, so rows are rewritten on every start.
func seedCharacters(db *gorm.DB, characters []game.Character) error {
	if len(characters) == 0 {
		return nil
	}
	templates := make([]game.CharacterTemplate, 0, len(characters))
	abilities := make([]game.AbilityTemplate, 0, len(characters)*3)
	ids := make([]string, 0, len(characters))
	for i, c := range characters {
		t := game.TemplateFromCharacter(c, i)
		abilities = append(abilities, t.Abilities...)
		t.Abilities = nil
		templates = append(templates, t)
		ids = append(ids, c.ID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id NOT IN ?", ids).Delete(&game.CharacterTemplate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("character_id NOT IN ?", ids).Delete(&game.AbilityTemplate{}).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{UpdateAll: true}).Create(&templates).Error; err != nil {
			return err
		}
		if len(abilities) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&abilities).Error; err != nil {
				return err
			}
		}
		for _, c := range characters {
			if err := tx.Where("character_id = ? AND position >= ?", c.ID, len(c.Abilities)).Delete(&game.AbilityTemplate{}).Error; err != nil {
				return err
			}
		}
		logging.Info("catalog seeded", logging.Fields{constants.LogFieldCount: len(templates)})
		return nil
	})
}
