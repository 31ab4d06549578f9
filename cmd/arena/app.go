package main

import (
	"os"
	"path/filepath"

	"github.com/MohcineSafi/Battle-Arena/internal/config"
	"github.com/MohcineSafi/Battle-Arena/internal/game"
	"github.com/MohcineSafi/Battle-Arena/internal/logging"
	"github.com/MohcineSafi/Battle-Arena/internal/storage"
)

func loadConfigOrExit(env config.Env) *config.LoadedConfig {
	cfg, err := config.LoadConfig(env.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{
			"config_path": env.ConfigPath,
			"hint":        "create an arena_config.yaml with a 'character_list' array (id,name,element,max_health,max_energy,abilities[id,name,damage,energy_cost]) and optional keys: enemy_team, server.address, battle",
		})
	}
	env.Apply(cfg)
	return cfg
}

func createRepositoryOrExit(dbPath string, characters []game.Character) storage.Repository {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{"dir": dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath, characters)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
