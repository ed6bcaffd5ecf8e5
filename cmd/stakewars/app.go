package main

import (
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/config"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid stakewars configuration", err, logging.Fields{"config_path": path, "hint": "create a stakewars_config.json with a 'character_list' array of characters (id,name,health,abilities[{name,type,value,defenseType}]) and optional keys: server.address, combat{crit_chance_percent,crit_multiplier,defenses}, turn_timeout_seconds, dice_cooldown_ms, public_rooms_ttl_minutes"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, publicRoomsTTL time.Duration) storage.Repository {
	db, err := storage.OpenDB(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db, publicRoomsTTL)
}
