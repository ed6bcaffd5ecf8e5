package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the SQLite database at dataSourceName and migrates the schema.
// The parent directory of a file path is created when missing.
func OpenDB(dataSourceName string) (*gorm.DB, error) {
	if !strings.HasPrefix(dataSourceName, "file:") && dataSourceName != ":memory:" {
		if dir := filepath.Dir(dataSourceName); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Room{}, &game.PlayerProfile{}); err != nil {
		return nil, err
	}
	return db, nil
}
