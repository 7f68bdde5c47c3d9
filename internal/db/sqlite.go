package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mesa-ledger/internal/config/configs"
)

// NewSQLite opens the embedded database at cfg.Path. Foreign keys are
// enforced and gorm's own logging is silenced.
func NewSQLite(cfg configs.SQLite) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
