package db

import (
	"fmt"
	"os"
	"path/filepath"

	"testdesk/config"
	"testdesk/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

// Connect opens the local database (sqlite3 by default) and migrates the
// session and toast tables. Only BFF state lives here; domain data stays in
// the REST backend.
func Connect(conf config.Configuration, logger *zap.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch conf.Database {
	case "postgres", "postgresql":
		logger.Info("connecting to postgresql", zap.String("host", conf.DbHost), zap.String("db", conf.DbName))
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	default:
		logger.Info("connecting to sqlite3", zap.String("path", conf.DbPath))
		if conf.DbPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(conf.DbPath), 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		db, err = gorm.Open("sqlite3", conf.DbPath)
		if err == nil {
			// one connection keeps :memory: databases shared and avoids sqlite write locks
			db.DB().SetMaxOpenConns(1)
		}
	}
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	db.LogMode(conf.LogLevel == "debug")

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Session{}, &models.Toast{}).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
