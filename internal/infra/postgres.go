package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jaktrip/internal/config"
	"jaktrip/internal/models/db_models"
	"jaktrip/pkg/logger"
)

// InitPostgresql opens the pool, applies the pool limits and migrates the
// schema when enabled.
func InitPostgresql(cfg config.DatabaseConfig) (*gorm.DB, error) {
	log := logger.GetLogger()

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Errorw("Error connecting to database", "error", err, "dsn", logger.MaskConnectionString(cfg.URL))
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := ConfigurePool(db, cfg); err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Infow("PostgreSQL connection established", "dsn", logger.MaskConnectionString(cfg.URL))
	return db, nil
}

func ConfigurePool(db *gorm.DB, cfg config.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLife > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLife)
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Destination{},
		&db_models.SavedRundown{},
		&db_models.SavedRundownItem{},
	); err != nil {
		logger.GetLogger().Errorw("Auto migration failed", "error", err)
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	log := logger.GetLogger()
	sqlDB, err := db.DB()
	if err != nil {
		log.Errorw("Error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Errorw("Error closing database connection", "error", err)
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		logger.GetLogger().Errorw("Error starting transaction", "error", tx.Error)
	}
	return tx
}

// ReleaseTransaction rolls back when err is set and commits otherwise. It
// returns err, or the commit error.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	log := logger.GetLogger()
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Errorw("Error rolling back transaction", "error", rollbackErr, "cause", err)
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		log.Errorw("Error committing transaction", "error", commitErr)
		return commitErr
	}
	return nil
}
