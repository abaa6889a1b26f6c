package db

import (
	"discussion/internal/app/comment"
	"discussion/internal/app/participant"
	"discussion/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()

	logLevel := gormlogger.Warn
	if cfg.Env == "dev" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

// Migrate creates or updates the comment and participant tables.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	models := []interface{}{
		&participant.Participant{},
		&participant.ThreadMember{},
		&comment.Comment{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}
	logger.Info("Database schema migrated", zap.Int("models", len(models)))
	return nil
}
