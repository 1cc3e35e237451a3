package database

import (
	"fmt"
	"log/slog"
	"strings"

	"filmhub/internal/api/models"
	"filmhub/internal/config"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// ConnectDB opens the database named by DATABASE_URL and brings the schema
// up to date. A postgres:// URL gets the real driver; anything else is
// treated as a sqlite path, which keeps local development dependency-free.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := open(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Info("Connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logger.Info("Using SQLite for local development", "path", dsn)
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Genre{},
		&models.Film{},
		&models.FilmImage{},
		&models.FilmGenre{},
		&models.UserFilm{},
		&models.Review{},
		&models.Reaction{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
