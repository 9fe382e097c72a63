// Package store is the sole owner of entity persistence. It enforces
// required-field presence, parent/child ownership, and the cascading delete
// rules for the Area -> Project -> Task -> Subtask tree. Cascades are
// explicit recursive traversals inside a single transaction rather than
// schema-level constraints, so the invariant stays auditable regardless of
// which database driver is in use.
package store

import (
	"context"
	"errors"
	"fmt"

	"planner/backend/internal/config"
	"planner/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	// ErrNotFound reports that the requested id (or a required ancestor)
	// does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrValidation reports a missing required field on create.
	ErrValidation = errors.New("missing required field")
)

type Store struct {
	db *gorm.DB
}

// Open connects to the configured database, runs migrations for the four
// entity tables and applies the connection pool settings.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Area{},
		&models.Project{},
		&models.Task{},
		&models.Subtask{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
