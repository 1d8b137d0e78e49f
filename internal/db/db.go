package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"training-schedule-backend/config"
	"training-schedule-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	if cfg.EnableRangeGuard {
		log.Println("Range guard is enabled, applying exclusion-constraint DDL...")
		if err := applyRangeGuardDDL(db); err != nil {
			return nil, err
		}
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate creates or updates the schema for all entities. Split out so tests
// can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Class{},
		&model.Module{},
		&model.Trainer{},
		&model.Room{},
		&model.Assignment{},
		&model.Session{},
		&model.Availability{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

// applyRangeGuardDDL installs a Postgres exclusion constraint that rejects
// overlapping session ranges per room. It backs up the serializable
// check-then-insert transaction on the room axis; the trainer axis resolves
// through the assignments join and is covered by the transaction alone.
func applyRangeGuardDDL(db *gorm.DB) error {
	ddls := []string{
		"CREATE EXTENSION IF NOT EXISTS btree_gist;",

		// DO blocks keep the DDL idempotent across restarts.
		"DO $$ BEGIN " +
			"ALTER TABLE sessions ADD CONSTRAINT sessions_window_valid CHECK (start_at < end_at); " +
			"EXCEPTION WHEN duplicate_object THEN NULL; END $$;",

		// Closed-open ranges: sessions touching at a boundary do not collide.
		"DO $$ BEGIN " +
			"ALTER TABLE sessions ADD CONSTRAINT sessions_room_no_overlap EXCLUDE USING GIST " +
			"(room_id WITH =, tstzrange(start_at, end_at, '[)') WITH &&); " +
			"EXCEPTION WHEN duplicate_object THEN NULL; END $$;",

		"CREATE INDEX IF NOT EXISTS idx_sessions_room_start ON sessions (room_id, start_at);",
	}

	for _, ddl := range ddls {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("DDL failed on %q: %w", ddl, err)
		}
	}
	return nil
}
