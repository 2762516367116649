package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/nutriscope/backend/internal/model"
)

// ErrNoMigrations is returned by RollbackLast when nothing has been applied.
var ErrNoMigrations = errors.New("no migrations to roll back")

// RunMigrations executes all SQL migration files in migrationsDir. SQLite and an
// empty directory argument fall back to gorm auto-migration.
func RunMigrations(db *gorm.DB, migrationsDir string) error {
	if db.Dialector.Name() == "sqlite" || migrationsDir == "" {
		slog.Debug("Using GORM auto-migration", slog.String("dialect", db.Dialector.Name()))
		return db.AutoMigrate(model.All()...)
	}

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	// Sort files by name to ensure correct order
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, file := range files {
		if !isMigration(file) {
			continue
		}

		applied, err := migrationApplied(db, file.Name())
		if err != nil {
			return err
		}
		if applied {
			slog.Debug("Skipping migration", slog.String("name", file.Name()))
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file.Name(), err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(content)).Error; err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", file.Name(), err)
			}
			if err := tx.Exec("INSERT INTO migrations (name) VALUES (?)", file.Name()).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", file.Name(), err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		slog.Info("Applied migration", slog.String("name", file.Name()))
	}

	return nil
}

const rollbackSuffix = "_rollback.sql"

func isMigration(file os.DirEntry) bool {
	name := file.Name()
	return !file.IsDir() && strings.HasSuffix(name, ".sql") && !strings.HasSuffix(name, rollbackSuffix)
}

// RollbackLast reverts the most recently applied migration using its
// <name>_rollback.sql companion and returns the reverted migration name.
func RollbackLast(db *gorm.DB, migrationsDir string) (string, error) {
	var name string
	err := db.Table("migrations").Select("name").Order("applied_at DESC, id DESC").Limit(1).Scan(&name).Error
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}
	if name == "" {
		return "", ErrNoMigrations
	}

	path := filepath.Join(migrationsDir, strings.TrimSuffix(name, ".sql")+rollbackSuffix)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read rollback file %s: %w", path, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(string(content)).Error; err != nil {
			return fmt.Errorf("failed to execute rollback %s: %w", path, err)
		}
		return tx.Exec("DELETE FROM migrations WHERE name = ?", name).Error
	})
	if err != nil {
		return "", err
	}
	slog.Info("Rolled back migration", slog.String("name", name))
	return name, nil
}

func migrationApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Table("migrations").Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}
