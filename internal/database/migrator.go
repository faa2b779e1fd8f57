package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"

	defaultPingAttempts = 30
	defaultPingInterval = 2 * time.Second
)

// MigrationRunner applies schema migrations and optional seed data
// against a raw *sql.DB connection.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	pingAttempts   int
	pingInterval   time.Duration
}

// NewMigrationRunner returns a runner bound to the default migration
// and seed directories.
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
		pingAttempts:   defaultPingAttempts,
		pingInterval:   defaultPingInterval,
	}
}

// WaitForDatabase pings until the database answers or the attempt
// budget runs out. Containers routinely start before Postgres accepts
// connections.
func (mr *MigrationRunner) WaitForDatabase() error {
	attempts := mr.pingAttempts
	if attempts <= 0 {
		attempts = defaultPingAttempts
	}
	interval := mr.pingInterval
	if interval <= 0 {
		interval = defaultPingInterval
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := mr.db.Ping(); err == nil {
			slog.Info("Database is ready", "attempt", attempt)
			return nil
		} else {
			slog.Warn("Database not ready", "attempt", attempt, "max_attempts", attempts, "error", err.Error())
		}
		time.Sleep(interval)
	}

	return fmt.Errorf("database not ready after %d attempts", attempts)
}

// openMigrate builds a migrate instance over the runner's migrations
// directory.
func (mr *MigrationRunner) openMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending migration. A dirty version left
// by a crashed run is forced back to a clean state first.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Info("Migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.openMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		slog.Warn("Database is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
	}

	switch err := m.Up(); err {
	case nil:
		newVersion, _, verr := m.Version()
		if verr != nil {
			return fmt.Errorf("read migration version after apply: %w", verr)
		}
		slog.Info("Migrations applied", "from_version", version, "to_version", newVersion)
	case migrate.ErrNoChange:
		slog.Info("No new migrations to apply", "version", version)
	default:
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// LoadSeeds executes the SQL files under the seeds directory when
// SEED_DATABASE=true. A failing seed file is logged and skipped so one
// bad fixture does not block the rest.
func (mr *MigrationRunner) LoadSeeds() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		slog.Info("Seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Info("Seeds directory not found, skipping", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("list seed files: %w", err)
	}
	if len(files) == 0 {
		slog.Info("No seed files found", "path", mr.seedsPath)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			slog.Warn("Seed file failed, continuing", "file", filepath.Base(file), "error", err.Error())
			continue
		}
		slog.Info("Seed file applied", "file", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus reports the current schema version and whether it
// is dirty.
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.openMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled is the startup hook: when AUTO_MIGRATE=true it
// waits for the database, applies migrations, and loads seed data.
// Seed failures are not fatal.
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		slog.Info("Auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	if err := runner.LoadSeeds(); err != nil {
		slog.Warn("Seed data loading failed", "error", err.Error())
	}

	if version, dirty, err := runner.GetMigrationStatus(); err != nil {
		slog.Warn("Failed to read migration status", "error", err.Error())
	} else {
		slog.Info("Migration status", "version", version, "dirty", dirty)
	}

	return nil
}
