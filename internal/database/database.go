package database

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm handle together with the settings it was opened
// with.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens a Postgres connection pool sized per the config and
// verifies it with a ping before handing it out.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Timestamps are stored in UTC regardless of server locale.
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, config: cfg}, nil
}

// AutoMigrate creates or updates the schema for every persisted model.
// Used as a fallback when SQL migrations are unavailable.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Budget{},
		&models.CategoryAllocation{},
		&models.Transaction{},
		&models.RecurringSeries{},
		&models.SavingsGoal{},
		&models.Notification{},
		&models.ThresholdState{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the underlying connection pool.
func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Transaction runs fn inside a database transaction.
func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// hotPathIndexes back the queries the services issue most: per-user
// listings, the budget-month lookup, the recurring due scan, and the
// unread notification feed.
var hotPathIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_allocations_budget_id ON category_allocations(budget_id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_goal_id ON transactions(goal_id) WHERE goal_id IS NOT NULL",
	"CREATE INDEX IF NOT EXISTS idx_recurring_series_user_id ON recurring_series(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_recurring_series_status_day ON recurring_series(status, recurring_day)",
	"CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_notifications_user_unread ON notifications(user_id, is_read) WHERE is_read = false",
	"CREATE INDEX IF NOT EXISTS idx_savings_goals_user_id ON savings_goals(user_id)",
}

// CreateIndexes applies the hot-path indexes. Failures are logged but
// not fatal since AutoMigrate already covers the unique constraints.
func (db *DB) CreateIndexes() error {
	for _, query := range hotPathIndexes {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err.Error())
		}
	}
	return nil
}

// Initialize opens the database and brings the schema up to date. SQL
// migrations run first when enabled; GORM AutoMigrate is the fallback.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Warn("Migration runner failed, falling back to AutoMigrate", "error", err.Error())
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err.Error())
	}

	slog.Info("Database initialized")
	return db.DB, nil
}
