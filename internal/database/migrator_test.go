package database

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingableMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fastRunner keeps the retry loop short enough for tests.
func fastRunner(db *sql.DB, attempts int) *MigrationRunner {
	runner := NewMigrationRunner(db)
	runner.pingAttempts = attempts
	runner.pingInterval = 10 * time.Millisecond
	return runner
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewMigrationRunner_Defaults(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
	assert.Equal(t, defaultPingAttempts, runner.pingAttempts)
	assert.Equal(t, defaultPingInterval, runner.pingInterval)
}

func TestWaitForDatabase_ReadyImmediately(t *testing.T) {
	db, mock := newPingableMock(t)
	mock.ExpectPing().WillReturnError(nil)

	assert.NoError(t, fastRunner(db, 2).WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_RecoversAfterFailedPing(t *testing.T) {
	db, mock := newPingableMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	assert.NoError(t, fastRunner(db, 3).WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_GivesUpAfterBudget(t *testing.T) {
	db, mock := newPingableMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := fastRunner(db, 2).WaitForDatabase()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestWaitForDatabase_SleepsBetweenAttempts(t *testing.T) {
	db, mock := newPingableMock(t)
	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(nil)

	runner := fastRunner(db, 4)
	runner.pingInterval = 50 * time.Millisecond

	start := time.Now()
	assert.NoError(t, runner.WaitForDatabase())
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestRunMigrations_MissingDirectoryIsNotFatal(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = "/nonexistent/path/to/migrations"

	assert.NoError(t, runner.RunMigrations())
}

func TestLoadSeeds_SkippedWhenDisabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "false")

	assert.NoError(t, NewMigrationRunner(db).LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_MissingDirectoryIsNotFatal(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunner(db)
	runner.seedsPath = "/nonexistent/seeds/path"

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_EmptyDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunner(db)
	runner.seedsPath = t.TempDir()

	assert.NoError(t, runner.LoadSeeds())
}

func TestLoadSeeds_ExecutesSQLFiles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	writeSeedFile(t, dir, "001_goals.sql", `
INSERT INTO savings_goals (id, user_id, name, target_base_amount, current_base_amount)
VALUES ('a0000000-0000-0000-0000-000000000001', 'a0000000-0000-0000-0000-000000000002', 'Emergency fund', 50000000, 0)
ON CONFLICT DO NOTHING;
`)

	t.Setenv("SEED_DATABASE", "true")
	mock.ExpectExec("INSERT INTO savings_goals").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db)
	runner.seedsPath = dir

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ContinuesPastFailingFile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	writeSeedFile(t, dir, "001_bad.sql", "INSERT INTO nonexistent_table VALUES (1);")
	writeSeedFile(t, dir, "002_good.sql", "INSERT INTO savings_goals VALUES ('test');")

	t.Setenv("SEED_DATABASE", "true")
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO savings_goals").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db)
	runner.seedsPath = dir

	assert.NoError(t, runner.LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_UnreadableFileIsFatal(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	// A directory with a .sql suffix cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_invalid.sql"), 0755))

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunner(db)
	runner.seedsPath = dir

	err = runner.LoadSeeds()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed file")
}

func TestGetMigrationStatus_MissingDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = "/nonexistent/migrations"

	_, _, err = runner.GetMigrationStatus()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(db))
}
