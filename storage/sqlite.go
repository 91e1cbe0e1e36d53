package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite holds the database connection for all persistent storage.
type SQLite struct {
	DB     *sql.DB
	Path   string
	Logger *zap.SugaredLogger
}

// NewSQLite opens (creating if needed) the SQLite database at path, applies
// connection pragmas, and runs migrations.
func NewSQLite(path string, logger *zap.SugaredLogger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Single writer: SQLite serializes writes anyway, and a single
	// connection avoids SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := configureConnection(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{
		DB:     db,
		Path:   path,
		Logger: logger,
	}

	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Infow("SQLite database ready", "path", path)
	return s, nil
}

// configureConnection enables WAL mode, foreign keys, and a busy timeout.
func configureConnection(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite disables foreign keys by default; referential integrity for
	// hives and inspections depends on this pragma.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	var fkEnabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		return fmt.Errorf("failed to verify foreign keys: %w", err)
	}
	if fkEnabled != 1 {
		return fmt.Errorf("foreign keys not enabled (got: %d, expected: 1)", fkEnabled)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	s.DB = nil
	return err
}

// CheckConnectivity performs one trivial round trip against the database. It
// has no side effects and is the dependency accessor used by the health
// probe.
func (s *SQLite) CheckConnectivity(ctx context.Context) error {
	if s.DB == nil {
		return ErrDatabaseClosed
	}
	var one int
	if err := s.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database round trip failed: %w", err)
	}
	return nil
}

// translateConstraintError maps driver-level constraint failures onto
// ErrConstraintViolation so callers never have to inspect driver error text.
// Any other error passes through unchanged.
func translateConstraintError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed") ||
		strings.Contains(msg, "constraint failed") {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}
