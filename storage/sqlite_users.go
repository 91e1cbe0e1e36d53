package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cityhive/core"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SQLiteUserStorage implements user persistence on SQLite.
type SQLiteUserStorage struct {
	sqlite *SQLite
	logger *zap.SugaredLogger
}

// NewSQLiteUserStorage creates a new SQLite-based user storage.
func NewSQLiteUserStorage(sqlite *SQLite, logger *zap.SugaredLogger) *SQLiteUserStorage {
	return &SQLiteUserStorage{
		sqlite: sqlite,
		logger: logger,
	}
}

// CreateUser inserts a new user and fills in its generated ID and timestamp.
// A duplicate email surfaces as ErrConstraintViolation.
func (sus *SQLiteUserStorage) CreateUser(ctx context.Context, user *core.User) error {
	user.CreatedAt = time.Now().UTC()

	result, err := sus.sqlite.DB.ExecContext(ctx,
		`INSERT INTO users (name, email, api_key, created_at) VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, user.APIKey.String(), user.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", translateConstraintError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted user id: %w", err)
	}
	user.ID = id

	return nil
}

// UserExistsByEmail reports whether a user with the given email exists.
func (sus *SQLiteUserStorage) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var one int
	err := sus.sqlite.DB.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE email = ?`, email).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return true, nil
}

// GetUserByID retrieves a user by ID. Returns ErrUserNotFound if no row
// matches.
func (sus *SQLiteUserStorage) GetUserByID(ctx context.Context, id int64) (*core.User, error) {
	row := sus.sqlite.DB.QueryRowContext(ctx,
		`SELECT id, name, email, api_key, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByEmail retrieves a user by email. Returns ErrUserNotFound if no
// row matches.
func (sus *SQLiteUserStorage) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	row := sus.sqlite.DB.QueryRowContext(ctx,
		`SELECT id, name, email, api_key, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*core.User, error) {
	var user core.User
	var apiKey, createdAt string

	err := row.Scan(&user.ID, &user.Name, &user.Email, &apiKey, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.APIKey, err = uuid.Parse(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user api key: %w", err)
	}
	user.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user created_at: %w", err)
	}

	return &user, nil
}
