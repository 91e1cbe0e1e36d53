package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cityhive/core"

	"go.uber.org/zap"
)

// SQLiteHiveStorage implements hive persistence on SQLite. Location is
// stored as plain latitude/longitude columns; both are set or both are NULL.
type SQLiteHiveStorage struct {
	sqlite *SQLite
	logger *zap.SugaredLogger
}

// NewSQLiteHiveStorage creates a new SQLite-based hive storage.
func NewSQLiteHiveStorage(sqlite *SQLite, logger *zap.SugaredLogger) *SQLiteHiveStorage {
	return &SQLiteHiveStorage{
		sqlite: sqlite,
		logger: logger,
	}
}

// CreateHive inserts a new hive and fills in its generated ID and timestamp.
// A missing user surfaces as ErrConstraintViolation via the foreign key.
func (shs *SQLiteHiveStorage) CreateHive(ctx context.Context, hive *core.Hive) error {
	hive.CreatedAt = time.Now().UTC()

	var latitude, longitude any
	if hive.Location != nil {
		latitude = hive.Location.Latitude
		longitude = hive.Location.Longitude
	}
	var frameType any
	if hive.FrameType != nil {
		frameType = *hive.FrameType
	}

	result, err := shs.sqlite.DB.ExecContext(ctx,
		`INSERT INTO hives (user_id, name, latitude, longitude, frame_type, installed_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		hive.UserID, hive.Name, latitude, longitude, frameType,
		hive.InstalledAt.Format(time.RFC3339Nano), hive.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert hive: %w", translateConstraintError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted hive id: %w", err)
	}
	hive.ID = id

	return nil
}

// GetHiveByID retrieves a hive by ID. Returns ErrHiveNotFound if no row
// matches.
func (shs *SQLiteHiveStorage) GetHiveByID(ctx context.Context, id int64) (*core.Hive, error) {
	rows, err := shs.sqlite.DB.QueryContext(ctx,
		`SELECT id, user_id, name, latitude, longitude, frame_type, installed_at, created_at
		 FROM hives WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query hive: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query hive: %w", err)
		}
		return nil, ErrHiveNotFound
	}
	return scanHive(rows)
}

// GetHivesByUserID retrieves all hives owned by a user, oldest first.
func (shs *SQLiteHiveStorage) GetHivesByUserID(ctx context.Context, userID int64) ([]core.Hive, error) {
	rows, err := shs.sqlite.DB.QueryContext(ctx,
		`SELECT id, user_id, name, latitude, longitude, frame_type, installed_at, created_at
		 FROM hives WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query hives: %w", err)
	}
	defer rows.Close()

	hives := []core.Hive{}
	for rows.Next() {
		hive, err := scanHive(rows)
		if err != nil {
			return nil, err
		}
		hives = append(hives, *hive)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hives: %w", err)
	}
	return hives, nil
}

func scanHive(rows *sql.Rows) (*core.Hive, error) {
	var hive core.Hive
	var latitude, longitude sql.NullFloat64
	var frameType sql.NullString
	var installedAt, createdAt string

	err := rows.Scan(&hive.ID, &hive.UserID, &hive.Name,
		&latitude, &longitude, &frameType, &installedAt, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan hive: %w", err)
	}

	if latitude.Valid && longitude.Valid {
		hive.Location = &core.Location{
			Latitude:  latitude.Float64,
			Longitude: longitude.Float64,
		}
	}
	if frameType.Valid {
		hive.FrameType = &frameType.String
	}

	hive.InstalledAt, err = time.Parse(time.RFC3339Nano, installedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hive installed_at: %w", err)
	}
	hive.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hive created_at: %w", err)
	}

	return &hive, nil
}
