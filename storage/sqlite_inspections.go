package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cityhive/core"

	"go.uber.org/zap"
)

// scheduledForLayout stores inspection dates with date precision only.
const scheduledForLayout = "2006-01-02"

// SQLiteInspectionStorage implements inspection persistence on SQLite.
type SQLiteInspectionStorage struct {
	sqlite *SQLite
	logger *zap.SugaredLogger
}

// NewSQLiteInspectionStorage creates a new SQLite-based inspection storage.
func NewSQLiteInspectionStorage(sqlite *SQLite, logger *zap.SugaredLogger) *SQLiteInspectionStorage {
	return &SQLiteInspectionStorage{
		sqlite: sqlite,
		logger: logger,
	}
}

// CreateInspection inserts a new inspection and fills in its generated ID
// and timestamp. A missing hive surfaces as ErrConstraintViolation via the
// foreign key.
func (sis *SQLiteInspectionStorage) CreateInspection(ctx context.Context, inspection *core.Inspection) error {
	inspection.CreatedAt = time.Now().UTC()

	var notes any
	if inspection.Notes != nil {
		notes = *inspection.Notes
	}

	result, err := sis.sqlite.DB.ExecContext(ctx,
		`INSERT INTO inspections (hive_id, scheduled_for, notes, created_at) VALUES (?, ?, ?, ?)`,
		inspection.HiveID, inspection.ScheduledFor.Format(scheduledForLayout),
		notes, inspection.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert inspection: %w", translateConstraintError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted inspection id: %w", err)
	}
	inspection.ID = id

	return nil
}

// GetInspectionByID retrieves an inspection by ID. Returns
// ErrInspectionNotFound if no row matches.
func (sis *SQLiteInspectionStorage) GetInspectionByID(ctx context.Context, id int64) (*core.Inspection, error) {
	rows, err := sis.sqlite.DB.QueryContext(ctx,
		`SELECT id, hive_id, scheduled_for, notes, created_at FROM inspections WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query inspection: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query inspection: %w", err)
		}
		return nil, ErrInspectionNotFound
	}
	return scanInspection(rows)
}

// GetInspectionsByHiveID retrieves all inspections for a hive, oldest first.
func (sis *SQLiteInspectionStorage) GetInspectionsByHiveID(ctx context.Context, hiveID int64) ([]core.Inspection, error) {
	rows, err := sis.sqlite.DB.QueryContext(ctx,
		`SELECT id, hive_id, scheduled_for, notes, created_at
		 FROM inspections WHERE hive_id = ? ORDER BY id`, hiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inspections: %w", err)
	}
	defer rows.Close()

	inspections := []core.Inspection{}
	for rows.Next() {
		inspection, err := scanInspection(rows)
		if err != nil {
			return nil, err
		}
		inspections = append(inspections, *inspection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inspections: %w", err)
	}
	return inspections, nil
}

func scanInspection(rows *sql.Rows) (*core.Inspection, error) {
	var inspection core.Inspection
	var scheduledFor, createdAt string
	var notes sql.NullString

	err := rows.Scan(&inspection.ID, &inspection.HiveID, &scheduledFor, &notes, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan inspection: %w", err)
	}

	if notes.Valid {
		inspection.Notes = &notes.String
	}

	inspection.ScheduledFor, err = time.Parse(scheduledForLayout, scheduledFor)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inspection scheduled_for: %w", err)
	}
	inspection.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inspection created_at: %w", err)
	}

	return &inspection, nil
}
