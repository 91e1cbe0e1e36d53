package service

import (
	"context"
	"errors"
	"time"

	"cityhive/core"
	"cityhive/metrics"
	"cityhive/storage"

	"go.uber.org/zap"
)

// Business policy constants, kept in one place so they are easy to revisit.
const (
	maxScheduleAheadDays = 365
	maxNotesLength       = 1000
	maxNameLength        = 100
	maxFrameTypeLength   = 50
)

// InspectionStorage defines the inspection storage operations needed by the
// service.
type InspectionStorage interface {
	CreateInspection(ctx context.Context, inspection *core.Inspection) error
	GetInspectionByID(ctx context.Context, id int64) (*core.Inspection, error)
	GetInspectionsByHiveID(ctx context.Context, hiveID int64) ([]core.Inspection, error)
}

// HiveFinder defines the hive lookup needed to verify the inspected hive.
type HiveFinder interface {
	GetHiveByID(ctx context.Context, id int64) (*core.Hive, error)
}

// InspectionService holds the business logic for inspection scheduling.
type InspectionService struct {
	inspections InspectionStorage
	hives       HiveFinder
	logger      *zap.SugaredLogger
	// now is swappable for deterministic schedule tests.
	now func() time.Time
}

// NewInspectionService creates a new InspectionService instance.
func NewInspectionService(inspections InspectionStorage, hives HiveFinder, logger *zap.SugaredLogger) *InspectionService {
	if inspections == nil {
		panic("inspections storage is required")
	}
	if hives == nil {
		panic("hives finder is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &InspectionService{
		inspections: inspections,
		hives:       hives,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateInspection verifies the hive exists, validates the schedule, and
// persists the inspection. The hive check runs first: a missing hive is
// reported as NotFound even when the schedule is also invalid.
func (s *InspectionService) CreateInspection(ctx context.Context, input core.InspectionCreationInput) core.CreationResult[core.Inspection] {
	s.logger.Infow("Starting inspection creation",
		"hive_id", input.HiveID,
		"scheduled_for", input.ScheduledFor.Format("2006-01-02"),
		"has_notes", input.Notes != "")

	if _, err := s.hives.GetHiveByID(ctx, input.HiveID); err != nil {
		if errors.Is(err, storage.ErrHiveNotFound) {
			s.logger.Warnw("Inspection creation failed - hive not found",
				"hive_id", input.HiveID)
			return s.fail(core.ErrorKindNotFound, "Hive not found")
		}
		s.logger.Errorw("Failed to look up hive for inspection creation",
			"hive_id", input.HiveID,
			"error", err)
		return s.fail(core.ErrorKindDependencyFailure, "Internal server error during inspection creation")
	}

	today := dateOnly(s.now().UTC())
	scheduled := dateOnly(input.ScheduledFor)

	if scheduled.Before(today) {
		s.logger.Warnw("Inspection scheduled in the past",
			"hive_id", input.HiveID,
			"scheduled_for", scheduled.Format("2006-01-02"))
		return s.fail(core.ErrorKindInvalidInput, "Scheduled date cannot be in the past")
	}
	if scheduled.After(today.AddDate(0, 0, maxScheduleAheadDays)) {
		s.logger.Warnw("Inspection scheduled too far in the future",
			"hive_id", input.HiveID,
			"scheduled_for", scheduled.Format("2006-01-02"),
			"days_ahead", int(scheduled.Sub(today).Hours()/24))
		return s.fail(core.ErrorKindInvalidInput, "Inspection cannot be scheduled more than 1 year in advance")
	}

	if result := core.ValidateMaxLength(input.Notes, "Notes", maxNotesLength); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}
	var notes *string
	if input.Notes != "" {
		notes = &input.Notes
	}

	inspection := &core.Inspection{
		HiveID:       input.HiveID,
		ScheduledFor: scheduled,
		Notes:        notes,
	}

	if err := s.inspections.CreateInspection(ctx, inspection); err != nil {
		if errors.Is(err, storage.ErrConstraintViolation) {
			s.logger.Errorw("Database integrity error during inspection creation",
				"hive_id", input.HiveID,
				"scheduled_for", scheduled.Format("2006-01-02"),
				"error", err)
			return s.fail(core.ErrorKindConflict, "Inspection creation failed due to data conflict")
		}
		s.logger.Errorw("Unexpected error during inspection creation",
			"hive_id", input.HiveID,
			"error", err)
		return s.fail(core.ErrorKindUnknown, "Internal server error during inspection creation")
	}

	s.logger.Infow("Inspection creation successful",
		"inspection_id", inspection.ID,
		"hive_id", inspection.HiveID,
		"scheduled_for", inspection.ScheduledFor.Format("2006-01-02"))

	metrics.EntityCreations.WithLabelValues("inspection", "success").Inc()
	return core.CreationSucceeded(inspection)
}

// GetInspectionByID retrieves an inspection by ID, or nil if none matches.
func (s *InspectionService) GetInspectionByID(ctx context.Context, id int64) (*core.Inspection, error) {
	inspection, err := s.inspections.GetInspectionByID(ctx, id)
	if errors.Is(err, storage.ErrInspectionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return inspection, nil
}

// GetInspectionsByHiveID retrieves all inspections for a hive.
func (s *InspectionService) GetInspectionsByHiveID(ctx context.Context, hiveID int64) ([]core.Inspection, error) {
	return s.inspections.GetInspectionsByHiveID(ctx, hiveID)
}

func (s *InspectionService) fail(kind core.CreationErrorKind, message string) core.CreationResult[core.Inspection] {
	metrics.EntityCreations.WithLabelValues("inspection", string(kind)).Inc()
	return core.CreationFailed[core.Inspection](kind, message)
}

// dateOnly truncates a time to midnight UTC, date precision.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
