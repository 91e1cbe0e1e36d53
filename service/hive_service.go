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

// HiveStorage defines the hive storage operations needed by the service.
type HiveStorage interface {
	CreateHive(ctx context.Context, hive *core.Hive) error
	GetHiveByID(ctx context.Context, id int64) (*core.Hive, error)
	GetHivesByUserID(ctx context.Context, userID int64) ([]core.Hive, error)
}

// UserFinder defines the user lookup needed to verify the hive's owner.
type UserFinder interface {
	GetUserByID(ctx context.Context, id int64) (*core.User, error)
}

// HiveService holds the business logic for hive creation and lookup.
type HiveService struct {
	hives  HiveStorage
	users  UserFinder
	logger *zap.SugaredLogger
}

// NewHiveService creates a new HiveService instance.
func NewHiveService(hives HiveStorage, users UserFinder, logger *zap.SugaredLogger) *HiveService {
	if hives == nil {
		panic("hives storage is required")
	}
	if users == nil {
		panic("users finder is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &HiveService{
		hives:  hives,
		users:  users,
		logger: logger,
	}
}

// CreateHive verifies the owning user exists, validates the input, and
// persists the hive. The owner check runs first: a missing user is reported
// as NotFound even when the input has other defects.
func (s *HiveService) CreateHive(ctx context.Context, input core.HiveCreationInput) core.CreationResult[core.Hive] {
	s.logger.Infow("Starting hive creation",
		"user_id", input.UserID,
		"name", input.Name,
		"latitude", input.Latitude,
		"longitude", input.Longitude)

	if _, err := s.users.GetUserByID(ctx, input.UserID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Warnw("Hive creation failed - user not found",
				"user_id", input.UserID)
			return s.fail(core.ErrorKindNotFound, "User not found")
		}
		s.logger.Errorw("Failed to look up user for hive creation",
			"user_id", input.UserID,
			"error", err)
		return s.fail(core.ErrorKindDependencyFailure, "Internal server error during hive creation")
	}

	if result := core.ValidateRequiredField(input.Name, "Name"); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}
	if result := core.ValidateMaxLength(input.Name, "Name", maxNameLength); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}
	if result := core.ValidateMaxLength(input.FrameType, "Frame type", maxFrameTypeLength); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}

	if result := core.ValidateCoordinatePair(input.Latitude, input.Longitude); !result.IsValid {
		s.logger.Warnw("Hive creation failed - invalid location",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"reason", result.ErrorMessage)
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}

	var location *core.Location
	if input.Latitude != nil && input.Longitude != nil {
		// Both values passed the coordinate validators above.
		latitude, _ := core.CoordinateValue(input.Latitude)
		longitude, _ := core.CoordinateValue(input.Longitude)
		location = &core.Location{Latitude: latitude, Longitude: longitude}
	}

	var frameType *string
	if input.FrameType != "" {
		frameType = &input.FrameType
	}

	installedAt := time.Now().UTC()
	if input.InstalledAt != nil {
		installedAt = *input.InstalledAt
	}

	hive := &core.Hive{
		UserID:      input.UserID,
		Name:        input.Name,
		Location:    location,
		FrameType:   frameType,
		InstalledAt: installedAt,
	}

	if err := s.hives.CreateHive(ctx, hive); err != nil {
		if errors.Is(err, storage.ErrConstraintViolation) {
			s.logger.Errorw("Database integrity error during hive creation",
				"user_id", input.UserID,
				"name", input.Name,
				"error", err)
			return s.fail(core.ErrorKindConflict, "Hive creation failed due to data conflict")
		}
		s.logger.Errorw("Unexpected error during hive creation",
			"user_id", input.UserID,
			"name", input.Name,
			"error", err)
		return s.fail(core.ErrorKindUnknown, "Internal server error during hive creation")
	}

	s.logger.Infow("Hive creation successful",
		"hive_id", hive.ID,
		"user_id", hive.UserID,
		"name", hive.Name,
		"has_location", location != nil)

	metrics.EntityCreations.WithLabelValues("hive", "success").Inc()
	return core.CreationSucceeded(hive)
}

// GetHiveByID retrieves a hive by ID, or nil if no hive matches.
func (s *HiveService) GetHiveByID(ctx context.Context, id int64) (*core.Hive, error) {
	hive, err := s.hives.GetHiveByID(ctx, id)
	if errors.Is(err, storage.ErrHiveNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return hive, nil
}

// GetHivesByUserID retrieves all hives owned by a user.
func (s *HiveService) GetHivesByUserID(ctx context.Context, userID int64) ([]core.Hive, error) {
	return s.hives.GetHivesByUserID(ctx, userID)
}

func (s *HiveService) fail(kind core.CreationErrorKind, message string) core.CreationResult[core.Hive] {
	metrics.EntityCreations.WithLabelValues("hive", string(kind)).Inc()
	return core.CreationFailed[core.Hive](kind, message)
}
