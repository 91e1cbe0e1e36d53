package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cityhive/core"
	"cityhive/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ============================================================================
// Mock Hive Storage + User Finder
// ============================================================================

type mockHiveStorage struct {
	createHiveFunc       func(ctx context.Context, hive *core.Hive) error
	getHiveByIDFunc      func(ctx context.Context, id int64) (*core.Hive, error)
	getHivesByUserIDFunc func(ctx context.Context, userID int64) ([]core.Hive, error)

	createHiveCalls []*core.Hive
}

func (m *mockHiveStorage) CreateHive(ctx context.Context, hive *core.Hive) error {
	m.createHiveCalls = append(m.createHiveCalls, hive)
	if m.createHiveFunc != nil {
		return m.createHiveFunc(ctx, hive)
	}
	hive.ID = 1
	return nil
}

func (m *mockHiveStorage) GetHiveByID(ctx context.Context, id int64) (*core.Hive, error) {
	if m.getHiveByIDFunc != nil {
		return m.getHiveByIDFunc(ctx, id)
	}
	return nil, storage.ErrHiveNotFound
}

func (m *mockHiveStorage) GetHivesByUserID(ctx context.Context, userID int64) ([]core.Hive, error) {
	if m.getHivesByUserIDFunc != nil {
		return m.getHivesByUserIDFunc(ctx, userID)
	}
	return []core.Hive{}, nil
}

type mockUserFinder struct {
	getUserByIDFunc func(ctx context.Context, id int64) (*core.User, error)
}

func (m *mockUserFinder) GetUserByID(ctx context.Context, id int64) (*core.User, error) {
	if m.getUserByIDFunc != nil {
		return m.getUserByIDFunc(ctx, id)
	}
	return &core.User{ID: id, Name: "Owner", Email: "owner@example.com"}, nil
}

func userNotFoundFinder() *mockUserFinder {
	return &mockUserFinder{
		getUserByIDFunc: func(ctx context.Context, id int64) (*core.User, error) {
			return nil, storage.ErrUserNotFound
		},
	}
}

func newHiveService(hives *mockHiveStorage, users *mockUserFinder) *HiveService {
	return NewHiveService(hives, users, zap.NewNop().Sugar())
}

// ============================================================================
// CreateHive
// ============================================================================

func TestCreateHiveSuccessWithLocation(t *testing.T) {
	hives := &mockHiveStorage{}
	svc := newHiveService(hives, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    1,
		Name:      "Hive Alpha",
		Latitude:  40.7128,
		Longitude: -74.0060,
	})

	require.True(t, result.Success)
	require.NotNil(t, result.Entity)
	require.NotNil(t, result.Entity.Location)
	assert.InDelta(t, 40.7128, result.Entity.Location.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, result.Entity.Location.Longitude, 1e-9)
	assert.False(t, result.Entity.InstalledAt.IsZero())
}

func TestCreateHiveSuccessWithoutLocation(t *testing.T) {
	hives := &mockHiveStorage{}
	svc := newHiveService(hives, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID: 1,
		Name:   "Balcony Hive",
	})

	require.True(t, result.Success)
	assert.Nil(t, result.Entity.Location)
	assert.Nil(t, result.Entity.FrameType)
}

func TestCreateHiveUserNotFound(t *testing.T) {
	hives := &mockHiveStorage{}
	svc := newHiveService(hives, userNotFoundFinder())

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    42,
		Name:      "Hive Alpha",
		Latitude:  40.7128,
		Longitude: -74.0060,
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindNotFound, result.ErrorKind)
	assert.Equal(t, "User not found", result.Message)
	assert.Empty(t, hives.createHiveCalls)
}

func TestCreateHiveUserNotFoundWinsOverInvalidInput(t *testing.T) {
	// Parent-existence is checked first: a missing user is NotFound even
	// when the latitude is also out of range.
	svc := newHiveService(&mockHiveStorage{}, userNotFoundFinder())

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    42,
		Name:      "Hive Alpha",
		Latitude:  999.0,
		Longitude: -74.0060,
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindNotFound, result.ErrorKind)
}

func TestCreateHivePartialCoordinates(t *testing.T) {
	svc := newHiveService(&mockHiveStorage{}, &mockUserFinder{})

	// Out-of-range latitude alone still reports the conjunction failure.
	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:   1,
		Name:     "Hive Alpha",
		Latitude: 999.0,
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindInvalidInput, result.ErrorKind)
	assert.Equal(t, "Both latitude and longitude must be provided together", result.Message)
}

func TestCreateHiveOutOfRangeLatitude(t *testing.T) {
	svc := newHiveService(&mockHiveStorage{}, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    1,
		Name:      "Hive Alpha",
		Latitude:  95.0,
		Longitude: -74.0060,
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindInvalidInput, result.ErrorKind)
	assert.Equal(t, "Latitude must be between -90 and 90 degrees", result.Message)
}

func TestCreateHiveNonNumericCoordinates(t *testing.T) {
	svc := newHiveService(&mockHiveStorage{}, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    1,
		Name:      "Hive Alpha",
		Latitude:  "abc",
		Longitude: -74.0060,
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindInvalidInput, result.ErrorKind)
	assert.Equal(t, "Latitude must be a valid number", result.Message)
}

func TestCreateHiveMissingName(t *testing.T) {
	svc := newHiveService(&mockHiveStorage{}, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID: 1,
		Name:   "",
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindInvalidInput, result.ErrorKind)
	assert.Equal(t, "Name is required", result.Message)
}

func TestCreateHiveFrameTypeTooLong(t *testing.T) {
	svc := newHiveService(&mockHiveStorage{}, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    1,
		Name:      "Hive Alpha",
		FrameType: strings.Repeat("x", 51),
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindInvalidInput, result.ErrorKind)
	assert.Equal(t, "Frame type must be 50 characters or fewer", result.Message)
}

func TestCreateHiveIntegrityViolation(t *testing.T) {
	hives := &mockHiveStorage{
		createHiveFunc: func(ctx context.Context, hive *core.Hive) error {
			return storage.ErrConstraintViolation
		},
	}
	svc := newHiveService(hives, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID: 1,
		Name:   "Hive Alpha",
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindConflict, result.ErrorKind)
	assert.Equal(t, "Hive creation failed due to data conflict", result.Message)
}

func TestCreateHiveUnexpectedInsertFailure(t *testing.T) {
	hives := &mockHiveStorage{
		createHiveFunc: func(ctx context.Context, hive *core.Hive) error {
			return errors.New("disk I/O error")
		},
	}
	svc := newHiveService(hives, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID: 1,
		Name:   "Hive Alpha",
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindUnknown, result.ErrorKind)
	assert.NotContains(t, result.Message, "disk I/O error")
}

func TestCreateHiveUserLookupFailure(t *testing.T) {
	users := &mockUserFinder{
		getUserByIDFunc: func(ctx context.Context, id int64) (*core.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newHiveService(&mockHiveStorage{}, users)

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID: 1,
		Name:   "Hive Alpha",
	})

	assert.False(t, result.Success)
	assert.Equal(t, core.ErrorKindDependencyFailure, result.ErrorKind)
}

func TestCreateHiveFrameTypeNormalization(t *testing.T) {
	hives := &mockHiveStorage{}
	svc := newHiveService(hives, &mockUserFinder{})

	result := svc.CreateHive(context.Background(), core.HiveCreationInput{
		UserID:    1,
		Name:      "Hive Alpha",
		FrameType: "Langstroth",
	})

	require.True(t, result.Success)
	require.NotNil(t, result.Entity.FrameType)
	assert.Equal(t, "Langstroth", *result.Entity.FrameType)
}

// ============================================================================
// Lookups
// ============================================================================

func TestGetHiveByIDNotFoundIsNil(t *testing.T) {
	svc := newHiveService(&mockHiveStorage{}, &mockUserFinder{})

	hive, err := svc.GetHiveByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, hive)
}

func TestGetHivesByUserID(t *testing.T) {
	hives := &mockHiveStorage{
		getHivesByUserIDFunc: func(ctx context.Context, userID int64) ([]core.Hive, error) {
			return []core.Hive{{ID: 1, UserID: userID, Name: "Hive Alpha"}}, nil
		},
	}
	svc := newHiveService(hives, &mockUserFinder{})

	got, err := svc.GetHivesByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hive Alpha", got[0].Name)
}
