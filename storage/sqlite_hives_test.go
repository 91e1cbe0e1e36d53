package storage

import (
	"context"
	"testing"
	"time"

	"cityhive/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seedUser inserts a user to satisfy the hives foreign key.
func seedUser(t *testing.T, sqlite *SQLite) *core.User {
	t.Helper()

	users := NewSQLiteUserStorage(sqlite, zap.NewNop().Sugar())
	user := &core.User{Name: "Owner", Email: uuid.NewString() + "@example.com", APIKey: uuid.New()}
	require.NoError(t, users.CreateUser(context.Background(), user))
	return user
}

func TestCreateHiveWithLocation(t *testing.T) {
	sqlite := newTestSQLite(t)
	hives := NewSQLiteHiveStorage(sqlite, zap.NewNop().Sugar())
	user := seedUser(t, sqlite)
	ctx := context.Background()

	frameType := "Langstroth"
	hive := &core.Hive{
		UserID:      user.ID,
		Name:        "Hive Alpha",
		Location:    &core.Location{Latitude: 40.7128, Longitude: -74.0060},
		FrameType:   &frameType,
		InstalledAt: time.Now().UTC(),
	}
	require.NoError(t, hives.CreateHive(ctx, hive))
	assert.NotZero(t, hive.ID)

	got, err := hives.GetHiveByID(ctx, hive.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Location)
	assert.InDelta(t, 40.7128, got.Location.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, got.Location.Longitude, 1e-9)
	require.NotNil(t, got.FrameType)
	assert.Equal(t, "Langstroth", *got.FrameType)
}

func TestCreateHiveWithoutLocation(t *testing.T) {
	sqlite := newTestSQLite(t)
	hives := NewSQLiteHiveStorage(sqlite, zap.NewNop().Sugar())
	user := seedUser(t, sqlite)
	ctx := context.Background()

	hive := &core.Hive{
		UserID:      user.ID,
		Name:        "Balcony Hive",
		InstalledAt: time.Now().UTC(),
	}
	require.NoError(t, hives.CreateHive(ctx, hive))

	got, err := hives.GetHiveByID(ctx, hive.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Location)
	assert.Nil(t, got.FrameType)
}

func TestCreateHiveMissingUser(t *testing.T) {
	sqlite := newTestSQLite(t)
	hives := NewSQLiteHiveStorage(sqlite, zap.NewNop().Sugar())

	hive := &core.Hive{
		UserID:      9999,
		Name:        "Orphan Hive",
		InstalledAt: time.Now().UTC(),
	}
	err := hives.CreateHive(context.Background(), hive)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestGetHiveByIDNotFound(t *testing.T) {
	sqlite := newTestSQLite(t)
	hives := NewSQLiteHiveStorage(sqlite, zap.NewNop().Sugar())

	_, err := hives.GetHiveByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrHiveNotFound)
}

func TestGetHivesByUserID(t *testing.T) {
	sqlite := newTestSQLite(t)
	hives := NewSQLiteHiveStorage(sqlite, zap.NewNop().Sugar())
	user := seedUser(t, sqlite)
	ctx := context.Background()

	empty, err := hives.GetHivesByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Hive Alpha", "Hive Beta"} {
		hive := &core.Hive{UserID: user.ID, Name: name, InstalledAt: time.Now().UTC()}
		require.NoError(t, hives.CreateHive(ctx, hive))
	}

	got, err := hives.GetHivesByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Hive Alpha", got[0].Name)
	assert.Equal(t, "Hive Beta", got[1].Name)
}
