package storage

import (
	"context"
	"testing"
	"time"

	"cityhive/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seedHive inserts a user and hive to satisfy the inspections foreign key.
func seedHive(t *testing.T, sqlite *SQLite) *core.Hive {
	t.Helper()

	user := seedUser(t, sqlite)
	hives := NewSQLiteHiveStorage(sqlite, zap.NewNop().Sugar())
	hive := &core.Hive{UserID: user.ID, Name: "Hive Alpha", InstalledAt: time.Now().UTC()}
	require.NoError(t, hives.CreateHive(context.Background(), hive))
	return hive
}

func TestCreateInspectionAndGetByID(t *testing.T) {
	sqlite := newTestSQLite(t)
	inspections := NewSQLiteInspectionStorage(sqlite, zap.NewNop().Sugar())
	hive := seedHive(t, sqlite)
	ctx := context.Background()

	notes := "check brood pattern"
	scheduledFor := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	inspection := &core.Inspection{HiveID: hive.ID, ScheduledFor: scheduledFor, Notes: &notes}
	require.NoError(t, inspections.CreateInspection(ctx, inspection))
	assert.NotZero(t, inspection.ID)

	got, err := inspections.GetInspectionByID(ctx, inspection.ID)
	require.NoError(t, err)
	assert.True(t, got.ScheduledFor.Equal(scheduledFor))
	require.NotNil(t, got.Notes)
	assert.Equal(t, "check brood pattern", *got.Notes)
}

func TestCreateInspectionWithoutNotes(t *testing.T) {
	sqlite := newTestSQLite(t)
	inspections := NewSQLiteInspectionStorage(sqlite, zap.NewNop().Sugar())
	hive := seedHive(t, sqlite)
	ctx := context.Background()

	inspection := &core.Inspection{
		HiveID:       hive.ID,
		ScheduledFor: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, inspections.CreateInspection(ctx, inspection))

	got, err := inspections.GetInspectionByID(ctx, inspection.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Notes)
}

func TestCreateInspectionMissingHive(t *testing.T) {
	sqlite := newTestSQLite(t)
	inspections := NewSQLiteInspectionStorage(sqlite, zap.NewNop().Sugar())

	inspection := &core.Inspection{
		HiveID:       9999,
		ScheduledFor: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	err := inspections.CreateInspection(context.Background(), inspection)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestGetInspectionByIDNotFound(t *testing.T) {
	sqlite := newTestSQLite(t)
	inspections := NewSQLiteInspectionStorage(sqlite, zap.NewNop().Sugar())

	_, err := inspections.GetInspectionByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInspectionNotFound)
}

func TestGetInspectionsByHiveID(t *testing.T) {
	sqlite := newTestSQLite(t)
	inspections := NewSQLiteInspectionStorage(sqlite, zap.NewNop().Sugar())
	hive := seedHive(t, sqlite)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		inspection := &core.Inspection{
			HiveID:       hive.ID,
			ScheduledFor: time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, inspections.CreateInspection(ctx, inspection))
	}

	got, err := inspections.GetInspectionsByHiveID(ctx, hive.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ScheduledFor.Day())
	assert.Equal(t, 3, got[2].ScheduledFor.Day())
}
