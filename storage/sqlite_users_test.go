package storage

import (
	"context"
	"testing"

	"cityhive/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserStorage(t *testing.T) *SQLiteUserStorage {
	t.Helper()
	return NewSQLiteUserStorage(newTestSQLite(t), zap.NewNop().Sugar())
}

func TestCreateUserAndGetByID(t *testing.T) {
	users := newTestUserStorage(t)
	ctx := context.Background()

	user := &core.User{Name: "Ana", Email: "ana@example.com", APIKey: uuid.New()}
	require.NoError(t, users.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.APIKey, got.APIKey)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	users := newTestUserStorage(t)
	ctx := context.Background()

	first := &core.User{Name: "Ana", Email: "ana@example.com", APIKey: uuid.New()}
	require.NoError(t, users.CreateUser(ctx, first))

	second := &core.User{Name: "Another Ana", Email: "ana@example.com", APIKey: uuid.New()}
	err := users.CreateUser(ctx, second)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestGetUserByIDNotFound(t *testing.T) {
	users := newTestUserStorage(t)

	_, err := users.GetUserByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	users := newTestUserStorage(t)
	ctx := context.Background()

	user := &core.User{Name: "Ana", Email: "ana@example.com", APIKey: uuid.New()}
	require.NoError(t, users.CreateUser(ctx, user))

	got, err := users.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = users.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserExistsByEmail(t *testing.T) {
	users := newTestUserStorage(t)
	ctx := context.Background()

	exists, err := users.UserExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	user := &core.User{Name: "Ana", Email: "ana@example.com", APIKey: uuid.New()}
	require.NoError(t, users.CreateUser(ctx, user))

	exists, err = users.UserExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
