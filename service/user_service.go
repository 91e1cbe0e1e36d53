package service

import (
	"context"
	"errors"

	"cityhive/core"
	"cityhive/metrics"
	"cityhive/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStorage defines the user storage operations needed by the service.
// Defined here (consumer package) following the Interface Segregation
// Principle.
type UserStorage interface {
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *core.User) error
	GetUserByEmail(ctx context.Context, email string) (*core.User, error)
}

// UserService holds the business logic for user registration. All expected
// failures are reported through the CreationResult; no error ever escapes
// RegisterUser.
type UserService struct {
	users  UserStorage
	logger *zap.SugaredLogger
}

// NewUserService creates a new UserService instance.
func NewUserService(users UserStorage, logger *zap.SugaredLogger) *UserService {
	if users == nil {
		panic("users storage is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// RegisterUser validates the input, checks for a duplicate email, and
// persists a new user with a freshly generated API key.
//
// The duplicate pre-check gives the common case a clean Conflict without
// inspecting driver errors; the users.email UNIQUE constraint remains the
// backstop against races between the check and the insert.
func (s *UserService) RegisterUser(ctx context.Context, input core.UserRegistrationInput) core.CreationResult[core.User] {
	s.logger.Infow("Starting user registration",
		"email", input.Email,
		"name", input.Name)

	if result := core.ValidateRequiredField(input.Name, "Name"); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}
	if result := core.ValidateMaxLength(input.Name, "Name", maxNameLength); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}
	if result := core.ValidateEmail(input.Email); !result.IsValid {
		return s.fail(core.ErrorKindInvalidInput, result.ErrorMessage)
	}

	exists, err := s.users.UserExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Errorw("Failed to check existing user",
			"email", input.Email,
			"error", err)
		return s.fail(core.ErrorKindDependencyFailure, "Internal server error during user registration")
	}
	if exists {
		s.logger.Warnw("Registration failed - user already exists",
			"email", input.Email)
		return s.fail(core.ErrorKindConflict, "User with this email already exists")
	}

	user := &core.User{
		Name:   input.Name,
		Email:  input.Email,
		APIKey: uuid.New(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConstraintViolation) {
			// Lost the race to a concurrent registration.
			s.logger.Warnw("Registration failed - duplicate email on insert",
				"email", input.Email,
				"error", err)
			return s.fail(core.ErrorKindConflict, "User with this email already exists")
		}
		s.logger.Errorw("Unexpected error during user registration",
			"email", input.Email,
			"error", err)
		return s.fail(core.ErrorKindUnknown, "Internal server error during user registration")
	}

	s.logger.Infow("User registration successful",
		"user_id", user.ID,
		"email", user.Email)

	metrics.EntityCreations.WithLabelValues("user", "success").Inc()
	return core.CreationSucceeded(user)
}

// GetUserByEmail retrieves a user by email, or nil if no user matches.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) fail(kind core.CreationErrorKind, message string) core.CreationResult[core.User] {
	metrics.EntityCreations.WithLabelValues("user", string(kind)).Inc()
	return core.CreationFailed[core.User](kind, message)
}
