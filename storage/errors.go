package storage

import "errors"

// Storage error constants
var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrHiveNotFound is returned when a hive is not found
	ErrHiveNotFound = errors.New("hive not found")

	// ErrInspectionNotFound is returned when an inspection is not found
	ErrInspectionNotFound = errors.New("inspection not found")

	// ErrNotFound is a generic "not found" error
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation is returned when a database uniqueness or
	// referential constraint is violated. This is the only store-specific
	// failure kind the service layer is allowed to distinguish.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDatabaseClosed is returned when attempting to use a closed database connection
	ErrDatabaseClosed = errors.New("database is closed")
)
