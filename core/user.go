package core

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered beekeeper account.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    uuid.UUID `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRegistrationInput carries caller-supplied registration fields.
// The transport layer trims whitespace and lowercases the email before the
// input reaches the service.
type UserRegistrationInput struct {
	Name  string
	Email string
}
