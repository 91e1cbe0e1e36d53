package core

import "time"

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Hive represents a beehive placed by a user, optionally georeferenced.
type Hive struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Location    *Location `json:"location"`
	FrameType   *string   `json:"frame_type"`
	InstalledAt time.Time `json:"installed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// HiveCreationInput carries caller-supplied hive fields. Latitude and
// Longitude are kept as decoded JSON values so the coordinate validators can
// classify non-numeric input instead of losing it at unmarshal time.
type HiveCreationInput struct {
	UserID      int64
	Name        string
	Latitude    any
	Longitude   any
	FrameType   string
	InstalledAt *time.Time
}
