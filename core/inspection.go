package core

import "time"

// Inspection represents a scheduled hive inspection. ScheduledFor carries
// date precision only.
type Inspection struct {
	ID           int64     `json:"id"`
	HiveID       int64     `json:"hive_id"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// InspectionCreationInput carries caller-supplied inspection fields.
type InspectionCreationInput struct {
	HiveID       int64
	ScheduledFor time.Time
	Notes        string
}
