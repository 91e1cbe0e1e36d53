package health

import "time"

// Status is the reported health state of a component or the whole system.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// ComponentHealth describes the outcome of probing a single dependency.
type ComponentHealth struct {
	Name           string         `json:"name"`
	Status         Status         `json:"status"`
	Message        string         `json:"message"`
	ResponseTimeMS float64        `json:"response_time_ms"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// SystemHealth is the aggregate health report returned by the monitoring
// endpoints. Components is nil for liveness, which never probes dependencies.
type SystemHealth struct {
	Status     Status            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Service    string            `json:"service"`
	Version    string            `json:"version,omitempty"`
	Components []ComponentHealth `json:"components,omitempty"`
}

// IsHealthy reports whether the aggregate status is healthy.
func (s SystemHealth) IsHealthy() bool {
	return s.Status == StatusHealthy
}
