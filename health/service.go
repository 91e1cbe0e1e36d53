package health

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Dependency pairs a probe target with the name it reports under.
type Dependency struct {
	Name   string
	Pinger Pinger
}

// Service answers liveness and readiness queries for the process.
type Service struct {
	serviceName  string
	version      string
	probe        *Probe
	dependencies []Dependency
	logger       *zap.SugaredLogger
}

// NewService creates a health service for the named process and its
// dependencies.
func NewService(serviceName, version string, probe *Probe, dependencies []Dependency, logger *zap.SugaredLogger) *Service {
	if probe == nil {
		panic("probe is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Service{
		serviceName:  serviceName,
		version:      version,
		probe:        probe,
		dependencies: dependencies,
		logger:       logger,
	}
}

// CheckLiveness reports whether the process itself is running. It never
// touches dependencies: a process that can answer is alive.
func (s *Service) CheckLiveness(ctx context.Context) SystemHealth {
	return SystemHealth{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Service:   s.serviceName,
	}
}

// CheckReadiness probes every registered dependency and aggregates the
// results. The system is ready only when every component is healthy.
func (s *Service) CheckReadiness(ctx context.Context) SystemHealth {
	components := make([]ComponentHealth, 0, len(s.dependencies))
	overall := StatusHealthy

	for _, dep := range s.dependencies {
		component := s.probe.Check(ctx, dep.Name, dep.Pinger)
		if component.Status != StatusHealthy {
			overall = StatusUnhealthy
		}
		components = append(components, component)
	}

	if overall != StatusHealthy {
		s.logger.Warnw("Readiness check reported unhealthy components",
			"service", s.serviceName,
			"components", len(components))
	}

	return SystemHealth{
		Status:     overall,
		Timestamp:  time.Now().UTC(),
		Service:    s.serviceName,
		Version:    s.version,
		Components: components,
	}
}
