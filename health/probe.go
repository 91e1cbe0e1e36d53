package health

import (
	"context"
	"fmt"
	"time"

	"cityhive/metrics"

	"go.uber.org/zap"
)

// Pinger is implemented by dependencies that can verify their own
// connectivity, such as the database layer.
type Pinger interface {
	CheckConnectivity(ctx context.Context) error
}

// Probe runs bounded connectivity checks against a single dependency. Every
// check is capped at the configured timeout regardless of how the dependency
// behaves.
type Probe struct {
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewProbe creates a probe with the given per-check timeout.
func NewProbe(timeout time.Duration, logger *zap.SugaredLogger) *Probe {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Probe{timeout: timeout, logger: logger}
}

// Check probes one dependency and always returns a ComponentHealth, never an
// error: failures are folded into the result. The check runs in its own
// goroutine so a hung dependency cannot stall the caller past the timeout;
// the goroutine writes to a buffered channel and is abandoned if it loses the
// race.
func (p *Probe) Check(ctx context.Context, name string, dep Pinger) ComponentHealth {
	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	go func() {
		done <- dep.CheckConnectivity(checkCtx)
	}()

	var component ComponentHealth
	select {
	case err := <-done:
		latency := time.Since(start)
		if err != nil {
			p.logger.Warnw("Health check failed",
				"component", name,
				"error", err,
				"latency", latency)
			metrics.HealthProbeFailures.WithLabelValues(name, "error").Inc()
			component = ComponentHealth{
				Name:           name,
				Status:         StatusUnhealthy,
				Message:        fmt.Sprintf("Connection failed: %T", err),
				ResponseTimeMS: float64(latency.Microseconds()) / 1000.0,
				Metadata:       map[string]any{"error": err.Error()},
			}
		} else {
			component = ComponentHealth{
				Name:           name,
				Status:         StatusHealthy,
				Message:        "Connected successfully",
				ResponseTimeMS: float64(latency.Microseconds()) / 1000.0,
			}
		}
	case <-checkCtx.Done():
		latency := time.Since(start)
		p.logger.Warnw("Health check timed out",
			"component", name,
			"timeout", p.timeout,
			"latency", latency)
		metrics.HealthProbeFailures.WithLabelValues(name, "timeout").Inc()
		component = ComponentHealth{
			Name:           name,
			Status:         StatusUnhealthy,
			Message:        fmt.Sprintf("Health check timed out after %s", p.timeout),
			ResponseTimeMS: float64(latency.Microseconds()) / 1000.0,
			Metadata:       map[string]any{"timeout_seconds": p.timeout.Seconds()},
		}
	}

	metrics.HealthProbeDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	return component
}
