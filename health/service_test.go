package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(deps []Dependency) *Service {
	logger := zap.NewNop().Sugar()
	return NewService("cityhive", "1.0.0", NewProbe(time.Second, logger), deps, logger)
}

func TestCheckLivenessAlwaysHealthy(t *testing.T) {
	svc := newTestService([]Dependency{
		{Name: "database", Pinger: failingPinger(errors.New("database is closed"))},
	})

	report := svc.CheckLiveness(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.True(t, report.IsHealthy())
	assert.Equal(t, "cityhive", report.Service)
	assert.Nil(t, report.Components, "liveness never probes dependencies")
	assert.False(t, report.Timestamp.IsZero())
}

func TestCheckLivenessIdempotent(t *testing.T) {
	svc := newTestService(nil)

	for i := 0; i < 3; i++ {
		assert.True(t, svc.CheckLiveness(context.Background()).IsHealthy())
	}
}

func TestCheckReadinessHealthyDependency(t *testing.T) {
	svc := newTestService([]Dependency{{Name: "database", Pinger: okPinger()}})

	report := svc.CheckReadiness(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.Equal(t, "1.0.0", report.Version)
	require.Len(t, report.Components, 1)
	assert.Equal(t, "database", report.Components[0].Name)
	assert.Equal(t, StatusHealthy, report.Components[0].Status)
}

func TestCheckReadinessUnhealthyDependency(t *testing.T) {
	svc := newTestService([]Dependency{
		{Name: "database", Pinger: failingPinger(errors.New("database is closed"))},
	})

	report := svc.CheckReadiness(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.False(t, report.IsHealthy())
	require.Len(t, report.Components, 1)
	assert.Equal(t, StatusUnhealthy, report.Components[0].Status)
}

func TestCheckReadinessWorstOfAggregation(t *testing.T) {
	svc := newTestService([]Dependency{
		{Name: "database", Pinger: okPinger()},
		{Name: "cache", Pinger: failingPinger(errors.New("refused"))},
	})

	report := svc.CheckReadiness(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
	require.Len(t, report.Components, 2)
	assert.Equal(t, StatusHealthy, report.Components[0].Status)
	assert.Equal(t, StatusUnhealthy, report.Components[1].Status)
}

func TestCheckReadinessNoDependencies(t *testing.T) {
	svc := newTestService(nil)

	report := svc.CheckReadiness(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.Empty(t, report.Components)
}
