package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistration(t *testing.T) {
	// Metrics are registered globally via promauto; just assert the
	// collectors exist.
	assert.NotNil(t, HTTPRequests)
	assert.NotNil(t, EntityCreations)
	assert.NotNil(t, HealthProbeDuration)
	assert.NotNil(t, HealthProbeFailures)
}
