package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceWriteTextfile(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveEncoded()
	metrics.ObserveDecoded()
	metrics.ObserveDegraded(operationDecode)
	metrics.ObserveValidationFailure("invalid_lab_block")

	path := filepath.Join(t.TempDir(), "periodformat.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, "periodformat_days_encoded_total 1")
	assert.Contains(t, body, `periodformat_degraded_days_total{operation="decode"} 1`)
	assert.Contains(t, body, `periodformat_validation_failures_total{reason="invalid_lab_block"} 1`)

	assert.Equal(t, MetricsSnapshot{DaysEncoded: 1, DaysDecoded: 1, DegradedDays: 1, ValidationFailures: 1}, metrics.Snapshot())
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var metrics *MetricsService
	metrics.ObserveEncoded()
	metrics.ObserveDegraded(operationExpand)
	assert.Equal(t, MetricsSnapshot{}, metrics.Snapshot())
	assert.NotNil(t, metrics.Gatherer())
}
