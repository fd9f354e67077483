package util

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics(t *testing.T) {
	records := []core.CompletionRecord{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, FirstStart: 0, CompletionTime: 5},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, FirstStart: 5, CompletionTime: 8},
	}

	metrics, err := ComputeMetrics(records)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, metrics.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 6.0, metrics.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 2.0, metrics.AverageResponseTime, 1e-9)
}

func TestComputeMetrics_Empty(t *testing.T) {
	_, err := ComputeMetrics(nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = ComputeMetrics([]core.CompletionRecord{})
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}
