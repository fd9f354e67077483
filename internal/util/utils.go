package util

import "cpu-scheduler/internal/core"

// ComputeMetrics returns the arithmetic means of the per process times. It fails with
// core.ErrEmptyInput when there is nothing to average.
func ComputeMetrics(records []core.CompletionRecord) (core.Metrics, error) {
	if len(records) == 0 {
		return core.Metrics{}, core.ErrEmptyInput
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, record := range records {
		waitingTimeSum += float64(record.WaitingTime())
		responseTimeSum += float64(record.ResponseTime())
		turnAroundTimeSum += float64(record.TurnAroundTime())
	}

	processCount := float64(len(records))

	return core.Metrics{
		AverageWaitingTime:    waitingTimeSum / processCount,
		AverageTurnAroundTime: turnAroundTimeSum / processCount,
		AverageResponseTime:   responseTimeSum / processCount,
	}, nil
}
