package schedulers

import (
	"fmt"
	"log/slog"
	"math"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Result is the complete output of one simulation run.
type Result struct {
	Policy   Policy
	Timeline core.Timeline
	Records  []core.CompletionRecord
	Metrics  core.Metrics
	Cpu      core.CpuMetric
}

// Validate checks a process set before any scheduling happens.
func Validate(processes []core.Process) error {
	if len(processes) == 0 {
		return &core.InvalidValueError{Field: "process_count", Value: 0, Reason: "at least one process is required"}
	}
	seen := make(map[int]bool, len(processes))
	var totalBurst, latestArrival int
	for _, p := range processes {
		if p.ProcessId < 1 {
			return &core.InvalidValueError{Field: "process_id", Value: p.ProcessId, Reason: "must be at least 1"}
		}
		if seen[p.ProcessId] {
			return &core.InvalidValueError{Field: "process_id", Value: p.ProcessId, Reason: "duplicate process id"}
		}
		seen[p.ProcessId] = true
		if p.ArrivalTime < 0 {
			return &core.InvalidValueError{Field: fmt.Sprintf("arrival_time[pid %d]", p.ProcessId), Value: p.ArrivalTime, Reason: "must not be negative"}
		}
		if p.BurstTime <= 0 {
			return &core.InvalidValueError{Field: fmt.Sprintf("burst_time[pid %d]", p.ProcessId), Value: p.BurstTime, Reason: "must be positive"}
		}
		if p.BurstTime > math.MaxInt-totalBurst {
			return &core.InvalidValueError{Field: fmt.Sprintf("burst_time[pid %d]", p.ProcessId), Value: p.BurstTime, Reason: "total burst time overflows the clock"}
		}
		totalBurst += p.BurstTime
		latestArrival = max(latestArrival, p.ArrivalTime)
	}
	// the clock never passes the latest arrival plus all bursts
	if latestArrival > math.MaxInt-totalBurst {
		return &core.InvalidValueError{Field: "arrival_time", Value: latestArrival, Reason: "schedule end overflows the clock"}
	}
	return nil
}

// Simulate validates the input, runs the selected policy and computes the metrics of the run.
func Simulate(processes []core.Process, policy Policy, quantum int) (Result, error) {
	if err := Validate(processes); err != nil {
		return Result{}, err
	}
	scheduler, err := NewScheduler(policy, quantum)
	if err != nil {
		return Result{}, err
	}

	timeline := scheduler.Schedule(processes)
	records := generateCompletionRecords(processes, timeline)
	metrics, err := util.ComputeMetrics(records)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Policy:   scheduler.Policy(),
		Timeline: timeline,
		Records:  records,
		Metrics:  metrics,
		Cpu:      core.MeasureCpu(timeline),
	}
	slog.Debug("simulation finished",
		slog.String("policy", policy.String()),
		slog.Int("entries", len(timeline)),
		slog.Float64("averageWaitingTime", metrics.AverageWaitingTime),
		slog.Float64("averageTurnAroundTime", metrics.AverageTurnAroundTime),
	)
	return result, nil
}

// SimulateAll runs every policy over the same process set.
func SimulateAll(processes []core.Process, quantum int) ([]Result, error) {
	results := make([]Result, 0, len(AllPolicies))
	for _, policy := range AllPolicies {
		result, err := Simulate(processes, policy, quantum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", policy, err)
		}
		results = append(results, result)
	}
	return results, nil
}
