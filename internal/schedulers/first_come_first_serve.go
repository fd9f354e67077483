package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// FirstComeFirstServe runs processes to completion in arrival order, ties kept in input order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Policy() Policy { return FCFS }

func (FirstComeFirstServe) Schedule(processes []core.Process) core.Timeline {
	slog.Debug("running fcfs algorithm", slog.Int("processes", len(processes)))

	// sort jobs by arrival time
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	timeline := make(core.Timeline, 0, len(jobs))
	clock := 0
	for _, job := range jobs {
		if clock < job.ArrivalTime {
			clock = job.ArrivalTime // cpu idle
		}
		slog.Debug("schedule process", slog.Int("pid", job.ProcessId), slog.Int("start", clock))
		clock = timeline.Occupy(job.ProcessId, clock, job.BurstTime)
	}
	return timeline
}
