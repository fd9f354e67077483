package schedulers

import (
	"container/heap"
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// ShortestJobFirst is non-preemptive: whenever the cpu is free it picks the ready process with
// the smallest burst, then the earliest arrival, then the lowest id.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Policy() Policy { return SJF }

func (ShortestJobFirst) Schedule(processes []core.Process) core.Timeline {
	slog.Debug("running sjf algorithm", slog.Int("processes", len(processes)))

	pending := append([]core.Process(nil), processes...)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	readyQueue := make(shortestJobQueue, 0, len(pending))
	timeline := make(core.Timeline, 0, len(pending))
	clock := 0
	next := 0
	for next < len(pending) || readyQueue.Len() > 0 {
		for next < len(pending) && pending[next].ArrivalTime <= clock {
			heap.Push(&readyQueue, pending[next])
			next++
		}
		if readyQueue.Len() == 0 {
			// nothing has arrived yet, jump the idle gap
			clock = pending[next].ArrivalTime
			continue
		}

		shortestJob := heap.Pop(&readyQueue).(core.Process)
		slog.Debug("schedule process", slog.Int("pid", shortestJob.ProcessId), slog.Int("start", clock))
		clock = timeline.Occupy(shortestJob.ProcessId, clock, shortestJob.BurstTime)
	}
	return timeline
}

type shortestJobQueue []core.Process

func (q shortestJobQueue) Len() int { return len(q) }

func (q shortestJobQueue) Less(i, j int) bool {
	if q[i].BurstTime != q[j].BurstTime {
		return q[i].BurstTime < q[j].BurstTime
	}
	if q[i].ArrivalTime != q[j].ArrivalTime {
		return q[i].ArrivalTime < q[j].ArrivalTime
	}
	return q[i].ProcessId < q[j].ProcessId
}

func (q shortestJobQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *shortestJobQueue) Push(x any) {
	*q = append(*q, x.(core.Process))
}

func (q *shortestJobQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
