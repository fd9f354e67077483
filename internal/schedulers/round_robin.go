package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// RoundRobinScheduler grants each process at most TimeQuantum units per turn.
//
// The ready queue is seeded once with every process in arrival order (ties by id). A process that
// has not arrived when it reaches the head of the queue makes the cpu wait for it; processes are
// never spliced into the queue at their arrival instant.
type RoundRobinScheduler struct {
	TimeQuantum int
}

func (RoundRobinScheduler) Policy() Policy { return RoundRobin }

func (s RoundRobinScheduler) Schedule(processes []core.Process) core.Timeline {
	timeline, _ := s.run(processes)
	return timeline
}

// roundRobinState lives for a single run.
type roundRobinState struct {
	processes          map[int]core.Process
	remainingBurst     map[int]int
	lastExecutionEnd   map[int]int
	accumulatedWaiting map[int]int
	readyQueue         *core.ReadyQueue
}

func newRoundRobinState(processes []core.Process) *roundRobinState {
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		return jobs[i].ProcessId < jobs[j].ProcessId
	})

	state := &roundRobinState{
		processes:          make(map[int]core.Process, len(jobs)),
		remainingBurst:     make(map[int]int, len(jobs)),
		lastExecutionEnd:   make(map[int]int, len(jobs)),
		accumulatedWaiting: make(map[int]int, len(jobs)),
		readyQueue:         core.NewReadyQueue(len(jobs)),
	}
	for _, job := range jobs {
		state.processes[job.ProcessId] = job
		state.remainingBurst[job.ProcessId] = job.BurstTime
		state.lastExecutionEnd[job.ProcessId] = job.ArrivalTime
		state.readyQueue.AddToEnd(job.ProcessId)
	}
	return state
}

func (s RoundRobinScheduler) run(processes []core.Process) (core.Timeline, *roundRobinState) {
	slog.Debug("running roundRobin algorithm", slog.Int("timeQuantum", s.TimeQuantum))

	state := newRoundRobinState(processes)
	timeline := make(core.Timeline, 0, len(processes))
	clock := 0
	for {
		pid, ok := state.readyQueue.RemoveFromTop()
		if !ok {
			break
		}
		job := state.processes[pid]
		if clock < job.ArrivalTime {
			clock = job.ArrivalTime
		}
		state.accumulatedWaiting[pid] += clock - state.lastExecutionEnd[pid]

		run := min(state.remainingBurst[pid], s.TimeQuantum)
		clock = timeline.Occupy(pid, clock, run)
		state.remainingBurst[pid] -= run
		state.lastExecutionEnd[pid] = clock

		if state.remainingBurst[pid] > 0 {
			slog.Debug("context switch", slog.Int("pid", pid), slog.Int("remaining", state.remainingBurst[pid]))
			state.readyQueue.AddToEnd(pid)
		} else {
			slog.Debug("process completed", slog.Int("pid", pid), slog.Int("completion", clock))
		}
	}
	return timeline, state
}
