package requests

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cpu-scheduler/internal/core"
)

// Job is one process row as submitted by a client. Times are kept as json.Number so that
// non integer values surface as core.InputParseError instead of a generic body error.
type Job struct {
	ProcessId   json.Number `json:"process_id,omitempty"`
	ArrivalTime json.Number `json:"arrival_time"`
	BurstTime   json.Number `json:"burst_time"`
}

type ScheduleRequests struct {
	Algorithm   string      `json:"algorithm,omitempty"`
	TimeQuantum json.Number `json:"time_quantum,omitempty"`
	Jobs        []Job       `json:"jobs"`
}

// Processes parses the jobs. A job without an id gets its 1-based position.
func (r ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		pid := i + 1
		if job.ProcessId != "" {
			parsed, err := ParseInt(fmt.Sprintf("jobs[%d].process_id", i), string(job.ProcessId))
			if err != nil {
				return nil, err
			}
			pid = parsed
		}
		arrival, err := ParseInt(fmt.Sprintf("jobs[%d].arrival_time", i), string(job.ArrivalTime))
		if err != nil {
			return nil, err
		}
		burst, err := ParseInt(fmt.Sprintf("jobs[%d].burst_time", i), string(job.BurstTime))
		if err != nil {
			return nil, err
		}
		processes = append(processes, core.Process{ProcessId: pid, ArrivalTime: arrival, BurstTime: burst})
	}
	return processes, nil
}

// Quantum returns the requested time quantum, or fallback when none was sent.
func (r ScheduleRequests) Quantum(fallback int) (int, error) {
	if r.TimeQuantum == "" {
		return fallback, nil
	}
	return ParseInt("time_quantum", string(r.TimeQuantum))
}

func ParseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &core.InputParseError{Field: field, Value: value, Err: err}
	}
	return n, nil
}
