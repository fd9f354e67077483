package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrUnknownPolicy = errors.New("unknown scheduling policy")

type Policy int

const (
	FCFS Policy = iota + 1
	SJF
	RoundRobin
)

// AllPolicies lists every supported policy in presentation order.
var AllPolicies = []Policy{FCFS, SJF, RoundRobin}

func (p Policy) String() string {
	switch p {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case RoundRobin:
		return "rr"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Title is the human readable name used in rendered output.
func (p Policy) Title() string {
	switch p {
	case FCFS:
		return "FCFS Scheduling"
	case SJF:
		return "SJF Scheduling"
	case RoundRobin:
		return "Round Robin Scheduling"
	}
	return p.String()
}

func ParsePolicy(name string) (Policy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch normalized {
	case "fcfs", "first_come_first_serve":
		return FCFS, nil
	case "sjf", "shortest_job_first":
		return SJF, nil
	case "rr", "round_robin":
		return RoundRobin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scheduler computes the cpu timeline of a validated process set.
type Scheduler interface {
	Policy() Policy
	Schedule(processes []core.Process) core.Timeline
}

// NewScheduler returns the scheduler of the given policy. quantum is only read for RoundRobin.
func NewScheduler(policy Policy, quantum int) (Scheduler, error) {
	switch policy {
	case FCFS:
		return FirstComeFirstServe{}, nil
	case SJF:
		return ShortestJobFirst{}, nil
	case RoundRobin:
		if quantum <= 0 {
			return nil, &core.InvalidValueError{Field: "time_quantum", Value: quantum, Reason: "must be a positive integer"}
		}
		return RoundRobinScheduler{TimeQuantum: quantum}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
}
