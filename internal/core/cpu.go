package core

// Process is the immutable input record of one process in a simulation run.
type Process struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

// TimelineEntry is one contiguous interval [Start, End) during which the cpu ran ProcessId.
type TimelineEntry struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

func (e TimelineEntry) Duration() int {
	return e.End - e.Start
}

// Timeline is the ordered cpu occupation of a run. Entries are sorted by Start and never overlap.
type Timeline []TimelineEntry

// Occupy appends the interval [start, start+run) for pid and returns the new clock.
func (t *Timeline) Occupy(pid, start, run int) int {
	*t = append(*t, TimelineEntry{ProcessId: pid, Start: start, End: start + run})
	return start + run
}

// ProcessEntries returns the entries of a single process in timeline order.
func (t Timeline) ProcessEntries(pid int) []TimelineEntry {
	entries := make([]TimelineEntry, 0)
	for _, e := range t {
		if e.ProcessId == pid {
			entries = append(entries, e)
		}
	}
	return entries
}

// End returns the time the cpu became free for the last time, 0 for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives busy and idle time of the single cpu from t=0 to the end of the timeline.
func MeasureCpu(timeline Timeline) CpuMetric {
	var utilizationTime int
	for _, e := range timeline {
		utilizationTime += e.Duration()
	}
	totalTime := timeline.End()
	return CpuMetric{
		TotalTime:       totalTime,
		UtilizationTime: utilizationTime,
		IdleTime:        totalTime - utilizationTime,
	}
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// CompletionRecord holds per process results. Turnaround and waiting times are derived from
// CompletionTime and are never set independently.
type CompletionRecord struct {
	ProcessId      int
	ArrivalTime    int
	BurstTime      int
	FirstStart     int
	CompletionTime int
}

func (r CompletionRecord) TurnAroundTime() int {
	return r.CompletionTime - r.ArrivalTime
}

func (r CompletionRecord) WaitingTime() int {
	return r.TurnAroundTime() - r.BurstTime
}

func (r CompletionRecord) ResponseTime() int {
	return r.FirstStart - r.ArrivalTime
}

type Metrics struct {
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64
}
