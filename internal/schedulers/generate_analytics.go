package schedulers

import (
	"cpu-scheduler/internal/core"
)

// generateCompletionRecords reduces a timeline to one record per process, in input order.
func generateCompletionRecords(processes []core.Process, timeline core.Timeline) []core.CompletionRecord {
	index := make(map[int]int, len(processes))
	records := make([]core.CompletionRecord, len(processes))
	for i, p := range processes {
		index[p.ProcessId] = i
		records[i] = core.CompletionRecord{
			ProcessId:   p.ProcessId,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			FirstStart:  -1,
		}
	}

	for _, entry := range timeline {
		record := &records[index[entry.ProcessId]]
		if record.FirstStart < 0 {
			record.FirstStart = entry.Start
		}
		record.CompletionTime = entry.End
	}
	return records
}
