package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             schedulers.Policy    `json:"algorithm"`
	Timeline              []core.TimelineEntry `json:"timeline"`
	TotalTime             int                  `json:"total_time"`
	IdleTime              int                  `json:"idle_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	CpuThroughput         float64              `json:"cpu_throughput"`
	Details               []ProcessResponse    `json:"details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewScheduleResponse(result schedulers.Result) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(result.Records))
	for _, record := range result.Records {
		details = append(details, ProcessResponse{
			ProcessId:      record.ProcessId,
			ArrivalTime:    record.ArrivalTime,
			BurstTime:      record.BurstTime,
			CompletionTime: record.CompletionTime,
			ResponseTime:   record.ResponseTime(),
			TurnAroundTime: record.TurnAroundTime(),
			WaitingTime:    record.WaitingTime(),
		})
	}
	return ScheduleResponse{
		Algorithm:             result.Policy,
		Timeline:              result.Timeline,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.Metrics.AverageWaitingTime,
		AverageResponseTime:   result.Metrics.AverageResponseTime,
		AverageTurnAroundTime: result.Metrics.AverageTurnAroundTime,
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         result.Cpu.Throughput(len(result.Records)),
		Details:               details,
	}
}
