package responses

import (
	"fmt"

	"srtf-simulator/internal/core"
)

type ProcessResponse struct {
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type GanttSegmentResponse struct {
	Process string `json:"process"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

type ScheduleResponse struct {
	TotalTime             int                    `json:"total_time"`
	IdleTime              int                    `json:"idle_time"`
	AverageWaitingTime    string                 `json:"average_waiting_time"`
	AverageResponseTime   string                 `json:"average_response_time"`
	AverageTurnAroundTime string                 `json:"average_turn_around_time"`
	CpuUtilization        float64                `json:"cpu_utilization"`
	CpuThroughput         float64                `json:"cpu_throughput"`
	GanttChart            []GanttSegmentResponse `json:"gantt_chart"`
	Details               []ProcessResponse      `json:"details"`
}

type ProcessListResponse struct {
	SessionID string             `json:"session_id"`
	Processes []core.ProcessSpec `json:"processes"`
	Result    *ScheduleResponse  `json:"result,omitempty"`
}

// FormatAverage renders an average the way it is displayed to users, with
// exactly two decimals.
func FormatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// NewScheduleResponse builds the wire form of a finished simulation.
func NewScheduleResponse(result *core.SimulationResult) *ScheduleResponse {
	if result == nil {
		return nil
	}

	gantt := make([]GanttSegmentResponse, len(result.Gantt))
	for i, s := range result.Gantt {
		gantt[i] = GanttSegmentResponse{Process: s.ProcessName, Start: s.Start, End: s.End}
	}

	details := make([]ProcessResponse, len(result.Processes))
	for i, p := range result.Processes {
		details[i] = ProcessResponse{
			Name:           p.Name,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		}
		if p.StartTime != nil {
			details[i].StartTime = *p.StartTime
		}
		if p.CompletionTime != nil {
			details[i].CompletionTime = *p.CompletionTime
		}
	}

	return &ScheduleResponse{
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		AverageWaitingTime:    FormatAverage(result.AvgWaitingTime),
		AverageResponseTime:   FormatAverage(result.AvgResponseTime),
		AverageTurnAroundTime: FormatAverage(result.AvgTurnaroundTime),
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.Throughput,
		GanttChart:            gantt,
		Details:               details,
	}
}
