package schedulers

import (
	"sort"

	"srtf-simulator/internal/core"
	"srtf-simulator/internal/util"
)

func generateResponse(processes []*core.SimProcess, cpu *core.Cpu, totalTime int) *core.SimulationResult {
	processDetails := generateProcessDetails(processes)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	idleTime := totalTime - cpu.BusyTime()
	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - float64(idleTime)/float64(totalTime)
		throughput = float64(len(processes)) / float64(totalTime)
	}

	return &core.SimulationResult{
		Gantt:             cpu.Gantt(),
		Processes:         processDetails,
		AvgWaitingTime:    util.Round2(averageWaitingTime),
		AvgTurnaroundTime: util.Round2(averageTurnAroundTime),
		AvgResponseTime:   util.Round2(averageResponseTime),
		TotalTime:         totalTime,
		IdleTime:          idleTime,
		CpuUtilization:    util.Round2(utilization),
		Throughput:        util.Round2(throughput),
	}
}

// generateProcessDetails snapshots the finished processes so the result does
// not alias run state. The listing is ordered by arrival then name, which
// keeps it independent of input order.
func generateProcessDetails(processes []*core.SimProcess) []core.SimProcess {
	details := make([]core.SimProcess, len(processes))
	for i, p := range processes {
		details[i] = *p
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].ArrivalTime != details[j].ArrivalTime {
			return details[i].ArrivalTime < details[j].ArrivalTime
		}
		return details[i].Name < details[j].Name
	})
	return details
}
