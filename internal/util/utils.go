package util

import (
	"math"

	"srtf-simulator/internal/core"
)

// CalculateAverage returns the mean waiting, response and turnaround time of
// the given processes. It returns zeros for an empty slice.
func CalculateAverage(processes []core.SimProcess) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return 0, 0, 0
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, process := range processes {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnaroundTime
	}

	processCount := float64(len(processes))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
