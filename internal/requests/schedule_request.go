package requests

import "srtf-simulator/internal/core"

type Job struct {
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
}

type ScheduleRequests struct {
	Processes []Job `json:"processes" yaml:"processes"`
}

// Specs converts the request body into engine input, preserving order.
func (r *ScheduleRequests) Specs() []core.ProcessSpec {
	specs := make([]core.ProcessSpec, len(r.Processes))
	for i, job := range r.Processes {
		specs[i] = job.Spec()
	}
	return specs
}

func (j Job) Spec() core.ProcessSpec {
	return core.ProcessSpec{
		Name:        j.Name,
		ArrivalTime: j.ArrivalTime,
		BurstTime:   j.BurstTime,
	}
}
