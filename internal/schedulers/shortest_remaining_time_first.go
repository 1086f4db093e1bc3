package schedulers

import (
	"errors"
	"log/slog"
	"sort"

	"srtf-simulator/internal/core"
)

// Option configures a scheduling run.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	maxTime int
}

// WithLogger sets the logger that receives per-tick debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxTime rejects processes whose arrival or burst time exceeds n.
// n <= 0 means no limit.
func WithMaxTime(n int) Option {
	return func(o *options) {
		o.maxTime = n
	}
}

// ScheduleShortestRemainingTimeFirst simulates preemptive SRTF scheduling of
// specs on a single cpu in unit time steps. Invalid input is rejected before
// any simulation state exists; the returned error then matches
// ErrInvalidInput.
func ScheduleShortestRemainingTimeFirst(specs []core.ProcessSpec, opts ...Option) (*core.SimulationResult, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := errors.Join(Validate(specs), validateMaxTime(specs, o.maxTime)); err != nil {
		return nil, err
	}
	log := o.logger.With("algorithm", "srtf")

	// admission order for simultaneous arrivals follows input order
	processes := make([]*core.SimProcess, len(specs))
	for i, spec := range specs {
		processes[i] = core.NewSimProcess(spec)
	}
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})

	var (
		cpu        core.Cpu
		readyQueue = core.NewReadyQueue()
		next       int // index of the next process to arrive
		completed  int
		t          int
	)
	for completed < len(processes) {
		// idle units leave no trace, so skip straight to the next arrival
		if cpu.Running() == nil && readyQueue.Len() == 0 && processes[next].ArrivalTime > t {
			t = processes[next].ArrivalTime
		}
		for next < len(processes) && processes[next].ArrivalTime == t {
			p := processes[next]
			log.Debug("process arrived", "process", p.Name, "time", t, "burst", p.BurstTime)
			readyQueue.Push(p)
			next++
		}

		candidate := readyQueue.Peek()
		running := cpu.Running()
		switch {
		case running != nil && candidate != nil && candidate.RemainingTime < running.RemainingTime:
			readyQueue.Pop()
			cpu.Dispatch(candidate)
			readyQueue.Push(running)
			log.Debug("process preempted",
				"process", running.Name,
				"remaining", running.RemainingTime,
				"by", candidate.Name,
				"by_remaining", candidate.RemainingTime,
				"time", t)
		case running == nil && candidate != nil:
			readyQueue.Pop()
			cpu.Dispatch(candidate)
		}

		if p := cpu.Execute(t); p != nil {
			completed++
			log.Debug("process completed",
				"process", p.Name,
				"completion", *p.CompletionTime,
				"turnaround", p.TurnaroundTime,
				"waiting", p.WaitingTime)
		}
		t++
	}

	result := generateResponse(processes, &cpu, t)
	log.Debug("simulation finished",
		"processes", len(processes),
		"segments", len(result.Gantt),
		"total_time", result.TotalTime)
	return result, nil
}
