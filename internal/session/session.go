// Package session holds the per-user scheduling workspace: the processes a
// user has entered, the counter used to auto-name them and the last result.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"srtf-simulator/internal/core"
	"srtf-simulator/internal/schedulers"
)

var (
	ErrDuplicateName  = errors.New("process name already exists")
	ErrNotFound       = errors.New("process not found")
	ErrNoProcesses    = errors.New("add at least one process before running")
	ErrTooMany        = errors.New("too many processes")
	ErrInvalidProcess = errors.New("invalid process")
)

// Limits bounds what a session accepts. Zero fields mean no limit.
type Limits struct {
	MaxProcesses int
	MaxTime      int // largest arrival or burst time
}

// Session is safe for concurrent use.
type Session struct {
	ID string

	mu        sync.Mutex
	processes []core.ProcessSpec
	counter   int
	last      *core.SimulationResult
	limits    Limits
	logger    *slog.Logger
}

// New creates an empty session.
func New(id string, limits Limits, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ID:      id,
		counter: 1,
		limits:  limits,
		logger:  logger.With("session", id),
	}
}

// Add appends a process. A blank name is replaced by P<n> from a counter
// that starts at 1 and only ever grows until Reset.
func (s *Session) Add(name string, arrivalTime, burstTime int) (core.ProcessSpec, error) {
	if arrivalTime < 0 || burstTime < 1 {
		return core.ProcessSpec{}, fmt.Errorf("%w: arrival time must be >= 0 and burst time >= 1", ErrInvalidProcess)
	}
	if limit := s.limits.MaxTime; limit > 0 && (arrivalTime > limit || burstTime > limit) {
		return core.ProcessSpec{}, fmt.Errorf("%w: arrival and burst time must not exceed %d", ErrInvalidProcess, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limits.MaxProcesses > 0 && len(s.processes) >= s.limits.MaxProcesses {
		return core.ProcessSpec{}, fmt.Errorf("%w: limit is %d", ErrTooMany, s.limits.MaxProcesses)
	}

	name = strings.TrimSpace(name)
	generated := name == ""
	if generated {
		// advances even when the generated name is already taken
		name = fmt.Sprintf("P%d", s.counter)
		s.counter++
	}
	for _, p := range s.processes {
		if p.Name == name {
			return core.ProcessSpec{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
	}

	spec := core.ProcessSpec{Name: name, ArrivalTime: arrivalTime, BurstTime: burstTime}
	s.processes = append(s.processes, spec)
	s.logger.Debug("process added", "process", name, "arrival", arrivalTime, "burst", burstTime)
	return spec, nil
}

// Remove deletes the process at index.
func (s *Session) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.processes) {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	removed := s.processes[index]
	s.processes = append(s.processes[:index], s.processes[index+1:]...)
	s.logger.Debug("process removed", "process", removed.Name)
	return nil
}

// Processes returns a copy of the current process list.
func (s *Session) Processes() []core.ProcessSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.ProcessSpec, len(s.processes))
	copy(out, s.processes)
	return out
}

// Run schedules a snapshot of the process list and keeps the result.
func (s *Session) Run() (*core.SimulationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.processes) == 0 {
		return nil, ErrNoProcesses
	}
	specs := append([]core.ProcessSpec(nil), s.processes...)
	result, err := schedulers.ScheduleShortestRemainingTimeFirst(specs,
		schedulers.WithLogger(s.logger),
		schedulers.WithMaxTime(s.limits.MaxTime))
	if err != nil {
		return nil, fmt.Errorf("run session %s: %w", s.ID, err)
	}
	s.last = result
	s.logger.Info("simulation finished",
		"processes", len(specs),
		"avg_waiting_time", result.AvgWaitingTime,
		"avg_turnaround_time", result.AvgTurnaroundTime)
	return result, nil
}

// Last returns the most recent result, or nil if the session has not run
// since creation or the last reset.
func (s *Session) Last() *core.SimulationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Reset discards all processes and the last result and restarts naming at P1.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes = nil
	s.counter = 1
	s.last = nil
	s.logger.Debug("session reset")
}
