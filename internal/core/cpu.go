package core

// ProcessSpec is a process as submitted by a caller. It is never mutated by
// a simulation run.
type ProcessSpec struct {
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
}

// SimProcess is the per-run state of a process. StartTime and CompletionTime
// stay nil until the process first runs and finishes, respectively.
type SimProcess struct {
	Name           string
	ArrivalTime    int
	BurstTime      int
	RemainingTime  int
	StartTime      *int
	CompletionTime *int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// NewSimProcess creates the run state for spec with its full burst remaining.
func NewSimProcess(spec ProcessSpec) *SimProcess {
	return &SimProcess{
		Name:          spec.Name,
		ArrivalTime:   spec.ArrivalTime,
		BurstTime:     spec.BurstTime,
		RemainingTime: spec.BurstTime,
	}
}

// Completed reports whether the process has received its whole burst.
func (p *SimProcess) Completed() bool {
	return p.CompletionTime != nil
}

// GanttSegment is a half-open interval [Start, End) during which one process
// held the cpu.
type GanttSegment struct {
	ProcessName string
	Start       int
	End         int
}

// Duration is the number of time units covered by the segment.
func (s GanttSegment) Duration() int {
	return s.End - s.Start
}

// Cpu is a single logical processor. It runs at most one process and records
// every executed unit into a Gantt trace.
type Cpu struct {
	running  *SimProcess
	gantt    []GanttSegment
	busyTime int
}

// Running returns the process currently holding the cpu, or nil when idle.
func (c *Cpu) Running() *SimProcess {
	return c.running
}

// Dispatch puts p on the cpu and returns the process it displaced, if any.
func (c *Cpu) Dispatch(p *SimProcess) (preempted *SimProcess) {
	preempted = c.running
	c.running = p
	return preempted
}

// Execute runs the current process for the unit [t, t+1). It returns the
// process if that unit finished it, in which case the cpu becomes idle.
func (c *Cpu) Execute(t int) (completed *SimProcess) {
	p := c.running
	if p == nil {
		return nil
	}

	if n := len(c.gantt); n > 0 && c.gantt[n-1].ProcessName == p.Name && c.gantt[n-1].End == t {
		c.gantt[n-1].End = t + 1
	} else {
		c.gantt = append(c.gantt, GanttSegment{ProcessName: p.Name, Start: t, End: t + 1})
	}

	if p.StartTime == nil {
		start := t
		p.StartTime = &start
		p.ResponseTime = start - p.ArrivalTime
	}
	p.RemainingTime--
	c.busyTime++

	if p.RemainingTime > 0 {
		return nil
	}

	completion := t + 1
	p.CompletionTime = &completion
	p.TurnaroundTime = completion - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	c.running = nil
	return p
}

// Gantt returns a copy of the recorded trace in chronological order.
func (c *Cpu) Gantt() []GanttSegment {
	out := make([]GanttSegment, len(c.gantt))
	copy(out, c.gantt)
	return out
}

// BusyTime is the number of units the cpu spent executing a process.
func (c *Cpu) BusyTime() int {
	return c.busyTime
}

// SimulationResult is the complete outcome of one scheduling run.
type SimulationResult struct {
	Gantt             []GanttSegment
	Processes         []SimProcess
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64
	TotalTime         int
	IdleTime          int
	CpuUtilization    float64
	Throughput        float64
}
