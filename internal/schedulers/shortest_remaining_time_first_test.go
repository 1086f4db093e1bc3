package schedulers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srtf-simulator/internal/core"
)

func seg(name string, start, end int) core.GanttSegment {
	return core.GanttSegment{ProcessName: name, Start: start, End: end}
}

func byName(result *core.SimulationResult) map[string]core.SimProcess {
	m := make(map[string]core.SimProcess, len(result.Processes))
	for _, p := range result.Processes {
		m[p.Name] = p
	}
	return m
}

func TestScheduleSingleProcess(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", ArrivalTime: 0, BurstTime: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttSegment{seg("P1", 0, 4)}, result.Gantt)
	require.Len(t, result.Processes, 1)
	p := result.Processes[0]
	assert.Equal(t, 0, p.WaitingTime)
	assert.Equal(t, 4, p.TurnaroundTime)
	assert.Equal(t, 0, *p.StartTime)
	assert.Equal(t, 4, *p.CompletionTime)
	assert.Equal(t, 0.0, result.AvgWaitingTime)
	assert.Equal(t, 4.0, result.AvgTurnaroundTime)
	assert.Equal(t, "0.00", fmt.Sprintf("%.2f", result.AvgWaitingTime))
}

func TestScheduleShorterArrivalPreempts(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", ArrivalTime: 0, BurstTime: 5},
		{Name: "P2", ArrivalTime: 1, BurstTime: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttSegment{
		seg("P1", 0, 1),
		seg("P2", 1, 4),
		seg("P1", 4, 8),
	}, result.Gantt)

	procs := byName(result)
	assert.Equal(t, 8, *procs["P1"].CompletionTime)
	assert.Equal(t, 3, procs["P1"].WaitingTime)
	assert.Equal(t, 4, *procs["P2"].CompletionTime)
	assert.Equal(t, 0, procs["P2"].WaitingTime)
	assert.Equal(t, 1.5, result.AvgWaitingTime)
	assert.Equal(t, 5.5, result.AvgTurnaroundTime)
}

func TestScheduleClassicPreemption(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", ArrivalTime: 0, BurstTime: 8},
		{Name: "P2", ArrivalTime: 1, BurstTime: 4},
		{Name: "P3", ArrivalTime: 2, BurstTime: 9},
		{Name: "P4", ArrivalTime: 3, BurstTime: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttSegment{
		seg("P1", 0, 1),
		seg("P2", 1, 5),
		seg("P4", 5, 10),
		seg("P1", 10, 17),
		seg("P3", 17, 26),
	}, result.Gantt)

	procs := byName(result)
	want := map[string][2]int{ // turnaround, waiting
		"P1": {17, 9},
		"P2": {4, 0},
		"P3": {24, 15},
		"P4": {7, 2},
	}
	for name, w := range want {
		assert.Equal(t, w[0], procs[name].TurnaroundTime, name)
		assert.Equal(t, w[1], procs[name].WaitingTime, name)
	}
	assert.Equal(t, 6.5, result.AvgWaitingTime)
	assert.Equal(t, 13.0, result.AvgTurnaroundTime)
	assert.Equal(t, 4.25, result.AvgResponseTime)
	assert.Equal(t, 26, result.TotalTime)
	assert.Equal(t, 0, result.IdleTime)
	assert.Equal(t, 1.0, result.CpuUtilization)
	assert.Equal(t, 0.15, result.Throughput)
}

func TestScheduleTieBreaks(t *testing.T) {
	t.Run("simultaneous equal bursts run in input order", func(t *testing.T) {
		result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
			{Name: "B", ArrivalTime: 0, BurstTime: 3},
			{Name: "A", ArrivalTime: 0, BurstTime: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.GanttSegment{seg("B", 0, 3), seg("A", 3, 6)}, result.Gantt)
	})

	t.Run("equal remaining time never preempts", func(t *testing.T) {
		result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
			{Name: "P1", ArrivalTime: 0, BurstTime: 4},
			{Name: "P2", ArrivalTime: 1, BurstTime: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.GanttSegment{seg("P1", 0, 4), seg("P2", 4, 7)}, result.Gantt)
	})

	t.Run("equal remaining in queue prefers earlier arrival", func(t *testing.T) {
		// at t=3 P1 and P3 both have 2 left, P1 arrived first
		result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
			{Name: "P1", ArrivalTime: 0, BurstTime: 4},
			{Name: "P2", ArrivalTime: 2, BurstTime: 1},
			{Name: "P3", ArrivalTime: 3, BurstTime: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, []core.GanttSegment{
			seg("P1", 0, 2),
			seg("P2", 2, 3),
			seg("P1", 3, 5),
			seg("P3", 5, 7),
		}, result.Gantt)
	})
}

func TestScheduleIdleGaps(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", ArrivalTime: 2, BurstTime: 2},
		{Name: "P2", ArrivalTime: 7, BurstTime: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttSegment{seg("P1", 2, 4), seg("P2", 7, 8)}, result.Gantt)
	assert.Equal(t, 8, result.TotalTime)
	assert.Equal(t, 5, result.IdleTime)
	assert.Equal(t, 0.38, result.CpuUtilization)
	assert.Equal(t, 0.0, result.AvgWaitingTime)
}

func TestScheduleSkipsLongIdleGaps(t *testing.T) {
	result, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", ArrivalTime: 2_000_000_000, BurstTime: 1},
		{Name: "P2", ArrivalTime: 0, BurstTime: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttSegment{
		seg("P2", 0, 2),
		seg("P1", 2_000_000_000, 2_000_000_001),
	}, result.Gantt)
	assert.Equal(t, 2_000_000_001, result.TotalTime)
	assert.Equal(t, 2_000_000_001-3, result.IdleTime)
	assert.Equal(t, 0, byName(result)["P1"].WaitingTime)
}

func TestScheduleMaxTime(t *testing.T) {
	specs := []core.ProcessSpec{
		{Name: "P1", ArrivalTime: 0, BurstTime: 10},
		{Name: "P2", ArrivalTime: 11, BurstTime: 1},
	}

	_, err := ScheduleShortestRemainingTimeFirst(specs, WithMaxTime(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "process #1 (P2): arrival time 11 exceeds limit 10")
	assert.NotContains(t, err.Error(), "process #0")

	_, err = ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", BurstTime: 11},
	}, WithMaxTime(10))
	assert.ErrorContains(t, err, "burst time 11 exceeds limit 10")

	_, err = ScheduleShortestRemainingTimeFirst(specs, WithMaxTime(11))
	assert.NoError(t, err)
}

func TestScheduleInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		specs   []core.ProcessSpec
		wantMsg string
	}{
		{name: "nil", specs: nil, wantMsg: "empty process set"},
		{name: "empty", specs: []core.ProcessSpec{}, wantMsg: "empty process set"},
		{
			name:    "duplicate name",
			specs:   []core.ProcessSpec{{Name: "P1", BurstTime: 1}, {Name: "P1", BurstTime: 2}},
			wantMsg: "process #1 (P1): duplicate name",
		},
		{
			name:    "negative arrival",
			specs:   []core.ProcessSpec{{Name: "P1", ArrivalTime: -1, BurstTime: 1}},
			wantMsg: "negative arrival time -1",
		},
		{
			name:    "zero burst",
			specs:   []core.ProcessSpec{{Name: "P1", BurstTime: 0}},
			wantMsg: "non-positive burst time 0",
		},
		{
			name:    "blank name",
			specs:   []core.ProcessSpec{{Name: "  ", BurstTime: 1}},
			wantMsg: "name must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScheduleShortestRemainingTimeFirst(tt.specs)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	specs := []core.ProcessSpec{
		{Name: "P2", ArrivalTime: 3, BurstTime: 2},
		{Name: "P1", ArrivalTime: 0, BurstTime: 5},
	}
	orig := append([]core.ProcessSpec(nil), specs...)

	_, err := ScheduleShortestRemainingTimeFirst(specs)
	require.NoError(t, err)
	assert.Equal(t, orig, specs)
}

func TestScheduleLogsDecisions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := ScheduleShortestRemainingTimeFirst([]core.ProcessSpec{
		{Name: "P1", ArrivalTime: 0, BurstTime: 5},
		{Name: "P2", ArrivalTime: 1, BurstTime: 3},
	}, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "process preempted")
	assert.Contains(t, out, "process=P1")
	assert.Contains(t, out, "by=P2")
	assert.Contains(t, out, "process completed")
}

// randomSpecs builds n processes with distinct (arrival, burst) pairs so that
// no two processes can ever be fully tied.
func randomSpecs(r *rand.Rand, n int) []core.ProcessSpec {
	specs := make([]core.ProcessSpec, 0, n)
	used := make(map[[2]int]bool)
	for len(specs) < n {
		key := [2]int{r.Intn(15), 1 + r.Intn(10)}
		if used[key] {
			continue
		}
		used[key] = true
		specs = append(specs, core.ProcessSpec{
			Name:        fmt.Sprintf("P%d", len(specs)+1),
			ArrivalTime: key[0],
			BurstTime:   key[1],
		})
	}
	return specs
}

func TestScheduleProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		specs := randomSpecs(r, 1+r.Intn(8))

		result, err := ScheduleShortestRemainingTimeFirst(specs)
		require.NoError(t, err)
		require.Len(t, result.Processes, len(specs))

		var sumWait, sumBurst, sumTurnaround int
		for _, p := range result.Processes {
			sumWait += p.WaitingTime
			sumBurst += p.BurstTime
			sumTurnaround += p.TurnaroundTime

			require.NotNil(t, p.CompletionTime)
			require.NotNil(t, p.StartTime)
			assert.Zero(t, p.RemainingTime)
			assert.GreaterOrEqual(t, *p.CompletionTime, p.ArrivalTime+p.BurstTime)
			assert.GreaterOrEqual(t, *p.StartTime, p.ArrivalTime)
		}
		assert.Equal(t, sumTurnaround, sumWait+sumBurst)

		var sumDur int
		busy := make(map[string]int)
		for j, s := range result.Gantt {
			require.Greater(t, s.End, s.Start)
			sumDur += s.Duration()
			busy[s.ProcessName] += s.Duration()
			if j > 0 {
				prev := result.Gantt[j-1]
				require.GreaterOrEqual(t, s.Start, prev.End, "segments overlap")
				if s.Start == prev.End {
					assert.NotEqual(t, prev.ProcessName, s.ProcessName, "contiguous segments not merged")
				}
			}
		}
		assert.Equal(t, sumBurst, sumDur)
		for _, p := range result.Processes {
			assert.Equal(t, p.BurstTime, busy[p.Name])
		}

		again, err := ScheduleShortestRemainingTimeFirst(specs)
		require.NoError(t, err)
		if diff := cmp.Diff(result, again); diff != "" {
			t.Fatalf("non-deterministic result (-first +second):\n%s", diff)
		}

		shuffled := append([]core.ProcessSpec(nil), specs...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		reordered, err := ScheduleShortestRemainingTimeFirst(shuffled)
		require.NoError(t, err)
		if diff := cmp.Diff(result, reordered); diff != "" {
			t.Fatalf("result depends on input order %v (-orig +shuffled):\n%s", specs, diff)
		}
	}
}
