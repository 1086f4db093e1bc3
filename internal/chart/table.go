package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"srtf-simulator/internal/core"
	"srtf-simulator/internal/responses"
)

// nameNumber is the number formed by all digits in name, or 0 if there are
// none, so "P10" sorts after "P9". Numbers too large for an int saturate.
func nameNumber(name string) int {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, name)
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

// SortedByName returns the processes ordered by the numeric part of their
// names. Processes with the same number keep their relative order.
func SortedByName(processes []core.SimProcess) []core.SimProcess {
	out := append([]core.SimProcess(nil), processes...)
	sort.SliceStable(out, func(i, j int) bool {
		return nameNumber(out[i].Name) < nameNumber(out[j].Name)
	})
	return out
}

// SummaryTable writes one row per process followed by the averages.
func SummaryTable(w io.Writer, result *core.SimulationResult) error {
	if result == nil {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROCESS\tARRIVAL\tBURST\tCOMPLETION\tTURNAROUND\tWAITING")
	for _, p := range SortedByName(result.Processes) {
		completion := "-"
		if p.CompletionTime != nil {
			completion = strconv.Itoa(*p.CompletionTime)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\t%d\n",
			p.Name, p.ArrivalTime, p.BurstTime, completion, p.TurnaroundTime, p.WaitingTime)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nAverage waiting time:    %s\nAverage turnaround time: %s\n",
		responses.FormatAverage(result.AvgWaitingTime),
		responses.FormatAverage(result.AvgTurnaroundTime))
	return err
}

// Render writes the timeline, legend and summary table for result.
func Render(w io.Writer, result *core.SimulationResult, opts Options) error {
	colors := NewColorMap(nil)
	if _, err := fmt.Fprintf(w, "Gantt chart\n\n%s\n%s\n", Timeline(result, colors, opts), Legend(result, colors)); err != nil {
		return err
	}
	return SummaryTable(w, result)
}
