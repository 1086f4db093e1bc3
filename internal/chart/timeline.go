// Package chart renders simulation results as text: a proportional Gantt
// timeline, a color legend and the per-process summary table.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"srtf-simulator/internal/core"
)

const (
	DefaultUnitWidth   = 4
	DefaultMinBarWidth = 4
	DefaultMaxWidth    = 160
)

// Options controls timeline scaling. Zero values fall back to the defaults.
type Options struct {
	UnitWidth   int // columns per time unit
	MinBarWidth int // narrowest bar drawn, in columns
	MaxWidth    int // timelines longer than this are scaled down to fit
}

func (o Options) withDefaults() Options {
	if o.UnitWidth <= 0 {
		o.UnitWidth = DefaultUnitWidth
	}
	if o.MinBarWidth <= 0 {
		o.MinBarWidth = DefaultMinBarWidth
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	return o
}

// scale maps time to a column on the track.
type scale struct {
	origin    int
	span      int
	unitWidth int
	maxWidth  int
}

func newScale(minStart, maxEnd int, opts Options) scale {
	return scale{origin: minStart, span: maxEnd - minStart, unitWidth: opts.UnitWidth, maxWidth: opts.MaxWidth}
}

// fits reports whether the whole span can be drawn at UnitWidth.
func (s scale) fits() bool {
	return s.span <= s.maxWidth/s.unitWidth
}

func (s scale) col(t int) int {
	if s.fits() {
		return (t - s.origin) * s.unitWidth
	}
	return (t - s.origin) * s.maxWidth / s.span
}

// step is the smallest time distance worth a tick of its own.
func (s scale) step() int {
	if s.fits() {
		return 1
	}
	return (s.span + s.maxWidth - 1) / s.maxWidth
}

func bounds(gantt []core.GanttSegment) (int, int) {
	minStart, maxEnd := gantt[0].Start, gantt[0].End
	for _, s := range gantt[1:] {
		minStart = min(minStart, s.Start)
		maxEnd = max(maxEnd, s.End)
	}
	return minStart, maxEnd
}

// Bar is one positioned timeline bar.
type Bar struct {
	Segment core.GanttSegment
	Left    int
	Width   int
	Color   string
}

// Layout positions every Gantt segment on a track that starts at the first
// executed unit. It returns the bars and the track width in columns. A track
// wider than MaxWidth is compressed to MaxWidth.
func Layout(gantt []core.GanttSegment, colors *ColorMap, opts Options) ([]Bar, int) {
	if len(gantt) == 0 {
		return nil, 0
	}
	opts = opts.withDefaults()
	if colors == nil {
		colors = NewColorMap(nil)
	}

	minStart, maxEnd := bounds(gantt)
	sc := newScale(minStart, maxEnd, opts)
	trackWidth := sc.col(sc.origin + sc.span)
	bars := make([]Bar, len(gantt))
	for i, s := range gantt {
		left := sc.col(s.Start)
		bars[i] = Bar{
			Segment: s,
			Left:    left,
			Width:   max(sc.col(s.End)-left, opts.MinBarWidth),
			Color:   colors.ColorFor(s.ProcessName),
		}
		trackWidth = max(trackWidth, bars[i].Left+bars[i].Width)
	}
	return bars, trackWidth
}

// Timeline draws the bars of result on one line with a time axis under it.
// Bars narrower than their label show the process name only, truncated if
// needed.
func Timeline(result *core.SimulationResult, colors *ColorMap, opts Options) string {
	opts = opts.withDefaults()
	if result == nil || len(result.Gantt) == 0 {
		return "|\n"
	}
	bars, width := Layout(result.Gantt, colors, opts)

	track := []rune(strings.Repeat(" ", width+1))
	for _, b := range bars {
		label := fmt.Sprintf("%s (%d-%d)", b.Segment.ProcessName, b.Segment.Start, b.Segment.End)
		if len([]rune(label)) > b.Width-1 {
			label = b.Segment.ProcessName
		}
		cells := []rune(label)
		if len(cells) > b.Width-1 {
			cells = cells[:b.Width-1]
		}
		track[b.Left] = '|'
		for i := 1; i < b.Width; i++ {
			r := ' '
			if i-1 < len(cells) {
				r = cells[i-1]
			}
			track[b.Left+i] = r
		}
	}
	last := bars[len(bars)-1]
	if end := last.Left + last.Width; end < len(track) {
		track[end] = '|'
	}

	minStart, maxEnd := bounds(result.Gantt)
	sc := newScale(minStart, maxEnd, opts)
	axis := []rune(strings.Repeat(" ", width+1+len(strconv.Itoa(maxEnd))))
	endPos := sc.col(maxEnd)
	free := 0
	for t := minStart; t < maxEnd; t += sc.step() {
		pos := sc.col(t)
		label := strconv.Itoa(t)
		// keep a gap before the final tick, which is always drawn
		if pos < free || pos+len(label) >= endPos {
			continue
		}
		copy(axis[pos:], []rune(label))
		free = pos + len(label) + 1
	}
	copy(axis[endPos:], []rune(strconv.Itoa(maxEnd)))

	return strings.TrimRight(string(track), " ") + "\n" + strings.TrimRight(string(axis), " ") + "\n"
}

// Legend lists each process once with its color, in order of first run.
func Legend(result *core.SimulationResult, colors *ColorMap) string {
	if result == nil || len(result.Gantt) == 0 {
		return ""
	}
	if colors == nil {
		colors = NewColorMap(nil)
	}
	var b strings.Builder
	seen := make(map[string]bool)
	for _, s := range result.Gantt {
		if seen[s.ProcessName] {
			continue
		}
		seen[s.ProcessName] = true
		fmt.Fprintf(&b, "%s %s\n", colors.ColorFor(s.ProcessName), s.ProcessName)
	}
	return b.String()
}
