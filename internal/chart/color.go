package chart

// Palette is the fixed set of bar colors, assigned in first-seen order.
var Palette = []string{
	"#10b981",
	"#3b82f6",
	"#a67fc4",
	"#7c6ccf",
	"#8367b6",
	"#00b388",
	"#ffb86b",
	"#ff7b72",
}

// ColorMap hands out palette colors per process name. Once a name has a
// color it keeps it; past the end of the palette colors repeat.
type ColorMap struct {
	palette []string
	colors  map[string]string
}

func NewColorMap(palette []string) *ColorMap {
	if len(palette) == 0 {
		palette = Palette
	}
	return &ColorMap{palette: palette, colors: make(map[string]string)}
}

func (m *ColorMap) ColorFor(name string) string {
	if c, ok := m.colors[name]; ok {
		return c
	}
	c := m.palette[len(m.colors)%len(m.palette)]
	m.colors[name] = c
	return c
}
