package sim

import "github.com/san-kum/slosh/internal/fluid"

// Frame describes one completed step. Grid is the committed state and must
// not be retained past the callback.
type Frame struct {
	Index   int
	Time    float64
	Grid    *fluid.Grid
	Clamped int
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// Composer turns a grid into a displayable frame buffer.
type Composer interface {
	Paint(g *fluid.Grid) string
}

type Result struct {
	Frames  int
	Time    float64
	Metrics map[string]float64
}
