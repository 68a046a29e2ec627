package render

import (
	"strings"

	"github.com/san-kum/slosh/internal/fluid"
)

// Classify returns the class of cell (r, c) of g.
func Classify(g *fluid.Grid, r, c int) Class {
	if g.Obstacle(r, c) {
		return Wall
	}
	return Quantize(g.Level(r, c))
}

// Frame composes the whole grid into one row-major buffer with a newline
// after every row.
func Frame(g *fluid.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			sb.WriteByte(Classify(g, r, c).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
