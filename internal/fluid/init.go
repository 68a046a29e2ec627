package fluid

import "math"

const (
	// TiltEpsilon is the tilt below which the surface counts as flat.
	TiltEpsilon = 0.001

	// DisturbanceHeight is added to the water level at the centre of a
	// flat surface so that waves start moving.
	DisturbanceHeight = 0.4
)

// Initialize fills g with water at level, tilted across the columns by tilt,
// and walls the border. A flat surface gets a single raised cell at its
// centre instead.
func Initialize(g *Grid, level, tilt float64) {
	w, h := g.width, g.height
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if g.IsBorder(r, c) {
				g.SetObstacle(r, c, true)
				continue
			}
			g.SetObstacle(r, c, false)
			// ranges over [-tilt, +tilt] from left to right
			tiltEffect := tilt * ((float64(c) / float64(w-1)) - 0.5) * 2
			g.SetLevel(r, c, clamp01(level+tiltEffect))
			g.SetVelocity(r, c, 0)
		}
	}

	if math.Abs(tilt) < TiltEpsilon && w > 2 && h > 2 {
		Disturb(g, h/2, w/2, level+DisturbanceHeight)
	}
}

// Disturb sets the height of a water cell, clamped to [0, 1]. Walls and
// out-of-range coordinates are left alone. It reports whether the cell
// changed.
func Disturb(g *Grid, r, c int, height float64) bool {
	if !g.InBounds(r, c) || g.Obstacle(r, c) {
		return false
	}
	g.SetLevel(r, c, clamp01(height))
	return true
}

// clamp01 maps NaN to 0 so a diverged cell still lands in [0, 1].
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
