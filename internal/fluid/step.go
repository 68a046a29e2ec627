package fluid

// Coefficients are the physical constants of the wave equation.
type Coefficients struct {
	Dt          float64
	WaveSpeedSq float64
	Damping     float64
}

// Step advances g by one explicit time step of the damped wave equation and
// commits the result. Every new value is computed from the current slice
// only. Walls and grid edges reflect: a missing or walled neighbour takes
// the cell's own height. It returns how many cells hit the [0, 1] clamp.
func Step(g *Grid, k Coefficients) int {
	w, ht := g.width, g.height
	level, vel := g.level[g.cur], g.vel[g.cur]
	nextLevel, nextVel := g.next()
	damp := 1 - k.Damping*k.Dt
	clamped := 0

	for r := 0; r < ht; r++ {
		for c := 0; c < w; c++ {
			i := r*w + c
			if g.obstacle[i] {
				nextLevel[i] = 0
				nextVel[i] = 0
				continue
			}

			h := level[i]
			up, down, left, right := h, h, h, h
			if r > 0 && !g.obstacle[i-w] {
				up = level[i-w]
			}
			if r < ht-1 && !g.obstacle[i+w] {
				down = level[i+w]
			}
			if c > 0 && !g.obstacle[i-1] {
				left = level[i-1]
			}
			if c < w-1 && !g.obstacle[i+1] {
				right = level[i+1]
			}

			laplacian := up + down + left + right - 4*h

			v := vel[i] + (k.WaveSpeedSq*laplacian)*k.Dt
			v *= damp
			nextVel[i] = v

			nh := h + v*k.Dt
			if !(nh >= 0 && nh <= 1) {
				clamped++
			}
			nextLevel[i] = clamp01(nh)
		}
	}

	g.Commit()
	return clamped
}
