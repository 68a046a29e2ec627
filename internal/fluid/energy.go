package fluid

// Energy returns the discrete wave energy of the current slice: kinetic
// 0.5*v^2 per water cell plus potential 0.5*c^2*dh^2 for every face between
// two water cells.
func Energy(g *Grid, waveSpeedSq float64) float64 {
	w, ht := g.width, g.height
	level, vel := g.level[g.cur], g.vel[g.cur]
	ke, pe := 0.0, 0.0
	for r := 0; r < ht; r++ {
		for c := 0; c < w; c++ {
			i := r*w + c
			if g.obstacle[i] {
				continue
			}
			ke += 0.5 * vel[i] * vel[i]
			if c < w-1 && !g.obstacle[i+1] {
				d := level[i+1] - level[i]
				pe += 0.5 * waveSpeedSq * d * d
			}
			if r < ht-1 && !g.obstacle[i+w] {
				d := level[i+w] - level[i]
				pe += 0.5 * waveSpeedSq * d * d
			}
		}
	}
	return ke + pe
}

// MeanLevel is the average height over water cells, or 0 if there are none.
func MeanLevel(g *Grid) float64 {
	level := g.level[g.cur]
	sum, n := 0.0, 0
	for i, wall := range g.obstacle {
		if wall {
			continue
		}
		sum += level[i]
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Imbalance is the mean height of the right half of the water minus that of
// the left half. It swings sign as the surface sloshes side to side.
func Imbalance(g *Grid) float64 {
	w := g.width
	level := g.level[g.cur]
	var left, right float64
	var nl, nr int
	for i, wall := range g.obstacle {
		if wall {
			continue
		}
		c := i % w
		switch {
		case 2*c < w-1:
			left += level[i]
			nl++
		case 2*c > w-1:
			right += level[i]
			nr++
		}
	}
	if nl == 0 || nr == 0 {
		return 0
	}
	return right/float64(nr) - left/float64(nl)
}
