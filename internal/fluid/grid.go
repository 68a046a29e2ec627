package fluid

// MaxCells bounds the number of cells a grid may hold. Five buffers are kept
// per cell, so the limit keeps a grid well under a gigabyte.
const MaxCells = 1 << 24

// Grid holds the heightfield: two height and two velocity slices in flat
// row-major buffers plus a fixed obstacle mask. cur selects which of the
// pair is the current slice; the other is the next slice written by Step.
type Grid struct {
	width, height int
	level         [2][]float64
	vel           [2][]float64
	obstacle      []bool
	cur           int
}

// NewGrid allocates a zeroed width x height grid. Either every buffer is
// allocated or an error is returned.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 || width > MaxCells/height {
		return nil, &SizeError{Width: width, Height: height}
	}
	n := width * height
	return &Grid{
		width:    width,
		height:   height,
		level:    [2][]float64{make([]float64, n), make([]float64, n)},
		vel:      [2][]float64{make([]float64, n), make([]float64, n)},
		obstacle: make([]bool, n),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) idx(r, c int) int { return r*g.width + c }

func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

func (g *Grid) IsBorder(r, c int) bool {
	return r == 0 || r == g.height-1 || c == 0 || c == g.width-1
}

// Level returns the current water height at (r, c).
func (g *Grid) Level(r, c int) float64 { return g.level[g.cur][g.idx(r, c)] }

// Velocity returns the current vertical velocity at (r, c).
func (g *Grid) Velocity(r, c int) float64 { return g.vel[g.cur][g.idx(r, c)] }

func (g *Grid) Obstacle(r, c int) bool { return g.obstacle[g.idx(r, c)] }

func (g *Grid) SetLevel(r, c int, h float64)    { g.level[g.cur][g.idx(r, c)] = h }
func (g *Grid) SetVelocity(r, c int, v float64) { g.vel[g.cur][g.idx(r, c)] = v }

// SetObstacle marks (r, c) as wall or water. Walls are zeroed in both slices.
func (g *Grid) SetObstacle(r, c int, wall bool) {
	i := g.idx(r, c)
	g.obstacle[i] = wall
	if wall {
		g.level[0][i], g.level[1][i] = 0, 0
		g.vel[0][i], g.vel[1][i] = 0, 0
	}
}

// Commit makes the next slice current. No cell data is copied.
func (g *Grid) Commit() {
	g.cur ^= 1
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cur: g.cur}
	for i := 0; i < 2; i++ {
		c.level[i] = append([]float64(nil), g.level[i]...)
		c.vel[i] = append([]float64(nil), g.vel[i]...)
	}
	c.obstacle = append([]bool(nil), g.obstacle...)
	return c
}

// Release drops the buffers. The grid must not be used afterwards.
func (g *Grid) Release() {
	g.level = [2][]float64{}
	g.vel = [2][]float64{}
	g.obstacle = nil
}

// Released reports whether Release has been called.
func (g *Grid) Released() bool { return g.obstacle == nil }

func (g *Grid) next() (level, vel []float64) {
	n := g.cur ^ 1
	return g.level[n], g.vel[n]
}
