package sim

import (
	"fmt"

	"github.com/san-kum/slosh/internal/config"
	"github.com/san-kum/slosh/internal/fluid"
)

// Simulation owns one parameter set and the grid it drives. Values share
// no state, so several may run side by side.
type Simulation struct {
	params config.Params
	coeffs fluid.Coefficients
	grid   *fluid.Grid
	frame  int
}

// New validates p, allocates a width x height grid and initializes it.
// Nothing is allocated when p is invalid.
func New(p *config.Params, width, height int) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g, err := fluid.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	fluid.Initialize(g, p.Level, p.Tilt)
	return &Simulation{params: *p, coeffs: p.Coefficients(), grid: g}, nil
}

func (s *Simulation) Params() config.Params { return s.params }
func (s *Simulation) Grid() *fluid.Grid     { return s.grid }
func (s *Simulation) Frames() int           { return s.frame }
func (s *Simulation) Time() float64         { return float64(s.frame) * s.coeffs.Dt }

// Step advances the grid by one time step.
func (s *Simulation) Step() (Frame, error) {
	if s.grid == nil || s.grid.Released() {
		return Frame{}, fmt.Errorf("step %d: %w", s.frame, fluid.ErrReleased)
	}
	clamped := fluid.Step(s.grid, s.coeffs)
	s.frame++
	return Frame{Index: s.frame, Time: s.Time(), Grid: s.grid, Clamped: clamped}, nil
}

// Close releases the grid. It is safe to call more than once.
func (s *Simulation) Close() {
	if s.grid != nil {
		s.grid.Release()
		s.grid = nil
	}
}
