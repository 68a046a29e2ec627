package metrics

import "github.com/san-kum/slosh/internal/sim"

// Clamping measures how often the height clamp had to act: the fraction of
// frames in which at least one cell was clamped.
type Clamping struct {
	name     string
	clamped  int
	samples  int
	maxCells int
}

func NewClamping() *Clamping {
	return &Clamping{name: "clamped_frames"}
}

func (s *Clamping) Name() string {
	return s.name
}

func (s *Clamping) Observe(f sim.Frame) {
	s.samples++
	if f.Clamped > 0 {
		s.clamped++
	}
	if f.Clamped > s.maxCells {
		s.maxCells = f.Clamped
	}
}

func (s *Clamping) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.clamped) / float64(s.samples)
}

// Peak is the largest number of cells clamped in one frame.
func (s *Clamping) Peak() int { return s.maxCells }

func (s *Clamping) Reset() {
	s.clamped = 0
	s.samples = 0
	s.maxCells = 0
}
