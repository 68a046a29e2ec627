package metrics

import (
	"github.com/san-kum/slosh/internal/fluid"
	"github.com/san-kum/slosh/internal/sim"
)

// Series records energy, mean level and side-to-side imbalance per frame,
// keeping at most capacity points (0 keeps everything).
type Series struct {
	waveSpeedSq float64
	capacity    int
	Energy      []float64
	Level       []float64
	Imbalance   []float64
}

func NewSeries(waveSpeedSq float64, capacity int) *Series {
	return &Series{waveSpeedSq: waveSpeedSq, capacity: capacity}
}

func (s *Series) OnFrame(f sim.Frame) {
	s.Energy = s.push(s.Energy, fluid.Energy(f.Grid, s.waveSpeedSq))
	s.Level = s.push(s.Level, fluid.MeanLevel(f.Grid))
	s.Imbalance = s.push(s.Imbalance, fluid.Imbalance(f.Grid))
}

func (s *Series) push(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if s.capacity > 0 && len(xs) > s.capacity {
		xs = xs[1:]
	}
	return xs
}
