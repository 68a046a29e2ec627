package metrics

import (
	"github.com/san-kum/slosh/internal/fluid"
	"github.com/san-kum/slosh/internal/sim"
)

// Energy averages the discrete wave energy over the observed frames.
type Energy struct {
	name        string
	waveSpeedSq float64
	samples     int
	totalEnergy float64
	last        float64
}

func NewEnergy(waveSpeedSq float64) *Energy {
	return &Energy{name: "energy", waveSpeedSq: waveSpeedSq}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f sim.Frame) {
	e.last = fluid.Energy(f.Grid, e.waveSpeedSq)
	e.totalEnergy += e.last
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

// Last is the energy of the most recent frame.
func (e *Energy) Last() float64 { return e.last }

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
	e.last = 0
}

// Level tracks the mean water height of the latest frame.
type Level struct {
	value float64
}

func NewLevel() *Level { return &Level{} }

func (l *Level) Name() string        { return "mean_level" }
func (l *Level) Observe(f sim.Frame) { l.value = fluid.MeanLevel(f.Grid) }
func (l *Level) Value() float64      { return l.value }
func (l *Level) Reset()              { l.value = 0 }
