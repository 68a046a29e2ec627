package fluid

import "fmt"

// StabilityLimit is the largest waveSpeedSq*dt^2 for which the explicit
// 5-point scheme with unit cell spacing is expected to stay bounded.
const StabilityLimit = 0.5

// Stability is the advisory CFL-style classification of a parameter pair.
type Stability struct {
	Metric   float64
	Unstable bool
}

// CheckStability classifies waveSpeedSq and dt. The result never prevents a
// run.
func CheckStability(waveSpeedSq, dt float64) Stability {
	m := waveSpeedSq * dt * dt
	return Stability{Metric: m, Unstable: m > StabilityLimit}
}

// Advice returns an operator-facing explanation, or "" when stable.
func (s Stability) Advice() string {
	if !s.Unstable {
		return ""
	}
	return fmt.Sprintf("simulation might be unstable: (speed_sq * dt^2) = %.3f, should be <= %.1f; consider reducing dt or speed_sq",
		s.Metric, StabilityLimit)
}

func (s Stability) String() string {
	state := "stable"
	if s.Unstable {
		state = "potentially unstable"
	}
	return fmt.Sprintf("%s (speed_sq * dt^2 = %.3f, limit %.1f)", state, s.Metric, StabilityLimit)
}
