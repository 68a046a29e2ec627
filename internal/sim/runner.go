package sim

import (
	"context"

	"github.com/san-kum/slosh/internal/term"
)

// Runner is the frame loop: step, observe, compose, present, wait.
type Runner struct {
	sim       *Simulation
	composer  Composer
	presenter term.Presenter
	delay     term.Delay
	maxFrames int
	metrics   []Metric
	observers []Observer
}

// NewRunner builds a loop over s. maxFrames of 0 runs until the context is
// cancelled.
func NewRunner(s *Simulation, c Composer, p term.Presenter, d term.Delay, maxFrames int) *Runner {
	return &Runner{
		sim:       s,
		composer:  c,
		presenter: p,
		delay:     d,
		maxFrames: maxFrames,
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run drives the simulation until ctx is done or maxFrames frames have been
// shown, then closes the simulation. Cancellation is a clean stop and is not
// returned as an error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	defer r.sim.Close()

	for _, m := range r.metrics {
		m.Reset()
	}
	result := &Result{Metrics: make(map[string]float64)}

	err := r.loop(ctx, result)

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	if err != nil && ctx.Err() != nil {
		err = nil
	}
	return result, err
}

func (r *Runner) loop(ctx context.Context, result *Result) error {
	wait := r.sim.params.FrameDelay()
	for r.maxFrames == 0 || result.Frames < r.maxFrames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f, err := r.sim.Step()
		if err != nil {
			return err
		}
		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(f)
		}

		if err := r.presenter.Present(r.composer.Paint(f.Grid)); err != nil {
			return err
		}
		result.Frames++
		result.Time = f.Time

		if err := r.delay.Wait(ctx, wait); err != nil {
			return err
		}
	}
	return nil
}
