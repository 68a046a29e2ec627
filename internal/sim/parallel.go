package sim

import (
	"context"
	"sync"

	"github.com/san-kum/slosh/internal/config"
)

// Ensemble runs several independent headless simulations on the same
// geometry, one goroutine each.
type Ensemble struct {
	width, height int
	steps         int
	newMetrics    func(p *config.Params) []Metric
}

// NewEnsemble builds an ensemble; newMetrics, if set, is called once per
// parameter set so every run gets its own metrics.
func NewEnsemble(width, height, steps int, newMetrics func(p *config.Params) []Metric) *Ensemble {
	return &Ensemble{width: width, height: height, steps: steps, newMetrics: newMetrics}
}

// Run simulates every parameter set for the configured number of steps and
// returns the results in input order.
func (e *Ensemble) Run(ctx context.Context, params []*config.Params) ([]*Result, error) {
	results := make([]*Result, len(params))
	errs := make([]error, len(params))

	var wg sync.WaitGroup
	for i, p := range params {
		wg.Add(1)
		go func(idx int, p *config.Params) {
			defer wg.Done()
			results[idx], errs[idx] = e.runOne(ctx, p)
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (e *Ensemble) runOne(ctx context.Context, p *config.Params) (*Result, error) {
	s, err := New(p, e.width, e.height)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var metrics []Metric
	if e.newMetrics != nil {
		metrics = e.newMetrics(p)
	}
	for _, m := range metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	for i := 0; i < e.steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := s.Step()
		if err != nil {
			return nil, err
		}
		for _, m := range metrics {
			m.Observe(f)
		}
		result.Frames++
		result.Time = f.Time
	}
	for _, m := range metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
