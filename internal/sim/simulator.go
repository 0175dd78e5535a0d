package sim

import (
	"context"
	"math"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/integrators"
)

// maxRetries bounds consecutive step-size reductions before the run is
// reported as numerically unstable instead of silently degraded.
const maxRetries = 32

type Simulator struct {
	dyn        growth.System
	integrator growth.Integrator
	metrics    []growth.Metric
	observers  []growth.Observer
}

func New(dyn growth.System, integrator growth.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]growth.Metric, 0),
		observers:  make([]growth.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m growth.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o growth.Observer) { s.observers = append(s.observers, o) }

// Run integrates the system from x0 and samples it on NPoints evenly
// spaced times covering [0, TMax]. The integrator takes adaptive
// sub-steps between grid points when it supports error control.
// Deterministic: identical inputs produce identical trajectories.
func (s *Simulator) Run(ctx context.Context, x0 growth.State, cfg growth.Config) (*growth.Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	n := cfg.NPoints
	h := cfg.TMax / float64(n-1)

	result := &growth.Result{
		Times:   make([]float64, 0, n),
		States:  make([]growth.State, 0, n),
		Metrics: make(map[string]float64),
	}

	x := x0.Clone()
	clampFloor(x, cfg.Floor)

	s.sample(result, x, 0)

	dt := math.Min(h, cfg.MaxDt)
	adaptive, isAdaptive := s.integrator.(growth.AdaptiveIntegrator)

	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		t := float64(i-1) * h
		target := float64(i) * h
		if i == n-1 {
			target = cfg.TMax
		}

		for target-t > 1e-12*cfg.TMax {
			step := math.Min(dt, target-t)

			var newX growth.State
			if isAdaptive {
				var next float64
				var err error
				newX, step, next, err = s.advanceAdaptive(adaptive, x, t, step, cfg)
				if err != nil {
					return nil, &growth.SimError{Time: t, Sample: i, Wrapped: err}
				}
				dt = math.Min(next, cfg.MaxDt)
			} else {
				newX = s.integrator.Step(s.dyn, x, t, step)
			}

			if !newX.IsValid() {
				return nil, &growth.SimError{Time: t, Sample: i, Wrapped: growth.ErrUnstable}
			}

			clampFloor(newX, cfg.Floor)
			x = newX
			t += step
			result.StepsTaken++
		}

		s.sample(result, x, target)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// advanceAdaptive attempts one sub-step, shrinking dt on rejection. It
// returns the accepted state, the step size actually taken, and the
// proposed size for the next step.
func (s *Simulator) advanceAdaptive(integ growth.AdaptiveIntegrator, x growth.State, t, dt float64, cfg growth.Config) (growth.State, float64, float64, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		newX, proposed, err := integ.StepAdaptive(s.dyn, x, t, dt, cfg.Tolerance)
		if err == nil {
			return newX, dt, proposed, nil
		}
		if err != integrators.ErrStepRejected {
			return nil, 0, 0, err
		}
		if proposed < cfg.MinDt {
			return nil, 0, 0, growth.ErrUnstable
		}
		dt = proposed
	}
	return nil, 0, 0, growth.ErrUnstable
}

func (s *Simulator) sample(result *growth.Result, x growth.State, t float64) {
	result.Times = append(result.Times, t)
	result.States = append(result.States, x.Clone())

	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, obs := range s.observers {
		obs.OnSample(x, t)
	}
}

func validateConfig(cfg growth.Config) error {
	if cfg.TMax <= 0 {
		return growth.InputErrorf("t_max", cfg.TMax)
	}
	if cfg.NPoints < 2 {
		return growth.InputErrorf("n_points", float64(cfg.NPoints))
	}
	if cfg.Tolerance <= 0 {
		return growth.InputErrorf("tolerance", cfg.Tolerance)
	}
	if cfg.MinDt <= 0 || cfg.MaxDt <= cfg.MinDt {
		return growth.InputErrorf("max_dt", cfg.MaxDt)
	}
	return nil
}

func clampFloor(x growth.State, floor float64) {
	if floor > 0 && len(x) > 0 && x[0] < floor {
		x[0] = floor
	}
}
