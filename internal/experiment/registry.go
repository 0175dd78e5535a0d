package experiment

import (
	"fmt"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/integrators"
	"github.com/pcosta/algrow/internal/kinetics"
	"github.com/pcosta/algrow/internal/metrics"
)

type Registry struct {
	integrators map[string]func() growth.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() growth.Integrator),
	}

	r.integrators["euler"] = func() growth.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() growth.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() growth.Integrator { return integrators.NewRK45() }

	return r
}

func (r *Registry) GetIntegrator(name string) (growth.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics returns the standard observation set for one culture.
func DefaultMetrics(coef kinetics.Coefficients, p kinetics.ParameterSet) []growth.Metric {
	return []growth.Metric{
		metrics.NewFinalBiomass(),
		metrics.NewSaturation(coef.Xmax),
		metrics.NewFixationPeak(p.FixationFactor()),
		metrics.NewFixationTotal(p.FixationFactor()),
	}
}
