package experiment

import (
	"context"
	"fmt"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/integrators"
	"github.com/pcosta/algrow/internal/kinetics"
	"github.com/pcosta/algrow/internal/sim"
)

// Experiment wires one culture condition to a simulator: it derives the
// logistic coefficients for the environment, builds the ODE system, and
// runs the integration.
type Experiment struct {
	env       kinetics.Environment
	params    kinetics.ParameterSet
	coef      kinetics.Coefficients
	simulator *sim.Simulator
}

func New(env kinetics.Environment, params kinetics.ParameterSet) *Experiment {
	return &Experiment{env: env, params: params}
}

func (e *Experiment) Setup(integrator growth.Integrator, mets []growth.Metric) error {
	if err := e.params.Validate(); err != nil {
		return err
	}

	coef, err := kinetics.DeriveCoefficients(e.env, e.params)
	if err != nil {
		return err
	}
	e.coef = coef

	e.simulator = sim.New(kinetics.NewLogistic(coef), integrator)
	for _, m := range mets {
		e.simulator.AddMetric(m)
	}
	return nil
}

// Coefficients returns the derived (Xmax, mu_max) pair; valid after Setup.
func (e *Experiment) Coefficients() kinetics.Coefficients {
	return e.coef
}

func (e *Experiment) AddObserver(o growth.Observer) {
	e.simulator.AddObserver(o)
}

func (e *Experiment) Run(ctx context.Context, x0 float64, cfg growth.Config) (*growth.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, growth.State{x0}, cfg)
}

// Simulate is the one-call entry point: derive coefficients for (I, DIC),
// integrate the logistic ODE with the adaptive integrator, and return the
// index-aligned (times, biomass) trajectory.
func Simulate(ctx context.Context, env kinetics.Environment, params kinetics.ParameterSet, x0 float64, cfg growth.Config) ([]float64, []float64, error) {
	exp := New(env, params)
	if err := exp.Setup(integrators.NewRK45(), nil); err != nil {
		return nil, nil, err
	}

	result, err := exp.Run(ctx, x0, cfg)
	if err != nil {
		return nil, nil, err
	}

	return result.Times, result.Biomass(), nil
}
