package automation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pcosta/algrow/internal/experiment"
	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
)

// Scenario is a scripted sequence of culture conditions, loaded from yaml.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one culture in a scenario. Zero-valued fields fall
// back to defaults.
type ScenarioStep struct {
	Label      string  `yaml:"label"`
	Light      float64 `yaml:"light"`
	DIC        float64 `yaml:"dic"`
	X0         float64 `yaml:"x0"`
	Duration   float64 `yaml:"t_max"`
	NPoints    int     `yaml:"n_points"`
	Integrator string  `yaml:"integrator"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// StepResult pairs a scenario step with its derived coefficients and
// trajectory.
type StepResult struct {
	Label  string
	Env    kinetics.Environment
	Coef   kinetics.Coefficients
	Result *growth.Result
}

// RunScenario executes all steps in order. A failing step aborts the
// scenario and returns the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, params kinetics.ParameterSet) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		env := kinetics.Environment{Light: step.Light, DIC: step.DIC}

		integName := step.Integrator
		if integName == "" {
			integName = "rk45"
		}
		integ, err := registry.GetIntegrator(integName)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(env, params)
		if err := exp.Setup(integ, nil); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		cfg := growth.DefaultConfig()
		if step.Duration > 0 {
			cfg.TMax = step.Duration
		}
		if step.NPoints > 1 {
			cfg.NPoints = step.NPoints
		}
		cfg.Floor = kinetics.BiomassFloor

		x0 := step.X0
		if x0 <= 0 {
			x0 = params.X0
		}

		result, err := exp.Run(ctx, x0, cfg)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{
			Label:  step.Label,
			Env:    env,
			Coef:   exp.Coefficients(),
			Result: result,
		})
	}

	return results, nil
}

// MonteCarloConfig describes an inoculum-variability study: the same
// culture condition run many times with the starting concentration
// perturbed uniformly around BaseX0.
type MonteCarloConfig struct {
	Env          kinetics.Environment
	BaseX0       float64
	Perturbation float64
	NumTrials    int
	Seed         int64
	Run          growth.Config
}

type MonteCarloResult struct {
	TrialID int
	X0      float64
	Final   float64
}

// RunMonteCarlo executes the trials and returns per-trial outcomes.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, params kinetics.ParameterSet) ([]MonteCarloResult, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]MonteCarloResult, 0, cfg.NumTrials)
	for trial := 0; trial < cfg.NumTrials; trial++ {
		x0 := cfg.BaseX0 + (rng.Float64()-0.5)*2*cfg.Perturbation
		if x0 < kinetics.BiomassFloor {
			x0 = kinetics.BiomassFloor
		}

		_, biomass, err := experiment.Simulate(ctx, cfg.Env, params, x0, cfg.Run)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		results = append(results, MonteCarloResult{
			TrialID: trial,
			X0:      x0,
			Final:   biomass[len(biomass)-1],
		})
	}

	return results, nil
}

// MonteCarloStats returns the mean and standard deviation of the final
// biomass across trials.
func MonteCarloStats(results []MonteCarloResult) (mean, stddev float64) {
	if len(results) == 0 {
		return 0, 0
	}

	for _, r := range results {
		mean += r.Final
	}
	mean /= float64(len(results))

	for _, r := range results {
		d := r.Final - mean
		stddev += d * d
	}
	stddev = math.Sqrt(stddev / float64(len(results)))
	return mean, stddev
}
