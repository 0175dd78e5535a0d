package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/integrators"
	"github.com/pcosta/algrow/internal/kinetics"
)

func TestSimulateReferenceCase(t *testing.T) {
	// documented reference: I=120, DIC=17.09 reaches ~2.151 g/L
	times, biomass, err := Simulate(context.Background(),
		kinetics.Environment{Light: 120, DIC: 17.09},
		kinetics.DefaultParameters(),
		0.0157,
		growth.DefaultConfig())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if len(times) != len(biomass) {
		t.Fatalf("misaligned output: %d times, %d biomass", len(times), len(biomass))
	}

	final := biomass[len(biomass)-1]
	if math.Abs(final-2.151)/2.151 > 0.01 {
		t.Errorf("final biomass %f outside 1%% of 2.151", final)
	}
}

func TestSimulateSuboptimalStaysBelowOptimal(t *testing.T) {
	p := kinetics.DefaultParameters()
	cfg := growth.DefaultConfig()

	_, opt, err := Simulate(context.Background(), kinetics.Environment{Light: 120, DIC: 17.09}, p, p.X0, cfg)
	if err != nil {
		t.Fatalf("optimal run failed: %v", err)
	}
	_, sub, err := Simulate(context.Background(), kinetics.Environment{Light: 80, DIC: 10}, p, p.X0, cfg)
	if err != nil {
		t.Fatalf("suboptimal run failed: %v", err)
	}

	if sub[len(sub)-1] >= opt[len(opt)-1] {
		t.Errorf("suboptimal culture outgrew optimal: %f >= %f",
			sub[len(sub)-1], opt[len(opt)-1])
	}
}

func TestSimulateZeroEnvironment(t *testing.T) {
	// I=0 or DIC=0 must produce finite coefficients, not failure
	_, biomass, err := Simulate(context.Background(),
		kinetics.Environment{Light: 0, DIC: 0},
		kinetics.DefaultParameters(),
		0.0157,
		growth.DefaultConfig())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	for i, b := range biomass {
		if math.IsNaN(b) || b < 0 {
			t.Fatalf("invalid biomass at sample %d: %f", i, b)
		}
	}
}

func TestSimulateRejectsNegativeInputs(t *testing.T) {
	_, _, err := Simulate(context.Background(),
		kinetics.Environment{Light: -10, DIC: 17},
		kinetics.DefaultParameters(),
		0.0157,
		growth.DefaultConfig())
	if !errors.Is(err, growth.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExperimentMetrics(t *testing.T) {
	p := kinetics.DefaultParameters()
	env := kinetics.Environment{Light: 120, DIC: 17.09}

	exp := New(env, p)
	coef, err := kinetics.DeriveCoefficients(env, p)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}

	if err := exp.Setup(integrators.NewRK45(), DefaultMetrics(coef, p)); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background(), p.X0, growth.DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	final := result.Metrics["final_biomass"]
	if math.Abs(final-2.151)/2.151 > 0.01 {
		t.Errorf("final_biomass metric %f outside 1%% of 2.151", final)
	}
	if sat := result.Metrics["saturation"]; sat < 0.99 || sat > 1.001 {
		t.Errorf("saturation %f, expected ~1", sat)
	}
	if result.Metrics["co2_total"] <= 0 {
		t.Error("expected positive total fixed CO2")
	}
	if result.Metrics["co2_peak_rate"] <= 0 {
		t.Error("expected positive peak fixation rate")
	}
}

func TestExperimentRunBeforeSetup(t *testing.T) {
	exp := New(kinetics.Environment{Light: 120, DIC: 17.09}, kinetics.DefaultParameters())
	if _, err := exp.Run(context.Background(), 0.0157, growth.DefaultConfig()); err == nil {
		t.Error("expected error for run before setup")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"euler", "rk4", "rk45"} {
		integ, err := r.GetIntegrator(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if integ == nil {
			t.Errorf("%s: nil integrator", name)
		}
	}

	if _, err := r.GetIntegrator("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	if len(r.ListIntegrators()) != 3 {
		t.Errorf("expected 3 integrators, got %d", len(r.ListIntegrators()))
	}
}
