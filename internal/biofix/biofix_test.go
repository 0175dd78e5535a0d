package biofix

import (
	"errors"
	"math"
	"testing"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
)

func linearTrajectory(n int, slope float64) ([]float64, []float64) {
	times := make([]float64, n)
	biomass := make([]float64, n)
	for i := range times {
		times[i] = float64(i)
		biomass[i] = 0.1 + slope*float64(i)
	}
	return times, biomass
}

func TestComputeLengthMatchesTrajectory(t *testing.T) {
	p := kinetics.DefaultParameters()
	times, biomass := linearTrajectory(50, 0.01)

	s, err := Compute(times, biomass, p)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if len(s.Rate) != len(times) {
		t.Errorf("rate length %d != trajectory length %d", len(s.Rate), len(times))
	}
	if len(s.Cumulative) != len(times) {
		t.Errorf("cumulative length %d != trajectory length %d", len(s.Cumulative), len(times))
	}
}

func TestComputeProportionalToSlope(t *testing.T) {
	p := kinetics.DefaultParameters()
	slope := 0.01
	times, biomass := linearTrajectory(50, slope)

	s, err := Compute(times, biomass, p)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	want := p.FixationFactor() * slope
	for i, r := range s.Rate {
		if math.Abs(r-want) > 1e-12 {
			t.Fatalf("sample %d: rate %g, want %g", i, r, want)
		}
	}
}

func TestComputeCumulativeMatchesBiomassGain(t *testing.T) {
	p := kinetics.DefaultParameters()

	// logistic-shaped trajectory: total fixed CO2 should equal
	// factor * (X_final - X_0) up to discretization error
	l := kinetics.NewLogistic(kinetics.Coefficients{Xmax: 2.151, MuMax: 0.0749})
	n := 200
	times := make([]float64, n)
	biomass := make([]float64, n)
	for i := range times {
		times[i] = float64(i)
		biomass[i] = l.Exact(0.0157, times[i])
	}

	s, err := Compute(times, biomass, p)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	want := p.FixationFactor() * (biomass[n-1] - biomass[0])
	if rel := math.Abs(s.Total()-want) / want; rel > 0.01 {
		t.Errorf("total fixed CO2 %g, want %g (rel err %e)", s.Total(), want, rel)
	}

	for i := 1; i < n; i++ {
		if s.Cumulative[i] < s.Cumulative[i-1] {
			t.Fatalf("cumulative series decreased at sample %d", i)
		}
	}

	if s.Peak() <= 0 {
		t.Error("expected positive peak fixation rate")
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	p := kinetics.DefaultParameters()

	_, err := Compute([]float64{0, 1, 2}, []float64{1, 2}, p)
	if !errors.Is(err, growth.ErrInvalidInput) {
		t.Errorf("length mismatch: expected ErrInvalidInput, got %v", err)
	}

	_, err = Compute([]float64{0}, []float64{1}, p)
	if !errors.Is(err, growth.ErrInvalidInput) {
		t.Errorf("single sample: expected ErrInvalidInput, got %v", err)
	}

	_, err = Compute([]float64{0, 2, 1}, []float64{1, 2, 3}, p)
	if !errors.Is(err, growth.ErrInvalidInput) {
		t.Errorf("non-increasing times: expected ErrInvalidInput, got %v", err)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	p := kinetics.DefaultParameters()
	times, biomass := linearTrajectory(10, 0.05)
	b0 := append([]float64(nil), biomass...)

	if _, err := Compute(times, biomass, p); err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	for i := range biomass {
		if biomass[i] != b0[i] {
			t.Fatalf("input biomass mutated at %d", i)
		}
	}
}
