package metrics

import (
	"math"
	"testing"

	"github.com/pcosta/algrow/internal/growth"
)

func TestFinalBiomass(t *testing.T) {
	m := NewFinalBiomass()

	m.Observe(growth.State{0.1}, 0)
	m.Observe(growth.State{1.5}, 100)
	m.Observe(growth.State{2.1}, 200)

	if m.Value() != 2.1 {
		t.Errorf("expected final biomass 2.1, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestSaturation(t *testing.T) {
	m := NewSaturation(2.0)

	m.Observe(growth.State{1.0}, 0)
	if m.Value() != 0.5 {
		t.Errorf("expected saturation 0.5, got %f", m.Value())
	}

	m.Observe(growth.State{1.9}, 10)
	if math.Abs(m.Value()-0.95) > 1e-12 {
		t.Errorf("expected saturation 0.95, got %f", m.Value())
	}
}

func TestFixationPeak(t *testing.T) {
	factor := 1.9
	m := NewFixationPeak(factor)

	// slopes: 0.1, 0.3, 0.05 per unit time
	m.Observe(growth.State{0.0}, 0)
	m.Observe(growth.State{0.1}, 1)
	m.Observe(growth.State{0.4}, 2)
	m.Observe(growth.State{0.45}, 3)

	want := factor * 0.3
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected peak %f, got %f", want, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestFixationTotal(t *testing.T) {
	factor := 1.9
	m := NewFixationTotal(factor)

	m.Observe(growth.State{0.0157}, 0)
	m.Observe(growth.State{1.0}, 100)
	m.Observe(growth.State{2.15}, 200)

	want := factor * (2.15 - 0.0157)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected total %f, got %f", want, m.Value())
	}
}
