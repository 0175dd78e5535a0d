package kinetics

import (
	"fmt"
	"math"

	"github.com/pcosta/algrow/internal/growth"
)

// Logistic implements the Verhulst growth equation
//
//	dX/dt = mu_max * X * (1 - X/Xmax)
//
// State: [X] biomass concentration in g/L. The specific growth rate
// mu = mu_max*(1 - X/Xmax) decays linearly to zero as the culture
// approaches capacity and goes negative past it (overshoot correction).
type Logistic struct {
	muMax float64
	xMax  float64
}

func NewLogistic(c Coefficients) *Logistic {
	return &Logistic{muMax: c.MuMax, xMax: c.Xmax}
}

func (l *Logistic) StateDim() int { return 1 }

func (l *Logistic) Derive(s growth.State, _ float64) growth.State {
	x := s[0]
	if x < BiomassFloor {
		x = BiomassFloor
	}
	mu := l.muMax * (1 - x/l.xMax)
	return growth.State{mu * x}
}

// GetParams implements growth.Configurable
func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"mu_max": l.muMax, "x_max": l.xMax}
}

// SetParam implements growth.Configurable
func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "mu_max":
		l.muMax = value
	case "x_max":
		if value <= 0 {
			return growth.ModelStateErrorf("x_max", value)
		}
		l.xMax = value
	default:
		return fmt.Errorf("kinetics: unknown parameter %q", name)
	}
	return nil
}

// Exact is the closed-form solution of the logistic equation from x0 at
// t=0. Used by tests and accuracy checks against the numerical trajectory.
func (l *Logistic) Exact(x0, t float64) float64 {
	if x0 < BiomassFloor {
		x0 = BiomassFloor
	}
	a := (l.xMax - x0) / x0
	return l.xMax / (1 + a*math.Exp(-l.muMax*t))
}
