package kinetics

import (
	"math"

	"github.com/pcosta/algrow/internal/growth"
)

// Environment is one culture condition: incident light intensity
// (umol/m^2/s) and dissolved inorganic carbon concentration (mM).
type Environment struct {
	Light float64
	DIC   float64
}

func (e Environment) Validate() error {
	if e.Light < 0 {
		return growth.InputErrorf("light intensity", e.Light)
	}
	if e.DIC < 0 {
		return growth.InputErrorf("DIC", e.DIC)
	}
	return nil
}

// Coefficients are the derived logistic parameters for one environment.
// They stay fixed for the whole integration; only biomass evolves.
type Coefficients struct {
	Xmax  float64 // g/L, carrying capacity
	MuMax float64 // 1/h, maximum specific growth rate
}

// gauss is the unit-peak penalty term exp(-k*((v/opt)-1)^2): exactly 1
// at the optimum, decaying smoothly away from it.
func gauss(v, opt, k float64) float64 {
	dev := v/opt - 1.0
	return math.Exp(-k * dev * dev)
}

// Capacity computes the maximum attainable biomass concentration Xmax
// (Eq. 12):
//
//	Xmax = a1 * Xopt * exp(-b1*((I/IOpt1)-1)^2) * exp(-c1*((DIC/DICOpt1)-1)^2)
func Capacity(env Environment, p ParameterSet) (float64, error) {
	if err := env.Validate(); err != nil {
		return 0, err
	}
	return p.A1 * p.Xopt * gauss(env.Light, p.IOpt1, p.B1) * gauss(env.DIC, p.DICOpt1, p.C1), nil
}

// MaxGrowthRate computes the maximum specific growth rate mu_max
// (Eq. 13). Same shape as Capacity with its own optima and
// sensitivities; the two peaks need not coincide.
func MaxGrowthRate(env Environment, p ParameterSet) (float64, error) {
	if err := env.Validate(); err != nil {
		return 0, err
	}
	return p.A2 * p.MuOpt * gauss(env.Light, p.IOpt2, p.B2) * gauss(env.DIC, p.DICOpt2, p.C2), nil
}

// DeriveCoefficients evaluates both closed-form parameter equations and
// rejects degenerate results before they reach the integrator.
func DeriveCoefficients(env Environment, p ParameterSet) (Coefficients, error) {
	xmax, err := Capacity(env, p)
	if err != nil {
		return Coefficients{}, err
	}
	mu, err := MaxGrowthRate(env, p)
	if err != nil {
		return Coefficients{}, err
	}
	if xmax <= 0 || math.IsNaN(xmax) {
		return Coefficients{}, growth.ModelStateErrorf("Xmax", xmax)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Coefficients{}, growth.ModelStateErrorf("mu_max", mu)
	}
	return Coefficients{Xmax: xmax, MuMax: mu}, nil
}
