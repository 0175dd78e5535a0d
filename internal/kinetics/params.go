package kinetics

import "fmt"

// BiomassFloor is the smallest biomass concentration the model evaluates
// at. X = 0 is a fixed point of the logistic equation, so initial
// conditions and integration steps are clamped to this value.
const BiomassFloor = 1e-10

// ParameterSet holds the kinetic constants of the coupled light/DIC
// growth model (Chang et al. 2016, Bioresource Technology 206:231-238,
// Table 2). Values are treated as read-only for the duration of a run.
type ParameterSet struct {
	// Optimal-condition maxima.
	Xopt  float64 `yaml:"x_opt"`  // g/L, peak biomass capacity
	MuOpt float64 `yaml:"mu_opt"` // 1/h, peak specific growth rate

	// Gaussian centers: light intensity (umol/m^2/s) and DIC (mM).
	IOpt1   float64 `yaml:"i_opt_1"` // capacity optimum
	IOpt2   float64 `yaml:"i_opt_2"` // growth-rate optimum
	DICOpt1 float64 `yaml:"dic_opt_1"`
	DICOpt2 float64 `yaml:"dic_opt_2"`

	// Dimensionless scale and sensitivity coefficients.
	A1 float64 `yaml:"a1"`
	A2 float64 `yaml:"a2"`
	B1 float64 `yaml:"b1"`
	B2 float64 `yaml:"b2"`
	C1 float64 `yaml:"c1"`
	C2 float64 `yaml:"c2"`

	// CO2 biofixation stoichiometry.
	Cc   float64 `yaml:"cc"`    // %, cellular carbon content
	MCO2 float64 `yaml:"m_co2"` // g/mol
	MC   float64 `yaml:"m_c"`   // g/mol

	// Default initial biomass concentration, g/L.
	X0 float64 `yaml:"x0"`
}

// DefaultParameters returns the published constants for Chlorella
// vulgaris.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		Xopt:    2.303,
		MuOpt:   0.078,
		IOpt1:   120.0,
		IOpt2:   120.0,
		DICOpt1: 17.09,
		DICOpt2: 16.78,
		A1:      0.934,
		A2:      0.961,
		B1:      0.505,
		B2:      0.384,
		C1:      2.538,
		C2:      3.071,
		Cc:      51.93,
		MCO2:    44.01,
		MC:      12.01,
		X0:      0.0157,
	}
}

// Validate checks that every constant is strictly positive.
func (p ParameterSet) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"x_opt", p.Xopt}, {"mu_opt", p.MuOpt},
		{"i_opt_1", p.IOpt1}, {"i_opt_2", p.IOpt2},
		{"dic_opt_1", p.DICOpt1}, {"dic_opt_2", p.DICOpt2},
		{"a1", p.A1}, {"a2", p.A2},
		{"b1", p.B1}, {"b2", p.B2},
		{"c1", p.C1}, {"c2", p.C2},
		{"cc", p.Cc}, {"m_co2", p.MCO2}, {"m_c", p.MC},
		{"x0", p.X0},
	}
	for _, f := range fields {
		if f.val <= 0 {
			return fmt.Errorf("kinetics: parameter %s must be positive, got %g", f.name, f.val)
		}
	}
	return nil
}

// FixationFactor is the proportionality constant between biomass growth
// rate and CO2 uptake rate: (Cc/100) * (MCO2/MC), roughly 1.90 for the
// default set.
func (p ParameterSet) FixationFactor() float64 {
	return (p.Cc / 100.0) * (p.MCO2 / p.MC)
}
