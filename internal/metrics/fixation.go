package metrics

import "github.com/pcosta/algrow/internal/growth"

// FixationPeak tracks the maximum CO2 uptake rate seen between
// consecutive observed samples. factor is the stoichiometric constant
// (Cc/100)*(MCO2/MC).
type FixationPeak struct {
	name    string
	factor  float64
	prevX   float64
	prevT   float64
	peak    float64
	samples int
}

func NewFixationPeak(factor float64) *FixationPeak {
	return &FixationPeak{name: "co2_peak_rate", factor: factor}
}

func (f *FixationPeak) Name() string { return f.name }

func (f *FixationPeak) Observe(x growth.State, t float64) {
	if len(x) == 0 {
		return
	}
	if f.samples > 0 && t > f.prevT {
		rate := f.factor * (x[0] - f.prevX) / (t - f.prevT)
		if rate > f.peak {
			f.peak = rate
		}
	}
	f.prevX = x[0]
	f.prevT = t
	f.samples++
}

func (f *FixationPeak) Value() float64 { return f.peak }

func (f *FixationPeak) Reset() {
	f.prevX, f.prevT, f.peak = 0, 0, 0
	f.samples = 0
}

// FixationTotal accumulates total fixed CO2 (g/L) by trapezoidal
// integration of the uptake rate, which for the logistic model reduces
// to factor times the biomass gained.
type FixationTotal struct {
	name    string
	factor  float64
	firstX  float64
	lastX   float64
	samples int
}

func NewFixationTotal(factor float64) *FixationTotal {
	return &FixationTotal{name: "co2_total", factor: factor}
}

func (f *FixationTotal) Name() string { return f.name }

func (f *FixationTotal) Observe(x growth.State, t float64) {
	if len(x) == 0 {
		return
	}
	if f.samples == 0 {
		f.firstX = x[0]
	}
	f.lastX = x[0]
	f.samples++
}

func (f *FixationTotal) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.factor * (f.lastX - f.firstX)
}

func (f *FixationTotal) Reset() {
	f.firstX, f.lastX = 0, 0
	f.samples = 0
}
