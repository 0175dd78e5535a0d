// Package biofix derives CO2 sequestration series from a biomass
// trajectory (Eq. 14 of the growth model):
//
//	qCO2 = (Cc/100) * (MCO2/MC) * dX/dt
//
// dX/dt is approximated with central differences at interior samples and
// one-sided differences at the two boundary samples, consistent with the
// trajectory's sampling.
package biofix

import (
	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
)

// Series holds the instantaneous CO2 fixation rate (g CO2/L/h) and the
// running total of fixed CO2 (g CO2/L), both index-aligned with the
// input trajectory.
type Series struct {
	Rate       []float64
	Cumulative []float64
}

// Peak returns the maximum instantaneous fixation rate.
func (s Series) Peak() float64 {
	max := 0.0
	for _, v := range s.Rate {
		if v > max {
			max = v
		}
	}
	return max
}

// Total returns the total CO2 fixed over the trajectory.
func (s Series) Total() float64 {
	if len(s.Cumulative) == 0 {
		return 0
	}
	return s.Cumulative[len(s.Cumulative)-1]
}

// Compute derives the fixation series from an index-aligned (times,
// biomass) trajectory. The input slices are not mutated.
func Compute(times, biomass []float64, p kinetics.ParameterSet) (Series, error) {
	n := len(times)
	if n != len(biomass) {
		return Series{}, growth.InputErrorf("trajectory length mismatch", float64(len(biomass)))
	}
	if n < 2 {
		return Series{}, growth.InputErrorf("trajectory samples", float64(n))
	}
	for i := 1; i < n; i++ {
		if times[i] <= times[i-1] {
			return Series{}, growth.InputErrorf("non-increasing time at sample", float64(i))
		}
	}

	factor := p.FixationFactor()
	rate := make([]float64, n)

	rate[0] = factor * (biomass[1] - biomass[0]) / (times[1] - times[0])
	rate[n-1] = factor * (biomass[n-1] - biomass[n-2]) / (times[n-1] - times[n-2])
	for i := 1; i < n-1; i++ {
		rate[i] = factor * (biomass[i+1] - biomass[i-1]) / (times[i+1] - times[i-1])
	}

	// Trapezoidal accumulation of the rate series.
	cum := make([]float64, n)
	for i := 1; i < n; i++ {
		dt := times[i] - times[i-1]
		cum[i] = cum[i-1] + 0.5*(rate[i]+rate[i-1])*dt
	}

	return Series{Rate: rate, Cumulative: cum}, nil
}
