package analysis

import "math"

// SpecificGrowthRate returns mu(t) = (dX/dt)/X along a sampled biomass
// curve, using central differences in the interior and one-sided
// differences at the ends. Returns nil for fewer than two samples.
func SpecificGrowthRate(times, biomass []float64) []float64 {
	n := len(times)
	if n < 2 || len(biomass) != n {
		return nil
	}

	mu := make([]float64, n)
	for i := 0; i < n; i++ {
		var slope float64
		switch i {
		case 0:
			slope = (biomass[1] - biomass[0]) / (times[1] - times[0])
		case n - 1:
			slope = (biomass[n-1] - biomass[n-2]) / (times[n-1] - times[n-2])
		default:
			slope = (biomass[i+1] - biomass[i-1]) / (times[i+1] - times[i-1])
		}
		if biomass[i] > 0 {
			mu[i] = slope / biomass[i]
		}
	}
	return mu
}

// DoublingTime converts a specific growth rate to the exponential-phase
// doubling time ln(2)/mu. Returns +Inf for non-positive rates.
func DoublingTime(mu float64) float64 {
	if mu <= 0 {
		return math.Inf(1)
	}
	return math.Ln2 / mu
}

// TimeToFraction returns the first sampled time at which the biomass
// reaches frac*xmax, and false if the culture never gets there.
func TimeToFraction(times, biomass []float64, xmax, frac float64) (float64, bool) {
	target := frac * xmax
	for i := range biomass {
		if biomass[i] >= target {
			return times[i], true
		}
	}
	return 0, false
}
