package analysis

// Phase labels one stretch of a batch growth curve.
type Phase int

const (
	PhaseLag Phase = iota
	PhaseExponential
	PhaseStationary
)

func (p Phase) String() string {
	switch p {
	case PhaseLag:
		return "lag"
	case PhaseExponential:
		return "exponential"
	case PhaseStationary:
		return "stationary"
	}
	return "unknown"
}

// PhaseSpan is one contiguous phase segment, [Start, End] in culture time.
type PhaseSpan struct {
	Phase Phase
	Start float64
	End   float64
}

// Thresholds on X/Xmax separating the phases. A logistic culture started
// from a small inoculum spends a long stretch near the floor before the
// curve turns over, which reads as a lag phase on the sampled data.
const (
	lagFraction        = 0.10
	stationaryFraction = 0.90
)

// DetectPhases segments a biomass trajectory into lag, exponential, and
// stationary spans by capacity fraction. Spans the culture never enters
// are absent from the result.
func DetectPhases(times, biomass []float64, xmax float64) []PhaseSpan {
	n := len(times)
	if n == 0 || len(biomass) != n || xmax <= 0 {
		return nil
	}

	phaseAt := func(x float64) Phase {
		frac := x / xmax
		switch {
		case frac < lagFraction:
			return PhaseLag
		case frac < stationaryFraction:
			return PhaseExponential
		default:
			return PhaseStationary
		}
	}

	spans := []PhaseSpan{{Phase: phaseAt(biomass[0]), Start: times[0], End: times[0]}}
	for i := 1; i < n; i++ {
		p := phaseAt(biomass[i])
		last := &spans[len(spans)-1]
		if p == last.Phase {
			last.End = times[i]
			continue
		}
		spans = append(spans, PhaseSpan{Phase: p, Start: times[i], End: times[i]})
	}
	return spans
}
