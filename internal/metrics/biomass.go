package metrics

import "github.com/pcosta/algrow/internal/growth"

// FinalBiomass tracks the last observed biomass concentration.
type FinalBiomass struct {
	name string
	last float64
	seen bool
}

func NewFinalBiomass() *FinalBiomass {
	return &FinalBiomass{name: "final_biomass"}
}

func (f *FinalBiomass) Name() string { return f.name }

func (f *FinalBiomass) Observe(x growth.State, t float64) {
	if len(x) == 0 {
		return
	}
	f.last = x[0]
	f.seen = true
}

func (f *FinalBiomass) Value() float64 {
	if !f.seen {
		return 0
	}
	return f.last
}

func (f *FinalBiomass) Reset() {
	f.last = 0
	f.seen = false
}

// Saturation tracks how close the culture gets to its carrying capacity,
// as a fraction of Xmax.
type Saturation struct {
	name string
	xmax float64
	last float64
}

func NewSaturation(xmax float64) *Saturation {
	return &Saturation{name: "saturation", xmax: xmax}
}

func (s *Saturation) Name() string { return s.name }

func (s *Saturation) Observe(x growth.State, t float64) {
	if len(x) == 0 || s.xmax <= 0 {
		return
	}
	s.last = x[0] / s.xmax
}

func (s *Saturation) Value() float64 { return s.last }

func (s *Saturation) Reset() { s.last = 0 }
