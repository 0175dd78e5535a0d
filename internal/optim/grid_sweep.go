package optim

import (
	"context"
	"math"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/integrators"
	"github.com/pcosta/algrow/internal/kinetics"
	"github.com/pcosta/algrow/internal/sim"
)

// Point is one cell of a culture-condition sweep.
type Point struct {
	Light        float64
	DIC          float64
	Xmax         float64
	MuMax        float64
	FinalBiomass float64
	CO2Total     float64
}

// GridSweep evaluates a biomass model over a light x DIC grid to find
// the conditions that maximize yield or CO2 uptake.
type GridSweep struct {
	lights []float64
	dics   []float64
	params kinetics.ParameterSet
}

func NewGridSweep(lights, dics []float64, params kinetics.ParameterSet) *GridSweep {
	return &GridSweep{lights: lights, dics: dics, params: params}
}

// Span returns n evenly spaced values covering [lo, hi] inclusive.
func Span(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}

// Run derives coefficients for every grid cell, then integrates all the
// cells in parallel. Any invalid condition fails the whole sweep.
func (g *GridSweep) Run(ctx context.Context, x0 float64, cfg growth.Config) ([]Point, error) {
	if err := g.params.Validate(); err != nil {
		return nil, err
	}

	n := len(g.lights) * len(g.dics)
	coefs := make([]kinetics.Coefficients, n)
	points := make([]Point, n)

	for i, light := range g.lights {
		for j, dic := range g.dics {
			idx := i*len(g.dics) + j
			env := kinetics.Environment{Light: light, DIC: dic}
			coef, err := kinetics.DeriveCoefficients(env, g.params)
			if err != nil {
				return nil, err
			}
			coefs[idx] = coef
			points[idx] = Point{Light: light, DIC: dic, Xmax: coef.Xmax, MuMax: coef.MuMax}
		}
	}

	ens := sim.NewEnsemble(n,
		func() growth.Integrator { return integrators.NewRK45() },
		func(idx int) (growth.System, growth.State) {
			return kinetics.NewLogistic(coefs[idx]), growth.State{x0}
		},
	)

	results, err := ens.Run(ctx, cfg)
	if err != nil {
		return nil, err
	}

	factor := g.params.FixationFactor()
	for idx, r := range results {
		biomass := r.Biomass()
		final := biomass[len(biomass)-1]
		points[idx].FinalBiomass = final
		points[idx].CO2Total = factor * (final - biomass[0])
	}

	return points, nil
}

// Best returns the point maximizing score, or false for an empty sweep.
func Best(points []Point, score func(Point) float64) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	bestVal := math.Inf(-1)
	for _, p := range points {
		if v := score(p); v > bestVal {
			bestVal = v
			best = p
		}
	}
	return best, true
}
