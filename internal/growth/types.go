package growth

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is a continuous-time model dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, t, dt float64) State
}

// AdaptiveIntegrator additionally estimates local truncation error and
// proposes the next step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(dyn System, x State, t, dt, tol float64) (State, float64, error)
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnSample(x State, t float64)
}

// Configurable exposes runtime-tunable model parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Config controls one integration run. TMax and NPoints define the output
// grid: NPoints evenly spaced samples covering [0, TMax]. Floor is the
// smallest admissible value of state component 0; states are clamped to
// it at initialization and after every internal step.
type Config struct {
	TMax      float64
	NPoints   int
	Tolerance float64
	MaxDt     float64
	MinDt     float64
	Floor     float64
}

func DefaultConfig() Config {
	return Config{
		TMax:      200.0,
		NPoints:   200,
		Tolerance: 1e-8,
		MaxDt:     5.0,
		MinDt:     1e-9,
		Floor:     1e-10,
	}
}

// Result holds one trajectory. Times and States are index-aligned and
// never mutated after the run completes.
type Result struct {
	Times      []float64
	States     []State
	Metrics    map[string]float64
	StepsTaken int
}

// Biomass returns the first state component at each sample.
func (r *Result) Biomass() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[0]
	}
	return out
}
