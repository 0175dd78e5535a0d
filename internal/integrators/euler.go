package integrators

import "github.com/pcosta/algrow/internal/growth"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn growth.System, x growth.State, t, dt float64) growth.State {
	dx := dyn.Derive(x, t)
	result := make(growth.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
