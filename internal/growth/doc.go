// Package growth provides core simulation primitives for culture
// growth models.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing culture state (biomass in component 0)
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator] and [AdaptiveIntegrator]: numerical steppers
//   - [Config] and [Result]: run parameters and trajectory output
//
// # Example
//
//	dyn := kinetics.NewLogistic(coef)
//	integ := integrators.NewRK45()
//	s := sim.New(dyn, integ)
//	result, _ := s.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Results and configs are plain values. Simulator instances are NOT
// thread-safe; for parameter sweeps run one simulator per goroutine
// (see sim.Ensemble).
package growth
