// Package analysis provides growth-curve characterization tools.
//
// The package operates on sampled biomass trajectories:
//
//   - [SpecificGrowthRate]: instantaneous specific rate mu(t) along a curve
//   - [DoublingTime]: exponential-phase doubling time from mu_max
//   - [TimeToFraction]: time for the culture to reach a capacity fraction
//   - [DetectPhases]: lag / exponential / stationary segmentation
//   - [ParameterResponse]: final-yield response to a model parameter sweep
package analysis
