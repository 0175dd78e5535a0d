package analysis

import (
	"context"
	"fmt"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/sim"
)

// ResponsePoint pairs one swept parameter value with the final biomass
// it produced.
type ResponsePoint struct {
	Param float64
	Final float64
}

// ParameterResponse sweeps one tunable model parameter across
// [paramMin, paramMax] and records the final biomass at each value. The
// model must implement growth.Configurable; runs are sequential because
// SetParam mutates the shared system.
func ParameterResponse(
	ctx context.Context,
	dyn growth.System,
	newIntegrator func() growth.Integrator,
	paramName string,
	paramMin, paramMax float64,
	steps int,
	x0 growth.State,
	cfg growth.Config,
) ([]ResponsePoint, error) {
	tunable, ok := dyn.(growth.Configurable)
	if !ok {
		return nil, fmt.Errorf("analysis: model is not tunable")
	}
	if steps < 2 {
		return nil, fmt.Errorf("analysis: need at least 2 sweep steps, got %d", steps)
	}

	stride := (paramMax - paramMin) / float64(steps-1)
	points := make([]ResponsePoint, 0, steps)

	for i := 0; i < steps; i++ {
		val := paramMin + float64(i)*stride
		if err := tunable.SetParam(paramName, val); err != nil {
			return nil, err
		}

		s := sim.New(dyn, newIntegrator())
		result, err := s.Run(ctx, x0.Clone(), cfg)
		if err != nil {
			return nil, err
		}

		biomass := result.Biomass()
		points = append(points, ResponsePoint{Param: val, Final: biomass[len(biomass)-1]})
	}

	return points, nil
}
