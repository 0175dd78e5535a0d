package sim

import (
	"context"
	"sync"

	"github.com/pcosta/algrow/internal/growth"
)

// Ensemble runs independent simulations in parallel. Each job builds its
// own system, initial state, and integrator, so no mutable state is
// shared across goroutines.
type Ensemble struct {
	numRuns       int
	newIntegrator func() growth.Integrator
	build         func(idx int) (growth.System, growth.State)
}

func NewEnsemble(numRuns int, newIntegrator func() growth.Integrator, build func(idx int) (growth.System, growth.State)) *Ensemble {
	return &Ensemble{numRuns: numRuns, newIntegrator: newIntegrator, build: build}
}

func (e *Ensemble) Run(ctx context.Context, cfg growth.Config) ([]*growth.Result, error) {
	results := make([]*growth.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			dyn, x0 := e.build(idx)
			s := New(dyn, e.newIntegrator())
			results[idx], errs[idx] = s.Run(ctx, x0, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
