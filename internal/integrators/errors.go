package integrators

import "errors"

// ErrStepRejected marks an adaptive step whose error estimate exceeded
// the tolerance. The state returned alongside it must be discarded and
// the step retried with the proposed smaller dt.
var ErrStepRejected = errors.New("integrators: step rejected, error estimate exceeds tolerance")
