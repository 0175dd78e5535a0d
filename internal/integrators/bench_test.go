package integrators

import (
	"testing"

	"github.com/pcosta/algrow/internal/growth"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	dyn := testLogistic()
	x := growth.State{0.0157}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	dyn := testLogistic()
	x := growth.State{0.0157}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, 0, 0.01)
	}
}

func BenchmarkRK45(b *testing.B) {
	integrator := NewRK45()
	dyn := testLogistic()
	x := growth.State{0.0157}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, 0, 0.01)
	}
}
