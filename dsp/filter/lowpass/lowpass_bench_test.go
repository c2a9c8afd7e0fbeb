package lowpass

import (
	"testing"

	"github.com/cwbudde/algo-telemetry/geometry"
	"github.com/cwbudde/algo-telemetry/internal/testutil"
)

func BenchmarkScalarProcessInPlace(b *testing.B) {
	buf := testutil.NoisyConstant(1, 0, 1, 1024)
	s := NewScalar(DefaultCoefficient, 0)

	b.SetBytes(int64(len(buf) * 8))
	b.ResetTimer()

	for range b.N {
		s.ProcessInPlace(buf)
	}
}

func BenchmarkVectorProcessInto(b *testing.B) {
	const channels = 32

	coeffs := make([]float64, channels)
	for i := range coeffs {
		coeffs[i] = DefaultCoefficient
	}

	v, err := NewVector(coeffs, make([]float64, channels))
	if err != nil {
		b.Fatal(err)
	}

	x := testutil.NoisyConstant(2, 0, 1, channels)
	dst := make([]float64, channels)

	b.ResetTimer()

	for range b.N {
		if _, err := v.ProcessInto(dst, x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTypedWrench(b *testing.B) {
	f, err := NewTyped(geometry.Wrench{
		Force:  geometry.Vector3{X: 2, Y: 2, Z: 2},
		Torque: geometry.Vector3{X: 2, Y: 2, Z: 2},
	})
	if err != nil {
		b.Fatal(err)
	}

	w := geometry.Wrench{Force: geometry.Vector3{X: 1, Y: 2, Z: 3}}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := f.Filter(w); err != nil {
			b.Fatal(err)
		}
	}
}
