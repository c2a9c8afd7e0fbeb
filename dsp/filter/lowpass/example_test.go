package lowpass_test

import (
	"fmt"

	"github.com/cwbudde/algo-telemetry/dsp/core"
	"github.com/cwbudde/algo-telemetry/dsp/filter/lowpass"
	"github.com/cwbudde/algo-telemetry/geometry"
)

func ExampleScalar_Filter() {
	s := lowpass.NewScalar(lowpass.DefaultCoefficient, 0)

	for i := range 4 {
		fmt.Printf("y[%d] = %.4f\n", i, s.Filter(1))
	}
	// Output:
	// y[0] = 0.3333
	// y[1] = 0.7778
	// y[2] = 0.9259
	// y[3] = 0.9753
}

func ExampleVector_Filter() {
	v, err := lowpass.NewVector([]float64{1, 2}, []float64{0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := v.Filter([]float64{1, 1})
	fmt.Printf("%.4f\n", out)

	_, err = v.Filter([]float64{1, 1, 1})
	fmt.Println(err)
	// Output:
	// [0.5000 0.3333]
	// lowpass: out of range: measurement has 3 values, filter has 2 channels
}

func ExampleTyped() {
	f, err := lowpass.NewTyped(geometry.Wrench{
		Force:  geometry.Vector3{X: 2, Y: 2, Z: 2},
		Torque: geometry.Vector3{X: 2, Y: 2, Z: 2},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	reading := geometry.Wrench{Force: geometry.Vector3{Z: -9}}
	_ = f.Reset(reading)

	reading.Force.Z = -12 // contact spike

	w, _ := f.Filter(reading)
	fmt.Printf("force z: %.1f\n", w.Force.Z)
	// Output:
	// force z: -10.0
}

func ExampleCutoffHz() {
	fmt.Printf("%.2f Hz\n", lowpass.CutoffHz(lowpass.DefaultCoefficient, 100))

	pts, _ := lowpass.Response(lowpass.DefaultCoefficient, core.WithSampleRate(100), core.WithBlockSize(8))
	for _, p := range pts {
		fmt.Printf("%5.1f Hz %.3f\n", p.FrequencyHz, p.Magnitude)
	}
	// Output:
	// 14.76 Hz
	//   0.0 Hz 1.000
	//  12.5 Hz 0.770
	//  25.0 Hz 0.447
	//  37.5 Hz 0.203
	//  50.0 Hz 0.000
}
