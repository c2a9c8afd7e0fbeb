package lowpass

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-telemetry/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ResponsePoint is one bin of a magnitude response.
type ResponsePoint struct {
	FrequencyHz float64
	Magnitude   float64
	MagnitudeDB float64
}

// Pole returns the pole of the smoothing law for coefficient c. The filter is
// stable when |Pole(c)| < 1, which holds for every c > 0.
func Pole(c float64) float64 {
	return (c - 1) / (c + 1)
}

// CutoffHz returns the -3 dB frequency of the smoothing law at the given
// sample rate. The law is the bilinear transform of 1/(1+c*s), so the cutoff
// is where c*tan(pi*f/fs) = 1. Non-positive coefficients return fs/2.
func CutoffHz(c, sampleRate float64) float64 {
	if c <= 0 {
		return sampleRate / 2
	}

	return sampleRate * math.Atan(1/c) / math.Pi
}

// ImpulseResponse returns the first n outputs of a zero-seeded filter driven
// by a unit impulse.
func ImpulseResponse(c float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	s := NewScalar(c, 0)
	out := make([]float64, n)

	out[0] = s.Filter(1)
	for i := 1; i < n; i++ {
		out[i] = s.Filter(0)
	}

	return out
}

// Response returns the magnitude response of the smoothing law from DC to
// Nyquist. It is the FFT of the impulse response truncated to the block size,
// which must be a power of two. The sample rate only labels the bins.
func Response(c float64, opts ...core.ProcessorOption) ([]ResponsePoint, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	n := cfg.BlockSize
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: block size %d is not a power of two", ErrInvalidArgument, n)
	}

	in := make([]complex128, n)
	for i, h := range ImpulseResponse(c, n) {
		in[i] = complex(h, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("lowpass: fft plan: %w", err)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, in); err != nil {
		return nil, fmt.Errorf("lowpass: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	points := make([]ResponsePoint, bins)
	for k := range points {
		points[k] = ResponsePoint{
			FrequencyHz: float64(k) * cfg.SampleRate / float64(n),
			Magnitude:   mag[k],
			MagnitudeDB: core.LinearToDB(mag[k]),
		}
	}

	return points, nil
}
