package fir

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyWeights is returned by [NormalizeDC] for an empty weight vector.
	ErrEmptyWeights = errors.New("fir weights must not be empty")
	// ErrZeroDCGain is returned by [NormalizeDC] when the weights sum to zero.
	ErrZeroDCGain = errors.New("fir weights have zero DC gain")
	// ErrFFTSizeTooLarge is returned when the requested response grid exceeds maxFFTSize.
	ErrFFTSizeTooLarge = errors.New("fir FFT size too large")
)

const (
	// minFFTSize is the smallest transform FrequencyResponse will plan.
	minFFTSize = 8
	// maxFFTSize bounds the transform so the power-of-two search cannot overflow.
	maxFFTSize = 1 << 30
)

// FrequencyResponse returns the non-negative frequency bins of the
// filter's impulse response, zero-padded to the next power of two that is
// at least max(bins, Size(), 8). Sizes above 1<<30 return
// [ErrFFTSizeTooLarge]. The result has fftSize/2+1 entries; bin k
// corresponds to k*sampleRate/fftSize Hz.
func (f *Filter) FrequencyResponse(bins int) ([]complex128, error) {
	n := len(f.weights)
	size := max(bins, n, minFFTSize)
	if size > maxFFTSize {
		return nil, fmt.Errorf("%w: %d bins (max %d)", ErrFFTSizeTooLarge, size, maxFFTSize)
	}
	fftSize := nextPowerOf2(size)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for k := range n {
		padded[k] = complex(f.weights[n-1-k], 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("fir: failed to compute FFT: %w", err)
	}
	return spectrum[:fftSize/2+1], nil
}

// MagnitudeResponse returns |H[k]| for the bins of [Filter.FrequencyResponse].
func (f *Filter) MagnitudeResponse(bins int) ([]float64, error) {
	spectrum, err := f.FrequencyResponse(bins)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(spectrum))
	im := make([]float64, len(spectrum))
	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(spectrum))
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// NormalizeDC returns a copy of weights scaled to unity DC gain, so that
// a constant input settles to the same constant output.
func NormalizeDC(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return nil, ErrZeroDCGain
	}

	out := make([]float64, len(weights))
	vecmath.ScaleBlock(out, weights, 1/sum)
	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
