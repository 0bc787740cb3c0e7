package fir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/xabra/signal-processing/dsp/ring"
)

var (
	// ErrInvalidSize is returned when the filter size is not positive.
	ErrInvalidSize = errors.New("fir size must be > 0")
	// ErrWeightLengthMismatch is returned when the weight count differs from the filter size.
	ErrWeightLengthMismatch = errors.New("fir weights length must match filter size")
)

// Filter implements a direct-form FIR filter on a ring-buffer delay line.
type Filter struct {
	weights []float64
	delay   *ring.Buffer[float64]
}

// New creates a FIR filter of the given size. The weights are copied and
// must have exactly size elements. The delay line starts zeroed.
func New(size int, weights []float64) (*Filter, error) {
	delay, err := ring.New(size, 0.0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	if len(weights) != size {
		return nil, fmt.Errorf("%w: got %d weights for size %d", ErrWeightLengthMismatch, len(weights), size)
	}
	w := make([]float64, size)
	copy(w, weights)
	return &Filter{
		weights: w,
		delay:   delay,
	}, nil
}

// MovingAverage creates a filter of size equal weights 1/size.
func MovingAverage(size int) (*Filter, error) {
	if size <= 0 {
		return New(size, nil)
	}
	w := make([]float64, size)
	for i := range w {
		w[i] = 1 / float64(size)
	}
	return New(size, w)
}

// Filter pushes x into the delay line and returns
//
//	y = sum_{i=0}^{N-1} w[i] * d[i]
//
// where d[0] is the oldest retained sample and d[N-1] is x.
// Terms are accumulated in ascending order.
func (f *Filter) Filter(x float64) float64 {
	f.delay.Push(x)
	return ring.Dot(f.delay, f.weights)
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	f.delay.Fill(0)
}

// Size returns the number of taps.
func (f *Filter) Size() int {
	return f.delay.Len()
}

// Order returns the filter order (Size() - 1).
func (f *Filter) Order() int {
	return f.delay.Len() - 1
}

// Weights returns a copy of the filter weights.
func (f *Filter) Weights() []float64 {
	w := make([]float64, len(f.weights))
	copy(w, f.weights)
	return w
}

// Response computes the complex frequency response at the given
// frequency (Hz) and sample rate (Hz), treating the newest-sample weight
// as the zero-delay tap.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	n := len(f.weights)
	var h complex128
	for k := range n {
		c := f.weights[n-1-k]
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
