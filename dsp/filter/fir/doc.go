// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] owns a set of weights and a [ring.Buffer] delay line of the
// same length. Each input sample is pushed into the delay line and the
// output is the dot product of the weights with the window, where the first
// weight applies to the oldest retained sample and the last weight to the
// sample just pushed.
//
// The package also offers frequency-domain inspection of the weights
// (single-frequency response and FFT-based response over a grid of bins)
// and DC normalization of weight vectors. Coefficient design (windowed-sinc,
// Parks-McClellan, etc.) is a separate concern.
package fir
