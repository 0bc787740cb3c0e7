package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/xabra/signal-processing/internal/testutil"
)

func TestFrequencyResponse_Size(t *testing.T) {
	tests := []struct {
		name     string
		taps     int
		bins     int
		wantBins int
	}{
		{name: "power of two", taps: 4, bins: 64, wantBins: 33},
		{name: "rounded up", taps: 4, bins: 100, wantBins: 65},
		{name: "taps dominate", taps: 40, bins: 16, wantBins: 33},
		{name: "floor", taps: 2, bins: 0, wantBins: minFFTSize/2 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := MovingAverage(tt.taps)
			if err != nil {
				t.Fatal(err)
			}
			h, err := f.FrequencyResponse(tt.bins)
			if err != nil {
				t.Fatal(err)
			}
			if len(h) != tt.wantBins {
				t.Fatalf("bins: got %d, want %d", len(h), tt.wantBins)
			}
		})
	}
}

func TestFrequencyResponse_TooLarge(t *testing.T) {
	f, err := MovingAverage(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, bins := range []int{maxFFTSize + 1, math.MaxInt/2 + 2, math.MaxInt} {
		if _, err := f.FrequencyResponse(bins); !errors.Is(err, ErrFFTSizeTooLarge) {
			t.Fatalf("FrequencyResponse(%d): got %v, want ErrFFTSizeTooLarge", bins, err)
		}
		if _, err := f.MagnitudeResponse(bins); !errors.Is(err, ErrFFTSizeTooLarge) {
			t.Fatalf("MagnitudeResponse(%d): got %v, want ErrFFTSizeTooLarge", bins, err)
		}
	}
}

func TestFrequencyResponse_MatchesResponse(t *testing.T) {
	f, err := New(5, []float64{0.1, -0.3, 0.6, 0.2, 0.05})
	if err != nil {
		t.Fatal(err)
	}
	h, err := f.FrequencyResponse(64)
	if err != nil {
		t.Fatal(err)
	}

	const sr = 64.0
	fftSize := 2 * (len(h) - 1)
	for k, got := range h {
		want := f.Response(float64(k)*sr/float64(fftSize), sr)
		if cmplx.Abs(got-want) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, got, want)
		}
	}
}

func TestMagnitudeResponse_MovingAverage(t *testing.T) {
	const taps = 4
	f, err := MovingAverage(taps)
	if err != nil {
		t.Fatal(err)
	}
	mag, err := f.MagnitudeResponse(32)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFinite(t, mag)

	testutil.RequireNearlyEqual(t, mag[0], 1, 1e-9)
	// A 4-tap boxcar has a null at fs/4 (bin 8 of 32).
	testutil.RequireNearlyEqual(t, mag[8], 0, 1e-9)

	h, err := f.FrequencyResponse(32)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]float64, len(h))
	for i, c := range h {
		want[i] = cmplx.Abs(c)
	}
	testutil.RequireSliceNearlyEqual(t, mag, want, 1e-12)
}

func TestNormalizeDC(t *testing.T) {
	w, err := NormalizeDC([]float64{1, 2, 3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, w, []float64{1.0 / 9, 2.0 / 9, 3.0 / 9, 2.0 / 9, 1.0 / 9}, eps)

	f, err := New(len(w), w)
	if err != nil {
		t.Fatal(err)
	}
	var y float64
	for range 2 * len(w) {
		y = f.Filter(3)
	}
	testutil.RequireNearlyEqual(t, y, 3, 1e-12)
}

func TestNormalizeDCDoesNotModifyInput(t *testing.T) {
	in := []float64{2, 2}
	if _, err := NormalizeDC(in); err != nil {
		t.Fatal(err)
	}
	if in[0] != 2 || in[1] != 2 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestNormalizeDCErrors(t *testing.T) {
	if _, err := NormalizeDC(nil); !errors.Is(err, ErrEmptyWeights) {
		t.Fatalf("empty: got %v, want ErrEmptyWeights", err)
	}
	if _, err := NormalizeDC([]float64{1, -1}); !errors.Is(err, ErrZeroDCGain) {
		t.Fatalf("zero sum: got %v, want ErrZeroDCGain", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 8: 8, 9: 16, 1000: 1024} {
		if got := nextPowerOf2(n); got != want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", n, got, want)
		}
	}
}
