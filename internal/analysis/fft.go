// Package analysis finds the dominant oscillation in a sampled series.
package analysis

import (
	"math"
	"math/cmplx"
)

// fft is a radix-2 transform; len(data) must be a power of two.
func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// powerSpectrum returns the magnitudes of the first half of the transform.
func powerSpectrum(data []float64) []float64 {
	spectrum := fft(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod estimates the period of the strongest oscillation in
// samples taken every dt. The mean is removed and the series zero-padded to
// a power of two, so any length is accepted. ok is false when the series is too short or flat.
func DominantPeriod(samples []float64, dt float64) (period float64, ok bool) {
	if len(samples) < 4 || dt <= 0 {
		return 0, false
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	n := 1
	for n < len(samples) {
		n *= 2
	}
	padded := make([]float64, n)
	for i, v := range samples {
		padded[i] = v - mean
	}

	ps := powerSpectrum(padded)
	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 || maxPower < 1e-12 {
		return 0, false
	}

	freq := float64(maxIdx) / (float64(n) * dt)
	return 1 / freq, true
}
