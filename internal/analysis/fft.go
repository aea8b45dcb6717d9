package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// PowerSpectrum returns the magnitude of bins 0..n/2 of the Hann-windowed,
// mean-removed signal. Bin k has frequency k/(n*dt).
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	x := make([]float64, len(data))
	copy(x, data)
	m := Mean(x)
	for i := range x {
		x[i] -= m
	}
	window.Apply(x, window.Hann)

	spectrum := fft.FFTReal(x)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in the units of interval, of the
// strongest non-constant component of data sampled every interval. It
// returns 0 for a flat or too short signal.
func DominantPeriod(data []float64, interval float64) float64 {
	ps := PowerSpectrum(data)
	best, bestPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPower {
			best, bestPower = k, ps[k]
		}
	}
	if best == 0 || bestPower < 1e-9 {
		return 0
	}
	return float64(len(data)) * interval / float64(best)
}
