package analysis

import (
	"math"

	"github.com/san-kum/palamander/internal/experiment"
)

// Field selects one column of a trace.
type Field func(experiment.Sample) float64

var Fields = map[string]Field{
	"x":       func(s experiment.Sample) float64 { return s.X },
	"y":       func(s experiment.Sample) float64 { return s.Y },
	"heading": func(s experiment.Sample) float64 { return s.Heading },
	"speed":   func(s experiment.Sample) float64 { return s.Speed },
	"turn":    func(s experiment.Sample) float64 { return s.Turn },
	"bend":    func(s experiment.Sample) float64 { return s.Bend },
}

func Series(samples []experiment.Sample, f Field) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = f(s)
	}
	return out
}

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	m := Mean(data)
	sum := 0.0
	for _, v := range data {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(data)))
}

// Stats summarises one field of a trace.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	// Period is the dominant period in ms, 0 when there is none.
	Period float64
}

func Summarize(data []float64, interval float64) Stats {
	if len(data) == 0 {
		return Stats{}
	}
	st := Stats{
		Mean:   Mean(data),
		StdDev: StdDev(data),
		Min:    data[0],
		Max:    data[0],
		Period: DominantPeriod(data, interval),
	}
	for _, v := range data {
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	return st
}

// CrossingPeriod estimates the period of data from the mean spacing of its
// upward crossings of threshold, interpolating between samples.
func CrossingPeriod(data []float64, threshold, interval float64) float64 {
	var crossings []float64
	for i := 1; i < len(data); i++ {
		prev, curr := data[i-1], data[i]
		if prev < threshold && curr >= threshold {
			frac := (threshold - prev) / (curr - prev)
			if math.IsNaN(frac) || math.IsInf(frac, 0) {
				frac = 0.5
			}
			crossings = append(crossings, (float64(i-1)+frac)*interval)
		}
	}
	if len(crossings) < 2 {
		return 0
	}
	return (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1)
}
