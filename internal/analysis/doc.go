// Package analysis examines recorded creature traces.
//
//   - [PowerSpectrum] and [DominantPeriod]: frequency content of a field
//   - [CrossingPeriod]: period from threshold crossings
//   - [Summarize]: mean, spread, range and period of a field
//   - [Portrait]: ASCII scatter of two fields, e.g. the swim path
//
// # Wriggle Period
//
// A creature's tail bend oscillates at roughly its wriggle period, slowed
// or hastened by speed suppression:
//
//	bend := analysis.Series(trace.Samples, analysis.Fields["bend"])
//	period := analysis.DominantPeriod(bend, trace.Interval) // ms
package analysis
