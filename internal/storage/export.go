package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/palamander/internal/experiment"
	"github.com/san-kum/palamander/internal/palamander"
)

type ExportData struct {
	Creature string              `json:"creature"`
	Seed     int64               `json:"seed"`
	Interval float64             `json:"interval"`
	Duration float64             `json:"duration"`
	Steps    int                 `json:"steps"`
	Samples  []experiment.Sample `json:"samples"`
	Metrics  map[string]float64  `json:"metrics"`
	Final    palamander.Frame    `json:"final"`
}

func exportData(trace *experiment.Trace, duration float64) ExportData {
	return ExportData{
		Creature: trace.Type,
		Seed:     trace.Seed,
		Interval: trace.Interval,
		Duration: duration,
		Steps:    len(trace.Samples),
		Samples:  trace.Samples,
		Metrics:  trace.Metrics,
		Final:    trace.Final,
	}
}

func ExportJSON(path string, trace *experiment.Trace, duration float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, trace, duration)
}

// WriteJSON writes the export to w, e.g. os.Stdout.
func WriteJSON(w io.Writer, trace *experiment.Trace, duration float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(trace, duration))
}
