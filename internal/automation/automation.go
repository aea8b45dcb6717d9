package automation

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/palamander/internal/analysis"
	"github.com/san-kum/palamander/internal/config"
	"github.com/san-kum/palamander/internal/experiment"
	"github.com/san-kum/palamander/internal/metrics"
	"github.com/san-kum/palamander/internal/palamander"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Empty fields keep the
// catalog values.
type ScenarioStep struct {
	Creature      string  `yaml:"creature"`
	Modifier      string  `yaml:"modifier"`
	Linear        string  `yaml:"linear"`
	Rotational    string  `yaml:"rotational"`
	Magnification float64 `yaml:"magnification"`
	Duration      float64 `yaml:"duration"`
	Interval      float64 `yaml:"interval"`
	Seed          int64   `yaml:"seed"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &scenario, nil
}

func (s ScenarioStep) config() (experiment.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Creature = s.Creature
	cfg.Behavior = config.BehaviorConfig{Linear: s.Linear, Rotational: s.Rotational}
	cfg.Magnification = s.Magnification
	if s.Modifier != "" {
		cfg.Modifier = s.Modifier
	}

	spec, err := cfg.Spec()
	if err != nil {
		return experiment.Config{}, err
	}
	mod, err := cfg.GetModifier()
	if err != nil {
		return experiment.Config{}, err
	}

	duration := s.Duration
	if duration == 0 {
		duration = config.DefaultDuration
	}
	return experiment.Config{
		Spec:     spec,
		Modifier: mod,
		Seed:     s.Seed,
		Duration: duration,
		Interval: s.Interval,
	}, nil
}

// RunScenario executes all steps in a scenario. On error the traces of the
// completed steps are returned with it.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]*experiment.Trace, error) {
	traces := make([]*experiment.Trace, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		registry.Logger().Printf("scenario %s: step %d/%d: %s", scenario.Name, i+1, len(scenario.Steps), step.Creature)

		cfg, err := step.config()
		if err != nil {
			return traces, fmt.Errorf("step %d: %w", i+1, err)
		}

		trace, err := experiment.New(cfg, registry).Run(ctx)
		if err != nil {
			return traces, fmt.Errorf("step %d run: %w", i+1, err)
		}

		traces = append(traces, trace)
	}

	return traces, nil
}

// BehaviorSweep runs a creature under every combination of linear and
// rotational behaviors, each over Seeds consecutive seeds.
type BehaviorSweep struct {
	Creature   string
	Linear     []string
	Rotational []string
	Seeds      int
	Duration   float64
	Interval   float64
	// Metric is the trace metric summarised per combination.
	Metric string
}

// SweepResult holds the metric statistics of one behavior combination
type SweepResult struct {
	Linear     string
	Rotational string
	Mean       float64
	StdDev     float64
}

// RunSweep executes a behavior sweep. Empty behavior lists keep the
// creature's own behavior.
func RunSweep(ctx context.Context, sweep *BehaviorSweep, registry *experiment.Registry) ([]SweepResult, error) {
	preset, err := config.GetPreset(sweep.Creature)
	if err != nil {
		return nil, err
	}
	linears := sweep.Linear
	if len(linears) == 0 {
		linears = []string{preset.Linear}
	}
	rotationals := sweep.Rotational
	if len(rotationals) == 0 {
		rotationals = []string{preset.Rotational}
	}
	seeds := max(sweep.Seeds, 1)

	results := make([]SweepResult, 0, len(linears)*len(rotationals))
	for _, lin := range linears {
		for _, rot := range rotationals {
			spec := preset.Spec(sweep.Creature)
			spec.Behavior = palamander.BehaviorNames{Linear: lin, Rotational: rot}

			cfg := experiment.Config{
				Spec:     spec,
				Modifier: palamander.Noop(),
				Duration: sweep.Duration,
				Interval: sweep.Interval,
			}
			traces, err := experiment.NewEnsemble(cfg, registry, seeds, 1).Run(ctx)
			if err != nil {
				return results, err
			}

			values := make([]float64, len(traces))
			for i, tr := range traces {
				v, ok := tr.Metrics[sweep.Metric]
				if !ok {
					return results, fmt.Errorf("unknown metric: %s", sweep.Metric)
				}
				values[i] = v
			}

			results = append(results, SweepResult{
				Linear:     lin,
				Rotational: rot,
				Mean:       analysis.Mean(values),
				StdDev:     analysis.StdDev(values),
			})
			registry.Logger().Printf("sweep %s: %s/%s %s=%.3f", sweep.Creature, lin, rot, sweep.Metric, results[len(results)-1].Mean)
		}
	}

	return results, nil
}

// Best returns the combination with the highest mean, or the lowest when
// minimize is set.
func Best(results []SweepResult, minimize bool) (SweepResult, bool) {
	if len(results) == 0 {
		return SweepResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if (minimize && r.Mean < best.Mean) || (!minimize && r.Mean > best.Mean) {
			best = r
		}
	}
	return best, true
}

const tankMetric = "tank_containment"

// MonteCarloConfig defines repeated seeded runs of one creature
type MonteCarloConfig struct {
	Creature  string
	NumTrials int
	Duration  float64
	Interval  float64
	Seed      int64
	// Radius bounds the tank; a trial whose engine ever leaves it escaped.
	Radius float64
}

// MonteCarloResult holds the outcome of one trial
type MonteCarloResult struct {
	TrialID     int
	Seed        int64
	Distance    float64
	Containment float64
	Contained   bool
}

// RunMonteCarlo runs NumTrials seeds of a creature and records how far it
// swam and whether it stayed within Radius.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry) ([]MonteCarloResult, error) {
	preset, err := config.GetPreset(cfg.Creature)
	if err != nil {
		return nil, err
	}
	results := make([]MonteCarloResult, 0, cfg.NumTrials)

	for trial := 0; trial < cfg.NumTrials; trial++ {
		seed := cfg.Seed + int64(trial)
		exp := experiment.New(experiment.Config{
			Spec:     preset.Spec(cfg.Creature),
			Modifier: palamander.Noop(),
			Seed:     seed,
			Duration: cfg.Duration,
			Interval: cfg.Interval,
		}, registry)
		if cfg.Radius > 0 {
			exp.AddMetric(metrics.NewContainment(cfg.Radius).Named(tankMetric))
		}

		trace, err := exp.Run(ctx)
		if err != nil {
			return results, err
		}

		containment := trace.Metrics["containment"]
		if v, ok := trace.Metrics[tankMetric]; ok {
			containment = v
		}
		results = append(results, MonteCarloResult{
			TrialID:     trial,
			Seed:        seed,
			Distance:    trace.Metrics["distance"],
			Containment: containment,
			Contained:   containment == 1,
		})

		if (trial+1)%10 == 0 {
			registry.Logger().Printf("monte carlo: %d/%d trials complete", trial+1, cfg.NumTrials)
		}
	}

	return results, nil
}

// MonteCarloStats counts contained and escaped trials
func MonteCarloStats(results []MonteCarloResult) (contained int, escaped int) {
	for _, r := range results {
		if r.Contained {
			contained++
		} else {
			escaped++
		}
	}
	return
}
