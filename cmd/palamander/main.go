package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/palamander/internal/analysis"
	"github.com/san-kum/palamander/internal/automation"
	"github.com/san-kum/palamander/internal/config"
	"github.com/san-kum/palamander/internal/experiment"
	"github.com/san-kum/palamander/internal/export"
	"github.com/san-kum/palamander/internal/metrics"
	"github.com/san-kum/palamander/internal/palamander"
	"github.com/san-kum/palamander/internal/section"
	"github.com/san-kum/palamander/internal/segment"
	"github.com/san-kum/palamander/internal/storage"
	"github.com/san-kum/palamander/internal/stream"
	"github.com/san-kum/palamander/internal/tui"
	"github.com/san-kum/palamander/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool

	duration      float64
	interval      float64
	seed          int64
	modifier      string
	linear        string
	rotational    string
	magnification float64
	bodyPlan      string
	// live text rendering during run
	live      bool
	frameRate int

	field string
	runs  int

	sweepLinear     []string
	sweepRotational []string
	metric          string
	minimize        bool
	radius          float64

	theme   string
	zoom    float64
	fill    bool
	follow  bool
	gifPath string
	addr    string

	outFile string
	svgMode string
	width   int
	height  int
	save    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "palamander",
		Short: "procedural creatures for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resetDefaults(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".palamander", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log soft failures to stderr")

	runCmd := &cobra.Command{
		Use:   "run [creature]",
		Short: "swim a creature headlessly and record the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCreature,
	}
	addCreatureFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	runCmd.Flags().Float64Var(&interval, "interval", 0, "virtual tick in ms (0 = creature's update interval)")
	runCmd.Flags().BoolVar(&live, "live", false, "draw the creature while it runs")
	runCmd.Flags().IntVar(&frameRate, "fps", 20, "frame rate for --live")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&field, "field", "", "single field to plot (x, y, heading, speed, turn, bend)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "statistics, spectrum and path of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&field, "field", "bend", "field for the spectrum")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live [creature...]",
		Short: "watch creatures swim in the terminal",
		RunE:  runLive,
	}
	addCreatureFlags(liveCmd)
	addViewFlags(liveCmd)

	serveCmd := &cobra.Command{
		Use:   "serve [creature...]",
		Short: "stream a tank of creatures over websocket",
		RunE:  serveTank,
	}
	addCreatureFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultStreamAddr, "listen address")

	svgCmd := &cobra.Command{
		Use:   "svg [creature]",
		Short: "snapshot a creature as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotSVG,
	}
	addCreatureFlags(svgCmd)
	svgCmd.Flags().Float64Var(&duration, "time", 2, "seconds to swim before the snapshot")
	svgCmd.Flags().StringVar(&svgMode, "mode", "circles", "circles, braille or path")
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "palamander.svg", "output file")
	svgCmd.Flags().IntVar(&width, "width", 800, "image width")
	svgCmd.Flags().IntVar(&height, "height", 600, "image height")

	creaturesCmd := &cobra.Command{
		Use:   "creatures",
		Short: "list the creature catalog",
		RunE:  listCreatures,
	}

	behaviorsCmd := &cobra.Command{
		Use:   "behaviors",
		Short: "list movement behaviors, modifiers and section types",
		RunE:  listBehaviors,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [creature]",
		Short: "benchmark a creature",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchCreature,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 8, "parallel runs in the ensemble pass")

	planCmd := &cobra.Command{
		Use:   "plan [creature|file]",
		Short: "print or compile a body plan",
		Args:  cobra.ExactArgs(1),
		RunE:  showPlan,
	}
	planCmd.Flags().StringVar(&save, "save", "", "write the plan as yaml")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario and record every step",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [creature]",
		Short: "compare behavior combinations on one creature",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringSliceVar(&sweepLinear, "linear", nil, "linear behaviors to try (default all)")
	sweepCmd.Flags().StringSliceVar(&sweepRotational, "rotational", nil, "rotational behaviors to try (default all)")
	sweepCmd.Flags().IntVar(&runs, "runs", 4, "seeds per combination")
	sweepCmd.Flags().Float64Var(&duration, "time", 10, "duration in seconds")
	sweepCmd.Flags().StringVar(&metric, "metric", "distance", "metric to compare")
	sweepCmd.Flags().BoolVar(&minimize, "min", false, "prefer the lowest metric")

	montecarloCmd := &cobra.Command{
		Use:   "montecarlo [creature]",
		Short: "count seeds that keep a creature inside the tank",
		Args:  cobra.ExactArgs(1),
		RunE:  runMonteCarlo,
	}
	montecarloCmd.Flags().IntVar(&runs, "trials", 50, "number of seeds")
	montecarloCmd.Flags().Float64Var(&duration, "time", 30, "duration in seconds")
	montecarloCmd.Flags().Float64Var(&radius, "radius", metrics.DefaultContainmentRadius, "tank radius in body units")
	montecarloCmd.Flags().Int64Var(&seed, "seed", 1, "first seed")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, liveCmd, serveCmd, svgCmd, creaturesCmd, behaviorsCmd, benchCmd, planCmd, scenarioCmd, sweepCmd, montecarloCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCreatureFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&modifier, "modifier", config.DefaultModifier, "modifier preset")
	cmd.Flags().StringVar(&linear, "linear", "", "override linear behavior")
	cmd.Flags().StringVar(&rotational, "rotational", "", "override rotational behavior")
	cmd.Flags().Float64Var(&magnification, "magnification", 0, "override magnification")
	cmd.Flags().StringVar(&bodyPlan, "plan", "", "body plan yaml file")
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().Float64Var(&zoom, "zoom", 0.5, "dots per body unit")
	cmd.Flags().BoolVar(&fill, "fill", false, "draw filled segments")
	cmd.Flags().BoolVar(&follow, "follow", true, "camera follows the selected creature")
	cmd.Flags().StringVar(&gifPath, "gif", "palamander.gif", "gif recording path")
}

// resetDefaults restores unset flags to the running command's defaults.
// Commands share flag variables, so otherwise the last registered default
// would win.
func resetDefaults(cmd *cobra.Command) error {
	var err error
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || err != nil {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(nil)
			return
		}
		err = f.Value.Set(f.DefValue)
	})
	return err
}

func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	return log.New(w, "palamander: ", log.LstdFlags)
}

// loadConfig reads the config file if any and lets explicitly set flags
// override it.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Creature = args[0]
		cfg.Tank = args[1:]
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("modifier") {
		cfg.Modifier = modifier
	}
	if flags.Changed("linear") {
		cfg.Behavior.Linear = linear
	}
	if flags.Changed("rotational") {
		cfg.Behavior.Rotational = rotational
	}
	if flags.Changed("magnification") {
		cfg.Magnification = magnification
	}
	if flags.Changed("plan") {
		cfg.BodyPlan = bodyPlan
	}
	// Without a config file the command's own --time default applies.
	if flags.Changed("time") || (configFile == "" && flags.Lookup("time") != nil) {
		cfg.Duration = duration
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}
	if flags.Changed("follow") {
		cfg.View.Follow = follow
	}
	if flags.Changed("addr") {
		cfg.Stream.Addr = addr
	}
	return cfg, nil
}

// buildTank creates the configured creature and tank entries with
// consecutive seeds.
func buildTank(reg *experiment.Registry, cfg *config.Config) (*palamander.Tank, error) {
	specs, err := cfg.TankSpecs()
	if err != nil {
		return nil, err
	}
	mod, err := cfg.GetModifier()
	if err != nil {
		return nil, err
	}
	tank := palamander.NewTank()
	for i, spec := range specs {
		p, err := reg.NewPalamander(spec, mod, cfg.Seed+int64(i))
		if err != nil {
			return nil, err
		}
		tank.Add(p)
	}
	return tank, nil
}

func runPicker() error {
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	entries := make([]viz.Entry, 0, len(config.Presets))
	for _, name := range config.ListPresets() {
		entries = append(entries, viz.Entry{Name: name, Bio: config.Presets[name].Bio})
	}
	s := time.Now().UnixNano()
	factory := func(name string) (*palamander.Palamander, error) {
		s++
		return reg.NewCreature(name, palamander.Noop(), s)
	}
	return viz.RunInteractive(entries, factory, viz.Options{Theme: config.DefaultTheme, Follow: true})
}

func runCreature(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}
	mod, err := cfg.GetModifier()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("interval") && cfg.UpdateInterval > 0 {
		interval = cfg.UpdateInterval
	}

	dir := dataDir
	if cfg.Output.Dir != "" && !cmd.Flags().Changed("data") && configFile != "" {
		dir = cfg.Output.Dir
	}
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return err
	}

	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Spec:     spec,
		Modifier: mod,
		Seed:     cfg.Seed,
		Duration: cfg.Duration,
		Interval: interval,
	}, reg)

	if live {
		r := tui.NewLiveRenderer(frameRate)
		r.Start()
		defer r.Stop()
		exp.AddObserver(r)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("swimming %s (%s, %s)...\n", cfg.Creature, spec.Behavior.Linear, spec.Behavior.Rotational)
	start := time.Now()

	trace, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(trace, cfg.Modifier, cfg.Duration)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", len(trace.Samples)-1)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(trace.Metrics))
	for name := range trace.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, trace.Metrics[name])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	list, err := st.List()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATURE\tTIME\tDURATION\tINTERVAL\tMODIFIER\tSEED")
	for _, run := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.0fms\t%s\t%d\n",
			run.ID,
			run.Creature,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Interval,
			run.Modifier,
			run.Seed,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []experiment.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("no data in run %s", runID)
	}
	return meta, samples, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("creature: %s\n", meta.Creature)
	fmt.Printf("samples: %d\n\n", len(samples))

	fields := []string{"speed", "heading", "turn", "bend"}
	if field != "" {
		fields = []string{field}
	}
	for _, name := range fields {
		f, ok := analysis.Fields[name]
		if !ok {
			return fmt.Errorf("unknown field: %s", name)
		}
		graph := asciigraph.Plot(analysis.Series(samples, f),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	f, ok := analysis.Fields[field]
	if !ok {
		return fmt.Errorf("unknown field: %s", field)
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("creature: %s\n\n", meta.Creature)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tMEAN\tSTDDEV\tMIN\tMAX\tPERIOD")
	names := make([]string, 0, len(analysis.Fields))
	for name := range analysis.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := analysis.Summarize(analysis.Series(samples, analysis.Fields[name]), meta.Interval)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.0fms\n", name, st.Mean, st.StdDev, st.Min, st.Max, st.Period)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	data := analysis.Series(samples, f)
	ps := analysis.PowerSpectrum(data)
	if len(ps) > 2 {
		plotData := ps[1 : len(ps)/2+1]
		fmt.Println(asciigraph.Plot(plotData,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum ("+field+")"),
		))
		fmt.Println()
	}

	if p := analysis.DominantPeriod(data, meta.Interval); p > 0 {
		fmt.Printf("dominant period: %.0f ms (%.3f hz)\n", p, 1000/p)
	} else {
		fmt.Println("dominant period: none")
	}
	if p := analysis.CrossingPeriod(data, analysis.Mean(data), meta.Interval); p > 0 {
		fmt.Printf("crossing period: %.0f ms\n", p)
	}

	fmt.Println("\npath (o = start, @ = end):")
	path := analysis.NewPortrait(samples, analysis.Fields["x"], analysis.Fields["y"])
	fmt.Println(path.ToASCII(70, 20))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	trace := &experiment.Trace{
		ID:       meta.ID,
		Type:     meta.Creature,
		Seed:     meta.Seed,
		Interval: meta.Interval,
		Samples:  samples,
		Metrics:  meta.Metrics,
	}
	if outFile != "" {
		return storage.ExportJSON(outFile, trace, meta.Duration)
	}
	return storage.WriteJSON(os.Stdout, trace, meta.Duration)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	tank, err := buildTank(reg, cfg)
	if err != nil {
		return err
	}
	return viz.Run(tank, viz.Options{
		Theme:   cfg.View.Theme,
		Follow:  cfg.View.Follow,
		Zoom:    zoom,
		Fill:    fill,
		GIFPath: gifPath,
	})
}

func serveTank(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, "palamander: ", log.LstdFlags)
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	tank, err := buildTank(reg, cfg)
	if err != nil {
		return err
	}

	period := time.Duration(cfg.UpdateInterval * float64(time.Millisecond))
	srv := stream.NewServer(tank, period, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return srv.ListenAndServe(ctx, cfg.Stream.Addr)
}

func snapshotSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}
	mod, err := cfg.GetModifier()
	if err != nil {
		return err
	}
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}

	trace, err := experiment.New(experiment.Config{
		Spec:     spec,
		Modifier: mod,
		Seed:     cfg.Seed,
		Duration: cfg.Duration,
	}, reg).Run(context.Background())
	if err != nil {
		return err
	}

	var out string
	switch svgMode {
	case "circles":
		out = export.CirclesToSVG(trace.Final.Circles, width, height, export.DefaultStyle())
	case "braille":
		canvas := viz.NewCanvas(width/8, height/16)
		cam := viz.NewCamera(30, 1, canvas.SubWidth(), canvas.SubHeight())
		fitCamera(cam, trace.Final, canvas)
		cam.DrawCircles(canvas, trace.Final.Circles, false)
		out = export.CanvasToSVG(canvas, 4)
	case "path":
		path := analysis.NewPortrait(trace.Samples, analysis.Fields["x"], analysis.Fields["y"])
		out = export.PathToSVG(path.Points, width, height, export.DefaultStyle().Fill)
	default:
		return fmt.Errorf("unknown svg mode: %s", svgMode)
	}

	if err := os.WriteFile(outFile, []byte(out), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

// fitCamera centers cam on the pivot and zooms so the whole body fits.
func fitCamera(cam *viz.Camera, f palamander.Frame, canvas *viz.Canvas) {
	extent := 1.0
	for _, c := range f.Circles {
		d := c.Center.Sub(f.Pivot).Len() + c.Radius
		extent = max(extent, d)
	}
	cam.Zoom = float64(min(canvas.SubWidth(), canvas.SubHeight())) / (2.2 * extent)
	for i := 0; i < 300; i++ {
		cam.Update(f.Pivot)
	}
}

func listCreatures(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tLINEAR\tROTATIONAL\tMAG\tCOUNT")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%d\n", name, p.Type, p.Linear, p.Rotational, p.Magnification, p.Count)
	}
	return w.Flush()
}

func listBehaviors(cmd *cobra.Command, args []string) error {
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	mods := make([]string, 0)
	for name := range palamander.Modifiers() {
		mods = append(mods, name)
	}
	sort.Strings(mods)

	fmt.Println("linear:     " + strings.Join(reg.ListSpeedBehaviors(), ", "))
	fmt.Println("rotational: " + strings.Join(reg.ListRotationBehaviors(), ", "))
	fmt.Println("modifiers:  " + strings.Join(mods, ", "))
	fmt.Println("sections:   " + strings.Join(reg.ListSections(), ", "))
	return nil
}

func benchCreature(cmd *cobra.Command, args []string) error {
	name := config.DefaultCreature
	if len(args) > 0 {
		name = args[0]
	}
	preset, err := config.GetPreset(name)
	if err != nil {
		return err
	}
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	spec := preset.Spec(name)

	durations := []float64{1, 10, 60}
	intervals := []float64{16, 33, 50}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tINTERVAL\tTICKS\tTIME\tTICKS/SEC")

	for _, dur := range durations {
		for _, iv := range intervals {
			cfg := experiment.Config{Spec: spec, Modifier: palamander.Noop(), Seed: 42, Duration: dur, Interval: iv}
			start := time.Now()
			trace, err := experiment.New(cfg, reg).Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			ticks := len(trace.Samples) - 1
			fmt.Fprintf(w, "%.0fs\t%.0fms\t%d\t%v\t%.0f\n", dur, iv, ticks, elapsed, float64(ticks)/elapsed.Seconds())
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if runs > 0 {
		cfg := experiment.Config{Spec: spec, Modifier: palamander.Noop(), Duration: 10, Interval: 33}
		start := time.Now()
		traces, err := experiment.NewEnsemble(cfg, reg, runs, 1).Run(context.Background())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		dist := make([]float64, len(traces))
		for i, tr := range traces {
			dist[i] = tr.Metrics["distance"]
		}
		fmt.Printf("\nensemble: %d runs in %v, distance %.0f ± %.0f\n",
			len(traces), elapsed, analysis.Mean(dist), analysis.StdDev(dist))
	}
	return nil
}

func showPlan(cmd *cobra.Command, args []string) error {
	var tree section.Section
	if _, err := os.Stat(args[0]); err == nil {
		tree, err = section.Load(args[0])
		if err != nil {
			return err
		}
	} else {
		preset, err := config.GetPreset(args[0])
		if err != nil {
			return err
		}
		tree = preset.Spec(args[0]).SectionTree
	}

	if save != "" {
		if err := section.Save(save, tree); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", save)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return err
	}

	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	body := reg.Compiler().Compile(tree)
	if len(body) == 0 {
		return fmt.Errorf("%w: plan %s", palamander.ErrEmptyBody, args[0])
	}
	fmt.Printf("\nbody segments: %d\n", len(body))
	fmt.Printf("total segments: %d\n", segment.Count(body[0]))
	fmt.Printf("pivot index: %.2f\n", palamander.PivotIndex(body))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("scenario %s: %d steps\n", sc.Name, len(sc.Steps))
	traces, err := automation.RunScenario(context.Background(), sc, reg)
	for i, trace := range traces {
		step := sc.Steps[i]
		id, serr := st.Save(trace, step.Modifier, trace.Interval*float64(len(trace.Samples)-1)/1000)
		if serr != nil {
			return serr
		}
		fmt.Printf("  %d. %-12s %s  distance %.0f\n", i+1, trace.Type, id, trace.Metrics["distance"])
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	if len(sweepLinear) == 0 {
		sweepLinear = reg.ListSpeedBehaviors()
	}
	if len(sweepRotational) == 0 {
		sweepRotational = reg.ListRotationBehaviors()
	}

	results, err := automation.RunSweep(context.Background(), &automation.BehaviorSweep{
		Creature:   args[0],
		Linear:     sweepLinear,
		Rotational: sweepRotational,
		Seeds:      runs,
		Duration:   duration,
		Metric:     metric,
	}, reg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "LINEAR\tROTATIONAL\t%s\tSTDDEV\n", strings.ToUpper(metric))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\n", r.Linear, r.Rotational, r.Mean, r.StdDev)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if best, ok := automation.Best(results, minimize); ok {
		fmt.Printf("\nbest: %s / %s (%.3f)\n", best.Linear, best.Rotational, best.Mean)
	}
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	reg, err := experiment.NewRegistry(newLogger())
	if err != nil {
		return err
	}
	results, err := automation.RunMonteCarlo(context.Background(), &automation.MonteCarloConfig{
		Creature:  args[0],
		NumTrials: runs,
		Duration:  duration,
		Seed:      seed,
		Radius:    radius,
	}, reg)
	if err != nil {
		return err
	}

	contained, escaped := automation.MonteCarloStats(results)
	dist := make([]float64, len(results))
	for i, r := range results {
		dist[i] = r.Distance
	}
	fmt.Printf("%s: %d contained, %d escaped (radius %.0f)\n", args[0], contained, escaped, radius)
	fmt.Printf("distance: %.0f ± %.0f\n", analysis.Mean(dist), analysis.StdDev(dist))
	return nil
}
