package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pcosta/algrow/internal/analysis"
	"github.com/pcosta/algrow/internal/automation"
	"github.com/pcosta/algrow/internal/biofix"
	"github.com/pcosta/algrow/internal/config"
	"github.com/pcosta/algrow/internal/experiment"
	"github.com/pcosta/algrow/internal/export"
	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
	"github.com/pcosta/algrow/internal/optim"
	"github.com/pcosta/algrow/internal/storage"
	"github.com/pcosta/algrow/internal/viz"
)

var (
	dataDir    string
	light      float64
	dic        float64
	x0         float64
	tMax       float64
	nPoints    int
	integrator string
	tolerance  float64
	configFile string
	preset     string
	frameRate  int
	// Sweep grid bounds
	lightMin   float64
	lightMax   float64
	lightSteps int
	dicMin     float64
	dicMax     float64
	dicSteps   int
	sweepBy    string
	// SVG output path
	svgOut string
	// Monte Carlo controls
	mcTrials       int
	mcPerturbation float64
	mcSeed         int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "algrow",
		Short: "microalgae growth and CO2 biofixation simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".algrow", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a culture",
		RunE:  runSimulation,
	}
	addCultureFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "show derived kinetic coefficients for a condition",
		RunE:  inspectCondition,
	}
	inspectCmd.Flags().Float64Var(&light, "light", config.DefaultLight, "light intensity (umol/m2/s)")
	inspectCmd.Flags().Float64Var(&dic, "dic", config.DefaultDIC, "dissolved inorganic carbon (mM)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a light x DIC grid for the best condition",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&lightMin, "light-min", 40, "grid light lower bound")
	sweepCmd.Flags().Float64Var(&lightMax, "light-max", 280, "grid light upper bound")
	sweepCmd.Flags().IntVar(&lightSteps, "light-steps", 7, "grid points along light")
	sweepCmd.Flags().Float64Var(&dicMin, "dic-min", 5, "grid DIC lower bound")
	sweepCmd.Flags().Float64Var(&dicMax, "dic-max", 30, "grid DIC upper bound")
	sweepCmd.Flags().IntVar(&dicSteps, "dic-steps", 6, "grid points along DIC")
	sweepCmd.Flags().StringVar(&sweepBy, "by", "biomass", "rank by: biomass or co2")
	sweepCmd.Flags().Float64Var(&tMax, "time", config.DefaultTMax, "culture duration (h)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run as an SVG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "growth.svg", "output file path")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate and replay the trajectory in the terminal",
		RunE:  runLive,
	}
	addCultureFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "growth-phase analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted sequence of cultures",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	mcCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "inoculum variability study",
		RunE:  runMonteCarlo,
	}
	mcCmd.Flags().Float64Var(&light, "light", config.DefaultLight, "light intensity (umol/m2/s)")
	mcCmd.Flags().Float64Var(&dic, "dic", config.DefaultDIC, "dissolved inorganic carbon (mM)")
	mcCmd.Flags().Float64Var(&x0, "x0", 0, "base initial biomass (g/L), 0 means default")
	mcCmd.Flags().IntVar(&mcTrials, "trials", 50, "number of trials")
	mcCmd.Flags().Float64Var(&mcPerturbation, "perturbation", 0.005, "inoculum perturbation half-width (g/L)")
	mcCmd.Flags().Int64Var(&mcSeed, "seed", 0, "random seed, 0 means time-based")
	mcCmd.Flags().Float64Var(&tMax, "time", config.DefaultTMax, "culture duration (h)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available culture presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s I=%.0f DIC=%.2f t=%.0fh\n", name, p.Light, p.DIC, p.TMax)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, inspectCmd, sweepCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd, presetsCmd,
		analyzeCmd, batchCmd, mcCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCultureFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&light, "light", config.DefaultLight, "light intensity (umol/m2/s)")
	cmd.Flags().Float64Var(&dic, "dic", config.DefaultDIC, "dissolved inorganic carbon (mM)")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial biomass (g/L), 0 means default")
	cmd.Flags().Float64Var(&tMax, "time", config.DefaultTMax, "culture duration (h)")
	cmd.Flags().IntVar(&nPoints, "points", config.DefaultNPoints, "output samples")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	cmd.Flags().Float64Var(&tolerance, "tol", 0, "adaptive error tolerance, 0 means default")
}

// resolveConfig merges preset, config file, and CLI flags in increasing
// precedence and returns the scenario to run.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("light") {
		cfg.Light = light
	}
	if cmd.Flags().Changed("dic") {
		cfg.DIC = dic
	}
	if cmd.Flags().Changed("x0") {
		cfg.X0 = x0
	}
	if cmd.Flags().Changed("time") {
		cfg.TMax = tMax
	}
	if cmd.Flags().Changed("points") {
		cfg.NPoints = nPoints
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	params := cfg.ParameterSet()
	coef, err := kinetics.DeriveCoefficients(cfg.Environment(), params)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg.Environment(), params)
	if err := exp.Setup(integ, experiment.DefaultMetrics(coef, params)); err != nil {
		return err
	}

	fmt.Printf("running culture I=%.1f DIC=%.2f for %.0fh...\n", cfg.Light, cfg.DIC, cfg.TMax)
	start := time.Now()

	result, err := exp.Run(context.Background(), cfg.InitialBiomass(), cfg.RunConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	series, err := biofix.Compute(result.Times, result.Biomass(), params)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Environment(), cfg.InitialBiomass(), cfg.RunConfig(), cfg.Integrator, coef, result, series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("Xmax:   %.4f g/L\n", coef.Xmax)
	fmt.Printf("mu_max: %.4f 1/h\n", coef.MuMax)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func inspectCondition(cmd *cobra.Command, args []string) error {
	params := kinetics.DefaultParameters()
	env := kinetics.Environment{Light: light, DIC: dic}

	coef, err := kinetics.DeriveCoefficients(env, params)
	if err != nil {
		return err
	}

	fmt.Printf("condition: I=%.1f umol/m2/s, DIC=%.2f mM\n\n", light, dic)
	fmt.Printf("Xmax:            %.6f g/L\n", coef.Xmax)
	fmt.Printf("mu_max:          %.6f 1/h\n", coef.MuMax)
	fmt.Printf("fixation factor: %.6f g CO2/g biomass\n", params.FixationFactor())
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	params := kinetics.DefaultParameters()

	lights := optim.Span(lightMin, lightMax, lightSteps)
	dics := optim.Span(dicMin, dicMax, dicSteps)

	runCfg := config.DefaultConfig()
	runCfg.TMax = tMax

	fmt.Printf("sweeping %dx%d grid...\n", len(lights), len(dics))
	start := time.Now()

	sweep := optim.NewGridSweep(lights, dics, params)
	points, err := sweep.Run(context.Background(), params.X0, runCfg.RunConfig())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	score := func(p optim.Point) float64 { return p.FinalBiomass }
	if sweepBy == "co2" {
		score = func(p optim.Point) float64 { return p.CO2Total }
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LIGHT\tDIC\tXMAX\tMU_MAX\tFINAL\tCO2")
	for _, p := range points {
		fmt.Fprintf(w, "%.1f\t%.2f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			p.Light, p.DIC, p.Xmax, p.MuMax, p.FinalBiomass, p.CO2Total)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, ok := optim.Best(points, score)
	if ok {
		fmt.Printf("\nbest (%s): I=%.1f DIC=%.2f, final=%.4f g/L, CO2=%.4f g/L\n",
			sweepBy, best.Light, best.DIC, best.FinalBiomass, best.CO2Total)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLIGHT\tDIC\tX0\tDURATION\tINTEG\tXMAX")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%.4f\t%.0fh\t%s\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Light,
			run.DIC,
			run.X0,
			run.TMax,
			run.Integrator,
			run.Xmax,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(traj.Biomass) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(traj.Biomass))

	fmt.Println(viz.GrowthPlot(traj.Biomass, meta.Light, meta.DIC, 80, 12))
	fmt.Println()
	fmt.Println(viz.FixationPlot(traj.CO2Rate, 80, 10))

	return nil
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, traj)
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, traj)
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	if err := export.WriteGrowthChart(svgOut, traj.Times, traj.Biomass); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj.Biomass) < 2 {
		return fmt.Errorf("not enough data to analyze")
	}

	fmt.Printf("growth analysis: %s\n", meta.ID)
	fmt.Printf("condition: I=%.1f DIC=%.2f\n\n", meta.Light, meta.DIC)

	mu := analysis.SpecificGrowthRate(traj.Times, traj.Biomass)
	peakMu := mu[0]
	for _, v := range mu {
		if v > peakMu {
			peakMu = v
		}
	}

	fmt.Printf("peak specific rate: %.5f 1/h\n", peakMu)
	fmt.Printf("doubling time:      %.2f h\n", analysis.DoublingTime(peakMu))

	if t90, ok := analysis.TimeToFraction(traj.Times, traj.Biomass, meta.Xmax, 0.9); ok {
		fmt.Printf("time to 90%% Xmax:   %.1f h\n", t90)
	} else {
		fmt.Println("culture never reached 90% of capacity")
	}

	fmt.Println("\nphases:")
	for _, span := range analysis.DetectPhases(traj.Times, traj.Biomass, meta.Xmax) {
		fmt.Printf("  %-12s %.1fh .. %.1fh\n", span.Phase, span.Start, span.End)
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s (%d steps)\n", scenario.Name, len(scenario.Steps))

	params := kinetics.DefaultParameters()
	results, err := automation.RunScenario(context.Background(), scenario, experiment.NewRegistry(), params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tLIGHT\tDIC\tXMAX\tMU_MAX\tFINAL")
	for _, r := range results {
		biomass := r.Result.Biomass()
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.4f\t%.4f\t%.4f\n",
			r.Label, r.Env.Light, r.Env.DIC, r.Coef.Xmax, r.Coef.MuMax, biomass[len(biomass)-1])
	}
	return w.Flush()
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	params := kinetics.DefaultParameters()

	baseX0 := x0
	if baseX0 <= 0 {
		baseX0 = params.X0
	}

	runCfg := growth.DefaultConfig()
	runCfg.TMax = tMax
	runCfg.Floor = kinetics.BiomassFloor

	mcCfg := &automation.MonteCarloConfig{
		Env:          kinetics.Environment{Light: light, DIC: dic},
		BaseX0:       baseX0,
		Perturbation: mcPerturbation,
		NumTrials:    mcTrials,
		Seed:         mcSeed,
		Run:          runCfg,
	}

	fmt.Printf("running %d trials, X0 = %.4f +/- %.4f g/L...\n", mcTrials, baseX0, mcPerturbation)

	results, err := automation.RunMonteCarlo(context.Background(), mcCfg, params)
	if err != nil {
		return err
	}

	mean, stddev := automation.MonteCarloStats(results)
	fmt.Printf("final biomass: mean %.4f g/L, stddev %.5f\n", mean, stddev)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	params := cfg.ParameterSet()
	env := cfg.Environment()

	coef, err := kinetics.DeriveCoefficients(env, params)
	if err != nil {
		return err
	}

	times, biomass, err := experiment.Simulate(context.Background(), env, params, cfg.InitialBiomass(), cfg.RunConfig())
	if err != nil {
		return err
	}

	series, err := biofix.Compute(times, biomass, params)
	if err != nil {
		return err
	}

	m := viz.NewModel(times, biomass, series.Rate, env.Light, env.DIC, coef.Xmax, coef.MuMax, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
