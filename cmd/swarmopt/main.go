package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/swarmopt/internal/config"
	"github.com/san-kum/swarmopt/internal/metrics"
	"github.com/san-kum/swarmopt/internal/objective"
	"github.com/san-kum/swarmopt/internal/runner"
	"github.com/san-kum/swarmopt/internal/store"
	"github.com/san-kum/swarmopt/internal/swarm"
	"github.com/san-kum/swarmopt/internal/tui"
)

var (
	dim         int
	particles   int
	generations int
	c1          float64
	c2          float64
	initW       float64
	schedule    string
	direction   string
	vMax        float64
	seed        int64
	// Config file and preset selection
	configFile string
	preset     string
	// Output
	exportJSON string
	exportCSV  string
	live       bool
	verbose    bool
	// Sweep
	runs int
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

func main() {
	rootCmd := &cobra.Command{
		Use:   "swarmopt",
		Short: "particle swarm optimization lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [benchmark]",
		Short: "optimize a benchmark function",
		Args:  cobra.ExactArgs(1),
		RunE:  runBenchmark,
	}
	runCmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "search-space dimensions")
	runCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "swarm size")
	runCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")
	runCmd.Flags().Float64Var(&c1, "c1", config.DefaultC1, "cognitive acceleration")
	runCmd.Flags().Float64Var(&c2, "c2", config.DefaultC2, "social acceleration")
	runCmd.Flags().Float64Var(&initW, "w", config.DefaultInitW, "initial inertia weight")
	runCmd.Flags().StringVar(&schedule, "schedule", "linearly-decreasing", "inertia schedule")
	runCmd.Flags().StringVar(&direction, "direction", "minimum", "optimization direction")
	runCmd.Flags().Float64Var(&vMax, "vmax", 0, "velocity ceiling per dimension (0 disables)")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML config file")
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset for the benchmark")
	runCmd.Flags().StringVar(&exportJSON, "export", "", "write result JSON to file")
	runCmd.Flags().StringVar(&exportCSV, "csv", "", "write convergence trace CSV to file")
	runCmd.Flags().BoolVar(&live, "live", false, "live convergence view")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list benchmarks and presets",
		RunE:  listBenchmarks,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [benchmark]",
		Short: "run a benchmark across multiple seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepBenchmark,
	}
	sweepCmd.Flags().IntVar(&runs, "runs", 10, "number of seeded runs")
	sweepCmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "search-space dimensions")
	sweepCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "swarm size")
	sweepCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")
	sweepCmd.Flags().Float64Var(&c1, "c1", config.DefaultC1, "cognitive acceleration")
	sweepCmd.Flags().Float64Var(&c2, "c2", config.DefaultC2, "social acceleration")
	sweepCmd.Flags().StringVar(&schedule, "schedule", "linearly-decreasing", "inertia schedule")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "first random seed")

	rootCmd.AddCommand(runCmd, listCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildConfig(benchmark string) (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(benchmark, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(benchmark))
		}
		return cfg, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Benchmark = benchmark
		return cfg, nil
	}
	return &config.Config{
		Benchmark:   benchmark,
		Dim:         dim,
		Particles:   particles,
		Generations: generations,
		C1:          c1,
		C2:          c2,
		InitW:       initW,
		Schedule:    schedule,
		Direction:   direction,
		VMax:        vMax,
		Seed:        seed,
	}, nil
}

func runnerConfig(cfg *config.Config, benchDim int) runner.Config {
	return runner.Config{
		Particles:   cfg.Particles,
		Generations: cfg.Generations,
		C1:          cfg.C1,
		C2:          cfg.C2,
		InitW:       cfg.InitW,
		Schedule:    swarm.Schedule(cfg.Schedule),
		Direction:   swarm.Direction(cfg.Direction),
		VMax:        cfg.VMaxVector(benchDim),
		Seed:        cfg.Seed,
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	bench, err := objective.NewRegistry().Get(cfg.Benchmark, cfg.Dim)
	if err != nil {
		return err
	}
	cfg.Dim = bench.Dim

	r := runner.New(runnerConfig(cfg, bench.Dim))
	r.AddMetric(metrics.NewDiversity())
	r.AddMetric(metrics.NewStagnation())
	r.AddMetric(metrics.NewEvaluations())

	var result *runner.Result
	if live {
		err = tui.Run(bench.Name, cfg.Generations, func(view *tui.LiveView) error {
			r.AddObserver(view)
			var runErr error
			result, runErr = r.Run(context.Background(), bench)
			return runErr
		})
	} else {
		result, err = r.Run(context.Background(), bench)
	}
	if err != nil {
		return err
	}

	printResult(bench, result)

	if exportJSON != "" {
		if err := store.ExportJSON(exportJSON, cfg, result); err != nil {
			return err
		}
		fmt.Printf("result written to %s\n", exportJSON)
	}
	if exportCSV != "" {
		if err := store.ExportCSV(exportCSV, result); err != nil {
			return err
		}
		fmt.Printf("trace written to %s\n", exportCSV)
	}
	return nil
}

func printResult(bench objective.Benchmark, result *runner.Result) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("swarmopt · %s (%d-D)", bench.Name, bench.Dim)))
	fmt.Println()

	if len(result.Trace) > 1 {
		fmt.Println(asciigraph.Plot(result.Trace,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("best fitness per generation"),
		))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "best fitness\t%.8g\n", result.BestFitness)
	fmt.Fprintf(w, "known optimum\t%.8g\n", bench.Optimum)
	fmt.Fprintf(w, "best position\t%.5g\n", []float64(result.BestPosition))
	fmt.Fprintf(w, "generations\t%d\n", result.Generations)
	for name, val := range result.Metrics {
		fmt.Fprintf(w, "%s\t%g\n", name, val)
	}
	w.Flush()
}

func listBenchmarks(cmd *cobra.Command, args []string) error {
	registry := objective.NewRegistry()

	fmt.Println(headerStyle.Render("benchmarks"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range registry.List() {
		bench, err := registry.Get(name, config.DefaultDim)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\toptimum %.6g\tpresets %v\n", name, bench.Optimum, config.ListPresets(name))
	}
	return w.Flush()
}

func sweepBenchmark(cmd *cobra.Command, args []string) error {
	bench, err := objective.NewRegistry().Get(args[0], dim)
	if err != nil {
		return err
	}
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	base := runner.Config{
		Particles:   particles,
		Generations: generations,
		C1:          c1,
		C2:          c2,
		Schedule:    swarm.Schedule(schedule),
		Direction:   swarm.Minimum,
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("sweep · %s (%d-D) · %d runs", bench.Name, bench.Dim, runs)))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "seed\tbest fitness")

	best := math.Inf(1)
	worst := math.Inf(-1)
	sum := 0.0
	for i := 0; i < runs; i++ {
		cfg := base
		cfg.Seed = seed + int64(i)

		result, err := runner.New(cfg).Run(context.Background(), bench)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}

		fmt.Fprintf(w, "%d\t%.8g\n", cfg.Seed, result.BestFitness)
		sum += result.BestFitness
		best = math.Min(best, result.BestFitness)
		worst = math.Max(worst, result.BestFitness)
	}
	w.Flush()

	fmt.Printf("\nbest %.8g  mean %.8g  worst %.8g\n", best, sum/float64(runs), worst)
	return nil
}
