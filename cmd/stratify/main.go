package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/alanchen34/stratify/internal/logging"
	"github.com/alanchen34/stratify/internal/metrics"
	"github.com/alanchen34/stratify/pipeline"
)

var (
	configFlag  string
	verboseFlag bool
	metricsFlag string
)

var rootCmd = &cobra.Command{
	Use:   "stratify",
	Short: "Deterministic stratified sampling of product reviews",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process all categories and write the sampled datasets",
	RunE:  runPipeline,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show quota plans and data quality without writing output",
	RunE:  runInspect,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "stratify.yaml", "Path to the run configuration")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	runCmd.Flags().StringVar(&metricsFlag, "metrics-listen", "", "Address to expose Prometheus metrics on while running (e.g. :9090)")
	rootCmd.AddCommand(runCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *logging.SlogLogger {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	return logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := pipeline.LoadConfig(configFlag)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{pipeline.WithLogger(newLogger())}
	if metricsFlag != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, pipeline.WithMetrics(metrics.NewPrometheus(reg, "")))
		go func() {
			handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
			if err := http.ListenAndServe(metricsFlag, handler); err != nil {
				fmt.Fprintln(os.Stderr, "metrics endpoint:", err)
			}
		}()
	}

	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		return err
	}

	result, err := p.Run()
	if err != nil {
		return err
	}

	fmt.Print(result.Summary)
	for _, w := range pipeline.ValidateReviews(result.Merged) {
		fmt.Printf("warning: %s %s: %s\n", w.Category, w.ReviewID, w.Problem)
	}

	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := pipeline.LoadConfig(configFlag)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, pipeline.WithLogger(newLogger()), pipeline.WithDryRun())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Categories))
	for name := range cfg.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		plan, err := p.PlanCategory(name, cfg.Categories[name])
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d reviews eligible, target %d, realizable %d, %d cells\n",
			name, plan.Population(), plan.Target, plan.Realized(), len(plan.Cells))
		for i, cell := range plan.Cells {
			fmt.Printf("  %s: %d of %d\n", cell.Key, plan.Quotas[i], cell.Size)
		}
	}

	return nil
}
