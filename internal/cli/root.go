// Package cli provides the wordladder command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/internal/solver"
	"github.com/katalvlaran/wordladder/internal/telemetry"
)

const serviceName = "wordladder"

// globalFlags are the persistent flags shared by every subcommand. Each one
// overrides the matching config value only when set on the command line.
type globalFlags struct {
	configPath string
	dict       string
	size       int
	sort       bool
	lowercase  bool
	strategy   string
	maxDepth   int
	logLevel   string
	logJSON    bool
	metricsOut string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "wordladder",
		Short: "Shortest word ladder finder",
		Long: `wordladder finds the shortest chain of dictionary words between two words
of the same length, changing exactly one letter per step.

The dictionary is a whitespace-separated word list. Only words of the
configured size are kept, and the list must already be sorted unless
--sort is given.

Settings come from defaults, then --config, then WORDLADDER_* environment
variables, then command-line flags.`,
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&g.dict, "dict", "d", "", "dictionary file")
	f.IntVarP(&g.size, "size", "n", 0, "word size")
	f.BoolVar(&g.sort, "sort", false, "sort the dictionary instead of requiring sorted input")
	f.BoolVar(&g.lowercase, "lowercase", false, "lowercase dictionary words before filtering")
	f.StringVar(&g.strategy, "strategy", "", "neighbor strategy: scan or buckets")
	f.IntVar(&g.maxDepth, "max-depth", 0, "maximum ladder steps, 0 for no limit")
	f.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&g.logJSON, "log-json", false, "log as JSON")
	f.StringVar(&g.metricsOut, "metrics-out", "", "write Prometheus metrics to this file on exit")

	cmd.AddCommand(
		newSolveCmd(g),
		newBatchCmd(g),
		newComponentsCmd(g),
	)
	return cmd
}

// Execute runs the command tree and exits non-zero on failure. This is
// called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// config resolves the effective configuration for cmd.
func (g *globalFlags) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary.Path = g.dict
	}
	if flags.Changed("size") {
		cfg.Dictionary.WordSize = g.size
	}
	if flags.Changed("sort") {
		cfg.Dictionary.Sort = g.sort
	}
	if flags.Changed("lowercase") {
		cfg.Dictionary.Lowercase = g.lowercase
	}
	if flags.Changed("strategy") {
		cfg.Search.Strategy = g.strategy
	}
	if flags.Changed("max-depth") {
		cfg.Search.MaxDepth = g.maxDepth
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Logging.JSON = g.logJSON
	}
	return cfg, cfg.Validate()
}

// session is everything a subcommand needs once flags are resolved.
type session struct {
	cfg        config.Config
	logger     *slog.Logger
	registry   *prometheus.Registry
	solver     *solver.Solver
	metricsOut string
}

// open loads the dictionary and wires logging and metrics for cmd.
func (g *globalFlags) open(cmd *cobra.Command) (*session, error) {
	cfg, err := g.config(cmd)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{
		Level:   level,
		Service: serviceName,
		JSON:    cfg.Logging.JSON,
	}, cmd.ErrOrStderr())

	reg := prometheus.NewRegistry()
	s, err := solver.FromConfig(cfg,
		solver.WithLogger(logger),
		solver.WithMetrics(telemetry.NewMetrics(reg)),
	)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		solver:     s,
		metricsOut: g.metricsOut,
	}, nil
}

// close writes the metrics textfile if one was requested. A write failure
// replaces a nil *err.
func (s *session) close(err *error) {
	if s.metricsOut == "" {
		return
	}
	if werr := telemetry.WriteTextfile(s.metricsOut, s.registry); werr != nil {
		s.logger.Error("write metrics", "path", s.metricsOut, "error", werr)
		if *err == nil {
			*err = fmt.Errorf("write metrics: %w", werr)
		}
		return
	}
	s.logger.Debug("metrics written", "path", s.metricsOut)
}
