// Package main implements the entry point for the sempath CLI.
// sempath discovers chains of labeled semantic relations between two
// concepts in a remote concept graph, caching fetched adjacency lists
// across runs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/c360/sempath/adjacency"
	"github.com/c360/sempath/conceptnet"
	"github.com/c360/sempath/config"
	"github.com/c360/sempath/graph"
	"github.com/c360/sempath/metric"
	"github.com/c360/sempath/search"
	"github.com/c360/sempath/throttle"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "sempath"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting sempath (semantic path discovery)",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	pairs, err := resolvePairs(cliCfg, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, registry, err := setupEngine(cfg, logger)
	if err != nil {
		return err
	}

	if cliCfg.MetricsPort > 0 {
		startMetricsServer(ctx, cliCfg.MetricsPort, registry)
	}

	return runSearches(ctx, engine, pairs)
}

// resolvePairs turns the CLI flags into the list of searches to run:
// either the single -from/-to pair or, with -all, every pair named in the
// config file.
func resolvePairs(cliCfg *CLIConfig, cfg *config.Config) ([]config.Pair, error) {
	if cliCfg.All {
		if len(cfg.Pairs) == 0 {
			return nil, fmt.Errorf("-all requires pairs in the config file")
		}
		return cfg.Pairs, nil
	}
	return []config.Pair{{From: cliCfg.From, To: cliCfg.To}}, nil
}

// setupEngine wires the throttle, remote client, adjacency store, and
// search engine together and loads the cache file.
func setupEngine(cfg *config.Config, logger *slog.Logger) (*search.Engine, *metric.Registry, error) {
	registry := metric.NewRegistry()

	th, err := throttle.New(cfg.Remote.RequestsPerSecond)
	if err != nil {
		return nil, nil, fmt.Errorf("create throttle: %w", err)
	}

	client, err := conceptnet.NewClient(conceptnet.Deps{
		Config: conceptnet.Config{
			BaseURL:     cfg.Remote.BaseURL,
			Timeout:     cfg.Remote.Timeout(),
			EdgeLimit:   cfg.Remote.EdgeLimit,
			MaxAttempts: cfg.Remote.MaxAttempts,
		},
		Throttle: th,
		Logger:   logger,
		Metrics:  registry,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create graph client: %w", err)
	}

	store, err := adjacency.NewStore(adjacency.Deps{
		Config:  adjacency.Config{Path: cfg.Cache.Path},
		Fetcher: client,
		Logger:  logger,
		Metrics: registry,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create adjacency store: %w", err)
	}
	if err := store.Load(); err != nil {
		return nil, nil, fmt.Errorf("load adjacency cache: %w", err)
	}

	engine, err := search.NewEngine(search.Deps{
		Config:    search.Config{MaxDepth: cfg.Search.MaxDepth},
		Adjacency: store,
		Logger:    logger,
		Metrics:   registry,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create search engine: %w", err)
	}

	return engine, registry, nil
}

// startMetricsServer exposes the metrics registry in the background for the
// lifetime of the run.
func startMetricsServer(ctx context.Context, port int, registry *metric.Registry) {
	server := metric.NewServer(port, "/metrics", registry)

	go func() {
		if err := server.Start(); err != nil {
			slog.Warn("metrics server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		server.Stop()
	}()

	slog.Info("metrics server started", "address", server.Address())
}

// runSearches executes each search in order, printing results to stdout.
// A not-found result is a normal outcome, not an error.
func runSearches(ctx context.Context, engine *search.Engine, pairs []config.Pair) error {
	for _, pair := range pairs {
		start := graph.NodeID(pair.From)
		end := graph.NodeID(pair.To)

		result, err := engine.FindPath(ctx, start, end)
		if err != nil {
			return fmt.Errorf("search %s -> %s: %w", start, end, err)
		}

		slog.Info("search complete",
			"from", start, "to", end,
			"state", result.State.String(),
			"steps", result.Path.Len(),
			"expanded", result.Expanded,
			"elapsed", result.Elapsed)
		renderResult(os.Stdout, start, end, result)
	}
	return nil
}
