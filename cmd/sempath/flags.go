package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	From        string
	To          string
	All         bool
	LogLevel    string
	LogFormat   string
	MetricsPort int
	ShowVersion bool
	ShowHelp    bool
	Validate    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("SEMPATH_CONFIG", ""),
		"Path to configuration file, empty for defaults (env: SEMPATH_CONFIG)")

	flag.StringVar(&cfg.From, "from", "", "Start node ID, e.g. /c/en/dog")
	flag.StringVar(&cfg.To, "to", "", "End node ID, e.g. /c/en/philosophy")
	flag.BoolVar(&cfg.All, "all", false, "Search every pair listed in the config file")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("SEMPATH_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: SEMPATH_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("SEMPATH_LOG_FORMAT", "text"),
		"Log format: json, text (env: SEMPATH_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("SEMPATH_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: SEMPATH_METRICS_PORT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp || cfg.Validate {
		return nil
	}

	if !cfg.All {
		if cfg.From == "" || cfg.To == "" {
			return fmt.Errorf("-from and -to are required (or use -all with configured pairs)")
		}
		if !strings.HasPrefix(cfg.From, "/") {
			return fmt.Errorf("invalid start node %q: node IDs start with '/'", cfg.From)
		}
		if !strings.HasPrefix(cfg.To, "/") {
			return fmt.Errorf("invalid end node %q: node IDs start with '/'", cfg.To)
		}
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	// Validate metrics port
	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Semantic Path Discovery

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Find a relation chain between two concepts
  %s -from=/c/en/dog -to=/c/en/philosophy

  # Run every pair listed in a config file
  %s --config=/path/to/config.json -all

  # Debug logging and a live metrics endpoint
  %s -from=/c/en/tea -to=/c/en/ceremony --log-level=debug --metrics-port=9090

  # Validate configuration only
  %s --config=/path/to/config.json --validate

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
