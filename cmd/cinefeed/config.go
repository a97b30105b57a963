package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/cinefeed/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s (log: %s)\n", cfg.Addr(), cfg.Server.LogLevel)
	fmt.Fprintf(w, "  OMDb:       %s (timeout %s)\n", cfg.OMDb.BaseURL, cfg.OMDb.Timeout)
	fmt.Fprintf(w, "  Cache TTL:  movie %s, search %s, similar %s\n", cfg.Cache.MovieTTL, cfg.Cache.SearchTTL, cfg.Cache.SimilarTTL)
	fmt.Fprintf(w, "  Batching:   %d at a time (search %d), %s apart\n", cfg.Batch.Concurrency, cfg.Batch.SearchConcurrency, cfg.Batch.Delay)

	trending, popular := "built-in", "built-in"
	if n := len(cfg.Lists.Trending); n > 0 {
		trending = fmt.Sprintf("%d ids", n)
	}
	if n := len(cfg.Lists.Popular); n > 0 {
		popular = fmt.Sprintf("%d ids", n)
	}
	fmt.Fprintf(w, "  Lists:      trending %s, popular %s\n", trending, popular)

	tracing := "off"
	if cfg.Telemetry.TracingEndpoint != "" {
		tracing = cfg.Telemetry.TracingEndpoint
	}
	fmt.Fprintf(w, "  Telemetry:  metrics %t, tracing %s\n", cfg.Telemetry.Metrics, tracing)
}
