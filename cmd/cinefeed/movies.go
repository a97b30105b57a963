package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Trending()
		if err != nil {
			return fmt.Errorf("trending failed: %w", err)
		}
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printMovies(cmd.OutOrStdout(), "Trending", resp.Items)
		return nil
	},
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Popular()
		if err != nil {
			return fmt.Errorf("popular failed: %w", err)
		}
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printMovies(cmd.OutOrStdout(), "Popular", resp.Items)
		return nil
	},
}

var movieCmd = &cobra.Command{
	Use:   "movie <imdb-id>",
	Short: "Show movie details",
	Long: `Show details for one movie.

The ID may be a full IMDb ID or its numeric part.

Examples:
  cinefeed movie tt0133093
  cinefeed movie 133093`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := NewClient(serverURL).Movie(args[0])
		if err != nil {
			return fmt.Errorf("movie lookup failed: %w", err)
		}
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), m)
			return nil
		}
		printMovie(cmd.OutOrStdout(), m)
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <imdb-id>",
	Short: "List movies similar to a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := NewClient(serverURL).Similar(args[0])
		if err != nil {
			return fmt.Errorf("similar failed: %w", err)
		}
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printMovies(cmd.OutOrStdout(), "Similar to "+args[0], resp.Items)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendingCmd, popularCmd, movieCmd, similarCmd)
}
