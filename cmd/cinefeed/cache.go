package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Gateway cache management",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached movie and list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).ClearCache()
		if err != nil {
			return fmt.Errorf("cache clear failed: %w", err)
		}
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server status and cache sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := NewClient(serverURL).Status()
		if err != nil {
			return fmt.Errorf("status check failed: %w", err)
		}
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), s)
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Server:     %s (%s)\n", serverURL, s.Status)
		fmt.Fprintf(out, "Version:    %s\n", s.Version)
		fmt.Fprintf(out, "Cached:     %d movies, %d lists\n", s.CachedMovies, s.CachedLists)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd, statusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
