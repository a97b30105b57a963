package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search OMDb for movies",
	Long: `Search OMDb for movies.

Examples:
  cinefeed search "The Matrix"
  cinefeed search --best the matrix reloaded`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("best", false, "Show only the closest title match")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	best, _ := cmd.Flags().GetBool("best")
	out := cmd.OutOrStdout()

	resp, err := NewClient(serverURL).Search(query, best)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		writeJSON(out, resp)
		return nil
	}

	if best {
		if resp.Best == nil {
			fmt.Fprintf(out, "No close match for %q\n", query)
			return nil
		}
		fmt.Fprintf(out, "Best match (%s confidence, score %.2f):\n\n", resp.Best.Confidence, resp.Best.Score)
		printMovie(out, &resp.Best.Movie)
		return nil
	}

	printMovies(out, fmt.Sprintf("Results for %q", query), resp.Items)
	return nil
}
