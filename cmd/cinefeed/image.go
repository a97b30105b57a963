package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/cinefeed/internal/catalog"
)

var imageCmd = &cobra.Command{
	Use:   "image <path-or-url>",
	Short: "Resolve a poster reference to a displayable URL (local, no server needed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetString("size")
		u := catalog.ImageURL(args[0], size)
		if jsonOutput {
			writeJSON(cmd.OutOrStdout(), map[string]string{"url": u})
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.Flags().String("size", catalog.DefaultImageSize, "Placeholder width")
}
