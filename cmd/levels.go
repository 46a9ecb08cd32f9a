package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hoehwa/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty levels and their rubrics",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, r := range level.All() {
			fmt.Fprintf(out, "%-13s %s  %s\n", r.Level, r.Label, r.Description)
		}
	},
}
