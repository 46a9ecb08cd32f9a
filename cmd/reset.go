package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		olderThan, _ := cmd.Flags().GetDuration("older-than")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var cutoff time.Time
		if olderThan > 0 {
			cutoff = time.Now().Add(-olderThan)
		}
		n, err := s.EventRepo().PurgeLLMEvents(cmd.Context(), cutoff)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d event(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Duration("older-than", 0, "Only delete events older than this (e.g. 720h)")
}
