package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/hoehwa/internal/config"
	"github.com/abhisek/hoehwa/internal/store"
)

// Exit codes returned by the hoehwa binary.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

var rootCmd = &cobra.Command{
	Use:   "hoehwa",
	Short: "Korean conversation practice question generator",
	Long: "Hoehwa generates Korean conversation-practice questions, optionally with answers,\n" +
		"translated into Chinese or English at a chosen difficulty level.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal form (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an Execute error to the process exit status. Settings
// problems get their own code and a hint on w.
func ExitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case config.IsConfigurationError(err):
		fmt.Fprintln(w, "Set the provider API key (e.g. ANTHROPIC_API_KEY) or pass --config.")
		return exitConfig
	}
	return exitFailed
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HOEHWA_DB env var)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then store.path from config, then HOEHWA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
