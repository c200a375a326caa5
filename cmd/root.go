package cmd

import (
	"fmt"

	"github.com/claimkit/nexusgrade/internal/config"
	"github.com/claimkit/nexusgrade/internal/logging"
	"github.com/claimkit/nexusgrade/internal/store"
	"github.com/spf13/cobra"
)

// appCfg is loaded once in the root PersistentPreRunE and read by every
// subcommand.
var appCfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nexusgrade",
	Short: "Deterministic scoring for nexus letters",
	Long: "NexusGrade scores VA nexus letters against a fixed rubric and recommends a\n" +
		"disposition: auto-approve, attorney review, or revision required.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appCfg = cfg
		logging.Init(cfg.LogFormat, cfg.LogLevel)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEXUSGRADE_DB env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(assessorCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if appCfg != nil && appCfg.DBPath != "" {
		return appCfg.DBPath, store.EnsureDir(appCfg.DBPath)
	}
	return store.DefaultDBPath()
}
