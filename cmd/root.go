package cmd

import (
	"github.com/spf13/cobra"

	"soliddojo/internal/config"
	"soliddojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "soliddojo",
	Short: "SOLID principles practice in the terminal",
	Long:  "SolidDojo — a terminal app for learning the SOLID design principles through short articles and quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOLIDDOJO_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/soliddojo/config.yaml)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the YAML config from --config or the default XDG path.
// A missing file yields the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then SOLIDDOJO_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
