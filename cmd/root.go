package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/knownwords/internal/config"
	"github.com/abhisek/knownwords/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "knownwords",
	Short: "Find the Russian words you still need to learn",
	Long: "Known Words fetches the word list of a CEFR level, lets you mark each word as known or unknown, " +
		"and saves the words you pick to a file.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides KNOWNWORDS_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides KNOWNWORDS_DB env var)")
	rootCmd.Flags().StringP("out", "o", "", "File the selected words are saved to (overrides storage.save_file)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration named by --config, falling back to
// the environment and the XDG config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Storage.DBPath != "" {
		return cfg.Storage.DBPath, store.EnsureDir(cfg.Storage.DBPath)
	}
	return store.DefaultDBPath()
}
