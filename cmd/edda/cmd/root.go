package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eddadb/edda/pkg/config"
	"github.com/eddadb/edda/pkg/docstore"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edda",
	Short: "Edda - document value toolkit",
	Long: `Edda stores JSON-like documents in an embedded database and
manipulates them with keypath-addressed updates, removals and diffs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the store (overrides config)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file")
}

// loadConfig resolves the effective configuration: an explicit config file,
// the default config path when one exists, then defaults, with the
// --data-dir flag taking precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if defaultPath := config.GetDefaultConfigPath(); config.ConfigExists(defaultPath) {
			configPath = defaultPath
		}
	}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// openStore opens the document store for a subcommand.
func openStore(cmd *cobra.Command) (*docstore.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return docstore.Open(docstore.Config{Path: cfg.DataDir, Sync: cfg.Sync})
}
