// Package root contains the root command for the application
package root

import (
	"fjacquet/ledger-cli/internal/config"
	"fjacquet/ledger-cli/internal/directory"
	"fjacquet/ledger-cli/internal/export"
	"fjacquet/ledger-cli/internal/fileutils"
	"fjacquet/ledger-cli/internal/ledger"
	"fjacquet/ledger-cli/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledger-cli",
		Short: "A personal finance ledger with per-account expense and income tracking.",
		Long: `ledger-cli keeps a multi-account personal finance ledger in a flat JSON
document. Run the interactive session to sign up, record transactions and
view reports, or use the report and export subcommands directly.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledger-cli!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to the internal packages
			ledger.SetLogger(Log)
			directory.SetLogger(Log)
			store.SetLogger(Log)
			export.SetLogger(Log)
			fileutils.SetLogger(Log)

			if DataFile != "" {
				Cfg.Data.File = DataFile
			}
			export.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
		},
	}

	// DataFile overrides the configured ledger document path
	DataFile string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "file", "f", "", "Ledger document path (default from config)")
}
