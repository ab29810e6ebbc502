// Package interactive runs the menu-driven ledger session
package interactive

import (
	"os"

	"fjacquet/ledger-cli/cmd/root"
	"fjacquet/ledger-cli/internal/directory"
	"fjacquet/ledger-cli/internal/logging"
	"fjacquet/ledger-cli/internal/report"
	"fjacquet/ledger-cli/internal/session"
	"fjacquet/ledger-cli/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the interactive command
var Cmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the interactive ledger session",
	Long:  `Run the menu-driven session: sign up, log in, record and view transactions, and generate reports.`,
	Run:   interactiveFunc,
}

func interactiveFunc(cmd *cobra.Command, args []string) {
	root.Log.Debug("Starting interactive session")

	gateway := store.NewLedgerStore(root.Cfg.Data.File, root.Cfg.Data.BackupEnabled)
	accounts := directory.New(gateway.Load(), root.Cfg.Auth.MinPasswordLength, root.Cfg.Auth.BcryptCost)
	reports := report.NewGenerator(logging.NewLogrusAdapterFromLogger(root.Log))

	sess := session.New(os.Stdin, os.Stdout, accounts, gateway, reports, root.Log)
	if err := sess.Run(); err != nil {
		root.Log.Fatalf("Session error: %v", err)
	}
}
