// Package export writes one bucket of one account to a CSV file.
package export

import (
	"fjacquet/ledger-cli/cmd/root"
	"fjacquet/ledger-cli/internal/export"
	"fjacquet/ledger-cli/internal/ledger"
	"fjacquet/ledger-cli/internal/models"
	"fjacquet/ledger-cli/internal/store"

	"github.com/spf13/cobra"
)

var (
	user   string
	bucket string
	output string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export one bucket of an account to CSV",
	Long:  `Export the expenses or income of a registered account to a CSV file.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&user, "user", "u", "", "Account username (required)")
	Cmd.Flags().StringVarP(&bucket, "bucket", "b", "expenses", "Bucket to export: expenses or income")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	_ = Cmd.MarkFlagRequired("user")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) {
	gateway := store.NewLedgerStore(root.Cfg.Data.File, root.Cfg.Data.BackupEnabled)
	accounts := gateway.Load()

	account, ok := accounts[user]
	if !ok {
		root.Log.Fatalf("Unknown user: %s", user)
	}

	name, ok := models.ParseBucket(bucket)
	if !ok {
		root.Log.Fatalf("Unknown bucket: %s (must be 'expenses' or 'income')", bucket)
	}

	entries := ledger.NewStore(account, name).All()
	if err := export.WriteTransactionsToCSV(entries, output); err != nil {
		root.Log.Fatalf("Error exporting transactions: %v", err)
	}
	root.Log.Infof("Exported %d transaction(s) to %s", len(entries), output)
}
