// Package report renders one account's combined report without entering the
// interactive session.
package report

import (
	"fmt"
	"os"

	"fjacquet/ledger-cli/cmd/root"
	"fjacquet/ledger-cli/internal/ledger"
	"fjacquet/ledger-cli/internal/logging"
	"fjacquet/ledger-cli/internal/models"
	"fjacquet/ledger-cli/internal/report"
	"fjacquet/ledger-cli/internal/store"

	"github.com/spf13/cobra"
)

var (
	user   string
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a spending and income report for one account",
	Long:  `Generate the combined report (totals plus expense breakdown) for a registered account in text, json or yaml format.`,
	Run:   reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&user, "user", "u", "", "Account username (required)")
	Cmd.Flags().StringVar(&format, "format", "", "Report format: text, json or yaml (default from config)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
	_ = Cmd.MarkFlagRequired("user")
}

func reportFunc(cmd *cobra.Command, args []string) {
	gateway := store.NewLedgerStore(root.Cfg.Data.File, root.Cfg.Data.BackupEnabled)
	accounts := gateway.Load()

	account, ok := accounts[user]
	if !ok {
		root.Log.Fatalf("Unknown user: %s", user)
	}

	if format == "" {
		format = root.Cfg.Report.Format
	}

	generator := report.NewGenerator(logging.NewLogrusAdapterFromLogger(root.Log))
	summary := generator.Summarize(
		ledger.NewStore(account, models.BucketExpenses),
		ledger.NewStore(account, models.BucketIncome),
	)

	rendered, err := generator.Render(summary, format)
	if err != nil {
		root.Log.Fatalf("Error rendering report: %v", err)
	}

	if output == "" {
		fmt.Print(string(rendered))
		return
	}
	if err := os.WriteFile(output, rendered, 0600); err != nil {
		root.Log.Fatalf("Error writing report file: %v", err)
	}
	root.Log.Infof("Report written to %s", output)
}
