// Package report derives spending and income summaries from transaction
// stores and renders them in several formats.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/ledger-cli/internal/ledger"
	"fjacquet/ledger-cli/internal/logging"
	"fjacquet/ledger-cli/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// Summary is the combined report over one account: both bucket totals plus
// the expense breakdown. Income is never broken down by category.
type Summary struct {
	TotalExpenses      decimal.Decimal `json:"total_expenses" yaml:"total_expenses"`
	TotalIncome        decimal.Decimal `json:"total_income" yaml:"total_income"`
	Net                decimal.Decimal `json:"net" yaml:"net"`
	SpendingByCategory []CategoryTotal `json:"spending_by_category" yaml:"spending_by_category"`
}

// Generator computes and renders summaries.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator. A nil logger gets a default.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(logging.GetLogger())
	}
	return &Generator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// Totals sums all amounts of the given entries. An empty sequence sums to 0.
func (g *Generator) Totals(entries []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range entries {
		total = total.Add(tx.Amount)
	}
	return total
}

// ByCategory groups entries by exact category string and sums each group.
// The result keeps first-seen order; categories never encountered have no
// entry at all.
func (g *Generator) ByCategory(entries []models.Transaction) []CategoryTotal {
	index := make(map[string]int, len(entries))
	var totals []CategoryTotal
	for _, tx := range entries {
		i, seen := index[tx.Category]
		if !seen {
			index[tx.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: tx.Category, Total: tx.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}
	return totals
}

// Summarize builds the combined report from an account's two stores.
func (g *Generator) Summarize(expenses, income *ledger.Store) Summary {
	totalExpenses := g.Totals(expenses.All())
	totalIncome := g.Totals(income.All())

	summary := Summary{
		TotalExpenses:      totalExpenses,
		TotalIncome:        totalIncome,
		Net:                totalIncome.Sub(totalExpenses),
		SpendingByCategory: g.ByCategory(expenses.All()),
	}

	g.logger.Debug("Report summarized",
		logging.Field{Key: logging.FieldCount, Value: expenses.Len() + income.Len()})
	return summary
}

// Render serializes a summary in the requested format: json, yaml or text.
func (g *Generator) Render(summary Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.renderJSON(summary)
	case "yaml":
		return g.renderYAML(summary)
	case "text":
		return []byte(g.renderText(summary)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(summary Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) renderYAML(summary Summary) ([]byte, error) {
	out, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *Generator) renderText(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Expenses: $%s\n", summary.TotalExpenses.String())
	fmt.Fprintf(&b, "Total Income: $%s\n", summary.TotalIncome.String())
	fmt.Fprintf(&b, "Net: $%s\n", summary.Net.String())
	b.WriteString("\nSpending by Category:\n")
	for _, ct := range summary.SpendingByCategory {
		fmt.Fprintf(&b, "%s: $%s\n", ct.Category, ct.Total.String())
	}
	return b.String()
}
