package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/ledger-cli/internal/directory"
	"fjacquet/ledger-cli/internal/report"
	"fjacquet/ledger-cli/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// runScript feeds the lines to a fresh session over a temp ledger file and
// returns the produced output and the gateway for inspection.
func runScript(t *testing.T, lines ...string) (string, *store.LedgerStore, *directory.AccountDirectory) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	gateway := store.NewLedgerStore(filepath.Join(t.TempDir(), "users.json"), false)
	accounts := directory.New(gateway.Load(), directory.DefaultMinPasswordLength, bcrypt.MinCost)
	reports := report.NewGenerator(nil)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	sess := New(in, &out, accounts, gateway, reports, logger)

	require.NoError(t, sess.Run())
	return out.String(), gateway, accounts
}

func TestSignupLoginAndExit(t *testing.T) {
	out, gateway, accounts := runScript(t,
		"1", // signup
		"alice",
		"abc",     // too short, must re-prompt
		"secret1", // accepted
		"2",       // login
		"alice",
		"secret1",
		"7", // logout
		"3", // exit
	)

	assert.Contains(t, out, "password must be at least 6 characters long")
	assert.Contains(t, out, "You are signed up!")
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "Goodbye!")
	assert.True(t, accounts.Exists("alice"))

	// Exit saved the document.
	reloaded := gateway.Load()
	assert.Contains(t, reloaded, "alice")
}

func TestSignupDuplicateUsername(t *testing.T) {
	out, _, _ := runScript(t,
		"1", "alice", "secret1",
		"1", "alice", // duplicate, no password prompt
		"3",
	)

	assert.Contains(t, out, "Username already exists. Try logging in instead.")
}

func TestLoginUnknownUserFailsImmediately(t *testing.T) {
	out, _, _ := runScript(t,
		"2", "nobody", "whatever",
		"3",
	)

	assert.Contains(t, out, "Login failed. Please check your username and password.")
}

func TestAddViewAndReport(t *testing.T) {
	out, _, accounts := runScript(t,
		"1", "alice", "secret1",
		"2", "alice", "secret1",
		"1", "50.0", "food", "2024-03-01", // add expense
		"1",            // add another expense
		"oops", "20.0", // invalid amount re-prompts
		"food",
		"2023-02-29", "2024-03-02", // invalid date re-prompts
		"2", "200", "salary", "2024-03-01", // add income
		"3", "1", "", // view expenses, insertion order
		"5", // report
		"7", "3",
	)

	assert.Contains(t, out, "Expense added successfully!")
	assert.Contains(t, out, "Income added successfully!")
	assert.Contains(t, out, "Invalid amount. Please enter a number.")
	assert.Contains(t, out, "Invalid date format or value:")
	assert.Contains(t, out, "Amount: 50.0, Category: food, Date: 2024-03-01")
	assert.Contains(t, out, "Total Expenses: $70")
	assert.Contains(t, out, "Total Income: $200")
	assert.Contains(t, out, "food: $70")

	account, err := accounts.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Len(t, account.Transactions.Expenses, 2)
	assert.Len(t, account.Transactions.Income, 1)
}

func TestViewSortedAndFallback(t *testing.T) {
	out, _, _ := runScript(t,
		"1", "alice", "secret1",
		"2", "alice", "secret1",
		"1", "30", "b", "2024-02-01",
		"1", "10", "a", "2024-01-01",
		"3", "1", "2", // view expenses, date descending
		"3", "1", "9", // unknown selector falls back
		"7", "3",
	)

	assert.Contains(t, out, "Transactions sorted by: Date (Newer to Older)")
	assert.Contains(t, out, "Invalid choice. Using default (date ascending).")
	assert.Contains(t, out, "Transactions sorted by: Date (Older to Newer)")

	// Descending view prints February before January.
	descBlock := out[strings.Index(out, "Date (Newer to Older)"):]
	assert.Less(t, strings.Index(descBlock, "2024-02-01"), strings.Index(descBlock, "2024-01-01"))
}

func TestDeleteTransaction(t *testing.T) {
	out, _, accounts := runScript(t,
		"1", "alice", "secret1",
		"2", "alice", "secret1",
		"1", "10", "food", "2024-01-01",
		"1", "20", "rent", "2024-01-02",
		"4", "groceries", "expense", // bucket re-prompts on bad input
		"9", "1", // index re-prompts on out-of-range
		"7", "3",
	)

	assert.Contains(t, out, "invalid choice 'groceries'")
	assert.Contains(t, out, "index 9 out of range for 2 transaction(s)")
	assert.Contains(t, out, "Transaction deleted successfully!")

	account, err := accounts.Authenticate("alice", "secret1")
	require.NoError(t, err)
	require.Len(t, account.Transactions.Expenses, 1)
	assert.Equal(t, "rent", account.Transactions.Expenses[0].Category)
}

func TestDeleteFromEmptyBucket(t *testing.T) {
	out, _, _ := runScript(t,
		"1", "alice", "secret1",
		"2", "alice", "secret1",
		"4", "income",
		"7", "3",
	)

	assert.Contains(t, out, "No transactions to delete.")
}

func TestExplicitSave(t *testing.T) {
	_, gateway, _ := runScript(t,
		"1", "alice", "secret1",
		"2", "alice", "secret1",
		"1", "10", "food", "2024-01-01",
		"6", // save
		"7", "3",
	)

	reloaded := gateway.Load()
	require.Contains(t, reloaded, "alice")
	assert.Len(t, reloaded["alice"].Transactions.Expenses, 1)
}

func TestInvalidMenuChoices(t *testing.T) {
	out, _, _ := runScript(t,
		"42", // bad top-level choice
		"3",
	)

	assert.Contains(t, out, "Invalid choice. Please enter a valid option.")
}

func TestEndOfInputSavesAndExits(t *testing.T) {
	// Script ends mid-session; the session must still save and return nil.
	_, gateway, _ := runScript(t,
		"1", "alice", "secret1",
	)

	reloaded := gateway.Load()
	assert.Contains(t, reloaded, "alice")
}
