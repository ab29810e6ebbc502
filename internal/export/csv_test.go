package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/ledger-cli/internal/ledger"
	"fjacquet/ledger-cli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransactions(t *testing.T) []models.Transaction {
	t.Helper()
	account := models.NewAccount("hash")
	store := ledger.NewStore(account, models.BucketExpenses)
	_, err := store.Add("50.25", "food", "2024-03-01")
	require.NoError(t, err)
	_, err = store.Add("-10", "refund", "2024-03-02")
	require.NoError(t, err)
	return store.All()
}

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "expenses.csv")

	require.NoError(t, WriteTransactionsToCSV(seedTransactions(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Amount,Category,Date", lines[0])
	assert.Equal(t, "50.25,food,2024-03-01", lines[1])
	assert.Equal(t, "-10,refund,2024-03-02", lines[2])
}

func TestWriteTransactionsToCSVCustomDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)
	SetDelimiter(';')

	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, WriteTransactionsToCSV(seedTransactions(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "50.25;food;2024-03-01")
}

func TestWriteTransactionsToCSVEmptyBucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Amount,Category,Date", strings.TrimSpace(string(data)))
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.Error(t, err)
}
