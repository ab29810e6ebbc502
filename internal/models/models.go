// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The persisted document carries amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Bucket names a transaction category of an account.
type Bucket string

const (
	BucketExpenses Bucket = "expenses"
	BucketIncome   Bucket = "income"
)

// ParseBucket resolves user input like "expense" or "income" to a Bucket.
func ParseBucket(text string) (Bucket, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "expense", "expenses":
		return BucketExpenses, true
	case "income":
		return BucketIncome, true
	}
	return "", false
}

// Transaction is one dated, categorized, amount-bearing record within a
// bucket. Date is kept in YYYY-MM-DD form; it is validated before any
// Transaction is constructed, so a stored date is always well-formed.
type Transaction struct {
	Amount   decimal.Decimal `json:"amount" csv:"Amount"`
	Category string          `json:"category" csv:"Category"`
	Date     string          `json:"date" csv:"Date"`
}

// String renders the transaction the way the interactive views print it.
func (t Transaction) String() string {
	return fmt.Sprintf("Amount: %s, Category: %s, Date: %s", t.Amount.String(), t.Category, t.Date)
}

// Buckets holds the two transaction sequences of one account.
type Buckets struct {
	Expenses []Transaction `json:"expenses"`
	Income   []Transaction `json:"income"`
}

// Account is one registered user: an opaque credential string and two
// transaction buckets. Password holds a bcrypt hash, never plain text.
type Account struct {
	Password     string  `json:"password"`
	Transactions Buckets `json:"transactions"`
}

// NewAccount creates an account with empty buckets.
func NewAccount(passwordHash string) *Account {
	return &Account{
		Password: passwordHash,
		Transactions: Buckets{
			Expenses: []Transaction{},
			Income:   []Transaction{},
		},
	}
}

// Directory is the full set of registered accounts, keyed by username.
// An empty directory is valid; it is what a first run starts from.
type Directory map[string]*Account

// ParseAmount converts user input to a decimal amount. Any parseable real
// number is accepted, negative values included.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	return decimal.NewFromString(cleaned)
}
