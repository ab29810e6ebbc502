// Package ledger implements the transaction store: the ordered sequence of
// entries for one bucket of one account, with validated append, positional
// delete and sorted views.
package ledger

import (
	"sort"

	"fjacquet/ledger-cli/internal/dateutils"
	"fjacquet/ledger-cli/internal/ledgererror"
	"fjacquet/ledger-cli/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store gives access to one bucket of one account. Mutations go straight to
// the account's slice, so the persisted document always reflects them.
type Store struct {
	account *models.Account
	bucket  models.Bucket
}

// NewStore returns a store over the given bucket of the account.
func NewStore(account *models.Account, bucket models.Bucket) *Store {
	return &Store{account: account, bucket: bucket}
}

// Bucket returns which bucket this store operates on.
func (s *Store) Bucket() models.Bucket {
	return s.bucket
}

func (s *Store) entries() *[]models.Transaction {
	if s.bucket == models.BucketIncome {
		return &s.account.Transactions.Income
	}
	return &s.account.Transactions.Expenses
}

// Len returns the number of transactions in the bucket.
func (s *Store) Len() int {
	return len(*s.entries())
}

// All returns the transactions in insertion order. The returned slice is a
// copy; callers cannot disturb the stored order through it.
func (s *Store) All() []models.Transaction {
	entries := *s.entries()
	out := make([]models.Transaction, len(entries))
	copy(out, entries)
	return out
}

// Add validates the raw amount and date inputs and appends a new transaction
// to the end of the bucket. Negative amounts are accepted; the sign carries
// whatever meaning the user gives it.
func (s *Store) Add(amountText, category, dateText string) (models.Transaction, error) {
	amount, err := models.ParseAmount(amountText)
	if err != nil {
		return models.Transaction{}, &ledgererror.InvalidAmountError{Value: amountText, Err: err}
	}

	if _, err := dateutils.ValidateDate(dateText); err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		Amount:   amount,
		Category: category,
		Date:     dateText,
	}
	*s.entries() = append(*s.entries(), tx)

	log.WithFields(logrus.Fields{
		"bucket":   s.bucket,
		"category": category,
		"date":     dateText,
	}).Debug("Transaction added")
	return tx, nil
}

// Delete removes the transaction at the 0-based index, shifting later
// entries down by one. The error reports the 1-based position the user saw.
func (s *Store) Delete(index int) error {
	entries := s.entries()
	if index < 0 || index >= len(*entries) {
		return &ledgererror.IndexOutOfRangeError{Index: index + 1, Length: len(*entries)}
	}
	*entries = append((*entries)[:index], (*entries)[index+1:]...)

	log.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"index":  index,
	}).Debug("Transaction deleted")
	return nil
}

// View returns the transactions in the requested order without touching the
// stored sequence. Equal keys keep their insertion order.
func (s *Store) View(order SortOrder) []models.Transaction {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		switch order {
		case SortDateDescending:
			// Validated ISO dates compare correctly as strings.
			return out[i].Date > out[j].Date
		case SortAmountDescending:
			return out[i].Amount.GreaterThan(out[j].Amount)
		case SortAmountAscending:
			return out[i].Amount.LessThan(out[j].Amount)
		default:
			return out[i].Date < out[j].Date
		}
	})
	return out
}
