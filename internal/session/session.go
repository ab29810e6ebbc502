// Package session drives the interactive menu. It owns the loaded account
// directory for the lifetime of one run and is the only place user input is
// read; every fallible prompt loops until it gets acceptable input.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/ledger-cli/internal/dateutils"
	"fjacquet/ledger-cli/internal/directory"
	"fjacquet/ledger-cli/internal/ledger"
	"fjacquet/ledger-cli/internal/ledgererror"
	"fjacquet/ledger-cli/internal/models"
	"fjacquet/ledger-cli/internal/report"
	"fjacquet/ledger-cli/internal/store"

	"github.com/sirupsen/logrus"
)

// errInputClosed signals that the input stream ended. The session treats it
// like an explicit exit so a piped script still saves on the way out.
var errInputClosed = errors.New("input closed")

// Session is the interactive controller.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	accounts *directory.AccountDirectory
	gateway  *store.LedgerStore
	reports  *report.Generator
	log      *logrus.Logger
}

// New creates a session over the given input and output streams.
func New(in io.Reader, out io.Writer, accounts *directory.AccountDirectory, gateway *store.LedgerStore, reports *report.Generator, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
	}
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		accounts: accounts,
		gateway:  gateway,
		reports:  reports,
		log:      logger,
	}
}

// Run executes the top-level menu until the user exits. The directory is
// saved on explicit exit; the exit itself is never an error.
func (s *Session) Run() error {
	for {
		s.printf("\n1. Signup\n2. Login\n3. Exit\n")
		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			s.saveQuietly()
			return nil
		}

		switch choice {
		case "1":
			if err := s.signup(); err != nil {
				s.saveQuietly()
				return nil
			}
		case "2":
			if err := s.login(); err != nil {
				s.saveQuietly()
				return nil
			}
		case "3":
			s.saveQuietly()
			s.printf("Goodbye! Have a good day!\n")
			return nil
		default:
			s.printf("Invalid choice. Please enter a valid option.\n")
		}
	}
}

// signup registers a new account. The password prompt loops until the
// policy is satisfied; the username duplicate check happens before any
// password is asked for.
func (s *Session) signup() error {
	username, err := s.prompt("Enter your username: ")
	if err != nil {
		return err
	}
	if s.accounts.Exists(username) {
		s.printf("Username already exists. Try logging in instead.\n")
		return nil
	}

	for {
		password, err := s.prompt(fmt.Sprintf("Enter your password (minimum %d characters): ", s.accounts.MinPasswordLength()))
		if err != nil {
			return err
		}
		if _, err := s.accounts.Signup(username, password); err != nil {
			s.printf("%v\n", err)
			var weak *ledgererror.WeakPasswordError
			if errors.As(err, &weak) {
				continue
			}
			return nil
		}
		s.printf("You are signed up!\n")
		return nil
	}
}

// login authenticates and, on success, enters the account menu.
func (s *Session) login() error {
	username, err := s.prompt("Enter your username: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Enter your password: ")
	if err != nil {
		return err
	}

	account, err := s.accounts.Authenticate(username, password)
	if err != nil {
		s.printf("Login failed. Please check your username and password.\n")
		return nil
	}

	s.printf("Login successful!\n")
	return s.accountMenu(username, account)
}

// accountMenu is the authenticated loop over one account.
func (s *Session) accountMenu(username string, account *models.Account) error {
	expenses := ledger.NewStore(account, models.BucketExpenses)
	income := ledger.NewStore(account, models.BucketIncome)

	for {
		s.printf("\n1. Add an Expense\n2. Add an Income\n3. View Transactions\n4. Delete Transaction\n5. Generate Report\n6. Save\n7. Logout\n")
		choice, err := s.prompt("Enter your option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := s.addTransaction(expenses); err != nil {
				return err
			}
		case "2":
			if err := s.addTransaction(income); err != nil {
				return err
			}
		case "3":
			if err := s.viewTransactions(expenses, income); err != nil {
				return err
			}
		case "4":
			if err := s.deleteTransaction(expenses, income); err != nil {
				return err
			}
		case "5":
			summary := s.reports.Summarize(expenses, income)
			rendered, err := s.reports.Render(summary, "text")
			if err != nil {
				s.printf("Error: could not generate report: %v\n", err)
				continue
			}
			s.printf("\n%s", rendered)
		case "6":
			s.save()
		case "7":
			s.log.WithField("user", username).Debug("Logout")
			return nil
		default:
			s.printf("Invalid option. Please try again.\n")
		}
	}
}

// addTransaction collects amount, category and date, each fallible prompt
// looping until valid, then appends to the bucket.
func (s *Session) addTransaction(bucket *ledger.Store) error {
	kind, kindTitle := "expense", "Expense"
	if bucket.Bucket() == models.BucketIncome {
		kind, kindTitle = "income", "Income"
	}

	var amountText string
	for {
		text, err := s.prompt(fmt.Sprintf("Enter the amount of the %s: ", kind))
		if err != nil {
			return err
		}
		if _, perr := models.ParseAmount(text); perr != nil {
			s.printf("Invalid amount. Please enter a number.\n")
			continue
		}
		amountText = text
		break
	}

	category, err := s.prompt(fmt.Sprintf("Enter the category for the %s: ", kind))
	if err != nil {
		return err
	}

	var dateText string
	for {
		text, err := s.prompt("Enter the date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		if _, verr := dateutils.ValidateDate(text); verr != nil {
			s.printf("Invalid date format or value: %v\n", verr)
			continue
		}
		dateText = text
		break
	}

	if _, err := bucket.Add(amountText, category, dateText); err != nil {
		// Both inputs were validated above, so Add cannot fail on them.
		s.printf("An error occurred: %v\n", err)
		return nil
	}
	s.printf("%s added successfully!\n", kindTitle)
	return nil
}

// viewTransactions lets the user pick a bucket and one of the four sort
// presentations, or plain insertion order with an empty selector.
func (s *Session) viewTransactions(expenses, income *ledger.Store) error {
	s.printf("\n1. View Expenses\n2. View Income\n3. Back\n")
	choice, err := s.promptChoice("Enter your choice: ", "1", "2", "3")
	if err != nil {
		return err
	}
	if choice == "3" {
		return nil
	}

	bucket := expenses
	title := "Expenses"
	if choice == "2" {
		bucket = income
		title = "Income"
	}
	s.printf("\n%s:\n", title)

	s.printf("\nSort Options:\n1. %s\n2. %s\n3. %s\n4. %s\n",
		ledger.SortDateAscending.Label(),
		ledger.SortDateDescending.Label(),
		ledger.SortAmountDescending.Label(),
		ledger.SortAmountAscending.Label())
	selector, err := s.prompt("Choose sorting option (1-4) or press Enter for default (date ascending): ")
	if err != nil {
		return err
	}

	var entries []models.Transaction
	label := ledger.SortDateAscending.Label()
	if selector == "" {
		entries = bucket.All()
	} else {
		order, ok := ledger.ParseSortOrder(selector)
		if !ok {
			s.printf("Invalid choice. Using default (date ascending).\n")
			s.log.WithField("order", selector).Warn("Unknown sort selector, falling back to date ascending")
		}
		entries = bucket.View(order)
		label = order.Label()
	}

	s.printf("\nTransactions sorted by: %s\n", label)
	for _, tx := range entries {
		s.printf("%s\n", tx.String())
	}
	return nil
}

// deleteTransaction lists a bucket with 1-based positions and removes the
// selected entry. The index prompt loops until the delete succeeds.
func (s *Session) deleteTransaction(expenses, income *ledger.Store) error {
	var bucket *ledger.Store
	for {
		text, err := s.prompt("Enter the type of transaction (expense or income): ")
		if err != nil {
			return err
		}
		name, ok := models.ParseBucket(text)
		if !ok {
			s.printf("%v\n", &ledgererror.InvalidChoiceError{Choice: text})
			continue
		}
		bucket = expenses
		if name == models.BucketIncome {
			bucket = income
		}
		break
	}

	if bucket.Len() == 0 {
		s.printf("No transactions to delete.\n")
		return nil
	}

	s.printf("Select the %s to delete:\n", bucket.Bucket())
	for i, tx := range bucket.All() {
		s.printf("%d. %s\n", i+1, tx.String())
	}

	for {
		text, err := s.prompt("Enter the index of the transaction to delete: ")
		if err != nil {
			return err
		}
		index, convErr := strconv.Atoi(text)
		if convErr != nil {
			s.printf("Invalid index.\n")
			continue
		}
		if err := bucket.Delete(index - 1); err != nil {
			s.printf("%v\n", err)
			continue
		}
		s.printf("Transaction deleted successfully!\n")
		return nil
	}
}

// save persists the directory and reports the outcome to the user. Failure
// leaves the in-memory state intact for a later retry.
func (s *Session) save() {
	if err := s.gateway.Save(s.accounts.Accounts()); err != nil {
		s.printf("Error: could not save transactions: %v\n", err)
		return
	}
	s.printf("Transactions saved.\n")
}

// saveQuietly persists on the way out without the success message.
func (s *Session) saveQuietly() {
	if err := s.gateway.Save(s.accounts.Accounts()); err != nil {
		s.printf("Error: could not save transactions: %v\n", err)
	}
}

// prompt prints the message and reads one line of input.
func (s *Session) prompt(msg string) (string, error) {
	s.printf("%s", msg)
	if !s.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptChoice re-issues the prompt until one of the valid options is given.
func (s *Session) promptChoice(msg string, valid ...string) (string, error) {
	for {
		choice, err := s.prompt(msg)
		if err != nil {
			return "", err
		}
		for _, v := range valid {
			if choice == v {
				return choice, nil
			}
		}
		s.printf("%v\n", &ledgererror.InvalidChoiceError{Choice: choice})
	}
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
