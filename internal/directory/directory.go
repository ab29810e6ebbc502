// Package directory manages the set of registered accounts: creation with
// password policy enforcement and authentication against stored hashes.
package directory

import (
	"fjacquet/ledger-cli/internal/ledgererror"
	"fjacquet/ledger-cli/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultMinPasswordLength is the password policy applied when the
// configuration does not override it.
const DefaultMinPasswordLength = 6

// AccountDirectory owns the in-memory account set for one session. It is an
// explicit object; nothing about it is global.
type AccountDirectory struct {
	accounts   models.Directory
	minLength  int
	bcryptCost int
}

// New wraps an existing account set, typically the one the persistence
// gateway just loaded. A nil set starts empty, which is the first-run case.
func New(accounts models.Directory, minPasswordLength, bcryptCost int) *AccountDirectory {
	if accounts == nil {
		accounts = models.Directory{}
	}
	if minPasswordLength <= 0 {
		minPasswordLength = DefaultMinPasswordLength
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountDirectory{
		accounts:   accounts,
		minLength:  minPasswordLength,
		bcryptCost: bcryptCost,
	}
}

// Accounts exposes the underlying account set for persistence.
func (d *AccountDirectory) Accounts() models.Directory {
	return d.accounts
}

// Exists reports whether a username is already registered.
func (d *AccountDirectory) Exists(username string) bool {
	_, ok := d.accounts[username]
	return ok
}

// MinPasswordLength returns the active password policy minimum.
func (d *AccountDirectory) MinPasswordLength() int {
	return d.minLength
}

// Signup registers a new account with empty buckets. The password is
// hashed before anything is stored; an account is never created with a
// sub-minimum password.
func (d *AccountDirectory) Signup(username, password string) (*models.Account, error) {
	if d.Exists(username) {
		return nil, &ledgererror.DuplicateUsernameError{Username: username}
	}
	if len(password) < d.minLength {
		return nil, &ledgererror.WeakPasswordError{MinLength: d.minLength}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := models.NewAccount(string(hash))
	d.accounts[username] = account

	log.WithField("user", username).Info("Account created")
	return account, nil
}

// Authenticate returns the account for the credentials. An unknown username
// fails immediately, before any password comparison; the caller gets the
// same AuthError either way.
func (d *AccountDirectory) Authenticate(username, password string) (*models.Account, error) {
	account, ok := d.accounts[username]
	if !ok {
		log.WithField("user", username).Debug("Login attempt for unknown user")
		return nil, &ledgererror.AuthError{Username: username}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		log.WithField("user", username).Debug("Login attempt with wrong password")
		return nil, &ledgererror.AuthError{Username: username}
	}

	log.WithField("user", username).Info("Login successful")
	return account, nil
}
