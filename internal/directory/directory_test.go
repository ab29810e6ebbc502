package directory

import (
	"errors"
	"testing"

	"fjacquet/ledger-cli/internal/ledgererror"
	"fjacquet/ledger-cli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestDirectory(t *testing.T) *AccountDirectory {
	t.Helper()
	// MinCost keeps the hashing cheap in tests.
	return New(models.Directory{}, DefaultMinPasswordLength, bcrypt.MinCost)
}

func TestSignup(t *testing.T) {
	d := newTestDirectory(t)

	account, err := d.Signup("alice", "secret1")
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.True(t, d.Exists("alice"))
	assert.Empty(t, account.Transactions.Expenses)
	assert.Empty(t, account.Transactions.Income)
	assert.NotEqual(t, "secret1", account.Password)
}

func TestSignupDuplicateUsername(t *testing.T) {
	d := newTestDirectory(t)
	_, err := d.Signup("alice", "secret1")
	require.NoError(t, err)

	_, err = d.Signup("alice", "other12")
	var dupErr *ledgererror.DuplicateUsernameError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "alice", dupErr.Username)
}

func TestSignupWeakPassword(t *testing.T) {
	d := newTestDirectory(t)

	tests := []struct {
		name     string
		password string
	}{
		{"Empty", ""},
		{"Five characters", "12345"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Signup("bob", tc.password)
			var weakErr *ledgererror.WeakPasswordError
			require.True(t, errors.As(err, &weakErr))
			assert.Equal(t, DefaultMinPasswordLength, weakErr.MinLength)
			// No account is ever created with a sub-minimum password.
			assert.False(t, d.Exists("bob"))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	d := newTestDirectory(t)
	created, err := d.Signup("alice", "secret1")
	require.NoError(t, err)

	account, err := d.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Same(t, created, account)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	d := newTestDirectory(t)
	_, err := d.Signup("alice", "secret1")
	require.NoError(t, err)

	_, err = d.Authenticate("alice", "wrong")
	var authErr *ledgererror.AuthError
	assert.True(t, errors.As(err, &authErr))
}

func TestAuthenticateUnknownUserShortCircuits(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.Authenticate("nobody", "whatever")
	var authErr *ledgererror.AuthError
	assert.True(t, errors.As(err, &authErr))
}

func TestPasswordsAreCaseSensitive(t *testing.T) {
	d := newTestDirectory(t)
	_, err := d.Signup("alice", "Secret1")
	require.NoError(t, err)

	_, err = d.Authenticate("alice", "secret1")
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	d := New(nil, 0, 0)

	assert.NotNil(t, d.Accounts())
	assert.Equal(t, DefaultMinPasswordLength, d.MinPasswordLength())

	// Out-of-range cost falls back to the bcrypt default and still hashes.
	_, err := d.Signup("alice", "secret1")
	assert.NoError(t, err)
}
