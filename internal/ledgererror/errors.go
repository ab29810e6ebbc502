// Package ledgererror defines the typed errors produced by the ledger core.
// Every error here is recoverable at the prompt that caused it; none of them
// should terminate a session.
package ledgererror

import "fmt"

// DateErrorReason identifies which validation rule a date input violated.
type DateErrorReason string

const (
	DateBadFormat       DateErrorReason = "bad format"
	DateMonthOutOfRange DateErrorReason = "month out of range"
	DateYearOutOfRange  DateErrorReason = "year out of range"
	DateDayOutOfRange   DateErrorReason = "day out of range"
)

// InvalidDateError reports a date string that failed validation.
type InvalidDateError struct {
	Value  string
	Reason DateErrorReason
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date '%s': %s", e.Value, e.Reason)
}

// InvalidAmountError reports an amount that could not be parsed as a decimal.
type InvalidAmountError struct {
	Value string
	Err   error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount '%s': %v", e.Value, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}

// DuplicateUsernameError reports a signup attempt with a username that is
// already registered.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("username '%s' already exists", e.Username)
}

// WeakPasswordError reports a password shorter than the configured minimum.
type WeakPasswordError struct {
	MinLength int
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("password must be at least %d characters long", e.MinLength)
}

// AuthError reports a failed login. The user-facing message never says
// whether the username or the password was wrong.
type AuthError struct {
	Username string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed for '%s'", e.Username)
}

// IndexOutOfRangeError reports a delete target outside the bucket. Index is
// the 1-based position as shown to the user.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %d transaction(s)", e.Index, e.Length)
}

// InvalidChoiceError reports a menu selection that matches no option.
type InvalidChoiceError struct {
	Choice string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice '%s'", e.Choice)
}
