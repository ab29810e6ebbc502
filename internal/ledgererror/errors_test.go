package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"InvalidDate",
			&InvalidDateError{Value: "2024-13-01", Reason: DateMonthOutOfRange},
			"invalid date '2024-13-01': month out of range",
		},
		{
			"InvalidAmount",
			&InvalidAmountError{Value: "ten", Err: fmt.Errorf("can't convert")},
			"invalid amount 'ten': can't convert",
		},
		{
			"DuplicateUsername",
			&DuplicateUsernameError{Username: "alice"},
			"username 'alice' already exists",
		},
		{
			"WeakPassword",
			&WeakPasswordError{MinLength: 6},
			"password must be at least 6 characters long",
		},
		{
			"Auth",
			&AuthError{Username: "alice"},
			"login failed for 'alice'",
		},
		{
			"IndexOutOfRange",
			&IndexOutOfRangeError{Index: 5, Length: 3},
			"index 5 out of range for 3 transaction(s)",
		},
		{
			"InvalidChoice",
			&InvalidChoiceError{Choice: "x"},
			"invalid choice 'x'",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestInvalidAmountUnwrap(t *testing.T) {
	inner := fmt.Errorf("parse failure")
	err := &InvalidAmountError{Value: "x", Err: inner}

	assert.True(t, errors.Is(err, inner))
}
