// Package dateutils provides the calendar date validation used by the ledger.
package dateutils

import (
	"regexp"
	"time"

	"fjacquet/ledger-cli/internal/ledgererror"
)

// DateLayoutISO is the only layout accepted for transaction dates.
const DateLayoutISO = "2006-01-02"

// MinYear and MaxYear bound the accepted date range, inclusive.
const (
	MinYear = 1900
	MaxYear = 2024
)

var isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidateDate checks that text is a zero-padded YYYY-MM-DD calendar date
// within the supported range. It is pure and keeps no state between calls.
func ValidateDate(text string) (time.Time, error) {
	parts := isoPattern.FindStringSubmatch(text)
	if parts == nil {
		return time.Time{}, &ledgererror.InvalidDateError{Value: text, Reason: ledgererror.DateBadFormat}
	}

	year := atoi(parts[1])
	month := atoi(parts[2])
	day := atoi(parts[3])

	// The month check is first and explicit even though the calendar check
	// below would also reject month 13.
	if month < 1 || month > 12 {
		return time.Time{}, &ledgererror.InvalidDateError{Value: text, Reason: ledgererror.DateMonthOutOfRange}
	}
	if year < MinYear || year > MaxYear {
		return time.Time{}, &ledgererror.InvalidDateError{Value: text, Reason: ledgererror.DateYearOutOfRange}
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, &ledgererror.InvalidDateError{Value: text, Reason: ledgererror.DateDayOutOfRange}
	}

	date, err := time.Parse(DateLayoutISO, text)
	if err != nil {
		return time.Time{}, &ledgererror.InvalidDateError{Value: text, Reason: ledgererror.DateBadFormat}
	}
	return date, nil
}

// DaysInMonth returns the number of days in the given month, resolving
// February through the Gregorian leap rule.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// IsLeapYear reports whether year is a leap year: divisible by 4, except
// centuries not divisible by 400.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
