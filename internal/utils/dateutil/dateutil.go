// Package dateutil handles the free-text due-date fields: a DD/MM/YYYY display
// form typed by the user and a YYYY-MM-DD storage form persisted in the
// database.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	// StorageLayout is the persisted date form.
	StorageLayout = "2006-01-02"

	// InvalidDateSentinel is returned by ToDisplayDate for unparseable input.
	InvalidDateSentinel = "invalid date"
)

// stripNonDigits drops every rune that is not an ASCII digit.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDisplayDate masks raw keystrokes into DD/MM/YYYY, inserting the
// separators after the second and fourth digit and truncating to ten
// characters. It is idempotent when re-applied to its own output.
func FormatDisplayDate(raw string) string {
	digits := stripNonDigits(raw)

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteByte(digits[i])
	}

	formatted := b.String()
	if len(formatted) > 10 {
		formatted = formatted[:10]
	}
	return formatted
}

// IsValidCalendarDate reports whether the display string holds a real calendar
// date. Anything that does not strip to exactly eight digits is rejected, as
// are out-of-range days, months, years outside 1900-2100, day 31 in 30-day
// months and impossible February days.
func IsValidCalendarDate(display string) bool {
	digits := stripNonDigits(display)
	if len(digits) != 8 {
		return false
	}

	day, _ := strconv.Atoi(digits[0:2])
	month, _ := strconv.Atoi(digits[2:4])
	year, _ := strconv.Atoi(digits[4:8])

	if day < 1 || day > 31 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if year < 1900 || year > 2100 {
		return false
	}

	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return false
		}
	case 2:
		leap := (year%4 == 0 && year%100 != 0) || year%400 == 0
		if leap && day > 29 {
			return false
		}
		if !leap && day > 28 {
			return false
		}
	}

	return true
}

// ToStorageDate rearranges a validated DD/MM/YYYY display string into the
// YYYY-MM-DD storage form. Callers must run IsValidCalendarDate first; the
// result for invalid input is unspecified.
func ToStorageDate(display string) string {
	digits := stripNonDigits(display)
	if len(digits) < 8 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", digits[4:8], digits[2:4], digits[0:2])
}

// ToDisplayDate renders a stored date value as zero-padded DD/MM/YYYY. It
// accepts both the date-only storage form and full RFC 3339 instants (history
// timestamps); unparseable input yields InvalidDateSentinel.
func ToDisplayDate(storage string) string {
	t, err := time.Parse(StorageLayout, storage)
	if err != nil {
		t, err = time.Parse(time.RFC3339, storage)
	}
	if err != nil {
		return InvalidDateSentinel
	}
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}
