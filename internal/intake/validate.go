package intake

import (
	"regexp"
	"strings"
	"time"

	"movebroker_backend/internal/pricing"
	"movebroker_backend/platform/phone"
)

// Step validators are pure predicates. None of them return errors: a false
// result re-prompts the same step in place.

var (
	zipRegex   = regexp.MustCompile(`^\d{5}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
)

// ValidZip accepts exactly five digits after trimming.
func ValidZip(value string) bool {
	return zipRegex.MatchString(strings.TrimSpace(value))
}

// ValidEmail accepts the standard local@domain.tld shape.
func ValidEmail(value string) bool {
	return emailRegex.MatchString(strings.TrimSpace(value))
}

// ValidPhone accepts any input containing at least ten digits.
func ValidPhone(value string) bool {
	return phone.DigitCount(value) >= 10
}

// ParseMoveDate accepts a plain date or an RFC 3339 timestamp. The calendar
// picker already rejects past dates, so no lower bound is checked here.
func ParseMoveDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// ValidHomeSize accepts the six anchor size codes.
func ValidHomeSize(value string) bool {
	return pricing.KnownSize(strings.TrimSpace(value))
}

// ParseYesNo maps a binary choice answer to a bool. The second return value
// is false for anything that is not a choice.
func ParseYesNo(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true":
		return true, true
	case "no", "n", "false":
		return false, true
	}
	return false, false
}
