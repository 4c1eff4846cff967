package validation

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Age computes calendar age at the given date: the year difference is
// reduced by one when the month/day of birth has not yet been reached.
func Age(birth, on time.Time) int {
	years := on.Year() - birth.Year()
	if on.Month() < birth.Month() ||
		(on.Month() == birth.Month() && on.Day() < birth.Day()) {
		years--
	}
	return years
}

// identifier: trimmed length >= 3, letters and digits only.
func validIdentifier(fl validator.FieldLevel) bool {
	ci := strings.TrimSpace(fl.Field().String())
	if len(ci) < 3 {
		return false
	}
	for _, r := range ci {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// phone: after stripping non-digits, 7 to 15 digits remain.
func validPhone(fl validator.FieldLevel) bool {
	digits := NormalizePhone(fl.Field().String())
	return len(digits) >= 7 && len(digits) <= 15
}

// datestr: parseable YYYY-MM-DD date.
func validDateStr(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// birthdate: parseable, not in the future, calendar age in [0,120].
func validBirthDate(fl validator.FieldLevel) bool {
	d, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if d.After(today) {
		return false
	}
	age := Age(d, today)
	return age >= 0 && age <= 120
}

// userpassword: at least 6 characters with one letter and one digit.
func validUserPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 6 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range pw {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
