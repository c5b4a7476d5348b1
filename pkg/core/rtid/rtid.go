// Package rtid generates and validates Receipt Token IDs, the identifier
// scheme used for donations (D-RTID) and patient requests (H-RTID), plus the
// 6-digit OTPs that authorize credit redemption.
package rtid

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"
)

// Token prefixes
const (
	PrefixDonation = "D"
	PrefixRequest  = "H"
)

const suffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// tokenPattern matches <D|H>-RTID-DDMMYYYY-XXXX. Callers are expected to
// upper-case user input before validation.
var tokenPattern = regexp.MustCompile(`^[DH]-RTID-(\d{2})(\d{2})(\d{4})-([A-Z0-9]{4})$`)

// Reason is a machine-readable validation failure code
type Reason string

const (
	ReasonPattern     Reason = "pattern"
	ReasonInvalidDate Reason = "invalid-date"
	ReasonInvalidYear Reason = "invalid-year"
)

// ValidationError reports why a candidate token was rejected
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid rtid: %s", e.Reason)
}

// Generate produces a fresh token for the given prefix, encoding the date of
// now plus a 4-character random suffix.
func Generate(prefix string, now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = suffixCharset[rand.IntN(len(suffixCharset))]
	}
	return fmt.Sprintf("%s-RTID-%02d%02d%04d-%s", prefix, now.Day(), int(now.Month()), now.Year(), suffix)
}

// GenerateUnique re-rolls the random suffix while exists reports a collision.
// Collisions are operationally near-impossible, so this terminates almost
// immediately in practice.
func GenerateUnique(prefix string, now time.Time, exists func(string) bool) string {
	token := Generate(prefix, now)
	for exists(token) {
		token = Generate(prefix, now)
	}
	return token
}

// GenerateOTP returns a 6-digit numeric string drawn uniformly from
// [100000, 999999].
func GenerateOTP() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// Validate checks a candidate token against the RTID format. It returns nil
// on success, or a *ValidationError whose Reason is one of pattern,
// invalid-date, or invalid-year.
func Validate(token string) error {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return &ValidationError{Reason: ReasonPattern}
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	// time.Date normalizes out-of-range components (e.g. Feb 31 becomes
	// Mar 2/3), so a date is calendar-valid only if it round-trips.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return &ValidationError{Reason: ReasonInvalidDate}
	}

	if year < 2000 || year > 2100 {
		return &ValidationError{Reason: ReasonInvalidYear}
	}

	return nil
}

// IsDonationToken reports whether the token carries the donation prefix
func IsDonationToken(token string) bool {
	return len(token) >= 6 && token[:6] == "D-RTID"
}

// IsRequestToken reports whether the token carries the request prefix
func IsRequestToken(token string) bool {
	return len(token) >= 6 && token[:6] == "H-RTID"
}
