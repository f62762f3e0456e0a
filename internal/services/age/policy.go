package age

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/draftelite/onboarding-go/internal/dependencies/clock"
	"github.com/draftelite/onboarding-go/internal/model"
)

// Format identifies how a date-of-birth string is laid out. The format is
// fixed per call site, never auto-detected.
type Format string

const (
	// FormatISO is YYYY-MM-DD, used by the player account screen.
	FormatISO Format = "iso"
	// FormatUK is DD/MM/YYYY, used by the child profile screen.
	FormatUK Format = "uk"
)

// DateOfBirth is the canonical structured representation. Raw strings are
// parsed at the input boundary and never propagated further.
type DateOfBirth struct {
	Year  int
	Month time.Month
	Day   int
}

// ISO formats the date as YYYY-MM-DD.
func (d DateOfBirth) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// UK formats the date as DD/MM/YYYY.
func (d DateOfBirth) UK() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// Parse parses a date-of-birth string in the given format.
//
// The parsed components are validated by reconstructing a calendar date and
// comparing: day 32 or month 13 would otherwise roll over silently
// (time.Date normalises out-of-range values), and a rolled-over date must be
// rejected rather than adjusted.
func Parse(s string, format Format) (DateOfBirth, error) {
	var sep string
	var order [3]int // indices of day, month, year within the split parts

	switch format {
	case FormatISO:
		sep, order = "-", [3]int{2, 1, 0}
	case FormatUK:
		sep, order = "/", [3]int{0, 1, 2}
	default:
		return DateOfBirth{}, fmt.Errorf("%w: unknown format %q", model.ErrInvalidDate, format)
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return DateOfBirth{}, fmt.Errorf("%w: %q", model.ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return DateOfBirth{}, fmt.Errorf("%w: %q", model.ErrInvalidDate, s)
		}
		nums[i] = n
	}

	day, month, year := nums[order[0]], time.Month(nums[order[1]]), nums[order[2]]

	check := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if check.Year() != year || check.Month() != month || check.Day() != day {
		return DateOfBirth{}, fmt.Errorf("%w: %q", model.ErrInvalidDate, s)
	}

	return DateOfBirth{Year: year, Month: month, Day: day}, nil
}

// Policy computes age-majority status from a date of birth.
type Policy struct {
	clock clock.Clock

	// InvalidIsAdult controls what an unparseable date of birth classifies
	// as. The shipped apps treat it as "not under 18" so a malformed entry
	// does not block progress; whether that is the right call is a product
	// decision, so it is a switch here rather than a buried catch-all.
	InvalidIsAdult bool
}

// NewPolicy creates a Policy with the original fail-open behaviour.
func NewPolicy(clk clock.Clock) *Policy {
	return &Policy{clock: clk, InvalidIsAdult: true}
}

// IsUnder18 reports whether the date of birth in the given format computes
// to an age below 18 at the current time. The 18th birthday itself counts
// as adult. Unparseable input classifies per InvalidIsAdult and never
// returns an error.
func (p *Policy) IsUnder18(dob string, format Format) bool {
	d, err := Parse(dob, format)
	if err != nil {
		return !p.InvalidIsAdult
	}
	return p.AgeAt(d, p.clock.Now()) < 18
}

// AgeAt computes the anniversary-based age at the given instant: the year
// difference, minus one if the birthday has not yet occurred this year.
func (p *Policy) AgeAt(d DateOfBirth, now time.Time) int {
	age := now.Year() - d.Year
	if now.Month() < d.Month || (now.Month() == d.Month && now.Day() < d.Day) {
		age--
	}
	return age
}
