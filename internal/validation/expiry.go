package validation

import (
	"strconv"
	"strings"
	"time"
)

// Expiry validates an MM/YY card expiry against now. A card stays valid
// through its expiry month.
func Expiry(value string, now time.Time) bool {
	month, year, ok := strings.Cut(value, "/")
	if !ok || month == "" || len(year) != 2 || !allDigits(year) {
		return false
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	y += 2000

	currentYear, currentMonth := now.Year(), int(now.Month())
	return y > currentYear || (y == currentYear && m >= currentMonth)
}
