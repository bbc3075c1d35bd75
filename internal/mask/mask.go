// Package mask formats user input for display. Every mask is a pure function
// of the digits in its input, so re-masking an already masked value is a no-op.
package mask

import (
	"strings"

	"github.com/AlenaMolokova/checkout/internal/constants"
)

// Digits drops every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// TaxID formats a CPF as XXX.XXX.XXX-XX.
func TaxID(s string) string {
	return group(s, constants.TaxIDLength, []int{3, 3, 3, 2}, []string{".", ".", "-"})
}

// PostalCode formats a CEP as XXXXX-XXX.
func PostalCode(s string) string {
	return group(s, constants.PostalCodeLength, []int{5, 3}, []string{"-"})
}

// Expiry formats a card expiry as MM/YY.
func Expiry(s string) string {
	return group(s, constants.ExpiryLength, []int{2, 2}, []string{"/"})
}

// CardNumber splits the digits into runs of four. Length is left to the validator.
func CardNumber(s string) string {
	d := Digits(s)
	var b strings.Builder
	for i := 0; i < len(d); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		b.WriteString(d[i:end])
	}
	return b.String()
}

func SecurityCode(s string) string {
	d := Digits(s)
	if len(d) > constants.SecurityCodeMax {
		d = d[:constants.SecurityCodeMax]
	}
	return d
}

// group truncates the digits of s to limit and writes them in runs of sizes,
// placing seps[i] between run i and run i+1 only when run i+1 is non-empty.
func group(s string, limit int, sizes []int, seps []string) string {
	d := Digits(s)
	if len(d) > limit {
		d = d[:limit]
	}

	var b strings.Builder
	pos := 0
	for i, size := range sizes {
		if pos >= len(d) {
			break
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		end := pos + size
		if end > len(d) {
			end = len(d)
		}
		b.WriteString(d[pos:end])
		pos = end
	}
	return b.String()
}
